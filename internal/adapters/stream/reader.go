// Package stream reads response bodies from readers in pooled chunks,
// honouring cancellation and a size limit.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/baditaflorin/go_fuzzy_compare/internal/pool"
	"github.com/baditaflorin/go_fuzzy_compare/internal/ports"
)

const (
	// DefaultChunkSize defines the size of each read
	DefaultChunkSize = 8192 // 8KB

	// DefaultMaxBodySize caps a single body
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// ErrBodyTooLarge is returned when a body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("body exceeds size limit")

// BodyReader reads whole bodies chunk by chunk.
type BodyReader struct {
	logger     ports.Logger
	bufferPool *pool.BufferPool
	chunkSize  int
	maxSize    int64
}

// NewBodyReader creates a reader. A maxSize <= 0 disables the limit.
func NewBodyReader(logger ports.Logger, maxSize int64) *BodyReader {
	return &BodyReader{
		logger:     logger,
		bufferPool: pool.NewBufferPool(DefaultChunkSize),
		chunkSize:  DefaultChunkSize,
		maxSize:    maxSize,
	}
}

// WithChunkSize sets a custom chunk size for the reader
func (r *BodyReader) WithChunkSize(size int) *BodyReader {
	if size > 0 {
		r.chunkSize = size
	}
	return r
}

// ReadAll reads reader to EOF and returns its content.
//
// Cancellation is checked between chunks. A Read already blocked cannot see
// it, so when ctx is cancelled and reader is an io.Closer it is closed to
// unblock that Read. Plain readers stay blocked until they return.
func (r *BodyReader) ReadAll(ctx context.Context, reader io.Reader) (string, error) {
	if reader == nil {
		r.logger.Error("Nil reader provided")
		return "", io.ErrUnexpectedEOF
	}
	startTime := time.Now()

	if closer, ok := reader.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { closer.Close() })
		defer stop()
	}

	buffer := r.bufferPool.Get()
	defer r.bufferPool.Put(buffer)
	if cap(*buffer) < r.chunkSize {
		*buffer = make([]byte, r.chunkSize)
	}

	var sb strings.Builder
	for {
		select {
		case <-ctx.Done():
			r.logger.Warn("Reading cancelled by context", "error", ctx.Err())
			return "", ctx.Err()
		default:
		}

		*buffer = (*buffer)[:r.chunkSize]
		n, err := reader.Read(*buffer)
		if n > 0 {
			if r.maxSize > 0 && int64(sb.Len()+n) > r.maxSize {
				r.logger.Warn("Body too large", "limit", r.maxSize)
				return "", fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, r.maxSize)
			}
			sb.Write((*buffer)[:n])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				r.logger.Warn("Reading cancelled by context", "error", ctx.Err())
				return "", ctx.Err()
			}
			r.logger.Warn("Error reading from input", "error", err)
			return "", err
		}
	}

	r.logger.Debug("Body read",
		"bytes", sb.Len(),
		"duration", time.Since(startTime),
	)
	return sb.String(), nil
}
