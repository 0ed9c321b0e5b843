package stream

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/baditaflorin/go_fuzzy_compare/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	body := strings.Repeat("<p>chunk</p>", 5000)
	r := NewBodyReader(logger.Nop(), 0).WithChunkSize(7)

	got, err := r.ReadAll(context.Background(), strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, body, got)

	got, err = r.ReadAll(context.Background(), iotest.OneByteReader(strings.NewReader("a b c")))
	require.NoError(t, err)
	assert.Equal(t, "a b c", got)

	got, err = r.ReadAll(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadAllLimit(t *testing.T) {
	r := NewBodyReader(logger.Nop(), 10)

	got, err := r.ReadAll(context.Background(), strings.NewReader("0123456789"))
	require.NoError(t, err)
	assert.Equal(t, "0123456789", got)

	_, err = r.ReadAll(context.Background(), strings.NewReader("0123456789x"))
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestReadAllErrors(t *testing.T) {
	r := NewBodyReader(logger.Nop(), 0)

	_, err := r.ReadAll(context.Background(), nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	boom := errors.New("boom")
	_, err = r.ReadAll(context.Background(), iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.ReadAll(ctx, strings.NewReader("data"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadAllClosesBlockedReaderOnCancel(t *testing.T) {
	r := NewBodyReader(logger.Nop(), 0)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.ReadAll(ctx, pr)
		done <- err
	}()

	// Nothing is ever written, so ReadAll sits in Read until cancelled.
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("ReadAll still blocked after cancellation")
	}
}
