package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_fuzzy_compare/internal/pool"
	"github.com/baditaflorin/go_fuzzy_compare/internal/ports"
)

// MarkupNormalizer turns markup into space separated words: ASCII
// punctuation and whitespace become a single space and ASCII letters are
// lower-cased. Bytes >= 0x80 are copied as is.
//
// HTML bodies often hold few spaces; splitting on tags lets the token-set
// metric see them as words instead of one long token.
type MarkupNormalizer struct {
	// 0 = keep, 1 = separator, 2 = lower-case
	asciiTable [128]byte
	bytePool   *pool.BufferPool
}

// NewMarkupNormalizer creates a markup normalizer.
func NewMarkupNormalizer() ports.Normalizer {
	n := &MarkupNormalizer{
		bytePool: pool.NewBufferPool(8192),
	}
	for i := 0; i < 128; i++ {
		r := rune(i)
		switch {
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r):
			n.asciiTable[i] = 1
		case unicode.IsUpper(r):
			n.asciiTable[i] = 2
		}
	}
	return n
}

// Normalize rewrites text as described on MarkupNormalizer. Leading and
// trailing separators are dropped.
func (n *MarkupNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)
	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}

	pendingSpace := false
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b < 128 {
			switch n.asciiTable[b] {
			case 1:
				pendingSpace = len(*buffer) > 0
				continue
			case 2:
				b += 'a' - 'A'
			}
		}
		if pendingSpace {
			*buffer = append(*buffer, ' ')
			pendingSpace = false
		}
		*buffer = append(*buffer, b)
	}
	return string(*buffer)
}
