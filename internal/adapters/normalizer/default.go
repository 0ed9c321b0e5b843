package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_fuzzy_compare/internal/ports"
)

// IdentityNormalizer leaves text untouched.
type IdentityNormalizer struct{}

// NewIdentityNormalizer creates a normalizer that returns its input.
func NewIdentityNormalizer() ports.Normalizer {
	return IdentityNormalizer{}
}

// Normalize returns text unchanged.
func (IdentityNormalizer) Normalize(text string) string {
	return text
}

// LowercaseNormalizer folds text to lower case.
type LowercaseNormalizer struct{}

// NewLowercaseNormalizer creates a case folding normalizer.
func NewLowercaseNormalizer() ports.Normalizer {
	return LowercaseNormalizer{}
}

// Normalize converts the input text to lower case.
func (LowercaseNormalizer) Normalize(text string) string {
	return strings.ToLower(text)
}

// Type of normalizer to create
type Type int

const (
	// IdentityType compares raw bodies
	IdentityType Type = iota
	// LowercaseType compares case-insensitively
	LowercaseType
	// MarkupType splits markup and punctuation into words
	MarkupType
)

// Create returns the normalizer for t, falling back to identity.
func Create(t Type) ports.Normalizer {
	switch t {
	case LowercaseType:
		return NewLowercaseNormalizer()
	case MarkupType:
		return NewMarkupNormalizer()
	default:
		return NewIdentityNormalizer()
	}
}
