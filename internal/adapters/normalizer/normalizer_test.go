package normalizer

import (
	"testing"
)

func TestMarkupNormalizer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tags become words", `<DIV class="row">Hello</DIV>`, "div class row hello div"},
		{"separators collapse", "a,,,  b\n\tc", "a b c"},
		{"only separators", "<>!!", ""},
		{"non ascii kept", "Ärger <b>Öl</b>", "Ärger b Öl b"},
		{"query string", "id=1' OR '1'='1", "id 1 or 1 1"},
	}

	n := NewMarkupNormalizer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMarkupNormalizerReusesBuffers(t *testing.T) {
	n := NewMarkupNormalizer()
	first := n.Normalize("<p>First Page</p>")
	second := n.Normalize("<p>x</p>")
	if first != "p first page p" || second != "p x p" {
		t.Errorf("results changed across calls: %q, %q", first, second)
	}
}

func TestCreate(t *testing.T) {
	if got := Create(IdentityType).Normalize("A,b"); got != "A,b" {
		t.Errorf("identity changed text: %q", got)
	}
	if got := Create(LowercaseType).Normalize("A,B"); got != "a,b" {
		t.Errorf("lowercase = %q", got)
	}
	if got := Create(MarkupType).Normalize("A,B"); got != "a b" {
		t.Errorf("markup = %q", got)
	}
	if got := Create(Type(99)).Normalize("A"); got != "A" {
		t.Errorf("unknown type should fall back to identity, got %q", got)
	}
}
