package similarity

import "strings"

// InCharacterRegime reports whether a pair is scored by the character
// fallback, which happens when either text holds at most one distinct
// space-separated token. Minified or compressed bodies usually land here.
func InCharacterRegime(a, b string) bool {
	return atMostOneToken(a) || atMostOneToken(b)
}

// atMostOneToken reports whether splitting s on single spaces yields only one
// distinct token. The empty string is one empty token.
func atMostOneToken(s string) bool {
	first, rest, found := strings.Cut(s, " ")
	for found {
		var tok string
		tok, rest, found = strings.Cut(rest, " ")
		if tok != first {
			return false
		}
	}
	return true
}

// tokenSet splits s on single spaces and collapses duplicates. Consecutive
// spaces yield empty tokens.
func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for {
		tok, rest, found := strings.Cut(s, " ")
		set[tok] = struct{}{}
		if !found {
			return set
		}
		s = rest
	}
}
