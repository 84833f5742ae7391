package cnf

import "strings"

func isBracket(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}':
		return true
	default:
		return false
	}
}

// tokenize splits a formula into tokens. Every bracket becomes a
// standalone token even when glued to an adjacent identifier; all other
// maximal non-whitespace runs are returned verbatim. No validation
// happens here: a malformed token surfaces later, when the builder
// fails to resolve it.
func tokenize(formula string) []string {
	var sb strings.Builder
	sb.Grow(len(formula) + 16)
	for _, r := range formula {
		if isBracket(r) {
			sb.WriteByte(' ')
			sb.WriteRune(r)
			sb.WriteByte(' ')
		} else {
			sb.WriteRune(r)
		}
	}
	return strings.Fields(sb.String())
}
