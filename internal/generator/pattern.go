package generator

import "strings"

// buildFromPattern expands the pattern template into one candidate.
// The pattern is a dash-separated token sequence: W draws a
// filter-passing word, D a random numeric string, S a random symbol
// string, and any other token is inserted verbatim. Expanded tokens
// are rejoined with the dash, so "W-W" over the pool ["test"] yields
// "test-test".
func (g *Generator) buildFromPattern(filtered []string) string {
	tokens := strings.Split(g.cfg.Pattern, "-")
	out := make([]string, len(tokens))

	for i, tok := range tokens {
		switch tok {
		case "W":
			out[i] = g.pickWord(filtered)
		case "D":
			out[i] = g.randNum()
		case "S":
			out[i] = g.randSym()
		default:
			out[i] = tok
		}
	}

	return strings.Join(out, "-")
}
