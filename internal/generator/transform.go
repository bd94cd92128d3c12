package generator

import (
	"strings"
	"unicode"
)

// applyCase transforms a drawn word per the configured case mode.
// CaseNone is handled by the caller (the word passes through without a
// transform at all).
func (g *Generator) applyCase(word string) string {
	switch g.cfg.CaseMode {
	case CaseLower:
		return strings.ToLower(word)
	case CaseUpper:
		return strings.ToUpper(word)
	case CaseTitle:
		return titleCase(word)
	case CaseRandom:
		return g.randomCase(word)
	default:
		return word
	}
}

// titleCase uppercases the first letter of every alphabetic run and
// lowercases the rest, so "o'neil" becomes "O'Neil".
func titleCase(word string) string {
	var b strings.Builder
	b.Grow(len(word))

	inRun := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			if inRun {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			inRun = true
		} else {
			b.WriteRune(r)
			inRun = false
		}
	}

	return b.String()
}

// randomCase flips each character to upper or lower with equal
// probability.
func (g *Generator) randomCase(word string) string {
	var b strings.Builder
	b.Grow(len(word))

	for _, r := range word {
		if g.rng.Intn(2) == 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
