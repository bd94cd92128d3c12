// Package charset defines the character classes shared by the
// generation and fixing pipelines.
package charset

import (
	"strings"
	"unicode"
)

// Symbols is the symbol alphabet used for random symbol draws.
const Symbols = "!@#$%^&*()-_+="

// Ambiguous holds the characters stripped for legibility. The set is
// literal; it is not case-normalized.
const Ambiguous = "0O1lI"

// Uppercase and Lowercase are the policy top-up alphabets.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
)

// leet maps lowercase letters to their leetspeak substitutions.
// Lookup is case-insensitive; the emitted symbol is always the
// lowercase-keyed one.
var leet = map[rune]rune{
	'a': '@',
	'o': '0',
	'i': '1',
	'e': '3',
	's': '$',
	't': '7',
	'l': '1',
}

// Leet applies the leetspeak substitution map to a word. Unmapped
// characters pass through unchanged.
func Leet(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if sub, ok := leet[unicode.ToLower(r)]; ok {
			b.WriteRune(sub)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripAmbiguous removes every ambiguous character from s.
func StripAmbiguous(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(Ambiguous, r) {
			return -1
		}
		return r
	}, s)
}

// HasDigit reports whether s contains an ASCII digit.
func HasDigit(s string) bool {
	return strings.ContainsAny(s, Digits)
}

// HasUpper reports whether s contains an ASCII uppercase letter.
func HasUpper(s string) bool {
	return strings.ContainsAny(s, Uppercase)
}

// HasLower reports whether s contains an ASCII lowercase letter.
func HasLower(s string) bool {
	return strings.ContainsAny(s, Lowercase)
}

// HasSymbol reports whether s contains a character from the policy
// symbol class.
func HasSymbol(s string) bool {
	return strings.ContainsAny(s, "!@#$%^&*()_+=-")
}
