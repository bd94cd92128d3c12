// Package entropy estimates password strength with a Shannon-entropy score.
package entropy

import "math"

// Estimate returns the length-scaled Shannon entropy of s in bits: the
// per-character entropy of the character frequency distribution
// multiplied by the string length. An empty string scores 0, as does
// any string drawn from a single-symbol alphabet. The score is a
// relative filter threshold, not a cryptographic strength guarantee.
func Estimate(s string) float64 {
	if s == "" {
		return 0
	}

	freq := make(map[rune]int)
	length := 0
	for _, r := range s {
		freq[r]++
		length++
	}

	var ent float64
	for _, count := range freq {
		p := float64(count) / float64(length)
		ent -= p * math.Log2(p)
	}

	return ent * float64(length)
}
