// Package wordlist loads dictionary files into word pools.
package wordlist

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
)

// Load reads each path as newline-delimited text and returns all
// non-empty, whitespace-trimmed words in path order, then line order.
// Missing or unreadable files are skipped silently; invalid bytes are
// dropped rather than failing the load. With dedupe set, duplicates
// are discarded while preserving first-occurrence order. An empty pool
// is a valid return.
func Load(paths []string, dedupe bool) []string {
	var words []string

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			slog.Debug("Skipping unreadable wordlist", "path", path, "error", err)
			continue
		}

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			w := strings.TrimSpace(strings.ToValidUTF8(scanner.Text(), ""))
			if w != "" {
				words = append(words, w)
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Debug("Stopped reading wordlist early", "path", path, "error", err)
		}
		_ = f.Close()
	}

	if dedupe {
		words = dedupeOrdered(words)
	}

	return words
}

func dedupeOrdered(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := words[:0]
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
