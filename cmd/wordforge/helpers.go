package main

import (
	"fmt"
	"strings"

	"github.com/ronito741/wordforge/internal/cli"
	"github.com/ronito741/wordforge/internal/config"
)

// splitList parses a comma-separated flag value into trimmed,
// non-empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// expandAll expands ~ and environment variables in each path.
func expandAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, config.ExpandPath(p))
		}
	}
	return out
}

// printSummary renders the completion line for a finished run.
func printSummary(verb string, candidates []string, outputPath string) {
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %d passwords", verb, len(candidates))))
	if len(candidates) > 0 {
		fmt.Println(cli.FormatPath("  saved to " + outputPath))
	}
}
