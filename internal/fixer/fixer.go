// Package fixer implements the list-fixing pipeline: it reads an
// existing password list and applies ambiguous-character stripping,
// blacklist/whitelist filtering, policy top-up, and length, duplicate
// and entropy filters.
package fixer

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ronito741/wordforge/internal/charset"
	"github.com/ronito741/wordforge/internal/entropy"
	"github.com/ronito741/wordforge/internal/output"
	"github.com/ronito741/wordforge/internal/wordlist"
)

// ProgressFunc receives the run's completion percentage after each
// processed input line, including rejected ones.
type ProgressFunc func(percent int)

// Result is the accepted sequence of one fix run, in input order,
// paired with the output path it was written to.
type Result struct {
	Candidates []string
	Output     string
}

// Config holds every option of a fix run. Constructed once by the
// host and passed by value; MinLen and EntropyThreshold of 0 disable
// their checks.
type Config struct {
	Input  string
	Output string

	RemoveAmbiguous bool

	// SmartMode enables policy top-up; the per-class flags select
	// which classes are enforced.
	SmartMode    bool
	PolicyUpper  bool
	PolicyLower  bool
	PolicyNumber bool
	PolicySymbol bool

	MinLen           int
	RemoveDuplicates bool
	EntropyThreshold float64

	Blacklist []string
	Whitelist []string

	OutputFormat output.Format
}

// DefaultConfig returns a configuration matching the historical
// defaults of the tool.
func DefaultConfig() Config {
	return Config{
		Output:           "fixed_wordlist.txt",
		RemoveAmbiguous:  true,
		PolicyUpper:      true,
		PolicyLower:      true,
		PolicyNumber:     true,
		PolicySymbol:     true,
		RemoveDuplicates: true,
		OutputFormat:     output.FormatTxt,
	}
}

// Fixer runs the list-fixing pipeline for one Config.
type Fixer struct {
	rng *rand.Rand
	cfg Config
}

// New builds a Fixer. A nil rng gets a time-seeded pseudo-random
// source.
func New(cfg Config, rng *rand.Rand) *Fixer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Fixer{cfg: cfg, rng: rng}
}

// Run executes one fix run. A missing input file is non-fatal: the run
// returns an empty Result tied to the configured output path and
// writes nothing. Each line passes through the pipeline stages in
// their fixed order; rejected lines are skipped silently. The accepted
// sequence is written to the configured output before the Result is
// returned.
func (f *Fixer) Run(ctx context.Context, progress ProgressFunc) (Result, error) {
	if progress == nil {
		progress = func(int) {}
	}

	result := Result{Output: f.cfg.Output, Candidates: []string{}}

	if _, err := os.Stat(f.cfg.Input); err != nil {
		slog.Info("Input list missing, emitting empty result", "input", f.cfg.Input)
		return result, nil
	}

	lines := wordlist.Load([]string{f.cfg.Input}, false)
	total := len(lines)

	slog.Debug("Fixing password list", "input", f.cfg.Input, "lines", total)

	seen := make(map[string]struct{}, total)
	fixed := make([]string, 0, total)

	for idx, line := range lines {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if pwd, ok := f.process(line, seen); ok {
			seen[pwd] = struct{}{}
			fixed = append(fixed, pwd)
		}

		progress((idx + 1) * 100 / total)
	}

	if err := output.Write(f.cfg.Output, f.cfg.OutputFormat, fixed); err != nil {
		return result, fmt.Errorf("failed to write results: %w", err)
	}

	result.Candidates = fixed
	slog.Info("Fix complete",
		"accepted", len(fixed),
		"input_lines", total,
		"output", f.cfg.Output)

	return result, nil
}

// process runs one line through the pipeline stages in order:
// ambiguous strip, blacklist, whitelist, policy top-up, minimum
// length, duplicates, entropy threshold. It returns the possibly
// transformed line and whether it was accepted.
func (f *Fixer) process(pwd string, seen map[string]struct{}) (string, bool) {
	if f.cfg.RemoveAmbiguous {
		pwd = charset.StripAmbiguous(pwd)
	}

	for _, b := range f.cfg.Blacklist {
		if strings.Contains(pwd, b) {
			return "", false
		}
	}

	if len(f.cfg.Whitelist) > 0 && !f.whitelisted(pwd) {
		return "", false
	}

	if f.cfg.SmartMode {
		pwd = f.ensurePolicy(pwd)
	}

	if f.cfg.MinLen > 0 && utf8.RuneCountInString(pwd) < f.cfg.MinLen {
		return "", false
	}

	if f.cfg.RemoveDuplicates {
		if _, dup := seen[pwd]; dup {
			return "", false
		}
	}

	if f.cfg.EntropyThreshold > 0 && entropy.Estimate(pwd) < f.cfg.EntropyThreshold {
		return "", false
	}

	return pwd, true
}

func (f *Fixer) whitelisted(pwd string) bool {
	for _, w := range f.cfg.Whitelist {
		if strings.Contains(pwd, w) {
			return true
		}
	}
	return false
}

// ensurePolicy tops up missing required character classes. The top-up
// is additive only and the check order is fixed: upper, lower, number,
// symbol.
func (f *Fixer) ensurePolicy(pwd string) string {
	if f.cfg.PolicyUpper && !charset.HasUpper(pwd) {
		pwd += string(charset.Uppercase[f.rng.Intn(len(charset.Uppercase))])
	}
	if f.cfg.PolicyLower && !charset.HasLower(pwd) {
		pwd += string(charset.Lowercase[f.rng.Intn(len(charset.Lowercase))])
	}
	if f.cfg.PolicyNumber && !charset.HasDigit(pwd) {
		pwd += string(charset.Digits[f.rng.Intn(len(charset.Digits))])
	}
	if f.cfg.PolicySymbol && !charset.HasSymbol(pwd) {
		pwd += string(charset.Symbols[f.rng.Intn(len(charset.Symbols))])
	}
	return pwd
}
