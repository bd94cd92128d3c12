// Package generator implements the candidate generation pipeline: word
// composition or pattern expansion, augmentation, and result filtering.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ronito741/wordforge/internal/charset"
	"github.com/ronito741/wordforge/internal/common"
	"github.com/ronito741/wordforge/internal/output"
)

// ProgressFunc receives the run's completion percentage after each
// processed candidate, including discarded ones. Values are monotonic
// non-decreasing within a run.
type ProgressFunc func(percent int)

// Result is the accepted candidate sequence of one run, in emission
// order, paired with the output path it was written to.
type Result struct {
	Candidates []string
	Output     string
}

// Word-level filter classes: words containing digits, and words
// containing anything outside [A-Za-z0-9_].
var (
	wordDigitRe  = regexp.MustCompile(`\d`)
	wordSymbolRe = regexp.MustCompile(`[^\w]`)
)

// Generator runs the candidate generation pipeline for one Config.
type Generator struct {
	include *regexp.Regexp
	exclude *regexp.Regexp
	rng     *rand.Rand
	cfg     Config
}

// New validates the configuration and builds a Generator. Malformed
// include/exclude regexes are configuration errors surfaced here, at
// first use. A nil rng gets a time-seeded pseudo-random source.
func New(cfg Config, rng *rand.Rand) (*Generator, error) {
	if cfg.PatternMode && cfg.Pattern == "" {
		return nil, common.ErrEmptyPattern
	}

	include, err := common.CompileOptional(cfg.IncludeRegex)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid include regex: %v", common.ErrInvalidConfig, err)
	}
	exclude, err := common.CompileOptional(cfg.ExcludeRegex)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid exclude regex: %v", common.ErrInvalidConfig, err)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{
		cfg:     cfg,
		rng:     rng,
		include: include,
		exclude: exclude,
	}, nil
}

// Run executes one generation run over the resolved word pool: the
// configured number of candidate attempts, each built in pattern or
// word-composition mode, augmented, then filtered for minimum length
// and duplicates. The accepted sequence is written to the configured
// output before the Result is returned. An empty pool short-circuits
// with an empty Result and no output file.
func (g *Generator) Run(ctx context.Context, pool []string, progress ProgressFunc) (Result, error) {
	if progress == nil {
		progress = func(int) {}
	}

	result := Result{Output: g.cfg.Output, Candidates: []string{}}

	if len(pool) == 0 {
		slog.Info("Word pool is empty, nothing to generate")
		return result, nil
	}

	filtered := g.filterPool(pool)
	if len(filtered) == 0 {
		return result, common.ErrNoMatchingWords
	}

	slog.Debug("Generating candidates",
		"pool", len(pool),
		"filtered", len(filtered),
		"count", g.cfg.Count,
		"pattern_mode", g.cfg.PatternMode)

	seen := make(map[string]struct{}, g.cfg.Count)
	candidates := make([]string, 0, g.cfg.Count)

	for i := 0; i < g.cfg.Count; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		var pwd string
		if g.cfg.PatternMode {
			pwd = g.buildFromPattern(filtered)
		} else {
			pwd = g.composeWords(filtered)
		}

		pwd = g.augment(pwd)

		keep := true
		if g.cfg.MinLen > 0 && utf8.RuneCountInString(pwd) < g.cfg.MinLen {
			keep = false
		}
		if keep && g.cfg.AvoidDuplicates {
			if _, dup := seen[pwd]; dup {
				keep = false
			}
		}
		if keep {
			seen[pwd] = struct{}{}
			candidates = append(candidates, pwd)
		}

		progress((i + 1) * 100 / g.cfg.Count)
	}

	if err := output.Write(g.cfg.Output, g.cfg.OutputFormat, candidates); err != nil {
		return result, fmt.Errorf("failed to write results: %w", err)
	}

	result.Candidates = candidates
	slog.Info("Generation complete",
		"accepted", len(candidates),
		"requested", g.cfg.Count,
		"output", g.cfg.Output)

	return result, nil
}

// filterPool applies the word filter predicate once per run; candidates
// draw uniformly from the surviving sub-pool. This bounds the
// historical draw-until-match loop: an unsatisfiable filter yields
// ErrNoMatchingWords from Run instead of retrying forever.
func (g *Generator) filterPool(pool []string) []string {
	filtered := make([]string, 0, len(pool))
	for _, w := range pool {
		if g.wordAllowed(w) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

func (g *Generator) wordAllowed(word string) bool {
	length := utf8.RuneCountInString(word)
	if g.cfg.MinWordLen > 0 && length < g.cfg.MinWordLen {
		return false
	}
	if g.cfg.MaxWordLen > 0 && length > g.cfg.MaxWordLen {
		return false
	}
	if g.cfg.RemoveWordsWithNumbers && wordDigitRe.MatchString(word) {
		return false
	}
	if g.cfg.RemoveWordsWithSymbols && wordSymbolRe.MatchString(word) {
		return false
	}
	if g.include != nil && !g.include.MatchString(word) {
		return false
	}
	if g.exclude != nil && g.exclude.MatchString(word) {
		return false
	}
	return true
}

func (g *Generator) pickWord(filtered []string) string {
	return filtered[g.rng.Intn(len(filtered))]
}

// composeWords builds one candidate in word-composition mode. The loop
// runs exactly WordsPerPassword times; with unique words enabled a
// draw that repeats an already-used word is discarded, not retried, so
// the emitted word count may fall short of the configured one.
func (g *Generator) composeWords(filtered []string) string {
	parts := make([]string, 0, g.cfg.WordsPerPassword)
	used := make(map[string]struct{}, g.cfg.WordsPerPassword)

	for j := 0; j < g.cfg.WordsPerPassword; j++ {
		w := g.pickWord(filtered)
		if g.cfg.UniqueWords {
			if _, ok := used[w]; ok {
				continue
			}
		}
		used[w] = struct{}{}

		if g.cfg.CaseMode != CaseNone {
			w = g.applyCase(w)
		}
		if g.cfg.LeetMode {
			w = charset.Leet(w)
		}
		parts = append(parts, w)
	}

	if g.cfg.ShuffleWords {
		g.rng.Shuffle(len(parts), func(a, b int) {
			parts[a], parts[b] = parts[b], parts[a]
		})
	}

	if g.cfg.InsertBetween != InsertNone {
		return g.joinWithInserts(parts)
	}

	return strings.Join(parts, separatorString(g.cfg.Separator))
}

// joinWithInserts overrides the separator join, placing a random
// symbol or numeric string strictly between consecutive words.
func (g *Generator) joinWithInserts(parts []string) string {
	var b strings.Builder
	for idx, w := range parts {
		b.WriteString(w)
		if idx < len(parts)-1 {
			switch g.cfg.InsertBetween {
			case InsertSymbol:
				b.WriteByte(charset.Symbols[g.rng.Intn(len(charset.Symbols))])
			case InsertNumber:
				b.WriteString(g.randNum())
			}
		}
	}
	return b.String()
}

// augment applies the shared post-construction steps in their fixed
// order: symbol block, numeric block, prefix/suffix, ambiguous-strip,
// smart-mode top-up.
func (g *Generator) augment(pwd string) string {
	if g.cfg.UseSymbols {
		pwd += g.randSym()
	}
	// NumbersAtEnd is accepted for configuration compatibility but does
	// not change behavior: the numeric block is appended whenever
	// numbers are enabled.
	if g.cfg.UseNumbers {
		pwd += g.randNum()
	}

	pwd = g.cfg.Prefix + pwd + g.cfg.Suffix

	if g.cfg.ExcludeAmbiguous {
		pwd = charset.StripAmbiguous(pwd)
	}

	if g.cfg.SmartMode {
		if !charset.HasDigit(pwd) {
			pwd += g.randNum()
		}
		if !charset.HasSymbol(pwd) {
			pwd += g.randSym()
		}
	}

	return pwd
}

func (g *Generator) randNum() string {
	if g.cfg.NumType == NumRandom {
		maxVal := g.cfg.NumMax
		if maxVal < 0 {
			maxVal = 0
		}
		return strconv.Itoa(g.rng.Intn(maxVal + 1))
	}

	n := g.cfg.NumLen
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = charset.Digits[g.rng.Intn(len(charset.Digits))]
	}
	return string(b)
}

func (g *Generator) randSym() string {
	n := g.cfg.SymCount
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = charset.Symbols[g.rng.Intn(len(charset.Symbols))]
	}
	return string(b)
}

func separatorString(s Separator) string {
	switch s {
	case SeparatorDash:
		return "-"
	case SeparatorUnderscore:
		return "_"
	case SeparatorDot:
		return "."
	default:
		return ""
	}
}
