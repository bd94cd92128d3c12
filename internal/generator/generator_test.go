package generator

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/ronito741/wordforge/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig returns a quiet baseline: no augmentation, no filtering,
// no casing, output into the test's temp dir.
func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.CaseMode = CaseNone
	cfg.AvoidDuplicates = false
	cfg.ExcludeAmbiguous = false
	cfg.Count = 1
	cfg.Output = filepath.Join(t.TempDir(), "out.txt")
	return cfg
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func mustRun(t *testing.T, cfg Config, pool []string) Result {
	t.Helper()
	g, err := New(cfg, testRNG())
	require.NoError(t, err)
	result, err := g.Run(context.Background(), pool, nil)
	require.NoError(t, err)
	return result
}

func TestRun_PatternExpansion(t *testing.T) {
	cfg := testConfig(t)
	cfg.PatternMode = true
	cfg.Pattern = "W-W"
	cfg.Count = 5

	result := mustRun(t, cfg, []string{"test"})

	assert.Equal(t, []string{
		"test-test", "test-test", "test-test", "test-test", "test-test",
	}, result.Candidates)
}

func TestRun_PatternLiteralAndClasses(t *testing.T) {
	cfg := testConfig(t)
	cfg.PatternMode = true
	cfg.Pattern = "W-corp-D-S"
	cfg.NumType = NumFixed
	cfg.NumLen = 2
	cfg.SymCount = 1

	result := mustRun(t, cfg, []string{"word"})

	require.Len(t, result.Candidates, 1)
	assert.Regexp(t, regexp.MustCompile(`^word-corp-\d{2}-[!@#$%^&*()_+=-]$`), result.Candidates[0])
}

func TestRun_AvoidDuplicatesCollapsesIdenticalCandidates(t *testing.T) {
	cfg := testConfig(t)
	cfg.PatternMode = true
	cfg.Pattern = "W"
	cfg.Count = 10
	cfg.AvoidDuplicates = true

	result := mustRun(t, cfg, []string{"same"})

	assert.Equal(t, []string{"same"}, result.Candidates)
}

func TestRun_WordCompositionSeparators(t *testing.T) {
	tests := []struct {
		name string
		sep  Separator
		want string
	}{
		{name: "dash", sep: SeparatorDash, want: "test-test"},
		{name: "underscore", sep: SeparatorUnderscore, want: "test_test"},
		{name: "dot", sep: SeparatorDot, want: "test.test"},
		{name: "none", sep: SeparatorNone, want: "testtest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.WordsPerPassword = 2
			cfg.Separator = tt.sep

			result := mustRun(t, cfg, []string{"test"})
			assert.Equal(t, []string{tt.want}, result.Candidates)
		})
	}
}

func TestRun_UniqueWordsSkipsWithoutRetry(t *testing.T) {
	// A single-word pool collides on every draw after the first; the
	// skipped draws are not retried, so only one word is emitted even
	// though three were requested.
	cfg := testConfig(t)
	cfg.WordsPerPassword = 3
	cfg.UniqueWords = true
	cfg.Separator = SeparatorDash

	result := mustRun(t, cfg, []string{"solo"})

	assert.Equal(t, []string{"solo"}, result.Candidates)
}

func TestRun_Leet(t *testing.T) {
	cfg := testConfig(t)
	cfg.LeetMode = true

	result := mustRun(t, cfg, []string{"toast"})

	assert.Equal(t, []string{"70@$7"}, result.Candidates)
}

func TestRun_CaseModes(t *testing.T) {
	tests := []struct {
		name string
		mode CaseMode
		want string
	}{
		{name: "lower", mode: CaseLower, want: "mixed"},
		{name: "upper", mode: CaseUpper, want: "MIXED"},
		{name: "title", mode: CaseTitle, want: "Mixed"},
		{name: "none passes through", mode: CaseNone, want: "mIxEd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.CaseMode = tt.mode

			result := mustRun(t, cfg, []string{"mIxEd"})
			assert.Equal(t, []string{tt.want}, result.Candidates)
		})
	}
}

func TestRun_RandomCaseKeepsLetters(t *testing.T) {
	cfg := testConfig(t)
	cfg.CaseMode = CaseRandom

	result := mustRun(t, cfg, []string{"mixture"})

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "mixture", strings.ToLower(result.Candidates[0]))
}

func TestRun_PrefixSuffixAndAmbiguousStrip(t *testing.T) {
	cfg := testConfig(t)
	cfg.Prefix = "pre0"
	cfg.Suffix = "Ifix"
	cfg.ExcludeAmbiguous = true

	result := mustRun(t, cfg, []string{"p0a1ssI"})

	assert.Equal(t, []string{"prepassfix"}, result.Candidates)
}

func TestRun_SmartModeTopsUpMissingClasses(t *testing.T) {
	cfg := testConfig(t)
	cfg.SmartMode = true
	cfg.NumType = NumFixed
	cfg.NumLen = 1
	cfg.SymCount = 1

	result := mustRun(t, cfg, []string{"abc"})

	require.Len(t, result.Candidates, 1)
	pwd := result.Candidates[0]
	assert.True(t, strings.HasPrefix(pwd, "abc"))
	assert.Regexp(t, `\d`, pwd)
	assert.Regexp(t, `[!@#$%^&*()_+=-]`, pwd)
}

func TestRun_SymbolAndNumberAugmentationOrder(t *testing.T) {
	cfg := testConfig(t)
	cfg.UseSymbols = true
	cfg.SymCount = 2
	cfg.UseNumbers = true
	cfg.NumType = NumFixed
	cfg.NumLen = 3

	result := mustRun(t, cfg, []string{"base"})

	require.Len(t, result.Candidates, 1)
	// Symbols are appended before the numeric block.
	assert.Regexp(t, regexp.MustCompile(`^base[!@#$%^&*()_+=-]{2}\d{3}$`), result.Candidates[0])
}

func TestRun_NumbersAtEndFlagDoesNotChangeBehavior(t *testing.T) {
	for _, atEnd := range []bool{false, true} {
		cfg := testConfig(t)
		cfg.UseNumbers = true
		cfg.NumbersAtEnd = atEnd
		cfg.NumType = NumFixed
		cfg.NumLen = 2

		result := mustRun(t, cfg, []string{"word"})
		require.Len(t, result.Candidates, 1)
		assert.Regexp(t, `^word\d{2}$`, result.Candidates[0])
	}
}

func TestRun_InsertBetween(t *testing.T) {
	t.Run("symbol", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.WordsPerPassword = 2
		cfg.InsertBetween = InsertSymbol
		// The separator is overridden entirely by insert-between.
		cfg.Separator = SeparatorDash

		result := mustRun(t, cfg, []string{"aa"})
		require.Len(t, result.Candidates, 1)
		assert.Regexp(t, regexp.MustCompile(`^aa[!@#$%^&*()_+=-]aa$`), result.Candidates[0])
	})

	t.Run("number strictly between words only", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.WordsPerPassword = 3
		cfg.InsertBetween = InsertNumber
		cfg.NumType = NumFixed
		cfg.NumLen = 1

		result := mustRun(t, cfg, []string{"aa"})
		require.Len(t, result.Candidates, 1)
		assert.Regexp(t, regexp.MustCompile(`^aa\daa\daa$`), result.Candidates[0])
	})
}

func TestRun_MinLenRejects(t *testing.T) {
	cfg := testConfig(t)
	cfg.Count = 3
	cfg.MinLen = 10

	result := mustRun(t, cfg, []string{"tiny"})

	assert.Empty(t, result.Candidates)

	// The output file still exists, holding the empty accepted set.
	_, err := os.Stat(cfg.Output)
	assert.NoError(t, err)
}

func TestRun_EmptyPoolShortCircuits(t *testing.T) {
	cfg := testConfig(t)

	result := mustRun(t, cfg, nil)

	assert.Empty(t, result.Candidates)
	assert.Equal(t, cfg.Output, result.Output)

	// No output file is written for an empty pool.
	_, err := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_UnsatisfiableFilterFailsInsteadOfLooping(t *testing.T) {
	cfg := testConfig(t)
	cfg.MinWordLen = 50

	g, err := New(cfg, testRNG())
	require.NoError(t, err)

	_, err = g.Run(context.Background(), []string{"short", "words"}, nil)
	assert.ErrorIs(t, err, common.ErrNoMatchingWords)
}

func TestNew_InvalidRegexIsFatalConfigError(t *testing.T) {
	cfg := testConfig(t)
	cfg.IncludeRegex = "(unclosed"

	_, err := New(cfg, testRNG())
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestNew_PatternModeRequiresPattern(t *testing.T) {
	cfg := testConfig(t)
	cfg.PatternMode = true
	cfg.Pattern = ""

	_, err := New(cfg, testRNG())
	assert.ErrorIs(t, err, common.ErrEmptyPattern)
}

func TestRun_ProgressCountsDiscards(t *testing.T) {
	cfg := testConfig(t)
	cfg.Count = 4
	cfg.MinLen = 100 // every candidate is discarded

	g, err := New(cfg, testRNG())
	require.NoError(t, err)

	var percents []int
	_, err = g.Run(context.Background(), []string{"w"}, func(p int) {
		percents = append(percents, p)
	})
	require.NoError(t, err)

	assert.Equal(t, []int{25, 50, 75, 100}, percents)
}

func TestRun_CanceledContextAborts(t *testing.T) {
	cfg := testConfig(t)
	cfg.Count = 100

	g, err := New(cfg, testRNG())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = g.Run(ctx, []string{"word"}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilterPool(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*Config)
		pool []string
		want []string
	}{
		{
			name: "word length bounds",
			cfg: func(c *Config) {
				c.MinWordLen = 3
				c.MaxWordLen = 5
			},
			pool: []string{"ab", "abc", "abcde", "abcdef"},
			want: []string{"abc", "abcde"},
		},
		{
			name: "remove words with numbers",
			cfg:  func(c *Config) { c.RemoveWordsWithNumbers = true },
			pool: []string{"clean", "d1rty"},
			want: []string{"clean"},
		},
		{
			name: "remove words with symbols",
			cfg:  func(c *Config) { c.RemoveWordsWithSymbols = true },
			pool: []string{"plain_ok", "has-dash", "has space", "clean"},
			want: []string{"plain_ok", "clean"},
		},
		{
			name: "include regex",
			cfg:  func(c *Config) { c.IncludeRegex = "^pre" },
			pool: []string{"prefix", "other", "present"},
			want: []string{"prefix", "present"},
		},
		{
			name: "exclude regex",
			cfg:  func(c *Config) { c.ExcludeRegex = "bad" },
			pool: []string{"good", "badword"},
			want: []string{"good"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.cfg(&cfg)

			g, err := New(cfg, testRNG())
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.filterPool(tt.pool))
		})
	}
}

func TestRun_WritesTxtOutput(t *testing.T) {
	cfg := testConfig(t)
	cfg.PatternMode = true
	cfg.Pattern = "W"
	cfg.Count = 2

	result := mustRun(t, cfg, []string{"line"})
	require.Equal(t, []string{"line", "line"}, result.Candidates)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, "line\nline", string(data))
}
