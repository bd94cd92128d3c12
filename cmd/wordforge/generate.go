package main

import (
	"fmt"
	"os"

	"github.com/ronito741/wordforge/internal/cli"
	"github.com/ronito741/wordforge/internal/common"
	"github.com/ronito741/wordforge/internal/config"
	"github.com/ronito741/wordforge/internal/generator"
	"github.com/ronito741/wordforge/internal/output"
	"github.com/ronito741/wordforge/internal/wordlist"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate password candidates from wordlists",
		Long: `Generate password candidates from one or more dictionary files.

Candidates are built either by composing random words (with casing,
leetspeak, separators and shuffling) or by expanding a pattern of
W (word), D (number) and S (symbol) tokens, then augmented with
numbers, symbols, prefixes and suffixes, and filtered for length and
duplicates.

Examples:
  wordforge generate -w words.txt -o out.txt
  wordforge generate -w words.txt --count 500 --case title --leet
  wordforge generate -w words.txt --pattern-mode --pattern "W-W-D-S"`,
		RunE: runGenerate,
	}

	defaults := generator.DefaultConfig()

	cmd.Flags().StringSliceP("wordlist", "w", nil, "wordlist file (repeatable)")
	cmd.Flags().IntP("count", "n", defaults.Count, "number of candidates to generate")
	cmd.Flags().Int("words", defaults.WordsPerPassword, "words per password")
	cmd.Flags().String("case", string(defaults.CaseMode), "case mode (lower, upper, title, random, none)")
	cmd.Flags().Bool("unique-words", false, "skip repeated words within one candidate")
	cmd.Flags().Bool("no-number-words", false, "drop source words containing digits")
	cmd.Flags().Bool("no-symbol-words", false, "drop source words containing symbols")
	cmd.Flags().String("include-regex", "", "only use words matching this regex")
	cmd.Flags().String("exclude-regex", "", "drop words matching this regex")
	cmd.Flags().Int("min-word-len", 0, "minimum source word length (0 = no constraint)")
	cmd.Flags().Int("max-word-len", 0, "maximum source word length (0 = no constraint)")
	cmd.Flags().Bool("dedupe-source", false, "remove duplicates from the word pool")
	cmd.Flags().Bool("pattern-mode", false, "build candidates from a pattern instead of word composition")
	cmd.Flags().String("pattern", defaults.Pattern, "pattern (W=word, D=number, S=symbol, other tokens literal)")
	cmd.Flags().Bool("leet", false, "apply leetspeak substitutions")
	cmd.Flags().Bool("shuffle", false, "shuffle word order")
	cmd.Flags().String("insert-between", string(defaults.InsertBetween), "insert between words (none, symbol, number)")
	cmd.Flags().Bool("numbers", false, "append a numeric block")
	cmd.Flags().String("num-type", string(defaults.NumType), "numeric block type (fixed, random)")
	cmd.Flags().Int("num-len", defaults.NumLen, "digits in a fixed numeric block")
	cmd.Flags().Int("num-max", defaults.NumMax, "upper bound for a random numeric block")
	cmd.Flags().Bool("numbers-at-end", false, "place the numeric block at the end")
	cmd.Flags().Bool("symbols", false, "append a symbol block")
	cmd.Flags().Int("sym-count", defaults.SymCount, "symbols in the symbol block")
	cmd.Flags().String("separator", string(defaults.Separator), "word separator (none, dash, underscore, dot)")
	cmd.Flags().String("prefix", "", "literal prefix")
	cmd.Flags().String("suffix", "", "literal suffix")
	cmd.Flags().Bool("avoid-duplicates", defaults.AvoidDuplicates, "drop candidates already emitted this run")
	cmd.Flags().Int("min-len", 0, "minimum candidate length (0 = no constraint)")
	cmd.Flags().Bool("exclude-ambiguous", defaults.ExcludeAmbiguous, "strip ambiguous characters (0O1lI)")
	cmd.Flags().Bool("smart", false, "ensure a digit and a symbol in every candidate")
	cmd.Flags().StringP("output", "o", defaults.Output, "output file")
	cmd.Flags().StringP("format", "f", string(defaults.OutputFormat), "output format (txt, csv, json)")

	// Bind to viper (errors are rare and can be ignored in practice)
	for flag, key := range generateFlagKeys {
		_ = viper.BindPFlag(key, cmd.Flags().Lookup(flag))
	}

	return cmd
}

// generateFlagKeys maps generate command flags to their viper keys.
var generateFlagKeys = map[string]string{
	"wordlist":          "generate.wordlists",
	"count":             "generate.count",
	"words":             "generate.words_per_password",
	"case":              "generate.case_mode",
	"unique-words":      "generate.unique_words",
	"no-number-words":   "generate.no_number_words",
	"no-symbol-words":   "generate.no_symbol_words",
	"include-regex":     "generate.include_regex",
	"exclude-regex":     "generate.exclude_regex",
	"min-word-len":      "generate.min_word_len",
	"max-word-len":      "generate.max_word_len",
	"dedupe-source":     "generate.dedupe_source",
	"pattern-mode":      "generate.pattern_mode",
	"pattern":           "generate.pattern",
	"leet":              "generate.leet",
	"shuffle":           "generate.shuffle",
	"insert-between":    "generate.insert_between",
	"numbers":           "generate.use_numbers",
	"num-type":          "generate.num_type",
	"num-len":           "generate.num_len",
	"num-max":           "generate.num_max",
	"numbers-at-end":    "generate.numbers_at_end",
	"symbols":           "generate.use_symbols",
	"sym-count":         "generate.sym_count",
	"separator":         "generate.separator",
	"prefix":            "generate.prefix",
	"suffix":            "generate.suffix",
	"avoid-duplicates":  "generate.avoid_duplicates",
	"min-len":           "generate.min_len",
	"exclude-ambiguous": "generate.exclude_ambiguous",
	"smart":             "generate.smart_mode",
	"output":            "generate.output",
	"format":            "generate.output_format",
}

// buildGenerateConfig resolves the generate command's viper keys into
// a validated generator.Config. Missing required paths and unknown
// enum values are configuration errors caught here, before a run
// starts.
func buildGenerateConfig() (generator.Config, error) {
	cfg := generator.DefaultConfig()

	cfg.Wordlists = expandAll(viper.GetStringSlice("generate.wordlists"))
	if len(cfg.Wordlists) == 0 {
		return cfg, common.NewUserError("at least one wordlist file is required (-w)", common.ErrMissingConfig)
	}

	caseMode, err := generator.ParseCaseMode(viper.GetString("generate.case_mode"))
	if err != nil {
		return cfg, common.NewUserError("invalid --case", err)
	}
	separator, err := generator.ParseSeparator(viper.GetString("generate.separator"))
	if err != nil {
		return cfg, common.NewUserError("invalid --separator", err)
	}
	insertBetween, err := generator.ParseInsertBetween(viper.GetString("generate.insert_between"))
	if err != nil {
		return cfg, common.NewUserError("invalid --insert-between", err)
	}
	numType, err := generator.ParseNumType(viper.GetString("generate.num_type"))
	if err != nil {
		return cfg, common.NewUserError("invalid --num-type", err)
	}
	format, err := output.ParseFormat(viper.GetString("generate.output_format"))
	if err != nil {
		return cfg, common.NewUserError("invalid --format", err)
	}

	cfg.Count = viper.GetInt("generate.count")
	cfg.WordsPerPassword = viper.GetInt("generate.words_per_password")
	cfg.CaseMode = caseMode
	cfg.UniqueWords = viper.GetBool("generate.unique_words")
	cfg.RemoveWordsWithNumbers = viper.GetBool("generate.no_number_words")
	cfg.RemoveWordsWithSymbols = viper.GetBool("generate.no_symbol_words")
	cfg.IncludeRegex = viper.GetString("generate.include_regex")
	cfg.ExcludeRegex = viper.GetString("generate.exclude_regex")
	cfg.MinWordLen = viper.GetInt("generate.min_word_len")
	cfg.MaxWordLen = viper.GetInt("generate.max_word_len")
	cfg.RemoveSourceDuplicates = viper.GetBool("generate.dedupe_source")
	cfg.PatternMode = viper.GetBool("generate.pattern_mode")
	cfg.Pattern = viper.GetString("generate.pattern")
	cfg.LeetMode = viper.GetBool("generate.leet")
	cfg.ShuffleWords = viper.GetBool("generate.shuffle")
	cfg.InsertBetween = insertBetween
	cfg.UseNumbers = viper.GetBool("generate.use_numbers")
	cfg.NumType = numType
	cfg.NumLen = viper.GetInt("generate.num_len")
	cfg.NumMax = viper.GetInt("generate.num_max")
	cfg.NumbersAtEnd = viper.GetBool("generate.numbers_at_end")
	cfg.UseSymbols = viper.GetBool("generate.use_symbols")
	cfg.SymCount = viper.GetInt("generate.sym_count")
	cfg.Separator = separator
	cfg.Prefix = viper.GetString("generate.prefix")
	cfg.Suffix = viper.GetString("generate.suffix")
	cfg.AvoidDuplicates = viper.GetBool("generate.avoid_duplicates")
	cfg.MinLen = viper.GetInt("generate.min_len")
	cfg.ExcludeAmbiguous = viper.GetBool("generate.exclude_ambiguous")
	cfg.SmartMode = viper.GetBool("generate.smart_mode")
	cfg.Output = config.ExpandPath(viper.GetString("generate.output"))
	cfg.OutputFormat = format

	if cfg.Output == "" {
		return cfg, common.NewUserError("an output file is required (-o)", common.ErrMissingConfig)
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	gen, err := generator.New(cfg, nil)
	if err != nil {
		return err
	}

	pool := wordlist.Load(cfg.Wordlists, cfg.RemoveSourceDuplicates)

	reporter := cli.NewProgressReporter(os.Stdout, "Generating candidates...")
	result, err := gen.Run(ctx, pool, reporter.Update)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	reporter.Finish()

	printSummary("Generated", result.Candidates, result.Output)
	return nil
}
