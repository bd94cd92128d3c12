package main

import (
	"fmt"
	"os"

	"github.com/ronito741/wordforge/internal/cli"
	"github.com/ronito741/wordforge/internal/common"
	"github.com/ronito741/wordforge/internal/config"
	"github.com/ronito741/wordforge/internal/fixer"
	"github.com/ronito741/wordforge/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func fixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Fix an existing password list",
		Long: `Fix an existing password list: strip ambiguous characters, filter by
blacklist and whitelist substrings, enforce character-class policies,
drop short, duplicate or low-entropy entries, and write the result.

Examples:
  wordforge fix -i leaked.txt -o fixed.txt
  wordforge fix -i list.txt --smart --min-len 8
  wordforge fix -i list.txt --entropy-threshold 30 --blacklist "pass,admin"`,
		RunE: runFix,
	}

	defaults := fixer.DefaultConfig()

	cmd.Flags().StringP("input", "i", "", "input password list")
	cmd.Flags().StringP("output", "o", defaults.Output, "output file")
	cmd.Flags().Bool("remove-ambiguous", defaults.RemoveAmbiguous, "strip ambiguous characters (0O1lI)")
	cmd.Flags().Bool("smart", false, "enforce the enabled character-class policies")
	cmd.Flags().Bool("policy-upper", defaults.PolicyUpper, "require an uppercase letter")
	cmd.Flags().Bool("policy-lower", defaults.PolicyLower, "require a lowercase letter")
	cmd.Flags().Bool("policy-number", defaults.PolicyNumber, "require a digit")
	cmd.Flags().Bool("policy-symbol", defaults.PolicySymbol, "require a symbol")
	cmd.Flags().Int("min-len", 0, "minimum password length (0 = no constraint)")
	cmd.Flags().Bool("remove-duplicates", defaults.RemoveDuplicates, "drop duplicate entries")
	cmd.Flags().Float64("entropy-threshold", 0, "drop entries below this entropy score (0 = off)")
	cmd.Flags().String("blacklist", "", "comma-separated substrings that reject an entry")
	cmd.Flags().String("whitelist", "", "comma-separated substrings, one of which must occur")
	cmd.Flags().StringP("format", "f", string(defaults.OutputFormat), "output format (txt, csv, json)")

	// Bind to viper (errors are rare and can be ignored in practice)
	for flag, key := range fixFlagKeys {
		_ = viper.BindPFlag(key, cmd.Flags().Lookup(flag))
	}

	return cmd
}

// fixFlagKeys maps fix command flags to their viper keys.
var fixFlagKeys = map[string]string{
	"input":             "fix.input",
	"output":            "fix.output",
	"remove-ambiguous":  "fix.remove_ambiguous",
	"smart":             "fix.smart_mode",
	"policy-upper":      "fix.policy_upper",
	"policy-lower":      "fix.policy_lower",
	"policy-number":     "fix.policy_number",
	"policy-symbol":     "fix.policy_symbol",
	"min-len":           "fix.min_len",
	"remove-duplicates": "fix.remove_duplicates",
	"entropy-threshold": "fix.entropy_threshold",
	"blacklist":         "fix.blacklist",
	"whitelist":         "fix.whitelist",
	"format":            "fix.output_format",
}

// buildFixConfig resolves the fix command's viper keys into a
// validated fixer.Config.
func buildFixConfig() (fixer.Config, error) {
	cfg := fixer.DefaultConfig()

	cfg.Input = config.ExpandPath(viper.GetString("fix.input"))
	if cfg.Input == "" {
		return cfg, common.NewUserError("an input file is required (-i)", common.ErrMissingConfig)
	}

	format, err := output.ParseFormat(viper.GetString("fix.output_format"))
	if err != nil {
		return cfg, common.NewUserError("invalid --format", err)
	}

	cfg.Output = config.ExpandPath(viper.GetString("fix.output"))
	if cfg.Output == "" {
		return cfg, common.NewUserError("an output file is required (-o)", common.ErrMissingConfig)
	}

	cfg.RemoveAmbiguous = viper.GetBool("fix.remove_ambiguous")
	cfg.SmartMode = viper.GetBool("fix.smart_mode")
	cfg.PolicyUpper = viper.GetBool("fix.policy_upper")
	cfg.PolicyLower = viper.GetBool("fix.policy_lower")
	cfg.PolicyNumber = viper.GetBool("fix.policy_number")
	cfg.PolicySymbol = viper.GetBool("fix.policy_symbol")
	cfg.MinLen = viper.GetInt("fix.min_len")
	cfg.RemoveDuplicates = viper.GetBool("fix.remove_duplicates")
	cfg.EntropyThreshold = viper.GetFloat64("fix.entropy_threshold")
	cfg.Blacklist = splitList(viper.GetString("fix.blacklist"))
	cfg.Whitelist = splitList(viper.GetString("fix.whitelist"))
	cfg.OutputFormat = format

	return cfg, nil
}

func runFix(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := buildFixConfig()
	if err != nil {
		return err
	}

	reporter := cli.NewProgressReporter(os.Stdout, "Fixing password list...")
	result, err := fixer.New(cfg, nil).Run(ctx, reporter.Update)
	if err != nil {
		return fmt.Errorf("fix failed: %w", err)
	}
	reporter.Finish()

	printSummary("Fixed", result.Candidates, result.Output)
	return nil
}
