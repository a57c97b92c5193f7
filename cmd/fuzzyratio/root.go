package main

import (
	"github.com/spf13/cobra"
)

type globalFlags struct {
	config             string
	caseSensitive      bool
	preserveWhitespace bool
	composeUnicode     bool
	partialStrategy    string
	json               bool
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "fuzzyratio",
		Short:         "Fuzzy string similarity scores",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.BoolVar(&flags.caseSensitive, "case-sensitive", false, "Compare without folding case")
	pf.BoolVar(&flags.preserveWhitespace, "preserve-whitespace", false, "Keep leading and trailing whitespace")
	pf.BoolVar(&flags.composeUnicode, "nfc", false, "Compose inputs to Unicode NFC before scoring")
	pf.StringVar(&flags.partialStrategy, "partial-strategy", "", "Partial alignment strategy (window or blocks)")
	pf.BoolVar(&flags.json, "json", false, "Emit JSON output")

	rootCmd.AddCommand(newScoreCommand(ctx))
	for _, cmd := range newAlgorithmCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newCompareCommand(ctx))
	rootCmd.AddCommand(newAlgorithmsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
