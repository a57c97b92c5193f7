package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fuzzyratio/internal/fuzz"
	"fuzzyratio/internal/logging"
)

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var algorithmName string

	cmd := &cobra.Command{
		Use:   "score <s1> <s2>",
		Short: "Score two strings with the configured or selected algorithm",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			alg := cfg.Algorithm()
			if cmd.Flags().Changed("algorithm") {
				alg, err = fuzz.ParseAlgorithm(algorithmName)
				if err != nil {
					return err
				}
			}
			return runScore(cmd, ctx, alg, args[0], args[1])
		},
	}
	cmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "", "Algorithm name (defaults to scoring.default_algorithm)")
	return cmd
}

// newAlgorithmCommands builds one subcommand per algorithm, named after it.
func newAlgorithmCommands(ctx *commandContext) []*cobra.Command {
	algs := fuzz.Algorithms()
	cmds := make([]*cobra.Command, 0, len(algs))
	for _, alg := range algs {
		cmds = append(cmds, &cobra.Command{
			Use:   alg.String() + " <s1> <s2>",
			Short: alg.Summary(),
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runScore(cmd, ctx, alg, args[0], args[1])
			},
		})
	}
	return cmds
}

func runScore(cmd *cobra.Command, ctx *commandContext, alg fuzz.Algorithm, s1, s2 string) error {
	flags, err := ctx.scoringFlags(cmd)
	if err != nil {
		return err
	}
	scorer, logger, err := ctx.scorer(cmd)
	if err != nil {
		return err
	}
	score, err := scorer.Score(alg, s1, s2, flags)
	if err != nil {
		return fmt.Errorf("%s: %w", alg, err)
	}
	logger.Info("scored pair",
		logging.String(logging.FieldAlgorithm, alg.String()),
		logging.Int(logging.FieldScore, score),
		logging.String(logging.FieldFlags, flags.String()),
	)

	if ctx.flags.json {
		return writeJSON(cmd, fuzz.Result{Algorithm: alg, Score: score})
	}
	fmt.Fprintln(cmd.OutOrStdout(), score)
	return nil
}
