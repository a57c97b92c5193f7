package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"fuzzyratio/internal/fuzz"
	"fuzzyratio/internal/logging"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <s1> <s2>",
		Short: "Score two strings with every algorithm",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := ctx.scoringFlags(cmd)
			if err != nil {
				return err
			}
			scorer, logger, err := ctx.scorer(cmd)
			if err != nil {
				return err
			}
			results, err := scorer.ScoreAll(args[0], args[1], flags)
			if err != nil {
				return err
			}
			logger.Debug("compared pair",
				logging.Int("algorithms", len(results)),
				logging.String(logging.FieldFlags, flags.String()),
			)

			if ctx.flags.json {
				return writeJSON(cmd, results)
			}
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				for _, r := range results {
					fmt.Fprintf(out, "%s\t%d\n", r.Algorithm, r.Score)
				}
				return nil
			}
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Algorithm.Title(), r.Algorithm.String(), strconv.Itoa(r.Score)})
			}
			fmt.Fprintln(out, renderTable([]string{"Algorithm", "Name", "Score"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
			return nil
		},
	}
}

func newAlgorithmsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "algorithms",
		Short:       "List available algorithms",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			algs := fuzz.Algorithms()
			if ctx.flags.json {
				type entry struct {
					Name    string `json:"name"`
					Title   string `json:"title"`
					Summary string `json:"summary"`
				}
				entries := make([]entry, 0, len(algs))
				for _, alg := range algs {
					entries = append(entries, entry{Name: alg.String(), Title: alg.Title(), Summary: alg.Summary()})
				}
				return writeJSON(cmd, entries)
			}
			rows := make([][]string, 0, len(algs))
			for _, alg := range algs {
				rows = append(rows, []string{alg.String(), alg.Title(), alg.Summary()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Title", "Description"}, rows, nil))
			return nil
		},
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
