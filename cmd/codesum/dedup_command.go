package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"codesum/internal/dedup"
)

func newDedupCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var ignoreCaseFlag bool
	var stripFlag bool

	cmd := &cobra.Command{
		Use:   "dedup <input>",
		Short: "Remove duplicate lines from a text file",
		Long: "Dedup keeps the first occurrence of each unique line, preserving order\n" +
			"and the original line endings, and writes the result next to the input\n" +
			"unless --output names another destination.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			output := outputFlag
			if output == "" {
				output = args[0] + cfg.Dedup.OutputSuffix
			}

			opts := dedup.Options{
				IgnoreCase:      ignoreCaseFlag || cfg.Dedup.IgnoreCase,
				StripWhitespace: stripFlag || cfg.Dedup.StripWhitespace,
			}

			stats, err := dedup.Run(args[0], output, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Input", "Output", "Encoding", "Kept", "Dropped"},
				[][]string{{
					args[0],
					output,
					stats.Encoding,
					strconv.Itoa(stats.Kept),
					strconv.Itoa(stats.Dropped),
				}},
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Path to write the deduplicated file")
	cmd.Flags().BoolVar(&ignoreCaseFlag, "ignore-case", false, "Compare lines case-insensitively")
	cmd.Flags().BoolVar(&stripFlag, "strip", false, "Trim surrounding whitespace before comparing lines")

	return cmd
}
