package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"codesum/internal/clipboard"
	"codesum/internal/logging"
	"codesum/internal/summarize"
	"codesum/internal/textnorm"
)

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	var policyFlag string
	var excludeFlag []string
	var verboseFlag bool
	var noClipboardFlag bool

	cmd := &cobra.Command{
		Use:   "summarize <path> <extension>...",
		Short: "Aggregate matching project files into one annotated blob",
		Long: "Summarize walks the project tree under <path>, collects files whose names\n" +
			"end with one of the given extensions, cleans each one, and writes a single\n" +
			"aggregate to stdout. The aggregate is also copied to the clipboard when one\n" +
			"is available. Auto-generated directories (bin, obj, resources, assets and\n" +
			"*.droid / *.winui projects) are excluded.",
		Example: "  codesum summarize ~/Projects/MySolution .cs .csproj\n" +
			"  codesum summarize . .go --policy ascii --exclude vendor",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			policyValue := cfg.Summarize.Policy
			if cmd.Flags().Changed("policy") {
				policyValue = policyFlag
			}
			policy, err := textnorm.Parse(policyValue)
			if err != nil {
				return err
			}

			opts := summarize.Options{
				Root:             args[0],
				Extensions:       args[1:],
				Policy:           policy,
				ExtraExcludeDirs: append(append([]string{}, cfg.Summarize.ExtraExcludeDirs...), excludeFlag...),
				Verbose:          verboseFlag || cfg.Summarize.Verbose,
			}

			res, err := summarize.Run(opts, logger)
			if err != nil {
				return err
			}
			if res.Aggregate == "" {
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), res.Aggregate)

			if cfg.Summarize.Clipboard && !noClipboardFlag {
				copyToClipboard(res.Aggregate, clipboard.System(), logger)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&policyFlag, "policy", "", "Normalization policy: none, basic, or ascii")
	cmd.Flags().StringSliceVar(&excludeFlag, "exclude", nil, "Extra directory names to exclude (repeatable)")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log the decoder tier used for every file")
	cmd.Flags().BoolVar(&noClipboardFlag, "no-clipboard", false, "Skip the clipboard copy")

	return cmd
}

// copyToClipboard mirrors the aggregate to the clipboard on a best-effort
// basis; absence or failure degrades to a logged warning.
func copyToClipboard(text string, sink clipboard.Sink, logger *slog.Logger) {
	log := logging.NewComponentLogger(logger, "clipboard")
	if !sink.Available() {
		log.Info("clipboard unavailable; copy skipped")
		return
	}
	if err := sink.Copy(text); err != nil {
		log.Warn("failed to copy output to clipboard", logging.Args(logging.Error(err))...)
		return
	}
	log.Info("output copied to clipboard")
}
