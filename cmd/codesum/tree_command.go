package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"codesum/internal/fileutil"
	"codesum/internal/logging"
	"codesum/internal/treegen"
)

func newTreeCommand(ctx *commandContext) *cobra.Command {
	var writeFlag bool

	cmd := &cobra.Command{
		Use:   "tree <path>",
		Short: "Render a filtered directory tree",
		Long: "Tree prints the directory structure under <path>, hiding build output,\n" +
			"IDE metadata, and other configured noise. With --write the tree is saved\n" +
			"to a file inside the project root instead of printed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			rendered, err := treegen.Render(args[0], treegen.Options{
				ExcludeDirs:  cfg.Tree.ExcludeDirs,
				ExcludeFiles: cfg.Tree.ExcludeFiles,
			})
			if err != nil {
				return err
			}
			if rendered == "" {
				logging.NewComponentLogger(logger, "tree").Info("tree is empty; every entry is excluded or the directory has no entries")
			}

			if !writeFlag {
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}

			outPath := filepath.Join(args[0], cfg.Tree.OutputFile)
			if err := fileutil.WriteFileLocked(outPath, []byte(rendered), 0o644); err != nil {
				return err
			}
			logging.NewComponentLogger(logger, "tree").Info("directory tree saved",
				logging.Args(logging.String(logging.FieldPath, outPath))...)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Write the tree to the configured output file under <path>")

	return cmd
}
