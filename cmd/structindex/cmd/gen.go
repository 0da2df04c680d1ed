package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdboyer/structindex/internal/generate"
)

func newGenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gen [schema...]",
		Short: "Write generated files",
		Long: `Generate code for every declaration in the given schema files, or in the
manifest's schemas when none are given. Nothing is written if any declaration
fails to parse.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(args)
			if err != nil {
				return err
			}
			return generate.Write(cmd.Context(), cfg)
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [schema...]",
		Short: "Check that generated files are up to date",
		Long: `Generate code in memory and compare it with the files on disk. Exits
non-zero and prints a diff for every missing or stale file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(args)
			if err != nil {
				return err
			}
			if err := generate.Verify(cmd.Context(), cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "generated files are up to date")
			return nil
		},
	}
}
