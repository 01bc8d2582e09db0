package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/typescript-eslint/tsequiv/internal/verify"
)

func (a *app) verifyCommand() *cobra.Command {
	var jsDir, tsDir string
	var diff bool
	cmd := &cobra.Command{
		Use:   "verify --js-dir <dir> --ts-dir <dir>",
		Short: "Compare every JS file under a tree with its TS counterpart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if jsDir == "" || tsDir == "" {
				return errors.New("--js-dir and --ts-dir are required")
			}
			discovery, err := verify.Discover(jsDir, tsDir, a.cfg.TSExtensions)
			if err != nil {
				return err
			}

			v := &verify.Verifier{
				JS:      a.jsParser(),
				TS:      a.tsParser(),
				Workers: a.cfg.Workers,
				Explain: diff,
			}
			results, err := v.Run(cmd.Context(), discovery.Pairs)
			if err != nil {
				return err
			}

			r := &verify.Reporter{W: cmd.OutOrStdout(), Color: a.useColor(), Diff: diff}
			if err := r.Write(results, discovery.UnmatchedJS); err != nil {
				return err
			}
			if !verify.Summarize(results, discovery.UnmatchedJS).OK() {
				return &exitCodeError{code: exitDifferent}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&jsDir, "js-dir", "", "root of the original JS files")
	cmd.Flags().StringVar(&tsDir, "ts-dir", "", "root of the converted TS files")
	cmd.Flags().BoolVar(&diff, "diff", false, "print a diff for every mismatch")
	return cmd
}
