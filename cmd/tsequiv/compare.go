package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typescript-eslint/tsequiv/internal/equiv"
	"github.com/typescript-eslint/tsequiv/internal/estree"
	"github.com/typescript-eslint/tsequiv/internal/verify"
)

func (a *app) compareCommand() *cobra.Command {
	var diff bool
	cmd := &cobra.Command{
		Use:   "compare <file.js> <file.ts>",
		Short: "Compare one JS file with its TS counterpart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			js := a.jsParser().Parse(ctx, args[0])
			ts := a.tsParser().Parse(ctx, args[1])
			if estree.IsEmpty(js) {
				return fmt.Errorf("%s: %w", args[0], verify.ErrJSParse)
			}
			if estree.IsEmpty(ts) {
				return fmt.Errorf("%s: %w", args[1], verify.ErrTSParse)
			}

			equal, err := equiv.Compare(js, ts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if equal {
				fmt.Fprintln(out, "equal")
				return nil
			}
			fmt.Fprintln(out, "different")
			if diff {
				mismatch, err := equiv.Explain(js, ts)
				if err != nil {
					return err
				}
				fmt.Fprint(out, mismatch)
			}
			return &exitCodeError{code: exitDifferent}
		},
	}
	cmd.Flags().BoolVar(&diff, "diff", false, "print the canonical trees' diff on mismatch")
	return cmd
}
