package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"

	"github.com/typescript-eslint/tsequiv/internal/equiv"
	"github.com/typescript-eslint/tsequiv/internal/estree"
)

func (a *app) dumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the canonical tree of a JS or TS file",
		Long: "Print the canonical tree of a file as indented JSON. Files ending in .js\n" +
			"are read as JavaScript; anything else goes through the TypeScript parser.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var raw estree.RawNode
			if filepath.Ext(path) == ".js" {
				raw = a.jsParser().Parse(cmd.Context(), path)
			} else {
				raw = a.tsParser().Parse(cmd.Context(), path)
			}
			if estree.IsEmpty(raw) {
				return fmt.Errorf("%s did not parse", path)
			}

			text, err := equiv.Encode(equiv.Canonical(raw), jsontext.WithIndent("  "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", text)
			return err
		},
	}
}
