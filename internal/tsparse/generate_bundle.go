//go:build ignore

// Bundles the typescript package into a single script that RuntimeParser can
// load with the bundle option. Run from a folder where typescript is installed:
//
//	go run ./internal/tsparse/generate_bundle.go -out ts_bundle_generated.js
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

const entry = `globalThis.ts = require("typescript");`

func main() {
	out := flag.String("out", "ts_bundle_generated.js", "output file")
	dir := flag.String("dir", ".", "folder typescript is resolved from")
	flag.Parse()

	result := api.Build(api.BuildOptions{
		Stdin: &api.StdinOptions{
			Contents:   entry,
			ResolveDir: *dir,
			Sourcefile: "ts_bundle_entry.js",
		},
		Bundle:     true,
		Format:     api.FormatIIFE,
		Platform:   api.PlatformNeutral,
		Target:     api.ES2017,
		Outfile:    *out,
		Write:      true,
		LogLevel:   api.LogLevelInfo,
		MainFields: []string{"main"},
		External:   []string{"fs", "path", "os", "crypto", "buffer", "perf_hooks", "inspector", "source-map-support"},
	})
	if len(result.Errors) > 0 {
		messages := api.FormatMessages(result.Errors, api.FormatMessagesOptions{Kind: api.ErrorMessage})
		fmt.Fprintln(os.Stderr, strings.Join(messages, ""))
		os.Exit(1)
	}
}
