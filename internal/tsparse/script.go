// Package tsparse parses TypeScript and TSX into compiler-shape trees by
// running a companion script against the typescript package.
package tsparse

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/go-json-experiment/json"

	"github.com/typescript-eslint/tsequiv/internal/estree"
)

//go:embed ts_ast.js
var companionScript string

// Parser produces a compiler-shape tree for a TS/TSX file, or nil on failure.
type Parser interface {
	Parse(ctx context.Context, path string) estree.RawNode
}

var kindPrelude = sync.OnceValue(func() string {
	b, err := json.Marshal(estree.KindTable(), json.Deterministic(true))
	if err != nil {
		panic(fmt.Sprintf("encoding kind table: %v", err))
	}
	return "const KINDS = " + string(b) + ";\n"
})

// Script returns the companion script with its prelude. Embedded scripts
// define toWire and leave the call to the host.
func Script(embedded bool) string {
	var sb strings.Builder
	sb.WriteString(kindPrelude())
	fmt.Fprintf(&sb, "const EMBEDDED = %t;\n", embedded)
	sb.WriteString(companionScript)
	return sb.String()
}
