package tsparse

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"

	"github.com/typescript-eslint/tsequiv/internal/estree"
)

var ErrEmptyOutput = errors.New("companion script produced no tree")

// Decode reads the wire format: the last non-empty line of out is one JSON
// object holding the source file.
func Decode(out []byte) (estree.CompilerNode, error) {
	out = bytes.TrimSpace(out)
	if i := bytes.LastIndexByte(out, '\n'); i >= 0 {
		out = bytes.TrimSpace(out[i+1:])
	}
	if len(out) == 0 {
		return nil, ErrEmptyOutput
	}

	var tree map[string]any
	if err := json.Unmarshal(out, &tree); err != nil {
		return nil, fmt.Errorf("decoding companion output: %w", err)
	}
	if len(tree) == 0 {
		return nil, ErrEmptyOutput
	}
	if _, ok := tree["kind"].(float64); !ok {
		return nil, fmt.Errorf("decoding companion output: root has no numeric kind")
	}
	return estree.CompilerNode(tree), nil
}
