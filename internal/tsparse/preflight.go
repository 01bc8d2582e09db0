package tsparse

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

var ErrPreflight = errors.New("preflight rejected source")

// Preflight checks that src is syntactically valid TypeScript. Files without
// a .ts extension are checked as TSX.
func Preflight(name, src string) error {
	loader := api.LoaderTSX
	if strings.EqualFold(filepath.Ext(name), ".ts") {
		loader = api.LoaderTS
	}

	result := api.Transform(src, api.TransformOptions{
		Loader:     loader,
		Sourcefile: name,
		LogLevel:   api.LogLevelSilent,
	})
	if len(result.Errors) == 0 {
		return nil
	}

	messages := api.FormatMessages(result.Errors, api.FormatMessagesOptions{
		Kind: api.ErrorMessage,
	})
	slog.Debug("preflight failed", slog.String("file", name), slog.Int("errors", len(result.Errors)))
	return fmt.Errorf("%w: %s", ErrPreflight, strings.TrimSpace(strings.Join(messages, "")))
}
