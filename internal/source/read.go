// Package source loads source files for the parsers.
package source

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrFileTooLarge = errors.New("file too large")

// Read returns the text of the file at path. A UTF-8 byte order mark is
// stripped and UTF-16 files with a byte order mark are decoded. A positive
// maxSize rejects larger files with ErrFileTooLarge.
func Read(path string, maxSize int64) (string, error) {
	if maxSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		if info.Size() > maxSize {
			return "", fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, path, info.Size(), maxSize)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(raw)
}

func Decode(raw []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", fmt.Errorf("decoding source: %w", err)
	}
	return string(text), nil
}
