// Package verify checks converted files against their originals in bulk.
package verify

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type Pair struct {
	// Name is the JS path relative to the JS root, without extension.
	Name string
	JS   string
	TS   string
}

type Discovery struct {
	Pairs []Pair
	// UnmatchedJS lists JS files with no TS counterpart.
	UnmatchedJS []string
}

// Discover pairs every name.js under jsDir with the first of name+ext under
// tsDir that exists, trying tsExtensions in order.
func Discover(jsDir, tsDir string, tsExtensions []string) (Discovery, error) {
	var d Discovery
	err := filepath.WalkDir(jsDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || filepath.Ext(path) != ".js" {
			return nil
		}

		rel, err := filepath.Rel(jsDir, path)
		if err != nil {
			return err
		}
		stem := strings.TrimSuffix(rel, ".js")
		ts, err := counterpart(filepath.Join(tsDir, stem), tsExtensions)
		if err != nil {
			return err
		}
		if ts == "" {
			d.UnmatchedJS = append(d.UnmatchedJS, path)
			return nil
		}
		d.Pairs = append(d.Pairs, Pair{Name: filepath.ToSlash(stem), JS: path, TS: ts})
		return nil
	})
	if err != nil {
		return Discovery{}, fmt.Errorf("discovering pairs: %w", err)
	}
	return d, nil
}

func counterpart(stem string, extensions []string) (string, error) {
	for _, ext := range extensions {
		candidate := stem + ext
		info, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}
