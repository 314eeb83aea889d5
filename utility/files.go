package utility

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/kbukum/streamkit/errors"
)

// FilesInsideDir recursively collects the files inside dir and its
// subdirectories. A nil match accepts every file; a nil mapper returns
// paths unchanged. Paths are absolute.
func FilesInsideDir(dir string, match func(string) bool, mapper func(string) string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.FileError(dir, err)
	}

	var out []string
	walkErr := filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if match != nil && !match(path) {
			return nil
		}
		if mapper != nil {
			path = mapper(path)
		}
		out = append(out, path)
		return nil
	})
	if walkErr != nil {
		return nil, errors.FileError(dir, walkErr)
	}
	return out, nil
}

// FileName extracts the base name of path without its extension.
func FileName(path string) string {
	base := filepath.Base(path)
	if idx := strings.Index(base, "."); idx != -1 {
		return base[:idx]
	}
	return base
}
