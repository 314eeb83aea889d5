package utility

import (
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kbukum/streamkit/errors"
)

// JSONLoad reads the JSON file into a value of type T.
func JSONLoad[T any](file string) (T, error) {
	var out T
	data, err := os.ReadFile(file)
	if err != nil {
		return out, errors.FileError(file, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, errors.FileError(file, err)
	}
	return out, nil
}

// JSONDump writes v to the file as JSON. A positive indent pretty-prints
// with that many spaces per level.
func JSONDump(file string, v any, indent int) error {
	var (
		data []byte
		err  error
	)
	if indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return errors.FileError(file, err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return errors.FileError(file, err)
	}
	return nil
}
