package utility

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/streamkit/errors"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestJSONDump_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	in := sample{Name: "batch", Count: 3}

	if err := JSONDump(path, in, 0); err != nil {
		t.Fatal(err)
	}
	out, err := JSONLoad[sample](path)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestJSONDump_Indent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pretty.json")
	if err := JSONDump(path, sample{Name: "x"}, 2); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n") {
		t.Error("expected indented output")
	}
}

func TestJSONLoad_Missing(t *testing.T) {
	_, err := JSONLoad[sample](filepath.Join(t.TempDir(), "absent.json"))
	if errors.CodeOf(err) != errors.ErrCodeFileError {
		t.Errorf("expected FILE_ERROR, got %v", err)
	}
}

func TestJSONLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := JSONLoad[sample](path)
	if errors.CodeOf(err) != errors.ErrCodeFileError {
		t.Errorf("expected FILE_ERROR, got %v", err)
	}
}
