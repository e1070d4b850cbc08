package utils_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/5amu/smbnopass/internal/utils"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLinesTrimsAndKeepsOrder(t *testing.T) {
	path := writeFile(t, "  alice  \n\nbob\n\t\ncarol\r\nalice\n")

	lines, err := utils.LoadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"alice", "bob", "carol", "alice"}
	if !slices.Equal(lines, want) {
		t.Errorf("got %q, want %q", lines, want)
	}
}

func TestLoadLinesBlankFile(t *testing.T) {
	for _, content := range []string{"", "\n\n", "   \n\t\n"} {
		lines, err := utils.LoadLines(writeFile(t, content))
		if err != nil {
			t.Fatal(err)
		}
		if len(lines) != 0 {
			t.Errorf("content %q: got %q, want no lines", content, lines)
		}
	}
}

func TestLoadLinesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	lines, err := utils.LoadLines(path)
	if err == nil {
		t.Fatal("expected an error")
	}
	if lines != nil {
		t.Errorf("got %q, want nil", lines)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name %s", err, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want a not-exist error", err)
	}
}

func TestAppendLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := utils.AppendLine(path, "first"); err != nil {
		t.Fatal(err)
	}
	if err := utils.AppendLine(path, "second"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("got %q", data)
	}
}

func TestAppendLineKeepsExistingContent(t *testing.T) {
	path := writeFile(t, "old\n")

	if err := utils.AppendLine(path, "new"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "old\nnew\n" {
		t.Errorf("got %q", data)
	}
}
