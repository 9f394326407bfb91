package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWriteFileCreatesParents(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "packages", "a", "tsconfig.json")

	if err := WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}\n" {
		t.Errorf("content = %q, want %q", data, "{}\n")
	}
}

func TestWriteFileReplacesContent(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "tsconfig.json")
	if err := os.WriteFile(path, []byte("old contents that are longer"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, []byte("new"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file to remain, got %d entries", len(entries))
	}
}

func TestWriteFileKeepsExistingMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not tracked on Windows")
	}

	tmp := t.TempDir()
	path := filepath.Join(tmp, "tsconfig.json")
	if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, []byte("{ }"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, want %o", perm, 0600)
	}
}
