package rewrite

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRewrite_UnchangedIsNoop(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.java", "class A {}\n", 0o644)

	content := []byte("class A {}\n")
	changed, err := Rewrite(path, content, content)
	if err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}
	if changed {
		t.Error("identical content reported as changed")
	}
}

func TestRewrite_ReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.java", "old\n", 0o644)

	changed, err := Rewrite(path, []byte("old\n"), []byte("new\n"))
	if err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}
	if !changed {
		t.Error("changed content reported as unchanged")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new\n" {
		t.Errorf("content = %q, want %q", got, "new\n")
	}
}

func TestRewrite_PreservesPermissions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.java", "old\n", 0o600)

	if _, err := Rewrite(path, []byte("old\n"), []byte("new\n")); err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %o, want 600", perm)
	}
}

func TestRewrite_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.java", "old\n", 0o644)

	if _, err := Rewrite(path, []byte("old\n"), []byte("new\n")); err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".srcfmt-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestRewrite_MissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.java")

	_, err := Rewrite(path, nil, []byte("new\n"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
	var re *RewriteError
	if !errors.As(err, &re) {
		t.Fatalf("want *RewriteError, got %T", err)
	}
}

func TestRewrite_FailureLeavesOriginalIntact(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	path := writeFile(t, dir, "a.java", "old\n", 0o644)
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	_, err := Rewrite(path, []byte("old\n"), []byte("new\n"))
	if err == nil {
		t.Fatal("want error when temp file cannot be created")
	}
	got, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(got) != "old\n" {
		t.Errorf("original content damaged: %q", got)
	}
}
