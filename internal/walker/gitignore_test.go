package walker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWalk_RespectsGitignoreLayers(t *testing.T) {
	dir := t.TempDir()
	mkFile(t, filepath.Join(dir, "a.java"))
	mkFile(t, filepath.Join(dir, "build", "b.java"))
	mkFile(t, filepath.Join(dir, "sub", "keep.java"))
	mkFile(t, filepath.Join(dir, "sub", "local.tmp"))
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("build/\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", ".gitignore"), []byte("*.tmp\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, _ := collect(t, dir, Options{Gitignore: true})
	want := map[string]bool{"a.java": true, "sub/keep.java": true}
	for _, p := range paths {
		if !want[p] {
			t.Errorf("unexpected path %q", p)
		}
		delete(want, p)
	}
	for p := range want {
		t.Errorf("missing path %q", p)
	}
}

func TestWalk_GitignoreOffByDefault(t *testing.T) {
	dir := t.TempDir()
	mkFile(t, filepath.Join(dir, "build", "b.java"))
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("build/\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, _ := collect(t, dir, Options{})
	found := false
	for _, p := range paths {
		if p == "build/b.java" {
			found = true
		}
	}
	if !found {
		t.Errorf("build/b.java should be visited when gitignore is off: %v", paths)
	}
}
