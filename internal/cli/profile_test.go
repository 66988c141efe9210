package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveProfile_Explicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.xml")
	if err := os.WriteFile(path, []byte("<profiles/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveProfile(path)
	if err != nil {
		t.Fatalf("ResolveProfile() error: %v", err)
	}
	if !strings.HasPrefix(got, "file://") || !strings.HasSuffix(got, "profile.xml") {
		t.Errorf("got %q, want file URL for %s", got, path)
	}
}

func TestResolveProfile_ExplicitMissingIsFatal(t *testing.T) {
	_, err := ResolveProfile(filepath.Join(t.TempDir(), "nope.xml"))
	if err == nil {
		t.Error("want error for missing explicit profile")
	}
}

func TestResolveProfile_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.xml")
	if err := os.WriteFile(path, []byte("<profiles/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SRCFMT_PROFILE", path)

	got, err := ResolveProfile("")
	if err != nil {
		t.Fatalf("ResolveProfile() error: %v", err)
	}
	if !strings.HasSuffix(got, "custom.xml") {
		t.Errorf("got %q, want env profile", got)
	}
}

func TestResolveProfile_HomeDirectoryDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SRCFMT_PROFILE", "")

	// No profile file: engine default (empty handle), not an error.
	got, err := ResolveProfile("")
	if err != nil {
		t.Fatalf("ResolveProfile() error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty handle", got)
	}

	// Once the file exists it is picked up.
	path := filepath.Join(home, defaultProfileName)
	if err := os.WriteFile(path, []byte("<profiles/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = ResolveProfile("")
	if err != nil {
		t.Fatalf("ResolveProfile() error: %v", err)
	}
	if !strings.HasSuffix(got, defaultProfileName) {
		t.Errorf("got %q, want home profile", got)
	}
}
