package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// defaultProfileName is the per-user profile file checked when --conf is
// absent, matching the engine's conventional location.
const defaultProfileName = "formatter-profile.xml"

// ResolveProfile determines the opaque profile handle passed to the
// formatting engine, resolved once at startup.
//
// An explicit path must exist and be readable; that failure is fatal. With
// no explicit path, SRCFMT_PROFILE (or ~/formatter-profile.xml if unset) is
// used when present, otherwise the empty handle selects the engine default.
func ResolveProfile(confPath string) (string, error) {
	if confPath != "" {
		if _, err := os.Stat(confPath); err != nil {
			return "", fmt.Errorf("profile %s: %w", confPath, err)
		}
		return fileURL(confPath)
	}

	path := os.Getenv("SRCFMT_PROFILE")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", nil
		}
		path = filepath.Join(home, defaultProfileName)
	}
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return fileURL(path)
}

func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("profile %s: %w", path, err)
	}
	u := url.URL{Scheme: "file", Path: abs}
	return u.String(), nil
}
