// Package rewrite persists formatted content back to disk with
// rename-over-existing semantics, so an interrupted run never leaves a
// truncated file behind.
package rewrite

import (
	"bytes"
	"os"
	"path/filepath"
)

// RewriteError reports a filesystem failure while replacing a file.
type RewriteError struct {
	Path string
	Err  error
}

func (e *RewriteError) Error() string {
	return "rewrite " + e.Path + ": " + e.Err.Error()
}

func (e *RewriteError) Unwrap() error {
	return e.Err
}

// Rewrite replaces the file at path with newBytes. oldBytes is the content
// read from path earlier in the run; when newBytes is identical no I/O
// happens and Rewrite returns false.
//
// The replacement is written to a temporary file in the same directory,
// given the original file's permission bits, and renamed over the original.
// On any failure the original file is left untouched.
func Rewrite(path string, oldBytes, newBytes []byte) (bool, error) {
	if bytes.Equal(oldBytes, newBytes) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, &RewriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".srcfmt-*")
	if err != nil {
		return false, &RewriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := writeTemp(tmp, newBytes, info.Mode().Perm()); err != nil {
		os.Remove(tmpName)
		return false, &RewriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return false, &RewriteError{Path: path, Err: err}
	}
	return true, nil
}

// writeTemp writes data to the temp file, applies mode, and closes it.
func writeTemp(f *os.File, data []byte, mode os.FileMode) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
