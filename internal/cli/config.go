package cli

import (
	"fmt"

	"github.com/dl/srcfmt/internal/formatter"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// Config holds all configuration for a srcfmt run.
type Config struct {
	ConfPath    string // explicit engine profile file (--conf)
	SourceLevel string
	HeaderPath  string // file to load the header block from
	Encoding    string // IANA charset name; empty = utf-8
	LineSep     string // "", "lf", "cr" or "crlf"
	Check       bool   // report would-be changes without writing
	JSONOutput  bool
	Quiet       bool
	Hidden      bool
	Gitignore   bool
	Exclude     []string // PCRE path exclusion patterns
	Color       ColorMode
	Workers     int
	Path        string // traversal root (file or directory)
}

// Validate checks that the config is valid and returns an error if not.
// Validation happens before any file is opened.
func (c *Config) Validate() error {
	switch c.LineSep {
	case "", "lf", "cr", "crlf":
	default:
		return fmt.Errorf("linesep: must be one of ['lf', 'cr', 'crlf'], got %q", c.LineSep)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	if c.Path == "" {
		return fmt.Errorf("no file or directory specified")
	}
	return nil
}

// Separator maps the flag value to the line separator byte sequence.
func (c *Config) Separator() string {
	switch c.LineSep {
	case "cr":
		return formatter.LineSepCR
	case "crlf":
		return formatter.LineSepCRLF
	default:
		return formatter.LineSepLF
	}
}
