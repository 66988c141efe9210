package walker

import (
	"bytes"
	"fmt"

	"go.elara.ws/pcre"
)

// IsBinary reports whether data looks binary, by scanning the first 8KB for
// a NUL byte. Binary files are never fed into the formatting pipeline.
func IsBinary(data []byte) bool {
	limit := min(len(data), 8192)
	return bytes.IndexByte(data[:limit], 0) >= 0
}

// Filter excludes paths matching any of a set of PCRE patterns.
// A nil *Filter matches nothing.
type Filter struct {
	patterns []*pcre.Regexp
}

// NewFilter compiles the given PCRE patterns into a Filter.
// Returns nil when patterns is empty.
func NewFilter(patterns []string) (*Filter, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	f := &Filter{patterns: make([]*pcre.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := pcre.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", p, err)
		}
		f.patterns = append(f.patterns, re)
	}
	return f, nil
}

// Match reports whether path matches any exclude pattern.
func (f *Filter) Match(path string) bool {
	if f == nil {
		return false
	}
	for _, re := range f.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
