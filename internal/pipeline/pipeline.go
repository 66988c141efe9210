// Package pipeline threads a file's content through the applicable
// formatters, the header pass, and the line-ending pass, converting between
// the configured charset and UTF-8 at the boundaries.
package pipeline

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/dl/srcfmt/internal/formatter"
)

// EncodingError reports that file content could not be converted to or from
// the configured charset.
type EncodingError struct {
	Charset string
	Op      string // "decode" or "encode"
	Err     error
}

func (e *EncodingError) Error() string {
	msg := e.Op + " " + e.Charset
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Apply runs raw file content through each formatter in order, then the
// header pass, then line-ending normalization, and returns the re-encoded
// bytes. A formatter error aborts processing for this file; the caller keeps
// the original bytes on disk.
func Apply(raw []byte, formatters []formatter.SourceFormatter, cfg *formatter.Config) ([]byte, error) {
	text, err := decode(raw, cfg)
	if err != nil {
		return nil, err
	}

	for _, f := range formatters {
		text, err = f.Format(text, cfg)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Header != "" {
		text = ApplyHeader(text, cfg.Header)
	}

	// Last pass, so formatter and header output using a different
	// convention ends up on the configured separator too.
	text = NormalizeLineEndings(text, cfg.Separator())

	return encode(text, cfg)
}

func decode(raw []byte, cfg *formatter.Config) (string, error) {
	if isUTF8(cfg) {
		if !utf8.Valid(raw) {
			return "", &EncodingError{Charset: charsetName(cfg), Op: "decode"}
		}
		return string(raw), nil
	}
	out, err := cfg.Encoding().NewDecoder().Bytes(raw)
	if err != nil {
		return "", &EncodingError{Charset: charsetName(cfg), Op: "decode", Err: err}
	}
	return string(out), nil
}

func encode(text string, cfg *formatter.Config) ([]byte, error) {
	if isUTF8(cfg) {
		return []byte(text), nil
	}
	// Encoders are strict: a rune the charset cannot represent is an error,
	// not silent replacement.
	out, err := cfg.Encoding().NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, &EncodingError{Charset: charsetName(cfg), Op: "encode", Err: err}
	}
	return out, nil
}

// isUTF8 reports whether the configured charset is UTF-8, decoded natively
// so invalid byte sequences are rejected rather than replaced.
func isUTF8(cfg *formatter.Config) bool {
	if cfg.Encoding() == unicode.UTF8 {
		return true
	}
	name := strings.ToLower(cfg.CharsetName)
	return name == "utf-8" || name == "utf8"
}

func charsetName(cfg *formatter.Config) string {
	if cfg.CharsetName == "" {
		return "utf-8"
	}
	return cfg.CharsetName
}
