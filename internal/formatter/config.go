package formatter

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Line separator byte sequences accepted by Config.LineSep.
const (
	LineSepLF   = "\n"
	LineSepCR   = "\r"
	LineSepCRLF = "\r\n"
)

// Config is the shared configuration for one formatting run.
// It is built once at startup and never mutated afterwards, so it can be
// read from any number of workers without synchronization.
type Config struct {
	// ProfileURL is an opaque configuration handle passed through to the
	// formatting engine. Empty means the engine's built-in default.
	ProfileURL string

	// SourceLevel is a language-version hint for the engine, e.g. "1.8".
	SourceLevel string

	// CharsetName is the IANA name of the source charset. Empty means UTF-8.
	CharsetName string

	// Charset is the resolved encoding for CharsetName.
	// nil is treated as UTF-8.
	Charset encoding.Encoding

	// LineSep is the separator all line endings are normalized to.
	// One of LineSepLF, LineSepCR, LineSepCRLF. Empty means LineSepLF.
	LineSep string

	// Header is the text block maintained at the top of each file.
	// Empty disables the header pass.
	Header string
}

// Separator returns the effective line separator.
func (c *Config) Separator() string {
	if c.LineSep == "" {
		return LineSepLF
	}
	return c.LineSep
}

// Encoding returns the effective charset encoding.
func (c *Config) Encoding() encoding.Encoding {
	if c.Charset == nil {
		return unicode.UTF8
	}
	return c.Charset
}

// ResolveCharset looks up an IANA charset name. An empty name resolves to
// UTF-8. Unknown and unsupported names are errors.
func ResolveCharset(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	if enc == nil {
		// The IANA index knows the name but has no decoder for it.
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return enc, nil
}
