package formatter

// SourceFormatter reformats the text of a source file.
// Implementations declare which paths they can process; the traversal engine
// only invokes Format on files for which Applicable returned true.
type SourceFormatter interface {
	// Name returns the short identifier shown in help output and logs.
	Name() string

	// ShortDesc returns a one-line description for help output.
	ShortDesc() string

	// Applicable reports whether this formatter can process the given path,
	// typically by file extension.
	Applicable(path string) bool

	// Format reformats text according to cfg.
	// Returns a *FormatError when the content cannot be processed.
	Format(text string, cfg *Config) (string, error)
}

// FormatError reports that a formatter could not process a file's content,
// e.g. because the source does not parse.
type FormatError struct {
	Formatter string
	Err       error
}

func (e *FormatError) Error() string {
	return e.Formatter + ": " + e.Err.Error()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewSet returns the full set of formatter variants, in registration order.
// The set is fixed at build time; there is no runtime plugin loading.
// Formatters run over a file in exactly this order.
func NewSet(engine Engine) []SourceFormatter {
	return []SourceFormatter{
		NewJavaFormatter(engine),
		NewXMLFormatter(engine),
	}
}

// ApplicableFor filters formatters down to the ones that accept path,
// preserving registration order.
func ApplicableFor(path string, formatters []SourceFormatter) []SourceFormatter {
	var out []SourceFormatter
	for _, f := range formatters {
		if f.Applicable(path) {
			out = append(out, f)
		}
	}
	return out
}
