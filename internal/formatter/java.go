package formatter

import (
	"strings"
)

// JavaFormatter reformats Java sources through the configured engine.
type JavaFormatter struct {
	engine Engine
}

// NewJavaFormatter creates a JavaFormatter backed by the given engine.
func NewJavaFormatter(engine Engine) *JavaFormatter {
	return &JavaFormatter{engine: engine}
}

func (f *JavaFormatter) Name() string { return "java" }

func (f *JavaFormatter) ShortDesc() string {
	return "formats java source files"
}

func (f *JavaFormatter) Applicable(path string) bool {
	return strings.HasSuffix(path, ".java")
}

func (f *JavaFormatter) Format(text string, cfg *Config) (string, error) {
	out, err := f.engine.Format(text, cfg)
	if err != nil {
		return "", &FormatError{Formatter: f.Name(), Err: err}
	}
	return out, nil
}

var _ SourceFormatter = (*JavaFormatter)(nil)
