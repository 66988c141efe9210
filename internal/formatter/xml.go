package formatter

import (
	"path/filepath"
)

// xmlExts is the set of extensions the XML formatter accepts.
var xmlExts = map[string]struct{}{
	".xml":  {},
	".xsd":  {},
	".xsl":  {},
	".pom":  {},
	".wsdl": {},
}

// XMLFormatter reformats XML documents through the configured engine.
type XMLFormatter struct {
	engine Engine
}

// NewXMLFormatter creates an XMLFormatter backed by the given engine.
func NewXMLFormatter(engine Engine) *XMLFormatter {
	return &XMLFormatter{engine: engine}
}

func (f *XMLFormatter) Name() string { return "xml" }

func (f *XMLFormatter) ShortDesc() string {
	return "formats xml documents"
}

func (f *XMLFormatter) Applicable(path string) bool {
	_, ok := xmlExts[filepath.Ext(path)]
	return ok
}

func (f *XMLFormatter) Format(text string, cfg *Config) (string, error) {
	out, err := f.engine.Format(text, cfg)
	if err != nil {
		return "", &FormatError{Formatter: f.Name(), Err: err}
	}
	return out, nil
}

var _ SourceFormatter = (*XMLFormatter)(nil)
