package output

import "encoding/json"

// JSONFormatter renders results as JSON Lines, one object per file,
// terminated by a summary object.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonResult struct {
	Type    string `json:"type"`
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

type jsonSummary struct {
	Type    string `json:"type"`
	Visited int    `json:"visited"`
	Changed int    `json:"changed"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
}

func (f *JSONFormatter) Format(buf []byte, result Result) []byte {
	jr := jsonResult{
		Type:    "file",
		Path:    result.Path,
		Changed: result.Changed,
		Skipped: result.Skipped,
	}
	if result.Err != nil {
		jr.Error = result.Err.Error()
	}
	data, _ := json.Marshal(jr)
	buf = append(buf, data...)
	return append(buf, '\n')
}

func (f *JSONFormatter) FormatSummary(buf []byte, s Summary) []byte {
	data, _ := json.Marshal(jsonSummary{
		Type:    "summary",
		Visited: s.Visited,
		Changed: s.Changed,
		Skipped: s.Skipped,
		Failed:  s.Failed,
	})
	buf = append(buf, data...)
	return append(buf, '\n')
}

var _ Formatter = (*JSONFormatter)(nil)
