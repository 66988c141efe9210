package output

import "strconv"

// TextFormatter renders human-readable per-file lines and a summary line.
type TextFormatter struct {
	styles Styles
	check  bool // report paths that would change instead of rewriting
	quiet  bool // suppress per-file lines, keep the summary
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(styles Styles, check, quiet bool) *TextFormatter {
	return &TextFormatter{styles: styles, check: check, quiet: quiet}
}

func (f *TextFormatter) Format(buf []byte, result Result) []byte {
	if f.quiet || result.Err != nil || !result.Changed {
		// Failures are reported on stderr by the caller; unchanged and
		// skipped files produce no output line.
		return buf
	}
	if f.check {
		buf = append(buf, f.styles.Path.Render(result.Path)...)
		return append(buf, '\n')
	}
	buf = append(buf, f.styles.Action.Render("reformatted")...)
	buf = append(buf, ' ')
	buf = append(buf, f.styles.Path.Render(result.Path)...)
	return append(buf, '\n')
}

func (f *TextFormatter) FormatSummary(buf []byte, s Summary) []byte {
	changedWord := "reformatted"
	if f.check {
		changedWord = "would reformat"
	}

	line := strconv.Itoa(s.Visited) + " files visited, " +
		strconv.Itoa(s.Changed) + " " + changedWord + ", " +
		strconv.Itoa(s.Skipped) + " skipped"
	if s.Failed > 0 {
		line += ", " + f.styles.Fail.Render(strconv.Itoa(s.Failed)+" failed")
	}

	buf = append(buf, f.styles.Summary.Render(line)...)
	return append(buf, '\n')
}

var _ Formatter = (*TextFormatter)(nil)
