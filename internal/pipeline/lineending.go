package pipeline

import "strings"

// NormalizeLineEndings replaces every \r\n, \r and \n in text with sep.
// The number of logical lines is preserved.
func NormalizeLineEndings(text, sep string) string {
	// Fast path: already uniform LF and LF is wanted.
	if sep == "\n" && !strings.ContainsRune(text, '\r') {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/16)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			b.WriteString(sep)
		case '\n':
			b.WriteString(sep)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
