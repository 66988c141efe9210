package pipeline

import "strings"

// ApplyHeader maintains header as the text block at the top of text.
//
// Detection rule: an existing header is either the configured header verbatim
// at offset 0, or a contiguous comment region starting at offset 0 — a
// /* ... */ or <!-- ... --> block, or a maximal run of // lines ending at a
// blank line or EOF. A detected region that differs from the configured
// header is replaced; an identical one is left alone; if neither is found the
// header is prepended followed by a blank line. The verbatim check makes the
// pass idempotent even for header text that is not comment syntax.
func ApplyHeader(text, header string) string {
	hdr := strings.TrimRight(toLF(header), " \t\n")
	if hdr == "" {
		return text
	}

	if end := leadingCommentEnd(text); end > 0 {
		existing := strings.TrimRight(toLF(text[:end]), " \t\n")
		if existing == hdr {
			return text
		}
		return joinHeader(hdr, text[end:])
	}

	if hasHeaderPrefix(text, hdr) {
		return text
	}
	return joinHeader(hdr, text)
}

// hasHeaderPrefix reports whether text begins with the normalized header,
// ending exactly at a line boundary or EOF.
func hasHeaderPrefix(text, hdr string) bool {
	norm := toLF(text)
	if !strings.HasPrefix(norm, hdr) {
		return false
	}
	rest := norm[len(hdr):]
	return rest == "" || rest[0] == '\n'
}

// joinHeader prepends hdr to body with exactly one blank line between them.
func joinHeader(hdr, body string) string {
	body = strings.TrimLeft(body, "\r\n")
	if body == "" {
		return hdr + "\n"
	}
	return hdr + "\n\n" + body
}

// leadingCommentEnd returns the byte offset just past the comment region at
// offset 0, or 0 when text does not start with a comment. An unterminated
// block comment is not treated as a header.
func leadingCommentEnd(text string) int {
	switch {
	case strings.HasPrefix(text, "/*"):
		return blockEnd(text, "*/")
	case strings.HasPrefix(text, "<!--"):
		return blockEnd(text, "-->")
	case strings.HasPrefix(text, "//"):
		return lineCommentEnd(text)
	}
	return 0
}

func blockEnd(text, terminator string) int {
	idx := strings.Index(text, terminator)
	if idx < 0 {
		return 0
	}
	return idx + len(terminator)
}

// lineCommentEnd consumes consecutive // lines starting at offset 0.
// The run stops at the first blank or non-comment line.
func lineCommentEnd(text string) int {
	end := 0
	rest := text
	for {
		line, tail := nextLine(rest)
		if !strings.HasPrefix(strings.TrimLeft(line, " \t"), "//") {
			break
		}
		end += len(rest) - len(tail)
		rest = tail
		if rest == "" {
			break
		}
	}
	// Do not count the final line terminator as part of the header region.
	return len(strings.TrimRight(text[:end], "\r\n"))
}

// nextLine splits text into its first line (without the terminator) and the
// remainder after the terminator. Handles \n, \r\n and bare \r.
func nextLine(text string) (line, rest string) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			return text[:i], text[i+1:]
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				return text[:i], text[i+2:]
			}
			return text[:i], text[i+1:]
		}
	}
	return text, ""
}

// toLF rewrites all line endings to \n for comparisons.
func toLF(s string) string {
	return NormalizeLineEndings(s, "\n")
}
