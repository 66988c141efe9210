package pipeline

import "testing"

func TestApplyHeader_Insert(t *testing.T) {
	got := ApplyHeader("package x;\n", "// Copyright X")
	want := "// Copyright X\n\npackage x;\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyHeader_Idempotent(t *testing.T) {
	headers := []string{
		"// Copyright X",
		"/* Copyright X */",
		"// line one\n// line two",
		"Copyright X", // not comment syntax
	}
	for _, hdr := range headers {
		t.Run(hdr, func(t *testing.T) {
			once := ApplyHeader("class A {}\n", hdr)
			twice := ApplyHeader(once, hdr)
			if once != twice {
				t.Errorf("second pass changed output:\nonce:  %q\ntwice: %q", once, twice)
			}
		})
	}
}

func TestApplyHeader_ExistingIdentical(t *testing.T) {
	text := "// Copyright X\n\nclass A {}\n"
	if got := ApplyHeader(text, "// Copyright X"); got != text {
		t.Errorf("identical header was modified: %q", got)
	}
}

func TestApplyHeader_ReplaceDifferent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"line comments",
			"// Old Notice\n// second line\n\nclass A {}\n",
			"// Copyright X\n\nclass A {}\n",
		},
		{
			"block comment",
			"/* Old Notice */\nclass A {}\n",
			"// Copyright X\n\nclass A {}\n",
		},
		{
			"xml comment",
			"<!-- old -->\n<project/>\n",
			"// Copyright X\n\n<project/>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyHeader(tt.text, "// Copyright X"); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyHeader_CommentRunStopsAtBlankLine(t *testing.T) {
	// The // comment after the blank line belongs to the body, not the header.
	text := "// Old Notice\n\n// not a header\nclass A {}\n"
	got := ApplyHeader(text, "// Copyright X")
	want := "// Copyright X\n\n// not a header\nclass A {}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyHeader_UnterminatedBlockComment(t *testing.T) {
	text := "/* no terminator\nclass A {}\n"
	got := ApplyHeader(text, "// Copyright X")
	want := "// Copyright X\n\n/* no terminator\nclass A {}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyHeader_CRLFContent(t *testing.T) {
	text := "// Copyright X\r\n\r\nclass A {}\r\n"
	if got := ApplyHeader(text, "// Copyright X"); got != text {
		t.Errorf("CRLF content with identical header was modified: %q", got)
	}
}

func TestApplyHeader_EmptyBody(t *testing.T) {
	if got := ApplyHeader("", "// Copyright X"); got != "// Copyright X\n" {
		t.Errorf("got %q", got)
	}
}

func TestApplyHeader_MultiLineHeader(t *testing.T) {
	hdr := "// Copyright X\n// All rights reserved."
	got := ApplyHeader("class A {}\n", hdr)
	want := "// Copyright X\n// All rights reserved.\n\nclass A {}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if twice := ApplyHeader(got, hdr); twice != got {
		t.Errorf("not idempotent: %q", twice)
	}
}
