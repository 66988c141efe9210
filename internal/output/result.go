package output

// Result is the outcome of formatting a single file.
type Result struct {
	Path    string
	SeqNum  int
	Changed bool // file content was (or in check mode, would be) rewritten
	Skipped bool // no applicable formatter, or binary content
	Err     error
}

// Summary aggregates per-file outcomes over a whole run.
type Summary struct {
	Visited int
	Changed int
	Skipped int
	Failed  int
}

// Record folds one result into the summary.
func (s *Summary) Record(r Result) {
	s.Visited++
	switch {
	case r.Err != nil:
		s.Failed++
	case r.Skipped:
		s.Skipped++
	case r.Changed:
		s.Changed++
	}
}
