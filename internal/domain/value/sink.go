package value

// ViolationSink is the single place traversal-produced violations pass
// through before they reach a LintResult. Per spec.md §4.4 it verifies each
// violation's line/column falls within the document being linted — a rule
// that miscomputes a span (or a plugin rule that trusts the wrong offsets)
// must not be able to hand the caller a location nothing can open.
type ViolationSink struct {
	lineCount  int
	violations []Violation
	dropped    int
}

// NewViolationSink builds a sink for a document with the given physical
// line count. A zero-length document still has a nominal line 1, so
// diagnostics about it (e.g. a rule-execution error) remain in bounds.
func NewViolationSink(lineCount int) *ViolationSink {
	if lineCount < 1 {
		lineCount = 1
	}
	return &ViolationSink{lineCount: lineCount}
}

// Add records v if its span is within the document, otherwise drops it and
// counts it toward Dropped().
func (s *ViolationSink) Add(v Violation) {
	if s.inBounds(v) {
		s.violations = append(s.violations, v)
		return
	}
	s.dropped++
}

// AddAll records each violation, applying the same bounds check as Add.
func (s *ViolationSink) AddAll(vs []Violation) {
	for _, v := range vs {
		s.Add(v)
	}
}

func (s *ViolationSink) inBounds(v Violation) bool {
	if v.StartLine < 1 || v.StartLine > s.lineCount {
		return false
	}
	if v.StartColumn < 1 {
		return false
	}
	if v.EndLine < v.StartLine {
		return false
	}
	return true
}

// Violations returns every violation accepted so far, in insertion order.
func (s *ViolationSink) Violations() []Violation {
	out := make([]Violation, len(s.violations))
	copy(out, s.violations)
	return out
}

// Dropped returns how many violations were rejected for falling outside
// the document.
func (s *ViolationSink) Dropped() int { return s.dropped }
