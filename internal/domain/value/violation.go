package value

import (
	"fmt"
	"net/url"

	"github.com/gomdlint/gomdlint/internal/shared/functional"
)

// Violation is a located, rule-attributed report produced by the engine. It
// does not, by itself, imply severity error — see Severity.
//
// Auto-fixing is a spec.md Non-goal for the core; the teacher's FixInfo
// model intentionally does not appear here (it survives, trimmed, as a
// CLI-level concern — see internal/interfaces/cli/commands/fix.go).
type Violation struct {
	RuleID          string   // e.g. "MD013"
	RuleAlias       string   // e.g. "line-length"
	RuleNames       []string // all names/aliases, primary first
	RuleDescription string
	RuleInformation *url.URL

	Severity Severity

	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int

	Message      string
	ErrorDetail  functional.Option[string]
	ErrorContext functional.Option[string]
}

// NewViolation creates a Violation for a single-column span at the given
// location. Per spec.md §3, every violation has a non-empty span; a
// single-character issue spans one column.
func NewViolation(ruleNames []string, description string, information *url.URL, line, column int) *Violation {
	names := make([]string, len(ruleNames))
	copy(names, ruleNames)

	ruleID, alias := "", ""
	if len(names) > 0 {
		ruleID = names[0]
	}
	if len(names) > 1 {
		alias = names[1]
	}

	return &Violation{
		RuleID:          ruleID,
		RuleAlias:       alias,
		RuleNames:       names,
		RuleDescription: description,
		RuleInformation: information,
		Severity:        SeverityError,
		StartLine:       line,
		StartColumn:     column,
		EndLine:         line,
		EndColumn:       column + 1,
		ErrorDetail:     functional.None[string](),
		ErrorContext:    functional.None[string](),
	}
}

// WithEnd sets the end of the violation's span.
func (v *Violation) WithEnd(line, column int) *Violation {
	newV := *v
	newV.EndLine = line
	newV.EndColumn = column
	return &newV
}

// WithSeverity sets the severity level.
func (v *Violation) WithSeverity(severity Severity) *Violation {
	newV := *v
	newV.Severity = severity
	return &newV
}

// WithMessage overrides the rule's static description with an
// occurrence-specific message (e.g. MD024's "Duplicate heading 'Usage'").
func (v *Violation) WithMessage(message string) *Violation {
	newV := *v
	newV.Message = message
	return &newV
}

// WithDetail sets the parameterised message detail (spec.md §3's
// "Expected: 80; Actual: 102" style text).
func (v *Violation) WithDetail(detail string) *Violation {
	newV := *v
	newV.ErrorDetail = functional.Some(detail)
	return &newV
}

// WithContext sets a short quoted excerpt from the source.
func (v *Violation) WithContext(context string) *Violation {
	newV := *v
	newV.ErrorContext = functional.Some(context)
	return &newV
}

// PrimaryRuleName returns the rule's stable identifier, e.g. "MD013".
func (v *Violation) PrimaryRuleName() string {
	if v.RuleID != "" {
		return v.RuleID
	}
	if len(v.RuleNames) > 0 {
		return v.RuleNames[0]
	}
	return "unknown-rule"
}

// Location returns a human-readable "line:column" string.
func (v *Violation) Location() string {
	if v.StartColumn > 0 {
		return fmt.Sprintf("%d:%d", v.StartLine, v.StartColumn)
	}
	return fmt.Sprintf("%d", v.StartLine)
}

// String implements fmt.Stringer for CLI/debug display.
func (v *Violation) String() string {
	msg := v.RuleDescription
	if v.Message != "" {
		msg = v.Message
	}
	if v.ErrorDetail.IsSome() {
		msg = fmt.Sprintf("%s [%s]", msg, v.ErrorDetail.Unwrap())
	}
	return fmt.Sprintf("%s: %s/%s %s", v.Location(), v.RuleID, v.RuleAlias, msg)
}

// Less orders violations per spec.md §4.3 step 6: (line, column, rule_id).
func (v *Violation) Less(o *Violation) bool {
	if v.StartLine != o.StartLine {
		return v.StartLine < o.StartLine
	}
	if v.StartColumn != o.StartColumn {
		return v.StartColumn < o.StartColumn
	}
	return v.RuleID < o.RuleID
}
