package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD028() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD028", "no-blanks-blockquote"},
		"Blank line inside blockquote",
		[]string{"blockquote", "whitespace"},
		entity.RuleTypeLine,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md028Linter{}
		},
	)
}

type md028Linter struct {
	entity.BaseLinter
	inQuote    bool
	blankLines []int
	violations []value.Violation
}

func (l *md028Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InFencedCode {
		return
	}
	trimmed := strings.TrimLeft(text, " ")
	isQuoteLine := strings.HasPrefix(trimmed, ">")
	isBlank := strings.TrimSpace(text) == ""

	switch {
	case isQuoteLine:
		if l.inQuote {
			for _, ln := range l.blankLines {
				l.violations = append(l.violations, *value.NewViolation(
					[]string{"MD028", "no-blanks-blockquote"},
					"Blank line inside blockquote",
					nil, ln, 1,
				))
			}
		}
		l.blankLines = nil
		l.inQuote = true
	case isBlank && l.inQuote:
		l.blankLines = append(l.blankLines, lineNumber)
	default:
		l.inQuote = false
		l.blankLines = nil
	}
}

func (l *md028Linter) Finalize() []value.Violation { return l.violations }
