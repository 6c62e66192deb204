package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD012() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD012", "no-multiple-blanks"},
		"Multiple consecutive blank lines",
		[]string{"whitespace", "blank_lines"},
		entity.RuleTypeLine,
		value.SeverityError,
		map[string]interface{}{"maximum": 1},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md012Linter{maximum: value.GetIntOption(settings, "maximum", 1)}
		},
	)
}

type md012Linter struct {
	entity.BaseLinter
	maximum    int
	run        int
	violations []value.Violation
}

func (l *md012Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InCode() {
		l.run = 0
		return
	}
	if strings.TrimSpace(text) != "" {
		l.run = 0
		return
	}
	l.run++
	if l.run > l.maximum {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD012", "no-multiple-blanks"},
			"Multiple consecutive blank lines",
			nil, lineNumber, 1,
		).WithDetail("Expected: "+itoa(l.maximum)+"; Actual: "+itoa(l.run)))
	}
}

func (l *md012Linter) Finalize() []value.Violation { return l.violations }
