package rules

import (
	"regexp"

	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

var md037Pattern = regexp.MustCompile(`(\*{1,3}|_{1,3})(\s+)\S.*?\S(\s+)(\*{1,3}|_{1,3})`)

func MD037() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD037", "no-space-in-emphasis"},
		"Spaces inside emphasis markers",
		[]string{"whitespace", "emphasis"},
		entity.RuleTypeLine,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md037Linter{}
		},
	)
}

type md037Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md037Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InCode() {
		return
	}
	masked := analysis.MaskInlineCode(text)
	if loc := md037Pattern.FindStringIndex(masked); loc != nil {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD037", "no-space-in-emphasis"},
			"Spaces inside emphasis markers",
			nil, lineNumber, loc[0]+1,
		))
	}
}

func (l *md037Linter) Finalize() []value.Violation { return l.violations }
