package rules

import (
	"regexp"

	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

var md011Pattern = regexp.MustCompile(`\(([^()\s][^()]*)\)\[([^\[\]]*)\]`)

func MD011() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD011", "no-reversed-links"},
		"Reversed link syntax",
		[]string{"links"},
		entity.RuleTypeLine,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md011Linter{}
		},
	)
}

type md011Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md011Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InCode() {
		return
	}
	masked := analysis.MaskInlineCode(text)
	for _, m := range md011Pattern.FindAllStringSubmatchIndex(masked, -1) {
		textPart := masked[m[2]:m[3]]
		if len(textPart) > 1 && textPart[0] == '^' {
			continue // footnote reference, e.g. (^note)[...]
		}
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD011", "no-reversed-links"},
			"Reversed link syntax",
			nil, lineNumber, m[0]+1,
		).WithDetail("(text)[url] instead of [text](url)"))
	}
}

func (l *md011Linter) Finalize() []value.Violation { return l.violations }
