package rules

import (
	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD001() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD001", "heading-increment"},
		"Heading levels should only increment by one level at a time",
		[]string{"headings"},
		entity.RuleTypeToken,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md001Linter{}
		},
	)
}

type md001Linter struct {
	entity.BaseLinter
	lastLevel  int
	violations []value.Violation
}

func (l *md001Linter) OnNode(node value.Token) {
	level := analysis.HeadingLevel(node)
	if level == 0 {
		return
	}
	if l.lastLevel != 0 && level > l.lastLevel+1 {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD001", "heading-increment"},
			"Heading levels should only increment by one level at a time",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail(formatLevels(l.lastLevel, level)))
	}
	l.lastLevel = level
}

func (l *md001Linter) Finalize() []value.Violation { return l.violations }

func formatLevels(expected, actual int) string {
	return "Expected: h" + itoa(expected+1) + "; Actual: h" + itoa(actual)
}
