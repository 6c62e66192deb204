package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD023() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD023", "heading-start-left"},
		"Headings must start at the beginning of the line",
		[]string{"headings", "spaces"},
		entity.RuleTypeToken,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md023Linter{}
		},
	)
}

type md023Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md023Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeATXHeading && node.Type != value.TokenTypeSetextHeading {
		return
	}
	inBlockquote, _ := node.GetBoolProperty("inBlockquote")
	if inBlockquote {
		return
	}
	if node.StartColumn() != 1 {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD023", "heading-start-left"},
			"Headings must start at the beginning of the line",
			nil, node.StartLine(), node.StartColumn(),
		))
	}
}

func (l *md023Linter) Finalize() []value.Violation { return l.violations }
