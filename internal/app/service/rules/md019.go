package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD019() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD019", "no-multiple-space-atx"},
		"Multiple spaces after hash on atx style heading",
		[]string{"headings", "atx", "whitespace"},
		entity.RuleTypeToken,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md019Linter{}
		},
	)
}

type md019Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md019Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeATXHeading {
		return
	}
	spaces, _ := node.GetIntProperty("spacesAfterHash")
	if spaces > 1 {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD019", "no-multiple-space-atx"},
			"Multiple spaces after hash on atx style heading",
			nil, node.StartLine(), node.StartColumn(),
		))
	}
}

func (l *md019Linter) Finalize() []value.Violation { return l.violations }
