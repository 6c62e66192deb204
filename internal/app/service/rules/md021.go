package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD021() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD021", "no-multiple-space-closed-atx"},
		"Multiple spaces inside hashes on closed atx style heading",
		[]string{"headings", "atx_closed", "whitespace"},
		entity.RuleTypeToken,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md021Linter{}
		},
	)
}

type md021Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md021Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeATXHeading {
		return
	}
	closed, _ := node.GetBoolProperty("closed")
	if !closed {
		return
	}
	openSpaces, _ := node.GetIntProperty("spacesAfterHash")
	closeSpaces, _ := node.GetIntProperty("spacesBeforeClose")
	if openSpaces > 1 || closeSpaces > 1 {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD021", "no-multiple-space-closed-atx"},
			"Multiple spaces inside hashes on closed atx style heading",
			nil, node.StartLine(), node.StartColumn(),
		))
	}
}

func (l *md021Linter) Finalize() []value.Violation { return l.violations }
