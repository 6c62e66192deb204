package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD033() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD033", "no-inline-html"},
		"Inline HTML",
		[]string{"html"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"allowed_elements": []string{}},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md033Linter{allowed: value.GetStringSliceOption(settings, "allowed_elements")}
		},
	)
}

type md033Linter struct {
	entity.BaseLinter
	allowed    []string
	violations []value.Violation
}

func (l *md033Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeHTMLFlow && node.Type != value.TokenTypeRawHTML {
		return
	}
	tag, _ := node.GetStringProperty("tagName")
	if tag == "" {
		return
	}
	for _, allowed := range l.allowed {
		if strings.EqualFold(allowed, tag) {
			return
		}
	}
	l.violations = append(l.violations, *value.NewViolation(
		[]string{"MD033", "no-inline-html"},
		"Inline HTML",
		nil, node.StartLine(), node.StartColumn(),
	).WithDetail("Element: "+tag))
}

func (l *md033Linter) Finalize() []value.Violation { return l.violations }
