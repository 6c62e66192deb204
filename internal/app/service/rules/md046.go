package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD046() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD046", "code-block-style"},
		"Code block style",
		[]string{"code"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"style": "consistent"},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md046Linter{style: value.GetStringOption(settings, "style", "consistent")}
		},
	)
}

type md046Linter struct {
	entity.BaseLinter
	style      string
	resolved   string
	violations []value.Violation
}

func (l *md046Linter) OnNode(node value.Token) {
	var actual string
	switch node.Type {
	case value.TokenTypeCodeFenced:
		actual = "fenced"
	case value.TokenTypeCodeIndented:
		actual = "indented"
	default:
		return
	}

	expected := l.style
	if expected == "consistent" {
		if l.resolved == "" {
			l.resolved = actual
		}
		expected = l.resolved
	}

	if actual != expected {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD046", "code-block-style"},
			"Code block style",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Expected: "+expected+"; Actual: "+actual))
	}
}

func (l *md046Linter) Finalize() []value.Violation { return l.violations }
