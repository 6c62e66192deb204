package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD035() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD035", "hr-style"},
		"Horizontal rule style",
		[]string{"hr"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"style": "consistent"},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md035Linter{style: value.GetStringOption(settings, "style", "consistent")}
		},
	)
}

type md035Linter struct {
	entity.BaseLinter
	style      string
	resolved   string
	violations []value.Violation
}

func (l *md035Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeThematicBreak {
		return
	}
	raw, _ := node.GetStringProperty("raw")
	if raw == "" {
		raw = node.Text
	}

	expected := l.style
	if expected == "consistent" {
		if l.resolved == "" {
			l.resolved = raw
		}
		expected = l.resolved
	}

	if raw != expected {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD035", "hr-style"},
			"Horizontal rule style",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Expected: "+expected+"; Actual: "+raw))
	}
}

func (l *md035Linter) Finalize() []value.Violation { return l.violations }
