package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD050() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD050", "strong-style"},
		"Strong style should be consistent",
		[]string{"emphasis"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"style": "consistent"},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md050Linter{style: value.GetStringOption(settings, "style", "consistent")}
		},
	)
}

type md050Linter struct {
	entity.BaseLinter
	style      string
	resolved   string
	violations []value.Violation
}

func (l *md050Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeStrong {
		return
	}
	marker, _ := node.GetStringProperty("marker")
	actual := "asterisk"
	if marker == "_" {
		actual = "underscore"
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
			[]string{"MD050", "strong-style"},
			"Strong style should be consistent",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Expected: "+expected+"; Actual: "+actual))
	}
}

func (l *md050Linter) Finalize() []value.Violation { return l.violations }
