package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD049() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD049", "emphasis-style"},
		"Emphasis style should be consistent",
		[]string{"emphasis"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"style": "consistent"},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md049Linter{style: value.GetStringOption(settings, "style", "consistent")}
		},
	)
}

type md049Linter struct {
	entity.BaseLinter
	style      string
	resolved   string
	violations []value.Violation
}

func (l *md049Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeEmphasis {
		return
	}
	intraword, _ := node.GetBoolProperty("intraword")
	marker, _ := node.GetStringProperty("marker")
	actual := "asterisk"
	if marker == "_" {
		actual = "underscore"
	}
	if intraword && actual == "underscore" {
		return // intra-word underscore emphasis is exempt
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
			[]string{"MD049", "emphasis-style"},
			"Emphasis style should be consistent",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Expected: "+expected+"; Actual: "+actual))
	}
}

func (l *md049Linter) Finalize() []value.Violation { return l.violations }
