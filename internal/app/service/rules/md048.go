package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD048() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD048", "code-fence-style"},
		"Code fence style",
		[]string{"code"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"style": "consistent"},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md048Linter{style: value.GetStringOption(settings, "style", "consistent")}
		},
	)
}

type md048Linter struct {
	entity.BaseLinter
	style      string
	resolved   string
	violations []value.Violation
}

func (l *md048Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeCodeFenced {
		return
	}
	fenceChar, _ := node.GetStringProperty("fenceChar")
	actual := "backtick"
	if fenceChar == "~" {
		actual = "tilde"
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
			[]string{"MD048", "code-fence-style"},
			"Code fence style",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Expected: "+expected+"; Actual: "+actual))
	}
}

func (l *md048Linter) Finalize() []value.Violation { return l.violations }
