package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD055() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD055", "table-pipe-style"},
		"Table pipe style",
		[]string{"table"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"style": "consistent"},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md055Linter{style: value.GetStringOption(settings, "style", "consistent")}
		},
	)
}

type md055Linter struct {
	entity.BaseLinter
	style      string
	resolved   string
	violations []value.Violation
}

func (l *md055Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeTableRow {
		return
	}
	leading, _ := node.GetBoolProperty("leadingPipe")
	trailing, _ := node.GetBoolProperty("trailingPipe")

	actual := "no_leading_or_trailing"
	switch {
	case leading && trailing:
		actual = "leading_and_trailing"
	case leading:
		actual = "leading_only"
	case trailing:
		actual = "trailing_only"
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
			[]string{"MD055", "table-pipe-style"},
			"Table pipe style",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Expected: "+expected+"; Actual: "+actual))
	}
}

func (l *md055Linter) Finalize() []value.Violation { return l.violations }
