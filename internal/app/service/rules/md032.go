package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD032() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD032", "blanks-around-lists"},
		"Lists should be surrounded by blank lines",
		[]string{"blank_lines", "bullet", "ul", "ol"},
		entity.RuleTypeHybrid,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md032Linter{ctx: ctx}
		},
	)
}

type md032Linter struct {
	entity.BaseLinter
	ctx        entity.AnalysisContext
	violations []value.Violation
}

func (l *md032Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeList {
		return
	}
	nested, _ := node.GetBoolProperty("nested")
	if nested {
		return
	}

	lines := l.ctx.Lines()
	start, end := node.StartLine(), node.EndLine()

	if start > 1 && strings.TrimSpace(lines[start-2]) != "" {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD032", "blanks-around-lists"},
			"Lists should be surrounded by blank lines",
			nil, start, 1,
		))
	}
	if end < len(lines) && strings.TrimSpace(lines[end]) != "" {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD032", "blanks-around-lists"},
			"Lists should be surrounded by blank lines",
			nil, end, 1,
		))
	}
}

func (l *md032Linter) Finalize() []value.Violation { return l.violations }
