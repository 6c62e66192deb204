package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD058() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD058", "blanks-around-tables"},
		"Tables should be surrounded by blank lines",
		[]string{"table", "blank_lines"},
		entity.RuleTypeHybrid,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md058Linter{ctx: ctx}
		},
	)
}

type md058Linter struct {
	entity.BaseLinter
	ctx        entity.AnalysisContext
	violations []value.Violation
}

func (l *md058Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeTable {
		return
	}
	lines := l.ctx.Lines()
	start, end := node.StartLine(), node.EndLine()

	if start > 1 && strings.TrimSpace(lines[start-2]) != "" {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD058", "blanks-around-tables"},
			"Tables should be surrounded by blank lines",
			nil, start, 1,
		))
	}
	if end < len(lines) && strings.TrimSpace(lines[end]) != "" {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD058", "blanks-around-tables"},
			"Tables should be surrounded by blank lines",
			nil, end, 1,
		))
	}
}

func (l *md058Linter) Finalize() []value.Violation { return l.violations }
