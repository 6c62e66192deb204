package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD056() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD056", "table-column-count"},
		"Table column count",
		[]string{"table"},
		entity.RuleTypeToken,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md056Linter{}
		},
	)
}

type md056Linter struct {
	entity.BaseLinter
	headerCount int
	violations  []value.Violation
}

func (l *md056Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeTableRow {
		return
	}
	count := len(node.FindChildrenByType(value.TokenTypeTableCell)) + len(node.FindChildrenByType(value.TokenTypeTableHeaderCell))

	isHeader, _ := node.GetBoolProperty("header")
	if isHeader || l.headerCount == 0 {
		l.headerCount = count
		return
	}

	if count != l.headerCount {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD056", "table-column-count"},
			"Table column count",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Expected: "+itoa(l.headerCount)+" columns; Actual: "+itoa(count)+" columns"))
	}
}

func (l *md056Linter) Finalize() []value.Violation { return l.violations }
