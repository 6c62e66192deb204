package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD031() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD031", "blanks-around-fences"},
		"Fenced code blocks should be surrounded by blank lines",
		[]string{"code", "blank_lines"},
		entity.RuleTypeHybrid,
		value.SeverityError,
		map[string]interface{}{"list_items": true},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md031Linter{ctx: ctx, listItems: value.GetBoolOption(settings, "list_items", true)}
		},
	)
}

type md031Linter struct {
	entity.BaseLinter
	ctx        entity.AnalysisContext
	listItems  bool
	violations []value.Violation
}

func (l *md031Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeCodeFenced {
		return
	}
	inList, _ := node.GetBoolProperty("inListItem")
	if inList && !l.listItems {
		return
	}

	lines := l.ctx.Lines()
	start, end := node.StartLine(), node.EndLine()

	if start > 1 && isBlockTextLine(lines, start-1) {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD031", "blanks-around-fences"},
			"Fenced code blocks should be surrounded by blank lines",
			nil, start, 1,
		))
	}
	if end < len(lines) && isBlockTextLine(lines, end+1) {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD031", "blanks-around-fences"},
			"Fenced code blocks should be surrounded by blank lines",
			nil, end, 1,
		))
	}
}

func isBlockTextLine(lines []string, line int) bool {
	if line < 1 || line > len(lines) {
		return false
	}
	return strings.TrimSpace(lines[line-1]) != ""
}

func (l *md031Linter) Finalize() []value.Violation { return l.violations }
