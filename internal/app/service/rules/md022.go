package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD022() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD022", "blanks-around-headings"},
		"Headings should be surrounded by blank lines",
		[]string{"headings", "blank_lines"},
		entity.RuleTypeHybrid,
		value.SeverityError,
		map[string]interface{}{"lines_above": 1, "lines_below": 1},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md022Linter{
				ctx:        ctx,
				linesAbove: value.GetIntOption(settings, "lines_above", 1),
				linesBelow: value.GetIntOption(settings, "lines_below", 1),
			}
		},
	)
}

type md022Linter struct {
	entity.BaseLinter
	ctx        entity.AnalysisContext
	linesAbove int
	linesBelow int
	violations []value.Violation
}

func (l *md022Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeATXHeading && node.Type != value.TokenTypeSetextHeading {
		return
	}
	lines := l.ctx.Lines()
	start, end := node.StartLine(), node.EndLine()

	if !countBlank(lines, start-1, -1, l.linesAbove) && start > 1 {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD022", "blanks-around-headings"},
			"Headings should be surrounded by blank lines",
			nil, start, 1,
		).WithDetail("Above"))
	}
	if !countBlank(lines, end+1, 1, l.linesBelow) && end < len(lines) {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD022", "blanks-around-headings"},
			"Headings should be surrounded by blank lines",
			nil, end, 1,
		).WithDetail("Below"))
	}
}

// countBlank reports whether `need` consecutive blank lines exist starting
// at 1-based `from`, walking in `dir` (+1 or -1).
func countBlank(lines []string, from, dir, need int) bool {
	if need <= 0 {
		return true
	}
	count := 0
	for i := from; i >= 1 && i <= len(lines) && count < need; i += dir {
		if strings.TrimSpace(lines[i-1]) != "" {
			break
		}
		count++
	}
	return count >= need
}

func (l *md022Linter) Finalize() []value.Violation { return l.violations }
