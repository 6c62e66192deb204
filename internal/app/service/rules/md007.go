package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD007() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD007", "ul-indent"},
		"Unordered list indentation",
		[]string{"bullet", "ul", "indentation"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"indent": 2, "start_indented": false, "start_indent": 2},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md007Linter{
				indent:        value.GetIntOption(settings, "indent", 2),
				startIndented: value.GetBoolOption(settings, "start_indented", false),
				startIndent:   value.GetIntOption(settings, "start_indent", 2),
			}
		},
	)
}

type md007Linter struct {
	entity.BaseLinter
	indent        int
	startIndented bool
	startIndent   int
	violations    []value.Violation
}

func (l *md007Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeListItem {
		return
	}
	ordered, _ := node.GetBoolProperty("ordered")
	if ordered {
		return
	}
	level, _ := node.GetIntProperty("level") // 1-based nesting depth
	indent, _ := node.GetIntProperty("markerColumn")
	indent-- // markerColumn is 1-based; expected is a 0-based offset

	var expected int
	if level <= 1 {
		if l.startIndented {
			expected = l.startIndent
		} else {
			expected = 0
		}
	} else {
		base := 0
		if l.startIndented {
			base = l.startIndent
		}
		expected = base + (level-1)*l.indent
	}

	if indent != expected {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD007", "ul-indent"},
			"Unordered list indentation",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Expected: "+itoa(expected)+"; Actual: "+itoa(indent)))
	}
}

func (l *md007Linter) Finalize() []value.Violation { return l.violations }
