package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD029() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD029", "ol-prefix"},
		"Ordered list item prefix",
		[]string{"ol"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"style": "one_or_ordered"},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md029Linter{style: value.GetStringOption(settings, "style", "one_or_ordered")}
		},
	)
}

type md029Linter struct {
	entity.BaseLinter
	style      string
	violations []value.Violation
}

func (l *md029Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeList {
		return
	}
	items := node.FindChildrenByType(value.TokenTypeListItem)
	if len(items) == 0 {
		return
	}
	ordered, _ := items[0].GetBoolProperty("ordered")
	if !ordered {
		return
	}

	style := l.style
	if style == "one_or_ordered" {
		style = "ordered"
		if len(items) >= 2 {
			n0, _ := items[0].GetIntProperty("orderedNumber")
			n1, _ := items[1].GetIntProperty("orderedNumber")
			if n0 == n1 {
				style = "one"
			}
		}
	}

	for i, item := range items {
		n, _ := item.GetIntProperty("orderedNumber")
		var expected int
		switch style {
		case "one":
			expected, _ = items[0].GetIntProperty("orderedNumber")
		case "zero":
			expected = 0
		default: // ordered
			first, _ := items[0].GetIntProperty("orderedNumber")
			expected = first + i
		}
		if n != expected {
			l.violations = append(l.violations, *value.NewViolation(
				[]string{"MD029", "ol-prefix"},
				"Ordered list item prefix",
				nil, item.StartLine(), item.StartColumn(),
			).WithDetail("Expected: "+itoa(expected)+"; Actual: "+itoa(n)))
		}
	}
}

func (l *md029Linter) Finalize() []value.Violation { return l.violations }
