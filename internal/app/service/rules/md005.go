package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD005() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD005", "list-indent"},
		"Inconsistent indentation for list items at the same level",
		[]string{"bullet", "ul", "indentation"},
		entity.RuleTypeToken,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md005Linter{byList: make(map[int][]value.Token)}
		},
	)
}

// md005Linter groups list items by their containing list (identified by
// the list node's start line) and, on Finalize, compares indentation
// within each list.
type md005Linter struct {
	entity.BaseLinter
	byList     map[int][]value.Token
	violations []value.Violation
}

func (l *md005Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeList {
		return
	}
	listKey := node.StartLine()
	for _, item := range node.FindChildrenByType(value.TokenTypeListItem) {
		l.byList[listKey] = append(l.byList[listKey], item)
	}
}

func (l *md005Linter) Finalize() []value.Violation {
	for _, items := range l.byList {
		if len(items) < 2 {
			continue
		}
		ordered, _ := items[0].GetBoolProperty("ordered")
		firstIndent, _ := items[0].GetIntProperty("markerColumn")

		rightAligned := false
		if ordered {
			last, _ := items[len(items)-1].GetIntProperty("markerColumn")
			rightAligned = last != firstIndent
		}

		for i, item := range items {
			indent, _ := item.GetIntProperty("markerColumn")
			expected := firstIndent
			if ordered && rightAligned {
				continue // right-aligned ordered lists vary indent by design
			}
			_ = i
			if indent != expected {
				l.violations = append(l.violations, *value.NewViolation(
					[]string{"MD005", "list-indent"},
					"Inconsistent indentation for list items at the same level",
					nil, item.StartLine(), item.StartColumn(),
				).WithDetail("Expected: "+itoa(expected)+"; Actual: "+itoa(indent)))
			}
		}
	}
	return l.violations
}
