package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD030() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD030", "list-marker-space"},
		"Spaces after list markers",
		[]string{"ol", "ul", "whitespace"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"ul_single": 1, "ol_single": 1, "ul_multi": 1, "ol_multi": 1},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md030Linter{
				ulSingle: value.GetIntOption(settings, "ul_single", 1),
				olSingle: value.GetIntOption(settings, "ol_single", 1),
				ulMulti:  value.GetIntOption(settings, "ul_multi", 1),
				olMulti:  value.GetIntOption(settings, "ol_multi", 1),
			}
		},
	)
}

type md030Linter struct {
	entity.BaseLinter
	ulSingle, olSingle, ulMulti, olMulti int
	violations                           []value.Violation
}

func (l *md030Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeListItem {
		return
	}
	ordered, _ := node.GetBoolProperty("ordered")
	single, _ := node.GetBoolProperty("singleParagraph")
	spaces, _ := node.GetIntProperty("spacesAfterMarker")

	var expected int
	switch {
	case ordered && single:
		expected = l.olSingle
	case ordered && !single:
		expected = l.olMulti
	case !ordered && single:
		expected = l.ulSingle
	default:
		expected = l.ulMulti
	}

	if spaces != expected {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD030", "list-marker-space"},
			"Spaces after list markers",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Expected: "+itoa(expected)+"; Actual: "+itoa(spaces)))
	}
}

func (l *md030Linter) Finalize() []value.Violation { return l.violations }
