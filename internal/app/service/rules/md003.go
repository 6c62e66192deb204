package rules

import (
	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD003() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD003", "heading-style"},
		"Heading style should be consistent",
		[]string{"headings"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"style": "consistent"},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md003Linter{style: value.GetStringOption(settings, "style", "consistent")}
		},
	)
}

type md003Linter struct {
	entity.BaseLinter
	style      string
	resolved   string // once "consistent" locks in, the effective style name
	violations []value.Violation
}

// headingNodeStyle classifies one heading node as "atx", "atx_closed", or
// "setext" — the vocabulary actually observable on a single node, before
// level is taken into account.
func headingNodeStyle(node value.Token) string {
	if node.Type == value.TokenTypeSetextHeading {
		return "setext"
	}
	if closed, _ := node.GetBoolProperty("closed"); closed {
		return "atx_closed"
	}
	return "atx"
}

// expectedStyle resolves a configured style name + heading level to the
// concrete node style MD003 requires for that heading.
func expectedStyle(style string, level int) string {
	switch style {
	case "setext_with_atx":
		if level <= 2 {
			return "setext"
		}
		return "atx"
	case "setext_with_atx_closed":
		if level <= 2 {
			return "setext"
		}
		return "atx_closed"
	default:
		return style // "atx", "atx_closed", "setext"
	}
}

func (l *md003Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeATXHeading && node.Type != value.TokenTypeSetextHeading {
		return
	}
	level := analysis.HeadingLevel(node)
	actual := headingNodeStyle(node)

	target := l.style
	if target == "consistent" {
		if l.resolved == "" {
			switch actual {
			case "setext":
				l.resolved = "setext_with_atx"
			default:
				l.resolved = actual
			}
		} else if l.resolved == "setext_with_atx" && level >= 3 {
			l.resolved = "setext_with_atx"
		}
		target = l.resolved
	}

	if expectedStyle(target, level) != actual {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD003", "heading-style"},
			"Heading style should be consistent",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Expected: " + expectedStyle(target, level) + "; Actual: " + actual))
	}
}

func (l *md003Linter) Finalize() []value.Violation { return l.violations }
