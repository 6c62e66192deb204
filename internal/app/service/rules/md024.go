package rules

import (
	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD024() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD024", "no-duplicate-heading"},
		"Multiple headings with the same content",
		[]string{"headings"},
		entity.RuleTypeDocument,
		value.SeverityError,
		map[string]interface{}{"siblings_only": false, "allow_different_nesting": false},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md024Linter{
				siblingsOnly:          value.GetBoolOption(settings, "siblings_only", false),
				allowDifferentNesting: value.GetBoolOption(settings, "allow_different_nesting", false),
			}
		},
	)
}

type headingSeen struct {
	text   string
	level  int
	parent string // normalized text of the nearest enclosing heading at a lower level
}

type md024Linter struct {
	entity.BaseLinter
	siblingsOnly          bool
	allowDifferentNesting bool

	seen       []headingSeen
	stack      []headingSeen // current heading-ancestor chain, by level
	violations []value.Violation
}

func (l *md024Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeATXHeading && node.Type != value.TokenTypeSetextHeading {
		return
	}
	level := analysis.HeadingLevel(node)
	text := analysis.NormalizeHeadingText(analysis.HeadingText(node))

	for len(l.stack) > 0 && l.stack[len(l.stack)-1].level >= level {
		l.stack = l.stack[:len(l.stack)-1]
	}
	parent := ""
	if len(l.stack) > 0 {
		parent = l.stack[len(l.stack)-1].text
	}
	current := headingSeen{text: text, level: level, parent: parent}

	for _, prior := range l.seen {
		if prior.text != text {
			continue
		}
		if l.allowDifferentNesting && prior.level != level {
			continue
		}
		if l.siblingsOnly && prior.parent != parent {
			continue
		}
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD024", "no-duplicate-heading"},
			"Multiple headings with the same content",
			nil, node.StartLine(), node.StartColumn(),
		).WithMessage("Duplicate heading '"+text+"'"))
		break
	}

	l.seen = append(l.seen, current)
	l.stack = append(l.stack, current)
}

func (l *md024Linter) Finalize() []value.Violation { return l.violations }
