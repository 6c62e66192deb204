package rules

import (
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD004() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD004", "ul-style"},
		"Unordered list style should be consistent",
		[]string{"bullet", "ul"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"style": "consistent"},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md004Linter{style: value.GetStringOption(settings, "style", "consistent")}
		},
	)
}

type md004Linter struct {
	entity.BaseLinter
	style        string
	firstBullet  string          // resolved bullet for "consistent"
	perLevel     map[int]string  // resolved bullet per level for "sublist"
	violations   []value.Violation
}

func (l *md004Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeListItem {
		return
	}
	ordered, _ := node.GetBoolProperty("ordered")
	if ordered {
		return
	}
	bullet, _ := node.GetStringProperty("bulletChar")
	if bullet == "" {
		return
	}
	level, _ := node.GetIntProperty("level")

	switch l.style {
	case "sublist":
		if l.perLevel == nil {
			l.perLevel = make(map[int]string)
		}
		if expected, ok := l.perLevel[level]; ok {
			if expected != bullet {
				l.report(node, expected, bullet)
			}
		} else {
			l.perLevel[level] = bullet
		}
	case "consistent":
		if l.firstBullet == "" {
			l.firstBullet = bullet
		} else if l.firstBullet != bullet {
			l.report(node, l.firstBullet, bullet)
		}
	default:
		expected := bulletFor(l.style)
		if expected != "" && bullet != expected {
			l.report(node, expected, bullet)
		}
	}
}

func bulletFor(style string) string {
	switch style {
	case "asterisk":
		return "*"
	case "dash":
		return "-"
	case "plus":
		return "+"
	}
	return ""
}

func (l *md004Linter) report(node value.Token, expected, actual string) {
	l.violations = append(l.violations, *value.NewViolation(
		[]string{"MD004", "ul-style"},
		"Unordered list style should be consistent",
		nil, node.StartLine(), node.StartColumn(),
	).WithDetail("Expected: " + expected + "; Actual: " + actual))
}

func (l *md004Linter) Finalize() []value.Violation { return l.violations }
