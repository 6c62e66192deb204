package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD045() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD045", "no-alt-text"},
		"Images should have alternate text (alt text)",
		[]string{"accessibility", "images"},
		entity.RuleTypeToken,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md045Linter{}
		},
	)
}

type md045Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md045Linter) OnNode(node value.Token) {
	switch node.Type {
	case value.TokenTypeImage, value.TokenTypeImageReference:
		alt, _ := node.GetStringProperty("alt")
		if strings.TrimSpace(alt) == "" {
			l.violations = append(l.violations, *value.NewViolation(
				[]string{"MD045", "no-alt-text"},
				"Images should have alternate text (alt text)",
				nil, node.StartLine(), node.StartColumn(),
			))
		}
	case value.TokenTypeHTMLFlow, value.TokenTypeRawHTML:
		tag, _ := node.GetStringProperty("tagName")
		if !strings.EqualFold(tag, "img") {
			return
		}
		attrs, _ := node.GetProperty("attributes")
		attrMap, _ := attrs.(map[string]string)
		if attrMap["aria-hidden"] == "true" {
			return
		}
		if _, hasAlt := attrMap["alt"]; hasAlt {
			return
		}
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD045", "no-alt-text"},
			"Images should have alternate text (alt text)",
			nil, node.StartLine(), node.StartColumn(),
		))
	}
}

func (l *md045Linter) Finalize() []value.Violation { return l.violations }
