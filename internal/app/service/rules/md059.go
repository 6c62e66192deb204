package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

var md059GenericPhrases = []string{
	"click here",
	"here",
	"link",
	"more",
	"read more",
	"this",
}

func MD059() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD059", "descriptive-link-text"},
		"Link text should be descriptive",
		[]string{"accessibility", "links"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"prohibited_texts": md059GenericPhrases},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			prohibited := value.GetStringSliceOption(settings, "prohibited_texts")
			if len(prohibited) == 0 {
				prohibited = md059GenericPhrases
			}
			set := make(map[string]bool, len(prohibited))
			for _, p := range prohibited {
				set[strings.ToLower(p)] = true
			}
			return &md059Linter{prohibited: set}
		},
	)
}

type md059Linter struct {
	entity.BaseLinter
	prohibited map[string]bool
	violations []value.Violation
}

func (l *md059Linter) OnNode(node value.Token) {
	if !node.IsOneOfTypes(value.TokenTypeLink, value.TokenTypeLinkReference) {
		return
	}
	text := strings.ToLower(strings.TrimSpace(node.Text))
	if l.prohibited[text] {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD059", "descriptive-link-text"},
			"Link text should be descriptive",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Non-descriptive link text: \""+strings.TrimSpace(node.Text)+"\""))
	}
}

func (l *md059Linter) Finalize() []value.Violation { return l.violations }
