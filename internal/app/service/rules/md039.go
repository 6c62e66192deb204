package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD039() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD039", "no-space-in-links"},
		"Spaces inside link text",
		[]string{"whitespace", "links"},
		entity.RuleTypeToken,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md039Linter{}
		},
	)
}

type md039Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md039Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeLink && node.Type != value.TokenTypeLinkReference {
		return
	}
	text := analysis.InlineText(node)
	if text != strings.TrimSpace(text) && strings.TrimSpace(text) != "" {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD039", "no-space-in-links"},
			"Spaces inside link text",
			nil, node.StartLine(), node.StartColumn(),
		))
	}
}

func (l *md039Linter) Finalize() []value.Violation { return l.violations }
