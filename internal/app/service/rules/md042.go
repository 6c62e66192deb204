package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD042() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD042", "no-empty-links"},
		"No empty links",
		[]string{"links"},
		entity.RuleTypeToken,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md042Linter{}
		},
	)
}

type md042Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md042Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeLink {
		return
	}
	dest, hasDest := node.GetStringProperty("destination")
	title, _ := node.GetStringProperty("title")
	if !hasDest && title != "" {
		return // title-only link is permitted
	}
	trimmed := strings.TrimSpace(dest)
	if trimmed == "" || trimmed == "#" {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD042", "no-empty-links"},
			"No empty links",
			nil, node.StartLine(), node.StartColumn(),
		))
	}
}

func (l *md042Linter) Finalize() []value.Violation { return l.violations }
