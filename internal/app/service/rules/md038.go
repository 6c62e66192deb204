package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD038() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD038", "no-space-in-code"},
		"Spaces inside code span elements",
		[]string{"whitespace", "code"},
		entity.RuleTypeToken,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md038Linter{}
		},
	)
}

type md038Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md038Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeCodeSpan {
		return
	}
	content := node.Text
	if strings.TrimSpace(content) == "" {
		return // whitespace-only content is allowed
	}

	leading := len(content) - len(strings.TrimLeft(content, " "))
	trailing := len(content) - len(strings.TrimRight(content, " "))
	hasTab := strings.ContainsRune(content, '\t')

	if leading > 1 || trailing > 1 || hasTab {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD038", "no-space-in-code"},
			"Spaces inside code span elements",
			nil, node.StartLine(), node.StartColumn(),
		))
	}
}

func (l *md038Linter) Finalize() []value.Violation { return l.violations }
