package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD036() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD036", "no-emphasis-as-heading"},
		"Emphasis used instead of a heading",
		[]string{"headings", "emphasis"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"punctuation": ".,;:!?。,;:!?"},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md036Linter{punctuation: value.GetStringOption(settings, "punctuation", ".,;:!?。,;:!?")}
		},
	)
}

type md036Linter struct {
	entity.BaseLinter
	punctuation string
	violations  []value.Violation
}

func (l *md036Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeParagraph {
		return
	}
	if len(node.Children) != 1 {
		return
	}
	child := node.Children[0]
	if child.Type != value.TokenTypeEmphasis && child.Type != value.TokenTypeStrong {
		return
	}
	if child.StartLine() != child.EndLine() {
		return // multi-line emphasis spans are exempt
	}
	for _, gc := range child.Children {
		if gc.Type == value.TokenTypeLink {
			return
		}
	}

	text := strings.TrimSpace(analysis.InlineText(child))
	if text == "" {
		return
	}
	if last, _ := utf8.DecodeLastRuneInString(text); strings.ContainsRune(l.punctuation, last) {
		return
	}

	l.violations = append(l.violations, *value.NewViolation(
		[]string{"MD036", "no-emphasis-as-heading"},
		"Emphasis used instead of a heading",
		nil, node.StartLine(), node.StartColumn(),
	))
}

func (l *md036Linter) Finalize() []value.Violation { return l.violations }
