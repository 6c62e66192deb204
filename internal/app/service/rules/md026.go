package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD026() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD026", "no-trailing-punctuation"},
		"Trailing punctuation in heading",
		[]string{"headings"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"punctuation": ".,;:!。,;:!"},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md026Linter{punctuation: value.GetStringOption(settings, "punctuation", ".,;:!。,;:!")}
		},
	)
}

type md026Linter struct {
	entity.BaseLinter
	punctuation string
	violations  []value.Violation
}

func (l *md026Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeATXHeading && node.Type != value.TokenTypeSetextHeading {
		return
	}
	text := strings.TrimRight(analysis.HeadingText(node), " \t")
	if text == "" {
		return
	}
	// An HTML entity at the end (e.g. "&hellip;") doesn't count as
	// punctuation, even though it ends in ';'.
	if strings.HasSuffix(text, ";") {
		if amp := strings.LastIndexByte(text, '&'); amp >= 0 && !strings.ContainsAny(text[amp:], " \t") {
			return
		}
	}
	last, _ := utf8.DecodeLastRuneInString(text)
	if strings.ContainsRune(l.punctuation, last) {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD026", "no-trailing-punctuation"},
			"Trailing punctuation in heading",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Punctuation: '"+string(last)+"'"))
	}
}

func (l *md026Linter) Finalize() []value.Violation { return l.violations }
