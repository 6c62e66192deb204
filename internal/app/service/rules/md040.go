package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD040() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD040", "fenced-code-language"},
		"Fenced code blocks should have a language specified",
		[]string{"code", "language"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{"allowed_languages": []string{}, "language_only": false},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md040Linter{
				allowed:      value.GetStringSliceOption(settings, "allowed_languages"),
				languageOnly: value.GetBoolOption(settings, "language_only", false),
			}
		},
	)
}

type md040Linter struct {
	entity.BaseLinter
	allowed      []string
	languageOnly bool
	violations   []value.Violation
}

func (l *md040Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeCodeFenced {
		return
	}
	info, _ := node.GetStringProperty("info")
	lang, _ := node.GetStringProperty("language")

	if lang == "" {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD040", "fenced-code-language"},
			"Fenced code blocks should have a language specified",
			nil, node.StartLine(), node.StartColumn(),
		))
		return
	}
	if len(l.allowed) > 0 && !contains(l.allowed, lang) {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD040", "fenced-code-language"},
			"Fenced code blocks should have a language specified",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Language not in allowed list: "+lang))
		return
	}
	if l.languageOnly && strings.TrimSpace(info) != lang {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD040", "fenced-code-language"},
			"Fenced code blocks should have a language specified",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Additional info string not permitted"))
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

func (l *md040Linter) Finalize() []value.Violation { return l.violations }
