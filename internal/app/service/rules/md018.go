package rules

import (
	"regexp"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

var md018Pattern = regexp.MustCompile(`^#{1,6}[^#\s]`)

func MD018() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD018", "no-missing-space-atx"},
		"No space after hash on atx style heading",
		[]string{"headings", "atx"},
		entity.RuleTypeLine,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md018Linter{}
		},
	)
}

type md018Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md018Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InCode() || mask.InHTMLBlock || mask.InFrontMatter {
		return
	}
	if md018Pattern.MatchString(text) {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD018", "no-missing-space-atx"},
			"No space after hash on atx style heading",
			nil, lineNumber, 1,
		))
	}
}

func (l *md018Linter) Finalize() []value.Violation { return l.violations }
