package rules

import (
	"regexp"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

var md027Pattern = regexp.MustCompile(`^(\s*>)+(  +)\S`)

func MD027() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD027", "no-multiple-space-blockquote"},
		"Multiple spaces after blockquote symbol",
		[]string{"blockquote", "whitespace", "indentation"},
		entity.RuleTypeLine,
		value.SeverityError,
		map[string]interface{}{"list_items": true},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md027Linter{listItems: value.GetBoolOption(settings, "list_items", true)}
		},
	)
}

type md027Linter struct {
	entity.BaseLinter
	listItems  bool
	violations []value.Violation
}

func (l *md027Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InFencedCode || mask.InFrontMatter {
		return
	}
	loc := md027Pattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return
	}
	if !l.listItems && isListItemContinuation(text) {
		return
	}
	l.violations = append(l.violations, *value.NewViolation(
		[]string{"MD027", "no-multiple-space-blockquote"},
		"Multiple spaces after blockquote symbol",
		nil, lineNumber, loc[2]+1,
	))
}

func isListItemContinuation(text string) bool {
	stripped := text
	for len(stripped) > 0 && (stripped[0] == '>' || stripped[0] == ' ') {
		stripped = stripped[1:]
	}
	return len(stripped) > 0 && (stripped[0] == '-' || stripped[0] == '*' || stripped[0] == '+')
}

func (l *md027Linter) Finalize() []value.Violation { return l.violations }
