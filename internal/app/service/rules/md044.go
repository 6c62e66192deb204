package rules

import (
	"regexp"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD044() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD044", "proper-names"},
		"Proper names should have the correct capitalization",
		[]string{"spelling"},
		entity.RuleTypeSpecial,
		value.SeverityError,
		map[string]interface{}{"names": []string{}, "code_blocks": true, "html_elements": true},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			names := value.GetStringSliceOption(settings, "names")
			patterns := make([]*regexp.Regexp, len(names))
			for i, name := range names {
				patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
			}
			return &md044Linter{
				names:        names,
				patterns:     patterns,
				codeBlocks:   value.GetBoolOption(settings, "code_blocks", true),
				htmlElements: value.GetBoolOption(settings, "html_elements", true),
			}
		},
	)
}

type md044Linter struct {
	entity.BaseLinter
	names        []string
	patterns     []*regexp.Regexp
	codeBlocks   bool
	htmlElements bool
	violations   []value.Violation
}

func (l *md044Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InCode() && !l.codeBlocks {
		return
	}
	if mask.InHTMLBlock && !l.htmlElements {
		return
	}
	for i, name := range l.names {
		for _, m := range l.patterns[i].FindAllStringIndex(text, -1) {
			found := text[m[0]:m[1]]
			if found == name {
				continue
			}
			l.violations = append(l.violations, *value.NewViolation(
				[]string{"MD044", "proper-names"},
				"Proper names should have the correct capitalization",
				nil, lineNumber, m[0]+1,
			).WithDetail("Expected: "+name+"; Actual: "+found))
		}
	}
}

func (l *md044Linter) Finalize() []value.Violation { return l.violations }
