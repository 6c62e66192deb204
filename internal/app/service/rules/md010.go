package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD010() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD010", "no-hard-tabs"},
		"Hard tabs",
		[]string{"whitespace", "hard_tab"},
		entity.RuleTypeLine,
		value.SeverityError,
		map[string]interface{}{"code_blocks": true, "spaces_per_tab": 1, "ignore_code_languages": []string{}},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md010Linter{
				codeBlocks:   value.GetBoolOption(settings, "code_blocks", true),
				spacesPerTab: value.GetIntOption(settings, "spaces_per_tab", 1),
				ignoreLangs:  value.GetStringSliceOption(settings, "ignore_code_languages"),
			}
		},
	)
}

type md010Linter struct {
	entity.BaseLinter
	codeBlocks   bool
	spacesPerTab int
	ignoreLangs  []string
	violations   []value.Violation
}

func (l *md010Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InCode() && !l.codeBlocks {
		return
	}
	col := strings.IndexByte(text, '\t')
	if col < 0 {
		return
	}
	l.violations = append(l.violations, *value.NewViolation(
		[]string{"MD010", "no-hard-tabs"},
		"Hard tabs",
		nil, lineNumber, col+1,
	))
}

func (l *md010Linter) Finalize() []value.Violation { return l.violations }
