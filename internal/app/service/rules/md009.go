package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD009() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD009", "no-trailing-spaces"},
		"Trailing spaces",
		[]string{"whitespace"},
		entity.RuleTypeLine,
		value.SeverityError,
		map[string]interface{}{"br_spaces": 2, "list_item_empty_lines": false, "strict": false},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md009Linter{
				brSpaces:           value.GetIntOption(settings, "br_spaces", 2),
				listItemEmptyLines: value.GetBoolOption(settings, "list_item_empty_lines", false),
				strict:             value.GetBoolOption(settings, "strict", false),
			}
		},
	)
}

type md009Linter struct {
	entity.BaseLinter
	brSpaces           int
	listItemEmptyLines bool
	strict             bool
	violations         []value.Violation
}

func (l *md009Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InCode() || mask.InFrontMatter {
		return
	}
	trimmed := strings.TrimRight(text, " \t")
	trailing := len(text) - len(trimmed)
	if trailing == 0 {
		return
	}

	if strings.TrimSpace(text) == "" {
		if l.listItemEmptyLines {
			return
		}
	} else if !l.strict && l.brSpaces >= 2 && trailing == l.brSpaces && !strings.HasSuffix(text, "\t") {
		return // exactly br_spaces trailing spaces: an intentional hard break
	}

	l.violations = append(l.violations, *value.NewViolation(
		[]string{"MD009", "no-trailing-spaces"},
		"Trailing spaces",
		nil, lineNumber, len(trimmed)+1,
	).WithDetail("Expected: 0 or "+itoa(l.brSpaces)+"; Actual: "+itoa(trailing)))
}

func (l *md009Linter) Finalize() []value.Violation { return l.violations }
