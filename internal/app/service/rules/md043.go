package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD043() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD043", "required-headings"},
		"Required heading structure",
		[]string{"headings"},
		entity.RuleTypeDocument,
		value.SeverityError,
		map[string]interface{}{"headings": []string{}, "match_case": false},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md043Linter{
				required:  value.GetStringSliceOption(settings, "headings"),
				matchCase: value.GetBoolOption(settings, "match_case", false),
			}
		},
	)
}

type md043Linter struct {
	entity.BaseLinter
	required   []string
	matchCase  bool
	actual     []value.Token
	violations []value.Violation
}

func (l *md043Linter) OnNode(node value.Token) {
	if node.Type == value.TokenTypeATXHeading || node.Type == value.TokenTypeSetextHeading {
		l.actual = append(l.actual, node)
	}
}

func (l *md043Linter) Finalize() []value.Violation {
	if len(l.required) == 0 {
		return nil
	}
	texts := make([]string, len(l.actual))
	for i, h := range l.actual {
		texts[i] = analysis.HeadingText(h)
	}
	if !matchHeadingPattern(l.required, texts, l.matchCase) {
		var line, col int = 1, 1
		if len(l.actual) > 0 {
			line, col = l.actual[0].StartLine(), l.actual[0].StartColumn()
		}
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD043", "required-headings"},
			"Required heading structure",
			nil, line, col,
		))
	}
	return l.violations
}

// matchHeadingPattern checks whether actual headings satisfy the
// pattern/wildcard sequence in required ("*" = zero or more, "+" = one or
// more, "?" = exactly one, anything else = literal match).
func matchHeadingPattern(pattern, actual []string, matchCase bool) bool {
	var memo map[[2]int]bool
	memo = make(map[[2]int]bool)
	var match func(pi, ai int) bool
	match = func(pi, ai int) bool {
		key := [2]int{pi, ai}
		if v, ok := memo[key]; ok {
			return v
		}
		var result bool
		switch {
		case pi == len(pattern):
			result = ai == len(actual)
		case pattern[pi] == "*":
			result = match(pi+1, ai) || (ai < len(actual) && match(pi, ai+1))
		case pattern[pi] == "+":
			result = ai < len(actual) && (match(pi+1, ai+1) || match(pi, ai+1))
		case pattern[pi] == "?":
			result = ai < len(actual) && match(pi+1, ai+1)
		default:
			if ai >= len(actual) {
				result = false
			} else if matchCase {
				result = pattern[pi] == actual[ai] && match(pi+1, ai+1)
			} else {
				result = strings.EqualFold(pattern[pi], actual[ai]) && match(pi+1, ai+1)
			}
		}
		memo[key] = result
		return result
	}
	return match(0, 0)
}
