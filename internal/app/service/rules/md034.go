package rules

import (
	"regexp"

	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

var md034URLPattern = regexp.MustCompile(`\b(?:https?|ftp)://[^\s<>\)\]]+|\b[\w.+-]+@[\w-]+\.[\w.-]+\b`)

func MD034() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD034", "no-bare-urls"},
		"Bare URL used",
		[]string{"links", "url"},
		entity.RuleTypeLine,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md034Linter{}
		},
	)
}

type md034Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md034Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InCode() {
		return
	}
	masked := analysis.MaskInlineCode(text)
	angles := analysis.AngleAutolinkRanges(masked)

	for _, m := range md034URLPattern.FindAllStringIndex(masked, -1) {
		if withinAny(m[0], angles) {
			continue
		}
		if precededByLinkSyntax(masked, m[0]) {
			continue
		}
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD034", "no-bare-urls"},
			"Bare URL used",
			nil, lineNumber, m[0]+1,
		))
	}
}

func withinAny(pos int, ranges [][2]int) bool {
	for _, r := range ranges {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}

// precededByLinkSyntax exempts a URL that's actually a markdown link
// destination, e.g. "[text](https://example.com)".
func precededByLinkSyntax(line string, pos int) bool {
	return pos > 0 && (line[pos-1] == '(' || line[pos-1] == '"')
}

func (l *md034Linter) Finalize() []value.Violation { return l.violations }
