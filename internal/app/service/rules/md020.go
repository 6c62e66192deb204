package rules

import (
	"regexp"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

var (
	md020Candidate         = regexp.MustCompile(`^#{1,6}.*#+\s*$`)
	md020MissingOpenSpace  = regexp.MustCompile(`^#{1,6}[^#\s]`)
	md020MissingCloseSpace = regexp.MustCompile(`\S#+\s*$`)
)

func MD020() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD020", "no-missing-space-closed-atx"},
		"No space inside hashes on closed atx style heading",
		[]string{"headings", "atx_closed"},
		entity.RuleTypeLine,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md020Linter{}
		},
	)
}

type md020Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md020Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InCode() || mask.InHTMLBlock || mask.InFrontMatter {
		return
	}
	// A closed-ATX candidate: starts with hashes and ends with hashes.
	if !md020Candidate.MatchString(text) {
		return
	}
	if md020MissingOpenSpace.MatchString(text) || md020MissingCloseSpace.MatchString(text) {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD020", "no-missing-space-closed-atx"},
			"No space inside hashes on closed atx style heading",
			nil, lineNumber, 1,
		))
	}
}

func (l *md020Linter) Finalize() []value.Violation { return l.violations }
