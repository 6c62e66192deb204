package rules

import (
	"regexp"

	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD041() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD041", "first-line-heading", "first-line-h1"},
		"First line in a file should be a top-level heading",
		[]string{"headings"},
		entity.RuleTypeDocument,
		value.SeverityError,
		map[string]interface{}{"level": 1, "front_matter_title": `^\s*title\s*[:=]`, "allow_preamble": false},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			pattern := value.GetStringOption(settings, "front_matter_title", `^\s*title\s*[:=]`)
			re, _ := regexp.Compile(pattern)
			return &md041Linter{
				ctx:           ctx,
				level:         value.GetIntOption(settings, "level", 1),
				titleRe:       re,
				allowPreamble: value.GetBoolOption(settings, "allow_preamble", false),
			}
		},
	)
}

type md041Linter struct {
	entity.BaseLinter
	ctx           entity.AnalysisContext
	level         int
	titleRe       *regexp.Regexp
	allowPreamble bool
	decided       bool
	violations    []value.Violation
}

func (l *md041Linter) OnNode(node value.Token) {
	if l.decided {
		return
	}
	switch node.Type {
	case value.TokenTypeDocument, value.TokenTypeFrontMatter:
		return
	}
	l.decided = true

	if keys, ok := l.ctx.FrontMatterKeys(); ok && l.titleRe != nil {
		for _, k := range keys {
			if l.titleRe.MatchString(k) {
				return // front matter supplies the title
			}
		}
	}

	if node.Type == value.TokenTypeATXHeading || node.Type == value.TokenTypeSetextHeading {
		if analysis.HeadingLevel(node) == l.level {
			return
		}
	}
	if l.allowPreamble {
		return
	}

	l.violations = append(l.violations, *value.NewViolation(
		[]string{"MD041", "first-line-heading"},
		"First line in a file should be a top-level heading",
		nil, node.StartLine(), 1,
	))
}

func (l *md041Linter) Finalize() []value.Violation { return l.violations }
