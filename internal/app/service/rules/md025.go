package rules

import (
	"regexp"

	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD025() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD025", "single-h1", "single-title"},
		"Multiple top-level headings in the same document",
		[]string{"headings"},
		entity.RuleTypeDocument,
		value.SeverityError,
		map[string]interface{}{"level": 1, "front_matter_title": `^\s*title\s*[:=]`},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			pattern := value.GetStringOption(settings, "front_matter_title", `^\s*title\s*[:=]`)
			re, _ := regexp.Compile(pattern)
			return &md025Linter{
				ctx:       ctx,
				level:     value.GetIntOption(settings, "level", 1),
				titleRe:   re,
			}
		},
	)
}

type md025Linter struct {
	entity.BaseLinter
	ctx        entity.AnalysisContext
	level      int
	titleRe    *regexp.Regexp
	seenOne    bool
	violations []value.Violation
}

func (l *md025Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeATXHeading && node.Type != value.TokenTypeSetextHeading {
		return
	}
	if analysis.HeadingLevel(node) != l.level {
		return
	}

	frontMatterHasTitle := false
	if keys, ok := l.ctx.FrontMatterKeys(); ok && l.titleRe != nil {
		for _, k := range keys {
			if l.titleRe.MatchString(k) {
				frontMatterHasTitle = true
				break
			}
		}
	}

	if l.seenOne || frontMatterHasTitle {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD025", "single-h1"},
			"Multiple top-level headings in the same document",
			nil, node.StartLine(), node.StartColumn(),
		))
		return
	}
	l.seenOne = true
}

func (l *md025Linter) Finalize() []value.Violation { return l.violations }
