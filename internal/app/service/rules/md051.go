package rules

import (
	"regexp"
	"strings"

	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

var md051LineRangePattern = regexp.MustCompile(`^L\d+(C\d+-L\d+C\d+)?$`)

func MD051() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD051", "link-fragments"},
		"Link fragments should be valid",
		[]string{"links"},
		entity.RuleTypeDocument,
		value.SeverityError,
		map[string]interface{}{"ignore_case": false, "ignored_pattern": ""},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			var ignoredRe *regexp.Regexp
			if p := value.GetStringOption(settings, "ignored_pattern", ""); p != "" {
				ignoredRe, _ = regexp.Compile(p)
			}
			return &md051Linter{
				ignoreCase: value.GetBoolOption(settings, "ignore_case", false),
				ignoredRe:  ignoredRe,
				slugs:      make(map[string]bool),
				disamb:     analysis.NewSlugDisambiguator(),
			}
		},
	)
}

type md051Linter struct {
	entity.BaseLinter
	ignoreCase bool
	ignoredRe  *regexp.Regexp
	slugs      map[string]bool
	disamb     *analysis.SlugDisambiguator
	links      []value.Token
	violations []value.Violation
}

func (l *md051Linter) OnNode(node value.Token) {
	switch node.Type {
	case value.TokenTypeATXHeading, value.TokenTypeSetextHeading:
		base := analysis.GitHubSlug(analysis.HeadingText(node))
		l.slugs[l.disamb.Next(base)] = true
	case value.TokenTypeHTMLFlow, value.TokenTypeRawHTML:
		attrs, _ := node.GetProperty("attributes")
		if m, ok := attrs.(map[string]string); ok {
			if id, ok := m["id"]; ok {
				l.slugs[id] = true
			}
			if name, ok := m["name"]; ok {
				l.slugs[name] = true
			}
		}
	case value.TokenTypeLink, value.TokenTypeImage:
		l.links = append(l.links, node)
	}
}

func (l *md051Linter) Finalize() []value.Violation {
	for _, link := range l.links {
		dest, _ := link.GetStringProperty("destination")
		if !strings.HasPrefix(dest, "#") || dest == "#" {
			continue
		}
		fragment := dest[1:]
		if l.ignoredRe != nil && l.ignoredRe.MatchString(fragment) {
			continue
		}
		if fragment == "top" || md051LineRangePattern.MatchString(fragment) {
			continue
		}
		if l.matches(fragment) {
			continue
		}
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD051", "link-fragments"},
			"Link fragments should be valid",
			nil, link.StartLine(), link.StartColumn(),
		).WithDetail("Link fragment: "+dest))
	}
	return l.violations
}

func (l *md051Linter) matches(fragment string) bool {
	if l.slugs[fragment] {
		return true
	}
	if !l.ignoreCase {
		return false
	}
	for slug := range l.slugs {
		if strings.EqualFold(slug, fragment) {
			return true
		}
	}
	return false
}
