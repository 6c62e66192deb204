package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD054() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD054", "link-image-style"},
		"Link and image style",
		[]string{"links", "images"},
		entity.RuleTypeToken,
		value.SeverityError,
		map[string]interface{}{
			"autolink":     true,
			"inline":       true,
			"full":         true,
			"collapsed":    true,
			"shortcut":     true,
			"url_inline":   true,
		},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md054Linter{
				enabled: map[string]bool{
					"autolink":   value.GetBoolOption(settings, "autolink", true),
					"inline":     value.GetBoolOption(settings, "inline", true),
					"full":       value.GetBoolOption(settings, "full", true),
					"collapsed":  value.GetBoolOption(settings, "collapsed", true),
					"shortcut":   value.GetBoolOption(settings, "shortcut", true),
					"url_inline": value.GetBoolOption(settings, "url_inline", true),
				},
			}
		},
	)
}

type md054Linter struct {
	entity.BaseLinter
	enabled    map[string]bool
	violations []value.Violation
}

func (l *md054Linter) OnNode(node value.Token) {
	var style string
	switch node.Type {
	case value.TokenTypeAutolink:
		style = "autolink"
	case value.TokenTypeLink, value.TokenTypeImage:
		style = "inline"
		if node.Type == value.TokenTypeLink {
			dest, _ := node.GetStringProperty("destination")
			text := strings.TrimSpace(node.Text)
			if text == strings.TrimSpace(dest) {
				style = "url_inline"
			}
		}
	case value.TokenTypeLinkReference, value.TokenTypeImageReference:
		label, _ := node.GetStringProperty("label")
		refForm, _ := node.GetStringProperty("referenceForm")
		switch refForm {
		case "collapsed":
			style = "collapsed"
		case "shortcut":
			style = "shortcut"
		default:
			if label == "" {
				style = "shortcut"
			} else {
				style = "full"
			}
		}
	default:
		return
	}

	if !l.enabled[style] {
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD054", "link-image-style"},
			"Link and image style",
			nil, node.StartLine(), node.StartColumn(),
		).WithDetail("Disallowed link/image style: "+style))
	}
}

func (l *md054Linter) Finalize() []value.Violation { return l.violations }
