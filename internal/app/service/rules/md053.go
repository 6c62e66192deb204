package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD053() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD053", "link-image-reference-definitions"},
		"Link and image reference definitions should be needed",
		[]string{"links", "images"},
		entity.RuleTypeDocument,
		value.SeverityError,
		map[string]interface{}{"ignored_definitions": []interface{}{"//"}},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			ignored := make(map[string]bool)
			for _, v := range value.GetStringSliceOption(settings, "ignored_definitions") {
				ignored[strings.ToLower(v)] = true
			}
			if len(ignored) == 0 {
				ignored["//"] = true
			}
			return &md053Linter{ignored: ignored, used: make(map[string]bool)}
		},
	)
}

type md053Linter struct {
	entity.BaseLinter
	ignored    map[string]bool
	used       map[string]bool
	defs       []value.Token
	violations []value.Violation
}

func (l *md053Linter) OnNode(node value.Token) {
	switch node.Type {
	case value.TokenTypeLinkReferenceDef:
		l.defs = append(l.defs, node)
	case value.TokenTypeLinkReference, value.TokenTypeImageReference:
		label, ok := node.GetStringProperty("label")
		if !ok || label == "" {
			label = node.Text
		}
		l.used[normalizeLabel(label)] = true
	}
}

func (l *md053Linter) Finalize() []value.Violation {
	for _, def := range l.defs {
		label, _ := def.GetStringProperty("label")
		key := normalizeLabel(label)
		if l.ignored[key] {
			continue
		}
		if l.used[key] {
			continue
		}
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD053", "link-image-reference-definitions"},
			"Link and image reference definitions should be needed",
			nil, def.StartLine(), def.StartColumn(),
		).WithDetail("Unused link or image reference definition: \""+label+"\""))
	}
	return l.violations
}
