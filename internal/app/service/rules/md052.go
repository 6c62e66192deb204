package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD052() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD052", "reference-links-images"},
		"Reference links and images should use a label that is defined",
		[]string{"links", "images"},
		entity.RuleTypeDocument,
		value.SeverityError,
		map[string]interface{}{"ignored_labels": []interface{}{}},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			ignored := make(map[string]bool)
			for _, v := range value.GetStringSliceOption(settings, "ignored_labels") {
				ignored[strings.ToLower(v)] = true
			}
			return &md052Linter{ignored: ignored, defined: make(map[string]bool)}
		},
	)
}

type md052Linter struct {
	entity.BaseLinter
	ignored    map[string]bool
	defined    map[string]bool
	refs       []value.Token
	violations []value.Violation
}

func (l *md052Linter) OnNode(node value.Token) {
	switch node.Type {
	case value.TokenTypeLinkReferenceDef:
		if label, ok := node.GetStringProperty("label"); ok {
			l.defined[normalizeLabel(label)] = true
		}
	case value.TokenTypeLinkReference, value.TokenTypeImageReference:
		l.refs = append(l.refs, node)
	}
}

func (l *md052Linter) Finalize() []value.Violation {
	for _, ref := range l.refs {
		label, ok := ref.GetStringProperty("label")
		if !ok || label == "" {
			label = ref.Text
		}
		key := normalizeLabel(label)
		if l.ignored[key] {
			continue
		}
		if l.defined[key] {
			continue
		}
		l.violations = append(l.violations, *value.NewViolation(
			[]string{"MD052", "reference-links-images"},
			"Reference links and images should use a label that is defined",
			nil, ref.StartLine(), ref.StartColumn(),
		).WithDetail("Missing link or image reference definition: \""+label+"\""))
	}
	return l.violations
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}
