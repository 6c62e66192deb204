package service

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/app/service/rules"
	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

// RuleRegistry is the process-wide, immutable table of every known rule's
// metadata (spec.md §4.1). Order is stable and is the order rules.All()
// returns them in, which in turn determines the "deterministic per-rule
// order" spec.md §4.1 requires for violations on the same line (the final
// sort in TraversalDriver.Run breaks remaining ties by rule id, but the
// registry order is what a rules-list command or --list-rules reports).
type RuleRegistry struct {
	all []*entity.RuleMetadata
}

// NewRuleRegistry builds the registry with every built-in rule registered.
func NewRuleRegistry() *RuleRegistry {
	return &RuleRegistry{all: rules.All()}
}

// All returns every registered rule's metadata, in registry order.
func (r *RuleRegistry) All() []*entity.RuleMetadata {
	out := make([]*entity.RuleMetadata, len(r.all))
	copy(out, r.all)
	return out
}

// ByID looks up a rule by id or alias, case-insensitively.
func (r *RuleRegistry) ByID(name string) *entity.RuleMetadata {
	for _, m := range r.all {
		if m.HasName(name) {
			return m
		}
	}
	return nil
}

// ByTag returns every rule carrying the given tag.
func (r *RuleRegistry) ByTag(tag string) []*entity.RuleMetadata {
	var out []*entity.RuleMetadata
	for _, m := range r.all {
		if m.HasTag(tag) {
			out = append(out, m)
		}
	}
	return out
}

// BuildActiveRules resolves severities from config, skips rules whose
// resolved severity is off (spec.md §4.1: "A rule whose resolved severity
// is off is skipped at construction"), and constructs one linter instance
// per remaining rule against ctx.
func (r *RuleRegistry) BuildActiveRules(ctx *AnalysisContext) []activeRule {
	config := ctx.Config()
	var active []activeRule

	for _, meta := range r.all {
		severity := meta.DefaultSeverity()
		if config != nil {
			severity = config.Severity(meta.ID(), meta.DefaultSeverity())
		}
		if severity == value.SeverityOff {
			continue
		}

		settings := meta.DefaultSettings()
		for k, v := range ctx.Settings(meta.ID()) {
			settings[k] = v
		}

		linter := meta.NewLinter(settings, ctx)
		active = append(active, activeRule{id: meta.ID(), linter: linter, severity: severity})
	}

	return active
}

// normalizeTag lowercases a tag/name for lookups (kept local so the
// registry doesn't need to import strings elsewhere).
func normalizeTag(s string) string { return strings.ToLower(s) }
