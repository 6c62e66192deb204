package service

import (
	"fmt"

	editorconfig "github.com/editorconfig/editorconfig-core-go/v2"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

// ConfigResolver turns the raw configuration map a caller supplies
// (spec.md §6.1: JSON/YAML-shaped, rule id or alias -> bool | severity
// string | settings object) into a ConfigView, resolving aliases against
// the registry and collecting diagnostics for anything malformed rather
// than failing the run (spec.md §7 "Config error").
type ConfigResolver struct {
	registry *RuleRegistry
}

// NewConfigResolver builds a resolver bound to the given registry, used to
// resolve rule aliases to their canonical id.
func NewConfigResolver(registry *RuleRegistry) *ConfigResolver {
	return &ConfigResolver{registry: registry}
}

// Resolve builds a ConfigView from raw. A nil or empty raw map resolves to
// every rule at its built-in default severity and settings.
func (r *ConfigResolver) Resolve(raw map[string]interface{}) *value.ConfigView {
	view := value.NewConfigView()
	if raw == nil {
		return view
	}

	if def, ok := raw["default"]; ok {
		if sev, ok := r.parseSeverity(def); ok {
			view.SetDefaultSeverity(sev)
		} else {
			view.AddDiagnostic(fmt.Sprintf("default: invalid severity value %v", def))
		}
	}

	for key, rawEntry := range raw {
		if key == "default" {
			continue
		}

		meta := r.registry.ByID(key)
		if meta == nil {
			view.AddDiagnostic(fmt.Sprintf("%s: unknown rule, ignored", key))
			continue
		}
		ruleID := meta.ID()

		switch entry := rawEntry.(type) {
		case bool:
			if entry {
				view.SetSeverity(ruleID, meta.DefaultSeverity())
			} else {
				view.SetSeverity(ruleID, value.SeverityOff)
			}
		case string:
			if sev, ok := r.parseSeverity(entry); ok {
				view.SetSeverity(ruleID, sev)
			} else {
				view.AddDiagnostic(fmt.Sprintf("%s: invalid severity value %q", ruleID, entry))
			}
		case map[string]interface{}:
			r.resolveRuleObject(view, meta, entry)
		default:
			view.AddDiagnostic(fmt.Sprintf("%s: unsupported configuration shape", ruleID))
		}
	}

	return view
}

// resolveRuleObject handles the object form: {"severity": "...", <other
// keys are rule settings>}. "severity" is optional; its absence leaves the
// rule at the default/built-in severity while still applying settings.
func (r *ConfigResolver) resolveRuleObject(view *value.ConfigView, meta *entity.RuleMetadata, entry map[string]interface{}) {
	ruleID := meta.ID()

	settings := make(map[string]interface{}, len(entry))
	for k, v := range entry {
		if k == "severity" {
			if sev, ok := r.parseSeverity(v); ok {
				view.SetSeverity(ruleID, sev)
			} else {
				view.AddDiagnostic(fmt.Sprintf("%s: invalid severity value %v", ruleID, v))
			}
			continue
		}
		settings[k] = v
	}

	if len(settings) > 0 {
		view.SetSettings(ruleID, settings)
	}
}

// ResolveForFile layers `.editorconfig` whitespace conventions for filename
// on top of an already-resolved view, without overriding anything the user
// configured explicitly through raw config. A missing or unreadable
// .editorconfig is not an error: the view is returned unchanged.
func (r *ConfigResolver) ResolveForFile(view *value.ConfigView, filename string) *value.ConfigView {
	def, err := editorconfig.GetDefinitionForFilename(filename)
	if err != nil || def == nil {
		return view
	}

	overlaid := view.Clone()

	if def.TrimTrailingWhitespace != nil && *def.TrimTrailingWhitespace && !overlaid.HasExplicitSeverity("MD009") {
		if meta := r.registry.ByID("MD009"); meta != nil {
			overlaid.SetSeverity("MD009", meta.DefaultSeverity())
		}
	}

	if def.InsertFinalNewline != nil && *def.InsertFinalNewline && !overlaid.HasExplicitSeverity("MD047") {
		if meta := r.registry.ByID("MD047"); meta != nil {
			overlaid.SetSeverity("MD047", meta.DefaultSeverity())
		}
	}

	if def.IndentStyle == "tab" && !overlaid.HasExplicitSeverity("MD010") {
		overlaid.SetSeverity("MD010", value.SeverityOff)
	}

	return overlaid
}

// parseSeverity accepts a bool (true=error, false=off) or a severity
// string ("off"/"warn"/"error") per spec.md §6.1.
func (r *ConfigResolver) parseSeverity(v interface{}) (value.Severity, bool) {
	switch t := v.(type) {
	case bool:
		if t {
			return value.SeverityError, true
		}
		return value.SeverityOff, true
	case string:
		return value.ParseSeverity(t)
	default:
		return value.SeverityOff, false
	}
}
