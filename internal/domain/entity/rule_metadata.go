// Package entity holds the static, process-wide descriptions of linting
// rules. Metadata never changes at runtime; per-document behaviour lives in
// the RuleLinter instances the metadata's Factory produces (see linter.go).
package entity

import (
	"fmt"
	"net/url"

	"github.com/gomdlint/gomdlint/internal/domain/value"
)

// RuleType classifies how a rule consumes the document (spec.md §3).
type RuleType int

const (
	// RuleTypeToken rules react to specific syntax-tree node kinds.
	RuleTypeToken RuleType = iota
	// RuleTypeLine rules scan raw text lines, optionally consulting the
	// tree to mask out code/HTML.
	RuleTypeLine
	// RuleTypeDocument rules accumulate state during traversal and emit on
	// finalise.
	RuleTypeDocument
	// RuleTypeHybrid rules react to nodes and to their surrounding blank
	// lines.
	RuleTypeHybrid
	// RuleTypeSpecial rules are none of the above (e.g. MD044's dictionary
	// matching).
	RuleTypeSpecial
)

func (t RuleType) String() string {
	switch t {
	case RuleTypeToken:
		return "token"
	case RuleTypeLine:
		return "line"
	case RuleTypeDocument:
		return "document"
	case RuleTypeHybrid:
		return "hybrid"
	case RuleTypeSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// RuleMetadata is the static, immutable description of one rule
// (spec.md §3 "RuleMetadata"). One instance exists per rule for the
// lifetime of the process.
type RuleMetadata struct {
	names           []string // stable id first (MD###), then aliases
	description     string
	tags            []string
	information     *url.URL
	defaultSeverity value.Severity
	defaultSettings map[string]interface{}
	ruleType        RuleType

	// factory builds a fresh, per-document linter instance. It is supplied
	// a read-only options bag (already merged: rule defaults overridden by
	// resolved configuration) and the document's AnalysisContext.
	factory func(settings map[string]interface{}, ctx AnalysisContext) RuleLinter
}

// NewRuleMetadata constructs a RuleMetadata. names must have at least one
// entry (the stable MD### id); description and factory are required.
func NewRuleMetadata(
	names []string,
	description string,
	tags []string,
	information *url.URL,
	ruleType RuleType,
	defaultSeverity value.Severity,
	defaultSettings map[string]interface{},
	factory func(settings map[string]interface{}, ctx AnalysisContext) RuleLinter,
) (*RuleMetadata, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("rule must have at least one name")
	}
	if description == "" {
		return nil, fmt.Errorf("rule %s must have a description", names[0])
	}
	if factory == nil {
		return nil, fmt.Errorf("rule %s must have a linter factory", names[0])
	}

	settings := make(map[string]interface{}, len(defaultSettings))
	for k, v := range defaultSettings {
		settings[k] = v
	}

	return &RuleMetadata{
		names:           append([]string(nil), names...),
		description:     description,
		tags:            append([]string(nil), tags...),
		information:     information,
		defaultSeverity: defaultSeverity,
		defaultSettings: settings,
		ruleType:        ruleType,
		factory:         factory,
	}, nil
}

func (m *RuleMetadata) ID() string { return m.names[0] }

func (m *RuleMetadata) Alias() string {
	if len(m.names) > 1 {
		return m.names[1]
	}
	return m.names[0]
}

func (m *RuleMetadata) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

func (m *RuleMetadata) Description() string { return m.description }

func (m *RuleMetadata) Tags() []string {
	out := make([]string, len(m.tags))
	copy(out, m.tags)
	return out
}

func (m *RuleMetadata) Information() *url.URL { return m.information }

func (m *RuleMetadata) Type() RuleType { return m.ruleType }

func (m *RuleMetadata) DefaultSeverity() value.Severity { return m.defaultSeverity }

func (m *RuleMetadata) DefaultSettings() map[string]interface{} {
	out := make(map[string]interface{}, len(m.defaultSettings))
	for k, v := range m.defaultSettings {
		out[k] = v
	}
	return out
}

// HasName reports whether name matches any of the rule's names/aliases
// (case-insensitive).
func (m *RuleMetadata) HasName(name string) bool {
	for _, n := range m.names {
		if equalIgnoreCase(n, name) {
			return true
		}
	}
	return false
}

// HasTag reports whether the rule carries the given tag (case-insensitive).
func (m *RuleMetadata) HasTag(tag string) bool {
	for _, t := range m.tags {
		if equalIgnoreCase(t, tag) {
			return true
		}
	}
	return false
}

// NewLinter instantiates a fresh per-document linter using settings merged
// by the caller (resolved configuration over rule defaults).
func (m *RuleMetadata) NewLinter(settings map[string]interface{}, ctx AnalysisContext) RuleLinter {
	return m.factory(settings, ctx)
}

func equalIgnoreCase(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
