// Package rules is the set of built-in RuleLinter implementations,
// one file per rule id, in the teacher's one-rule-per-file layout
// (rules/md001.go, rules/md013.go, ...). All registers every built-in's
// metadata in a stable, spec-table order.
package rules

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

// mustMeta panics on a malformed built-in definition, which is a
// programmer error caught at package-init time, not a runtime condition.
func mustMeta(
	names []string,
	description string,
	tags []string,
	ruleType entity.RuleType,
	defaultSeverity value.Severity,
	defaultSettings map[string]interface{},
	factory func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter,
) *entity.RuleMetadata {
	info, _ := url.Parse(fmt.Sprintf("https://github.com/gomdlint/gomdlint/blob/main/doc/rules/%s.md", names[0]))
	m, err := entity.NewRuleMetadata(names, description, tags, info, ruleType, defaultSeverity, defaultSettings, factory)
	if err != nil {
		panic(err)
	}
	return m
}

func itoa(n int) string { return strconv.Itoa(n) }

// All returns every built-in rule's metadata, in the order listed by
// spec.md's rule table (the order a "rules" command or --list-rules
// reports them in, and the tie-break order the registry preserves before
// the traversal driver's final (line, column, rule_id) sort makes it
// irrelevant to output ordering).
func All() []*entity.RuleMetadata {
	return []*entity.RuleMetadata{
		MD001(),
		MD003(),
		MD004(),
		MD005(),
		MD007(),
		MD009(),
		MD010(),
		MD011(),
		MD012(),
		MD013(),
		MD014(),
		MD018(),
		MD019(),
		MD020(),
		MD021(),
		MD022(),
		MD023(),
		MD024(),
		MD025(),
		MD026(),
		MD027(),
		MD028(),
		MD029(),
		MD030(),
		MD031(),
		MD032(),
		MD033(),
		MD034(),
		MD035(),
		MD036(),
		MD037(),
		MD038(),
		MD039(),
		MD040(),
		MD041(),
		MD042(),
		MD043(),
		MD044(),
		MD045(),
		MD046(),
		MD047(),
		MD048(),
		MD049(),
		MD050(),
		MD051(),
		MD052(),
		MD053(),
		MD054(),
		MD055(),
		MD056(),
		MD058(),
		MD059(),
	}
}
