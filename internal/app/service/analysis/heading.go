// Package analysis holds the small, stateless helpers shared by several
// rule implementations: heading text extraction, GitHub-style slug
// generation, and inline code-span/raw-HTML masking. Consolidated here
// instead of duplicated per rule file (the teacher's rules/md001.go,
// rules/md010.go, rules/md034.go, rules/md037.go each grew their own copy
// of one or more of these, a consequence of each rule owning a
// whole-document pass — the shared single traversal this engine uses makes
// that duplication unnecessary).
package analysis

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/value"
)

// HeadingLevel returns an ATX or setext heading node's level (1-6), or 0 if
// node is not a heading.
func HeadingLevel(node value.Token) int {
	switch node.Type {
	case value.TokenTypeATXHeading, value.TokenTypeSetextHeading:
		if lvl, ok := node.GetIntProperty("level"); ok {
			return lvl
		}
	}
	return 0
}

// HeadingText returns a heading node's rendered inline text: the
// concatenation of its text-bearing descendants, ignoring the hashes and
// underline. Markup characters belonging to emphasis/strong/code-span
// wrapper nodes are not included, only their text content.
func HeadingText(node value.Token) string {
	var textNode *value.Token
	for i := range node.Children {
		c := node.Children[i]
		if c.Type == value.TokenTypeATXHeadingText || c.Type == value.TokenTypeSetextHeadingText {
			textNode = &node.Children[i]
			break
		}
	}
	if textNode == nil {
		return ""
	}
	return InlineText(*textNode)
}

// InlineText flattens a node's text content, descending through inline
// formatting nodes (emphasis, strong, links, code spans) but not fenced or
// indented code content.
func InlineText(node value.Token) string {
	if !node.HasChildren() {
		return node.Text
	}
	var b strings.Builder
	for _, c := range node.Children {
		b.WriteString(InlineText(c))
	}
	return b.String()
}

// NormalizeHeadingText collapses internal whitespace runs to a single
// space and trims the ends, per spec.md MD024's "normalised text"
// definition. Comparison remains case-sensitive.
func NormalizeHeadingText(text string) string {
	fields := strings.Fields(text)
	return strings.Join(fields, " ")
}
