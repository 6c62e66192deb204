package service

import (
	"context"
	"strings"
)

// FixCoordinator orchestrates the application of fixes to markdown content.
// It only handles mechanical, line-oriented rules; anything that needs a
// parsed document (headings, lists, links) is left for the user to fix.
type FixCoordinator struct {
	options *FixOptions
}

// NewFixCoordinator creates a new fix coordinator with the specified options.
func NewFixCoordinator(options *FixOptions) *FixCoordinator {
	return &FixCoordinator{
		options: options,
	}
}

// ApplyFixes rewrites content for every fixable rule present in violations,
// returning the fixed content and how many violations it addressed.
func (fc *FixCoordinator) ApplyFixes(ctx context.Context, content string, violations []FixViolation, filename string) (string, int, error) {
	rules := make(map[string]bool)
	for _, v := range violations {
		if rule := violationIsFixable(v); rule != "" {
			rules[rule] = true
		}
	}

	fixed := content
	count := 0

	if rules["MD009"] {
		next, n := stripTrailingWhitespace(fixed)
		fixed = next
		count += n
	}
	if rules["MD010"] {
		next, n := expandHardTabs(fixed)
		fixed = next
		count += n
	}
	if rules["MD047"] {
		next, changed := ensureSingleTrailingNewline(fixed)
		fixed = next
		if changed {
			count++
		}
	}

	return fixed, count, nil
}

// stripTrailingWhitespace removes trailing spaces and tabs from every line,
// preserving a Markdown hard-break (exactly two trailing spaces) untouched.
func stripTrailingWhitespace(content string) (string, int) {
	lines := strings.Split(content, "\n")
	fixedCount := 0
	for i, line := range lines {
		if noSpaces := strings.TrimRight(line, " "); noSpaces != "" && len(line)-len(noSpaces) == 2 {
			continue
		}
		trimmed := strings.TrimRight(line, " \t")
		if trimmed != line {
			lines[i] = trimmed
			fixedCount++
		}
	}
	return strings.Join(lines, "\n"), fixedCount
}

// expandHardTabs replaces each literal tab with spaces up to the next
// four-column stop, the same width markdownlint assumes for MD010.
func expandHardTabs(content string) (string, int) {
	lines := strings.Split(content, "\n")
	fixedCount := 0
	for i, line := range lines {
		if !strings.Contains(line, "\t") {
			continue
		}
		var out strings.Builder
		col := 0
		for _, r := range line {
			if r == '\t' {
				spaces := 4 - (col % 4)
				out.WriteString(strings.Repeat(" ", spaces))
				col += spaces
			} else {
				out.WriteRune(r)
				col++
			}
		}
		lines[i] = out.String()
		fixedCount++
	}
	return strings.Join(lines, "\n"), fixedCount
}

// ensureSingleTrailingNewline trims trailing blank lines and guarantees the
// file ends with exactly one newline.
func ensureSingleTrailingNewline(content string) (string, bool) {
	trimmed := strings.TrimRight(content, "\n")
	want := trimmed + "\n"
	if content == "" {
		want = ""
	}
	return want, want != content
}
