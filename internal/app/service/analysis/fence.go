package analysis

import "strings"

// FenceChar returns the fence character ("`" or "~") a fenced code block's
// opening line uses. Callers only reach here once they already know the
// line opens a fence, so anything other than a leading "~" is treated as
// backtick.
func FenceChar(openingLine string) string {
	trimmed := strings.TrimLeft(openingLine, " \t")
	if strings.HasPrefix(trimmed, "~") {
		return "~"
	}
	return "`"
}
