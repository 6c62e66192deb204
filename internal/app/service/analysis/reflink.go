package analysis

import "regexp"

// ReferenceDefinition is a `[label]: destination "title"` link/image
// reference definition recovered from raw source. Goldmark's block parser
// consumes these during parsing and never surfaces them as AST nodes, so a
// parser adapter recovers them itself with a source-level scan.
type ReferenceDefinition struct {
	Label       string
	Destination string
	Title       string
	Start, End  int // byte offsets of the whole definition line
}

var linkDefRe = regexp.MustCompile(`(?m)^[ ]{0,3}\[([^\]]+)\]:[ \t]*(\S+)(?:[ \t]+(?:"([^"]*)"|'([^']*)'|\(([^)]*)\)))?[ \t]*$`)

// ReferenceDefinitions scans source for every top-level link/image
// reference definition.
func ReferenceDefinitions(source []byte) []ReferenceDefinition {
	var out []ReferenceDefinition
	for _, m := range linkDefRe.FindAllSubmatchIndex(source, -1) {
		label := string(source[m[2]:m[3]])
		dest := string(source[m[4]:m[5]])
		title := ""
		for _, pair := range [][2]int{{6, 7}, {8, 9}, {10, 11}} {
			if pair[0] < len(m) && m[pair[0]] >= 0 {
				title = string(source[m[pair[0]]:m[pair[1]]])
				break
			}
		}
		out = append(out, ReferenceDefinition{
			Label:       label,
			Destination: dest,
			Title:       title,
			Start:       m[0],
			End:         m[1],
		})
	}
	return out
}

// ReferenceForm inspects the bytes right after a link/image's text span to
// tell an inline link `[text](url)` apart from the three reference forms
// ("full", "collapsed", "shortcut"), which goldmark's AST otherwise
// resolves into a plain *ast.Link/*ast.Image indistinguishable from an
// inline one. An empty form means the node is an inline link/image;
// trailingEnd is always a valid offset to resume scanning from.
func ReferenceForm(source []byte, end int, text string) (form, label string, trailingEnd int) {
	i := end
	if i >= len(source) || source[i] != ']' {
		return "", "", end
	}
	i++
	if i < len(source) && source[i] == '(' {
		return "", "", end
	}
	if i < len(source) && source[i] == '[' {
		j := i + 1
		k := j
		for k < len(source) && source[k] != ']' {
			k++
		}
		if k >= len(source) {
			return "", "", end
		}
		label = string(source[j:k])
		if label == "" {
			return "collapsed", text, k + 1
		}
		return "full", label, k + 1
	}
	return "shortcut", text, i
}
