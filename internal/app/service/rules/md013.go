package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

var (
	md013OnlyLinkPattern = regexp.MustCompile(`^\s*!?\[[^\]]*\]\([^)]*\)\s*$`)
	md013RefDefPattern   = regexp.MustCompile(`^\s*\[[^\]]+\]:\s*\S+`)
)

func MD013() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD013", "line-length"},
		"Line length",
		[]string{"line_length"},
		entity.RuleTypeLine,
		value.SeverityError,
		map[string]interface{}{
			"line_length": 80, "heading_line_length": 0, "code_block_line_length": 0,
			"code_blocks": true, "tables": true, "headings": true,
			"strict": false, "stern": false,
		},
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md013Linter{
				limit:       value.GetIntOption(settings, "line_length", 80),
				headingMax:  value.GetIntOption(settings, "heading_line_length", 0),
				codeMax:     value.GetIntOption(settings, "code_block_line_length", 0),
				codeBlocks:  value.GetBoolOption(settings, "code_blocks", true),
				tables:      value.GetBoolOption(settings, "tables", true),
				headings:    value.GetBoolOption(settings, "headings", true),
				strict:      value.GetBoolOption(settings, "strict", false),
				stern:       value.GetBoolOption(settings, "stern", false),
				headingLine: make(map[int]bool),
			}
		},
	)
}

type md013Linter struct {
	entity.BaseLinter
	limit      int
	headingMax int
	codeMax    int
	codeBlocks bool
	tables     bool
	headings   bool
	strict     bool
	stern      bool

	headingLine map[int]bool // lines recognised as heading text, set via OnNode
	violations  []value.Violation
}

// OnNode records which physical lines belong to headings, since OnLine
// alone can't distinguish a heading line from a paragraph line.
func (l *md013Linter) OnNode(node value.Token) {
	if node.Type == value.TokenTypeATXHeading || node.Type == value.TokenTypeSetextHeading {
		for line := node.StartLine(); line <= node.EndLine(); line++ {
			l.headingLine[line] = true
		}
	}
}

func (l *md013Linter) OnLine(lineNumber int, text string, mask entity.LineMask) {
	if mask.InFrontMatter {
		return
	}
	if mask.InCode() && !l.codeBlocks {
		return
	}

	limit := l.limit
	if l.headingLine[lineNumber] {
		if !l.headings {
			return
		}
		if l.headingMax > 0 {
			limit = l.headingMax
		}
	} else if mask.InCode() {
		if l.codeMax > 0 {
			limit = l.codeMax
		}
	}

	length := utf8.RuneCountInString(strings.TrimRight(text, "\r\n"))
	if length <= limit {
		return
	}

	if md013RefDefPattern.MatchString(text) {
		return
	}
	if md013OnlyLinkPattern.MatchString(text) {
		return
	}

	if !l.stern {
		runes := []rune(text)
		if limit < len(runes) {
			beyond := string(runes[limit:])
			if !l.strict && !strings.ContainsAny(beyond, " \t") {
				return
			}
		}
	}

	l.violations = append(l.violations, *value.NewViolation(
		[]string{"MD013", "line-length"},
		"Line length",
		nil, lineNumber, limit+1,
	).WithDetail("Expected: "+itoa(limit)+"; Actual: "+itoa(length)))
}

func (l *md013Linter) Finalize() []value.Violation { return l.violations }
