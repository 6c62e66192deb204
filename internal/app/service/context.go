package service

import (
	"regexp"
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

// lineSpan records one physical line's byte bounds, per spec.md §3: start
// offset, end offset (exclusive of newline), and the newline's byte length
// (0, 1, or 2, so CRLF documents report the same column numbers as LF
// documents).
type lineSpan struct {
	start     int
	end       int
	eolLength int
}

// AnalysisContext is the one-per-document, read-only-during-traversal
// shared state spec.md §3 describes: raw text, line table, front-matter
// span, parsed tree, per-node-type caches, and a configuration view.
//
// It implements entity.AnalysisContext so rule factories in
// internal/app/service/rules can consult it without an import cycle.
type AnalysisContext struct {
	filename string
	raw      []byte
	lines    []string
	spans    []lineSpan

	root value.Token

	nodeCache    map[value.TokenType][]value.Token
	requestedKinds map[value.TokenType]bool

	frontMatterKeys    []string
	hasFrontMatter     bool
	frontMatterEndLine int

	config *value.ConfigView
}

var _ entity.AnalysisContext = (*AnalysisContext)(nil)

var frontMatterYAMLRe = regexp.MustCompile(`(?s)\A---[^\S\r\n]*\r?\n(.*?\r?\n)---[^\S\r\n]*(\r?\n|\z)`)
var frontMatterTOMLRe = regexp.MustCompile(`(?s)\A\+\+\+[^\S\r\n]*\r?\n(.*?\r?\n)\+\+\+[^\S\r\n]*(\r?\n|\z)`)
// Both retain their delimiter in the captured group: rules match a
// front_matter_title pattern against the raw key text, and that pattern
// (e.g. the default `^\s*title\s*[:=]`) expects the trailing ":" or "="
// to still be there.
var yamlTopKeyRe = regexp.MustCompile(`(?m)^([A-Za-z0-9_.-]+\s*:)`)
var tomlTopKeyRe = regexp.MustCompile(`(?m)^([A-Za-z0-9_.-]+\s*=)`)

// NewAnalysisContext builds the shared context for one document. root is
// the parsed syntax tree (external, spec.md §6.2); raw is the original
// source bytes.
func NewAnalysisContext(filename string, raw []byte, root value.Token, config *value.ConfigView) *AnalysisContext {
	ctx := &AnalysisContext{
		filename:     filename,
		raw:          raw,
		root:         root,
		nodeCache:    make(map[value.TokenType][]value.Token),
		config:       config,
	}
	ctx.buildLineTable()
	ctx.detectFrontMatter()
	return ctx
}

func (c *AnalysisContext) buildLineTable() {
	start := 0
	for i := 0; i < len(c.raw); i++ {
		if c.raw[i] == '\n' {
			end := i
			eol := 1
			if end > start && c.raw[end-1] == '\r' {
				end--
				eol = 2
			}
			c.spans = append(c.spans, lineSpan{start: start, end: end, eolLength: eol})
			c.lines = append(c.lines, string(c.raw[start:end]))
			start = i + 1
		}
	}
	if start < len(c.raw) || len(c.raw) == 0 {
		c.spans = append(c.spans, lineSpan{start: start, end: len(c.raw), eolLength: 0})
		c.lines = append(c.lines, string(c.raw[start:]))
	}
}

// detectFrontMatter carves out a leading YAML/TOML block per spec.md §9
// "Front-matter is a pre-parse concern": exposes its line range and a
// best-effort top-level key list without parsing YAML/TOML semantically.
func (c *AnalysisContext) detectFrontMatter() {
	var match []int
	var body string
	var keyRe *regexp.Regexp

	if loc := frontMatterYAMLRe.FindSubmatchIndex(c.raw); loc != nil {
		match = loc
		body = string(c.raw[loc[2]:loc[3]])
		keyRe = yamlTopKeyRe
	} else if loc := frontMatterTOMLRe.FindSubmatchIndex(c.raw); loc != nil {
		match = loc
		body = string(c.raw[loc[2]:loc[3]])
		keyRe = tomlTopKeyRe
	}
	if match == nil {
		return
	}

	c.hasFrontMatter = true
	endOffset := match[1]
	c.frontMatterEndLine = c.LineAtOffset(endOffset)

	seen := map[string]bool{}
	for _, m := range keyRe.FindAllStringSubmatch(body, -1) {
		// Only true top-level keys: unindented in the original block.
		key := m[1]
		if !seen[key] {
			seen[key] = true
			c.frontMatterKeys = append(c.frontMatterKeys, key)
		}
	}
}

func (c *AnalysisContext) Filename() string { return c.filename }

func (c *AnalysisContext) Lines() []string { return c.lines }

func (c *AnalysisContext) LineCount() int { return len(c.lines) }

func (c *AnalysisContext) RawText() string { return string(c.raw) }

func (c *AnalysisContext) Root() value.Token { return c.root }

func (c *AnalysisContext) FrontMatterKeys() ([]string, bool) {
	return c.frontMatterKeys, c.hasFrontMatter
}

func (c *AnalysisContext) FrontMatterEndLine() int { return c.frontMatterEndLine }

func (c *AnalysisContext) Settings(ruleID string) map[string]interface{} {
	if c.config == nil {
		return map[string]interface{}{}
	}
	return c.config.Settings(ruleID)
}

// Config exposes the full configuration view (used by the driver and
// registry, not by rules directly).
func (c *AnalysisContext) Config() *value.ConfigView { return c.config }

// LineAt returns the 1-based line's raw text, or "" if out of range.
func (c *AnalysisContext) LineAt(line int) string {
	if line < 1 || line > len(c.lines) {
		return ""
	}
	return c.lines[line-1]
}

// LineAtOffset returns the 1-based line number containing the given byte
// offset.
func (c *AnalysisContext) LineAtOffset(offset int) int {
	lo, hi := 0, len(c.spans)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		span := c.spans[mid]
		if offset < span.start {
			hi = mid - 1
		} else if offset > span.end+span.eolLength {
			lo = mid + 1
		} else {
			return mid + 1
		}
	}
	return len(c.spans)
}

// RequestKind marks a node kind as needed by some active rule, so the
// driver populates its cache during traversal (spec.md §4.3 step 2).
func (c *AnalysisContext) RequestKind(kind value.TokenType) {
	if c.requestedKinds == nil {
		c.requestedKinds = make(map[value.TokenType]bool)
	}
	c.requestedKinds[kind] = true
}

func (c *AnalysisContext) isRequested(kind value.TokenType) bool {
	return c.requestedKinds != nil && c.requestedKinds[kind]
}

// observe records a node visit into its kind's cache. Called by the
// traversal driver exactly once per node, in pre-order (spec.md §4.3 step
// 3: "populated before the first rule observes them... not by rules").
func (c *AnalysisContext) observe(node value.Token) {
	if !c.isRequested(node.Type) {
		return
	}
	c.nodeCache[node.Type] = append(c.nodeCache[node.Type], node)
}

// NodesByType returns the cached nodes of the given kind, in document
// order. Empty (not nil) if the kind was never requested or never
// appeared.
func (c *AnalysisContext) NodesByType(kind value.TokenType) []value.Token {
	if nodes, ok := c.nodeCache[kind]; ok {
		return nodes
	}
	return []value.Token{}
}

// StrippedOfFrontMatter returns the logical document's lines (front matter
// carved out), for rules that address "the first line" (MD041).
func (c *AnalysisContext) StrippedOfFrontMatter() []string {
	if !c.hasFrontMatter || c.frontMatterEndLine >= len(c.lines) {
		if c.hasFrontMatter {
			return nil
		}
		return c.lines
	}
	return c.lines[c.frontMatterEndLine:]
}

// IsBlankLine reports whether the given 1-based line is empty or
// whitespace-only.
func (c *AnalysisContext) IsBlankLine(line int) bool {
	return strings.TrimSpace(c.LineAt(line)) == ""
}
