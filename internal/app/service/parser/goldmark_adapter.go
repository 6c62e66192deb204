// Package parser is the external syntax-tree producer: it turns raw
// markdown bytes into the value.Token tree every rule in
// internal/app/service/rules walks (spec.md §6.2's "external parser").
//
// Goldmark supplies accurate block nesting (lazy continuation, nested
// lists/blockquotes, GFM tables, tight vs. loose lists) that a line-by-line
// regex pass struggles with. Everything Goldmark's AST doesn't carry
// forward on its own — ATX vs. setext heading form, closed-ATX spacing,
// a list item's bullet character, a link's full/collapsed/shortcut
// reference form — is recovered by inspecting each node's own source
// span, the same regex-over-a-line-or-span technique
// internal/app/service/analysis already uses for code-span masking.
package parser

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/gomdlint/gomdlint/internal/app/service/analysis"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

// GoldmarkAdapter parses markdown source into a value.Token document root.
type GoldmarkAdapter struct {
	md goldmark.Markdown
}

// NewGoldmarkAdapter builds an adapter with GFM extensions enabled
// (tables, strikethrough, autolinks) — the same surface spec.md's rule
// table assumes (MD055/MD056 tables, MD059 link text).
func NewGoldmarkAdapter() *GoldmarkAdapter {
	return &GoldmarkAdapter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Parse converts raw markdown source into the document's root token.
func (a *GoldmarkAdapter) Parse(source []byte) value.Token {
	doc := a.md.Parser().Parse(text.NewReader(source))
	lt := newLineTable(source)
	root := a.convert(doc, source, lt)

	if defs := scanReferenceDefinitions(source, lt); len(defs) > 0 {
		children := make([]value.Token, 0, len(root.Children)+len(defs))
		children = append(children, root.Children...)
		children = append(children, defs...)
		root = root.WithChildren(children)
	}
	return root
}

func (a *GoldmarkAdapter) convert(n ast.Node, source []byte, lt *lineTable) value.Token {
	switch node := n.(type) {
	case *ast.Document:
		return a.convertContainer(n, value.TokenTypeDocument, source, lt)
	case *ast.Heading:
		return a.convertHeading(node, source, lt)
	case *ast.Paragraph:
		return a.convertContainer(n, value.TokenTypeParagraph, source, lt)
	case *ast.TextBlock:
		return a.convertContainer(n, value.TokenTypeParagraph, source, lt)
	case *ast.Blockquote:
		return a.convertContainer(n, value.TokenTypeBlockQuote, source, lt)
	case *ast.List:
		return a.convertList(node, source, lt)
	case *ast.ListItem:
		return a.convertContainer(n, value.TokenTypeListItem, source, lt)
	case *ast.FencedCodeBlock:
		return a.convertFencedCode(node, source, lt)
	case *ast.CodeBlock:
		return a.convertIndentedCode(node, source, lt)
	case *ast.HTMLBlock:
		return a.convertHTMLBlock(node, source, lt)
	case *ast.ThematicBreak:
		return a.convertThematicBreak(node, source, lt)
	case *ast.AutoLink:
		return a.convertAutolink(node, source, lt)
	case *ast.CodeSpan:
		return a.convertCodeSpan(node, source, lt)
	case *ast.Emphasis:
		return a.convertEmphasis(node, source, lt)
	case *ast.Link:
		return a.convertLinkOrImage(n, value.TokenTypeLink, source, lt)
	case *ast.Image:
		return a.convertLinkOrImage(n, value.TokenTypeImage, source, lt)
	case *ast.RawHTML:
		return a.convertRawHTML(node, source, lt)
	case *ast.Text:
		return a.convertText(node, source, lt)
	case *ast.String:
		return value.NewToken(value.TokenTypeText, string(node.Value), value.Position{}, value.Position{})
	case *extast.Table:
		return a.convertContainer(n, value.TokenTypeTable, source, lt)
	case *extast.TableHeader:
		return a.convertTableRow(n, true, source, lt)
	case *extast.TableRow:
		return a.convertTableRow(n, false, source, lt)
	case *extast.TableCell:
		return a.convertTableCell(node, source, lt)
	default:
		return a.convertContainer(n, value.TokenTypeText, source, lt)
	}
}

// convertContainer builds a token spanning n's byte range with every child
// recursively converted — the shared path for nodes that contribute no
// properties of their own beyond their kind and children.
func (a *GoldmarkAdapter) convertContainer(n ast.Node, t value.TokenType, source []byte, lt *lineTable) value.Token {
	start, end, _ := nodeRange(n)
	tok := value.NewToken(t, safeSlice(source, start, end), lt.position(start), lt.position(end))
	var children []value.Token
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		children = append(children, a.convert(c, source, lt))
	}
	return tok.WithChildren(children)
}

func (a *GoldmarkAdapter) convertHeading(n *ast.Heading, source []byte, lt *lineTable) value.Token {
	start, end, _ := nodeRange(n)
	startPos := lt.position(start)
	line := lt.lineText(source, startPos.Line)
	trimmed := strings.TrimLeft(line, " \t")
	atx := strings.HasPrefix(trimmed, "#")

	var children []value.Token
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		children = append(children, a.convert(c, source, lt))
	}

	inQuote := inBlockquote(n)

	if atx {
		spacesAfterHash, closed, spacesBeforeClose := atxSpacing(trimmed, n.Level)
		textTok := value.NewToken(value.TokenTypeATXHeadingText, safeSlice(source, start, end), startPos, lt.position(end)).WithChildren(children)
		tok := value.NewToken(value.TokenTypeATXHeading, line, startPos, lt.position(end))
		tok = tok.WithProperty("level", n.Level)
		tok = tok.WithProperty("closed", closed)
		tok = tok.WithProperty("spacesAfterHash", spacesAfterHash)
		tok = tok.WithProperty("spacesBeforeClose", spacesBeforeClose)
		tok = tok.WithProperty("inBlockquote", inQuote)
		return tok.WithChildren([]value.Token{textTok})
	}

	textTok := value.NewToken(value.TokenTypeSetextHeadingText, safeSlice(source, start, end), startPos, lt.position(end)).WithChildren(children)
	tok := value.NewToken(value.TokenTypeSetextHeading, line, startPos, lt.position(end))
	tok = tok.WithProperty("level", n.Level)
	tok = tok.WithProperty("inBlockquote", inQuote)
	return tok.WithChildren([]value.Token{textTok})
}

// atxSpacing reads an ATX heading's own line to recover the spacing and
// closing-hash details goldmark's ast.Heading doesn't retain once ATX and
// setext forms are both folded into the same node kind.
func atxSpacing(trimmed string, level int) (spacesAfterHash int, closed bool, spacesBeforeClose int) {
	if level > len(trimmed) {
		return 0, false, 0
	}
	rest := trimmed[level:]
	i := 0
	for i < len(rest) && rest[i] == ' ' {
		i++
	}
	spacesAfterHash = i

	content := strings.TrimRight(rest, " ")
	k := len(content)
	for k > 0 && content[k-1] == '#' {
		k--
	}
	if k < len(content) && (k == 0 || content[k-1] == ' ') {
		closed = true
		m := k
		for m > 0 && content[m-1] == ' ' {
			m--
		}
		spacesBeforeClose = k - m
	}
	return
}

func inBlockquote(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.Blockquote); ok {
			return true
		}
	}
	return false
}

func isOrderedList(n *ast.List) bool {
	return n.Marker == '.' || n.Marker == ')'
}

func isNestedList(n *ast.List) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.ListItem); ok {
			return true
		}
	}
	return false
}

func listNestingLevel(n ast.Node) int {
	level := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.List); ok {
			level++
		}
	}
	return level
}

var listMarkerLineRe = regexp.MustCompile(`^(\s*)([-*+]|\d{1,9}[.)])(\s*)`)

func listItemLineMetrics(line string, ordered bool, marker byte) (markerColumn, spacesAfterMarker int, bulletChar string) {
	m := listMarkerLineRe.FindStringSubmatch(line)
	if m == nil {
		return 1, 1, string(marker)
	}
	markerColumn = len(m[1]) + 1
	spacesAfterMarker = len(m[3])
	bulletChar = m[2]
	if ordered {
		bulletChar = string(marker)
	}
	return
}

func (a *GoldmarkAdapter) convertList(n *ast.List, source []byte, lt *lineTable) value.Token {
	start, end, _ := nodeRange(n)
	tok := value.NewToken(value.TokenTypeList, safeSlice(source, start, end), lt.position(start), lt.position(end))
	tok = tok.WithProperty("nested", isNestedList(n))

	ordered := isOrderedList(n)
	level := listNestingLevel(n) + 1
	number := n.Start
	if number <= 0 {
		number = 1
	}

	var children []value.Token
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if li, ok := c.(*ast.ListItem); ok {
			children = append(children, a.convertListItem(li, ordered, n.Marker, number, level, source, lt))
			number++
			continue
		}
		children = append(children, a.convert(c, source, lt))
	}
	return tok.WithChildren(children)
}

func (a *GoldmarkAdapter) convertListItem(n *ast.ListItem, ordered bool, marker byte, number int, level int, source []byte, lt *lineTable) value.Token {
	start, end, _ := nodeRange(n)
	startPos := lt.position(start)
	line := lt.lineText(source, startPos.Line)
	markerColumn, spacesAfterMarker, bulletChar := listItemLineMetrics(line, ordered, marker)

	tok := value.NewToken(value.TokenTypeListItem, safeSlice(source, start, end), startPos, lt.position(end))
	tok = tok.WithProperty("ordered", ordered)
	tok = tok.WithProperty("bulletChar", bulletChar)
	tok = tok.WithProperty("level", level)
	tok = tok.WithProperty("markerColumn", markerColumn)
	tok = tok.WithProperty("orderedNumber", number)
	tok = tok.WithProperty("spacesAfterMarker", spacesAfterMarker)

	var children []value.Token
	blockCount := 0
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		children = append(children, a.convert(c, source, lt))
		blockCount++
	}
	tok = tok.WithProperty("singleParagraph", blockCount <= 1)
	return tok.WithChildren(children)
}

func (a *GoldmarkAdapter) convertFencedCode(n *ast.FencedCodeBlock, source []byte, lt *lineTable) value.Token {
	start, end, _ := nodeRange(n)
	startPos := lt.position(start)
	line := lt.lineText(source, startPos.Line)
	fenceChar := analysis.FenceChar(line)

	var info string
	if n.Info != nil {
		info = strings.TrimSpace(string(n.Info.Segment.Value(source)))
	}
	language := info
	if idx := strings.IndexAny(info, " \t"); idx >= 0 {
		language = info[:idx]
	}

	var body strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		body.Write(lines.At(i).Value(source))
	}

	inListItem := false
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.ListItem); ok {
			inListItem = true
			break
		}
	}

	tok := value.NewToken(value.TokenTypeCodeFenced, body.String(), startPos, lt.position(end))
	tok = tok.WithProperty("fenceChar", fenceChar)
	tok = tok.WithProperty("language", language)
	tok = tok.WithProperty("info", info)
	tok = tok.WithProperty("inListItem", inListItem)
	return tok
}

func (a *GoldmarkAdapter) convertIndentedCode(n *ast.CodeBlock, source []byte, lt *lineTable) value.Token {
	start, end, _ := nodeRange(n)
	var body strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		body.Write(lines.At(i).Value(source))
	}
	tok := value.NewToken(value.TokenTypeCodeIndented, body.String(), lt.position(start), lt.position(end))
	tok = tok.WithProperty("language", "")
	return tok
}

var htmlTagRe = regexp.MustCompile(`<(/?)([a-zA-Z][a-zA-Z0-9-]*)((?:\s+[a-zA-Z_:][-a-zA-Z0-9_:.]*(?:\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'>]+))?)*)\s*/?>`)
var htmlAttrRe = regexp.MustCompile(`([a-zA-Z_:][-a-zA-Z0-9_:.]*)\s*=\s*("([^"]*)"|'([^']*)'|([^\s"'>]+))`)

func parseHTMLTag(raw string) (tagName string, attrs map[string]string) {
	m := htmlTagRe.FindStringSubmatch(raw)
	if m == nil {
		return "", nil
	}
	tagName = strings.ToLower(m[2])
	attrs = make(map[string]string)
	for _, am := range htmlAttrRe.FindAllStringSubmatch(m[3], -1) {
		name := strings.ToLower(am[1])
		val := am[3]
		if val == "" {
			val = am[4]
		}
		if val == "" {
			val = am[5]
		}
		attrs[name] = val
	}
	return tagName, attrs
}

func (a *GoldmarkAdapter) convertHTMLBlock(n *ast.HTMLBlock, source []byte, lt *lineTable) value.Token {
	start, end, _ := nodeRange(n)
	var body strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		body.Write(lines.At(i).Value(source))
	}
	raw := body.String()
	tagName, attrs := parseHTMLTag(raw)
	tok := value.NewToken(value.TokenTypeHTMLFlow, raw, lt.position(start), lt.position(end))
	tok = tok.WithProperty("tagName", tagName)
	tok = tok.WithProperty("attributes", attrs)
	return tok
}

func (a *GoldmarkAdapter) convertThematicBreak(n *ast.ThematicBreak, source []byte, lt *lineTable) value.Token {
	start, end, _ := nodeRange(n)
	raw := safeSlice(source, start, end)
	tok := value.NewToken(value.TokenTypeThematicBreak, raw, lt.position(start), lt.position(end))
	tok = tok.WithProperty("raw", strings.TrimSpace(raw))
	return tok
}

func (a *GoldmarkAdapter) convertAutolink(n *ast.AutoLink, source []byte, lt *lineTable) value.Token {
	// AutoLink holds its source text in Value rather than as a child node,
	// so nodeRange's child-aggregation fallback sees no children here.
	start, end := n.Value.Segment.Start, n.Value.Segment.Stop
	if start > 0 && source[start-1] == '<' {
		start--
	}
	if end < len(source) && source[end] == '>' {
		end++
	}
	raw := safeSlice(source, start, end)
	tok := value.NewToken(value.TokenTypeAutolink, raw, lt.position(start), lt.position(end))
	tok = tok.WithProperty("destination", strings.Trim(raw, "<>"))
	return tok
}

func (a *GoldmarkAdapter) convertCodeSpan(n *ast.CodeSpan, source []byte, lt *lineTable) value.Token {
	start, end, _ := nodeRange(n)
	var body strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			body.Write(t.Segment.Value(source))
		}
	}
	return value.NewToken(value.TokenTypeCodeSpan, body.String(), lt.position(start), lt.position(end))
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func isIntraword(source []byte, start, end, level int) bool {
	before := start - level - 1
	after := end + level
	beforeAlnum := before >= 0 && isAlnum(source[before])
	afterAlnum := after < len(source) && isAlnum(source[after])
	return beforeAlnum && afterAlnum
}

func (a *GoldmarkAdapter) convertEmphasis(n *ast.Emphasis, source []byte, lt *lineTable) value.Token {
	innerStart, innerEnd, hasRange := nodeRange(n)
	start, end := innerStart-n.Level, innerEnd+n.Level
	if !hasRange || start < 0 || end > len(source) {
		start, end = innerStart, innerEnd
	}
	marker := "*"
	if start >= 0 && start < len(source) && source[start] == '_' {
		marker = "_"
	}

	var children []value.Token
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		children = append(children, a.convert(c, source, lt))
	}

	tokType := value.TokenTypeEmphasis
	if n.Level >= 2 {
		tokType = value.TokenTypeStrong
	}
	tok := value.NewToken(tokType, safeSlice(source, start, end), lt.position(start), lt.position(end))
	tok = tok.WithProperty("marker", marker)
	if tokType == value.TokenTypeEmphasis {
		tok = tok.WithProperty("intraword", isIntraword(source, innerStart, innerEnd, n.Level))
	}
	return tok.WithChildren(children)
}

func (a *GoldmarkAdapter) convertLinkOrImage(n ast.Node, t value.TokenType, source []byte, lt *lineTable) value.Token {
	innerStart, end, hasRange := nodeRange(n)
	start := innerStart
	if hasRange {
		if t == value.TokenTypeImage && start >= 2 && source[start-1] == '[' && source[start-2] == '!' {
			start -= 2
		} else if start >= 1 && source[start-1] == '[' {
			start--
		}
	}
	var dest, title string
	switch ln := n.(type) {
	case *ast.Link:
		dest, title = string(ln.Destination), string(ln.Title)
	case *ast.Image:
		dest, title = string(ln.Destination), string(ln.Title)
	}

	var children []value.Token
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		children = append(children, a.convert(c, source, lt))
	}
	text := analysis.InlineText(value.Token{Children: children})

	tokType := t
	form, label, trailingEnd := analysis.ReferenceForm(source, end, text)
	fullEnd := trailingEnd
	if form != "" {
		if t == value.TokenTypeImage {
			tokType = value.TokenTypeImageReference
		} else {
			tokType = value.TokenTypeLinkReference
		}
	} else if end < len(source) && source[end] == ']' {
		// Inline form: scan past "](destination "title")" for the full span.
		j := end + 1
		if j < len(source) && source[j] == '(' {
			depth := 1
			j++
			for j < len(source) && depth > 0 {
				switch source[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
				j++
			}
			fullEnd = j
		}
	}

	tok := value.NewToken(tokType, text, lt.position(start), lt.position(fullEnd))
	tok = tok.WithProperty("destination", dest)
	tok = tok.WithProperty("title", title)
	if t == value.TokenTypeImage {
		tok = tok.WithProperty("alt", text)
	}
	if form != "" {
		tok = tok.WithProperty("label", label)
		tok = tok.WithProperty("referenceForm", form)
	}
	return tok.WithChildren(children)
}

func (a *GoldmarkAdapter) convertRawHTML(n *ast.RawHTML, source []byte, lt *lineTable) value.Token {
	start, end, _ := nodeRange(n)
	var body strings.Builder
	segs := n.Segments
	for i := 0; i < segs.Len(); i++ {
		body.Write(segs.At(i).Value(source))
	}
	raw := body.String()
	tagName, attrs := parseHTMLTag(raw)
	tok := value.NewToken(value.TokenTypeRawHTML, raw, lt.position(start), lt.position(end))
	tok = tok.WithProperty("tagName", tagName)
	tok = tok.WithProperty("attributes", attrs)
	return tok
}

func (a *GoldmarkAdapter) convertText(n *ast.Text, source []byte, lt *lineTable) value.Token {
	content := string(n.Segment.Value(source))
	return value.NewToken(value.TokenTypeText, content, lt.position(n.Segment.Start), lt.position(n.Segment.Stop))
}

func (a *GoldmarkAdapter) convertTableRow(n ast.Node, header bool, source []byte, lt *lineTable) value.Token {
	tok := a.convertContainer(n, value.TokenTypeTableRow, source, lt)
	tok = tok.WithProperty("header", header)

	start, _, _ := nodeRange(n)
	line := lt.lineText(source, lt.position(start).Line)
	trimmed := strings.TrimSpace(line)
	tok = tok.WithProperty("leadingPipe", strings.HasPrefix(trimmed, "|"))
	tok = tok.WithProperty("trailingPipe", strings.HasSuffix(trimmed, "|"))
	return tok
}

func (a *GoldmarkAdapter) convertTableCell(n *extast.TableCell, source []byte, lt *lineTable) value.Token {
	tokType := value.TokenTypeTableCell
	if parent := n.Parent(); parent != nil {
		if _, ok := parent.(*extast.TableHeader); ok {
			tokType = value.TokenTypeTableHeaderCell
		}
	}
	return a.convertContainer(n, tokType, source, lt)
}

// scanReferenceDefinitions recovers link/image reference definitions
// directly from the source: goldmark's block parser consumes them during
// parsing and never surfaces them as AST nodes.
func scanReferenceDefinitions(source []byte, lt *lineTable) []value.Token {
	defs := analysis.ReferenceDefinitions(source)
	out := make([]value.Token, 0, len(defs))
	for _, d := range defs {
		tok := value.NewToken(value.TokenTypeLinkReferenceDef, string(source[d.Start:d.End]), lt.position(d.Start), lt.position(d.End))
		tok = tok.WithProperty("label", d.Label)
		tok = tok.WithProperty("destination", d.Destination)
		tok = tok.WithProperty("title", d.Title)
		out = append(out, tok)
	}
	return out
}

// nodeRange resolves a node's byte span: its own Lines() when it is a
// block node, a leaf's Segment, or the union of its children otherwise
// (inline container nodes — emphasis, links, table cells — have no span
// of their own in goldmark's AST).
func nodeRange(n ast.Node) (start, end int, ok bool) {
	if lp, isLines := n.(interface{ Lines() *text.Segments }); isLines {
		lines := lp.Lines()
		if lines.Len() > 0 {
			first := lines.At(0)
			last := lines.At(lines.Len() - 1)
			return first.Start, last.Stop, true
		}
	}
	if tn, isText := n.(*ast.Text); isText {
		return tn.Segment.Start, tn.Segment.Stop, true
	}
	start, end = -1, -1
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s, e, childOK := nodeRange(c); childOK {
			if start == -1 || s < start {
				start = s
			}
			if e > end {
				end = e
			}
		}
	}
	if start == -1 {
		return 0, 0, false
	}
	return start, end, true
}

func safeSlice(source []byte, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(source) {
		end = len(source)
	}
	if end < start {
		return ""
	}
	return string(source[start:end])
}

// lineTable maps byte offsets to 1-based (line, column) positions and back
// to a line's raw text, built once per document.
type lineTable struct {
	starts []int
}

func newLineTable(source []byte) *lineTable {
	lt := &lineTable{starts: []int{0}}
	for i, b := range source {
		if b == '\n' {
			lt.starts = append(lt.starts, i+1)
		}
	}
	return lt
}

func (lt *lineTable) position(offset int) value.Position {
	lo, hi := 0, len(lt.starts)-1
	line := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if lt.starts[mid] <= offset {
			line = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return value.Position{Line: line + 1, Column: offset - lt.starts[line] + 1, Offset: offset}
}

func (lt *lineTable) lineText(source []byte, lineNum int) string {
	idx := lineNum - 1
	if idx < 0 || idx >= len(lt.starts) {
		return ""
	}
	start := lt.starts[idx]
	end := len(source)
	if idx+1 < len(lt.starts) {
		end = lt.starts[idx+1] - 1
	}
	if end > len(source) {
		end = len(source)
	}
	if end < start {
		end = start
	}
	return strings.TrimRight(string(source[start:end]), "\r")
}
