package value

import (
	"fmt"
)

// TokenType represents the kind of a node in the parsed markdown syntax
// tree. Names follow the micromark token-type vocabulary for familiarity,
// since the teacher's rule implementations were written against it.
type TokenType string

// String returns the string representation of TokenType.
func (t TokenType) String() string {
	return string(t)
}

const (
	TokenTypeDocument    TokenType = "document"
	TokenTypeFrontMatter TokenType = "frontMatter"
	TokenTypeParagraph   TokenType = "paragraph"
	TokenTypeLineEnding  TokenType = "lineEnding"
	TokenTypeContent     TokenType = "content"

	// Headings
	TokenTypeATXHeading             TokenType = "atxHeading"
	TokenTypeATXHeadingText         TokenType = "atxHeadingText"
	TokenTypeSetextHeading          TokenType = "setextHeading"
	TokenTypeSetextHeadingText      TokenType = "setextHeadingText"
	TokenTypeSetextHeadingUnderline TokenType = "setextHeadingUnderline"

	// Lists
	TokenTypeList           TokenType = "list"
	TokenTypeListItem       TokenType = "listItem"
	TokenTypeListItemValue  TokenType = "listItemValue"
	TokenTypeListItemMarker TokenType = "listItemMarker"
	TokenTypeListItemPrefix TokenType = "listItemPrefix"

	// Code
	TokenTypeCodeFenced          TokenType = "codeFenced"
	TokenTypeCodeFencedFence     TokenType = "codeFencedFence"
	TokenTypeCodeFencedFenceInfo TokenType = "codeFencedFenceInfo"
	TokenTypeCodeIndented        TokenType = "codeIndented"
	TokenTypeCodeText            TokenType = "codeText"
	TokenTypeCodeSpan            TokenType = "codeSpan"

	// Blockquotes
	TokenTypeBlockQuote       TokenType = "blockQuote"
	TokenTypeBlockQuotePrefix TokenType = "blockQuotePrefix"
	TokenTypeBlockQuoteMarker TokenType = "blockQuoteMarker"

	// Links and images
	TokenTypeLink             TokenType = "link"
	TokenTypeLinkReference    TokenType = "linkReference"
	TokenTypeLinkReferenceDef TokenType = "linkReferenceDefinition"
	TokenTypeImage            TokenType = "image"
	TokenTypeImageReference   TokenType = "imageReference"
	TokenTypeAutolink         TokenType = "autolink"

	// Emphasis
	TokenTypeEmphasis TokenType = "emphasis"
	TokenTypeStrong   TokenType = "strong"

	// Thematic breaks
	TokenTypeThematicBreak TokenType = "thematicBreak"

	// HTML
	TokenTypeHTMLFlow  TokenType = "htmlFlow"
	TokenTypeHTMLText  TokenType = "htmlText"
	TokenTypeRawHTML   TokenType = "rawHtml"
	TokenTypeHardBreak TokenType = "hardBreak"

	// Tables (GFM)
	TokenTypeTable           TokenType = "table"
	TokenTypeTableRow        TokenType = "tableRow"
	TokenTypeTableCell       TokenType = "tableCell"
	TokenTypeTableHeaderCell TokenType = "tableHeaderCell"
	TokenTypeTableDelimiter  TokenType = "tableDelimiter"

	// Text content
	TokenTypeText       TokenType = "text"
	TokenTypeWhitespace TokenType = "whitespace"
)

// Position is a location in the source document.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number (character offset, not byte)
	Offset int // 0-based byte offset
}

// NewPosition creates a new Position.
func NewPosition(line, column, offset int) Position {
	return Position{Line: line, Column: column, Offset: offset}
}

// Range is a half-open span [Start, End) in the source document.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a new Range.
func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

// Token is a node in the parsed markdown syntax tree: a kind, a byte span,
// row/column bounds, and children. It doubles as the "Node" type spec.md
// §6.2 describes the external parser as producing.
//
// Properties carries kind-specific attributes that a parser adapter fills in
// and rules read via GetStringProperty/GetIntProperty/GetBoolProperty. A
// missing key reads as the zero value with ok=false, so rules treat an
// absent property as "not applicable" rather than an error; a parser adapter
// that leaves a property unset silently turns a rule into a no-op instead of
// failing loudly. The vocabulary built-in rules depend on:
//
//	atxHeading / setextHeading: level (int), closed (bool, atx only),
//	    spacesAfterHash (int), spacesBeforeClose (int), inBlockquote (bool)
//	listItem: ordered (bool), bulletChar (string), level (int, nesting depth),
//	    markerColumn (int, 1-based), orderedNumber (int), singleParagraph (bool),
//	    spacesAfterMarker (int), inListItem (bool, set on nodes it contains)
//	list: nested (bool)
//	codeFenced: fenceChar (string, "`" or "~"), language (string), info (string)
//	codeIndented: language (string)
//	thematicBreak: raw (string, literal marker text)
//	link / linkReference: destination (string), title (string), label (string),
//	    referenceForm (string, one of "full"/"collapsed"/"shortcut")
//	image / imageReference: alt (string), label (string), referenceForm (string)
//	linkReferenceDefinition: label (string)
//	htmlFlow / rawHtml: tagName (string), attributes (map[string]string)
//	emphasis: marker (string, "*" or "_"), intraword (bool)
//	strong: marker (string, "*" or "_")
//	tableRow: header (bool), leadingPipe (bool), trailingPipe (bool)
//
// codeSpan has no dedicated properties; rules use Text directly.
type Token struct {
	Type     TokenType
	Text     string
	Range    Range
	Children []Token

	Properties map[string]interface{}
}

// NewToken creates a new Token.
func NewToken(tokenType TokenType, text string, start, end Position) Token {
	return Token{
		Type:       tokenType,
		Text:       text,
		Range:      Range{Start: start, End: end},
		Children:   make([]Token, 0),
		Properties: make(map[string]interface{}),
	}
}

// WithChildren returns a copy of the token with the given children attached.
func (t Token) WithChildren(children []Token) Token {
	newToken := t
	newToken.Children = make([]Token, len(children))
	copy(newToken.Children, children)
	return newToken
}

// WithProperty returns a copy of the token with an added property.
func (t Token) WithProperty(key string, value interface{}) Token {
	newToken := t
	newToken.Properties = make(map[string]interface{}, len(t.Properties)+1)
	for k, v := range t.Properties {
		newToken.Properties[k] = v
	}
	newToken.Properties[key] = value
	return newToken
}

func (t Token) StartLine() int   { return t.Range.Start.Line }
func (t Token) EndLine() int     { return t.Range.End.Line }
func (t Token) StartColumn() int { return t.Range.Start.Column }
func (t Token) EndColumn() int   { return t.Range.End.Column }
func (t Token) StartOffset() int { return t.Range.Start.Offset }
func (t Token) EndOffset() int   { return t.Range.End.Offset }
func (t Token) Length() int      { return len(t.Text) }

// IsType reports whether the token matches the given kind.
func (t Token) IsType(tokenType TokenType) bool {
	return t.Type == tokenType
}

// IsOneOfTypes reports whether the token matches any of the given kinds.
func (t Token) IsOneOfTypes(types ...TokenType) bool {
	for _, tokenType := range types {
		if t.Type == tokenType {
			return true
		}
	}
	return false
}

func (t Token) HasChildren() bool { return len(t.Children) > 0 }

// FindChildren returns direct children matching the predicate.
func (t Token) FindChildren(predicate func(Token) bool) []Token {
	var matches []Token
	for _, child := range t.Children {
		if predicate(child) {
			matches = append(matches, child)
		}
	}
	return matches
}

// FindChildrenByType returns direct children of the given kind.
func (t Token) FindChildrenByType(tokenType TokenType) []Token {
	return t.FindChildren(func(token Token) bool { return token.Type == tokenType })
}

// FindDescendants returns all descendants (recursive) matching the predicate.
func (t Token) FindDescendants(predicate func(Token) bool) []Token {
	var matches []Token
	for _, child := range t.Children {
		if predicate(child) {
			matches = append(matches, child)
		}
		matches = append(matches, child.FindDescendants(predicate)...)
	}
	return matches
}

// FindDescendantsByType returns all descendants of the given kind.
func (t Token) FindDescendantsByType(tokenType TokenType) []Token {
	return t.FindDescendants(func(token Token) bool { return token.Type == tokenType })
}

// GetProperty returns a property by key.
func (t Token) GetProperty(key string) (interface{}, bool) {
	value, exists := t.Properties[key]
	return value, exists
}

// GetStringProperty returns a string property by key.
func (t Token) GetStringProperty(key string) (string, bool) {
	if value, exists := t.Properties[key]; exists {
		if str, ok := value.(string); ok {
			return str, true
		}
	}
	return "", false
}

// GetIntProperty returns an int property by key.
func (t Token) GetIntProperty(key string) (int, bool) {
	if value, exists := t.Properties[key]; exists {
		if i, ok := value.(int); ok {
			return i, true
		}
	}
	return 0, false
}

// GetBoolProperty returns a bool property by key.
func (t Token) GetBoolProperty(key string) (bool, bool) {
	if value, exists := t.Properties[key]; exists {
		if b, ok := value.(bool); ok {
			return b, true
		}
	}
	return false, false
}

// String implements fmt.Stringer for debugging.
func (t Token) String() string {
	return fmt.Sprintf("Token{Type: %s, Text: %q, Range: %d:%d-%d:%d}",
		t.Type, truncateText(t.Text, 30),
		t.Range.Start.Line, t.Range.Start.Column,
		t.Range.End.Line, t.Range.End.Column)
}

func (t Token) IsHeading() bool {
	return t.IsOneOfTypes(TokenTypeATXHeading, TokenTypeSetextHeading)
}

func (t Token) IsCodeBlock() bool {
	return t.IsOneOfTypes(TokenTypeCodeFenced, TokenTypeCodeIndented)
}

func (t Token) IsList() bool {
	return t.IsOneOfTypes(TokenTypeList, TokenTypeListItem)
}

func (t Token) IsText() bool {
	return t.IsOneOfTypes(TokenTypeText, TokenTypeATXHeadingText, TokenTypeSetextHeadingText)
}

func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen-3] + "..."
}
