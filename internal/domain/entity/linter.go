package entity

import "github.com/gomdlint/gomdlint/internal/domain/value"

// LineMask tells a Line/Hybrid rule what kind of content the current
// physical line falls inside, so it can skip fenced/indented code, HTML
// blocks, and front matter (spec.md §4.2).
type LineMask struct {
	InFencedCode  bool
	InIndentedCode bool
	InHTMLBlock   bool
	InFrontMatter bool
}

// InCode reports whether the line is inside any kind of code block.
func (m LineMask) InCode() bool { return m.InFencedCode || m.InIndentedCode }

// RuleLinter is the per-document instance a rule's factory produces
// (spec.md §4.2). The traversal driver calls OnNode for each node visited
// in pre-order, OnLine once per physical line in order, and Finalize once
// traversal completes. A rule implements only the methods its RuleType
// needs; the others are no-ops via BaseLinter.
type RuleLinter interface {
	OnNode(node value.Token)
	OnLine(lineNumber int, text string, mask LineMask)
	Finalize() []value.Violation
}

// BaseLinter gives rule implementations no-op defaults so a Token rule only
// has to implement OnNode, a Line rule only OnLine, and so on — the
// "capability set" dispatch spec.md §9 asks for, realised as embedding
// rather than inheritance.
type BaseLinter struct{}

func (BaseLinter) OnNode(value.Token)                  {}
func (BaseLinter) OnLine(int, string, LineMask)        {}
func (BaseLinter) Finalize() []value.Violation         { return nil }

// AnalysisContext is the minimal read-only surface a rule factory needs
// from service.AnalysisContext (spec.md §3). It is declared here, not in
// service, so rule implementations (package rules) and rule metadata
// (package entity) can depend on it without an import cycle back to
// service, which depends on entity for RuleMetadata/RuleLinter.
type AnalysisContext interface {
	// Filename is diagnostic only; no I/O is performed against it.
	Filename() string

	// Lines returns the 1-indexed-conceptually physical lines of the raw
	// source (index 0 is line 1).
	Lines() []string

	// RawText returns the complete raw source as it was given to the
	// engine (including front matter, if any).
	RawText() string

	// NodesByType returns, in document order, every node of the given
	// kind. Populated lazily and cached (spec.md §3 "Node-type caches").
	NodesByType(kind value.TokenType) []value.Token

	// Root returns the document's root node.
	Root() value.Token

	// FrontMatterKeys returns the top-level keys found in a leading
	// YAML/TOML front-matter block, and whether one was present.
	FrontMatterKeys() ([]string, bool)

	// FrontMatterEndLine returns the 1-based line number after which the
	// logical document begins (0 if there is no front matter).
	FrontMatterEndLine() int

	// Settings returns the resolved option bag for the given rule id.
	Settings(ruleID string) map[string]interface{}
}
