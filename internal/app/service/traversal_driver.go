package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

// TraversalDriver runs the single pre-order walk spec.md §4.3 describes:
// one pass dispatches tokens to Token/Hybrid rules and drives Line rules
// over the raw text, interleaved in source order, then finalises every
// rule and sorts the combined violation stream.
type TraversalDriver struct {
	ctx    *AnalysisContext
	rules  []activeRule
	broken []bool // parallel to rules; set once a rule panics
}

type activeRule struct {
	id       string
	linter   entity.RuleLinter
	severity value.Severity
}

// NewTraversalDriver constructs a driver for one document. rules must
// already be severity-filtered and ordered (spec.md §4.1: "registry must
// preserve a stable order").
func NewTraversalDriver(ctx *AnalysisContext, rules []activeRule) *TraversalDriver {
	return &TraversalDriver{ctx: ctx, rules: rules, broken: make([]bool, len(rules))}
}

// Run executes the traversal. It returns the sorted violation stream, or
// an error if ctx was cancelled mid-traversal (spec.md §5: "if the
// caller's cancellation flag is set, traversal aborts and finalise is not
// called. No violations are emitted from an aborted run.").
func (d *TraversalDriver) Run(ctx context.Context) ([]value.Violation, error) {
	lineMasks := d.computeLineMasks()

	nodesByLine := d.indexNodesByStartLine(d.ctx.root)
	lineCount := d.ctx.LineCount()

	sink := value.NewViolationSink(lineCount)

	nodeLine := 1
	for line := 1; line <= lineCount; line++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Dispatch every node that starts at or before this line and hasn't
		// been dispatched yet (keeps node visits and line visits
		// interleaved in source order, spec.md §4.3 step 5).
		for nodeLine <= line {
			for _, node := range nodesByLine[nodeLine] {
				sink.AddAll(d.dispatchNode(node))
			}
			nodeLine++
		}

		text := d.ctx.LineAt(line)
		mask := lineMasks[line-1]
		for i, r := range d.rules {
			if d.broken[i] {
				continue
			}
			if diag := d.safeOnLine(i, r, line, text, mask); diag != nil {
				sink.Add(*diag)
			}
		}
	}
	// Flush any remaining nodes that start beyond the last physical line
	// (can happen for a zero-length trailing node).
	for l := nodeLine; l <= lineCount+1; l++ {
		for _, node := range nodesByLine[l] {
			sink.AddAll(d.dispatchNode(node))
		}
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	for i, r := range d.rules {
		if d.broken[i] {
			continue
		}
		violations := d.finaliseRule(i, r)
		for j := range violations {
			violations[j] = *violations[j].WithSeverity(r.severity)
		}
		sink.AddAll(violations)
	}

	all := sink.Violations()
	if dropped := sink.Dropped(); dropped > 0 {
		all = append(all, *ruleErrorViolation("violation-sink", fmt.Sprintf("%d violation(s) dropped: location outside document bounds", dropped)))
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Less(&all[j])
	})

	return all, nil
}

// dispatchNode visits one node with every still-healthy rule, returning any
// rule-error diagnostics produced this call.
func (d *TraversalDriver) dispatchNode(node value.Token) []value.Violation {
	d.ctx.observe(node)
	var diagnostics []value.Violation
	for i, r := range d.rules {
		if d.broken[i] {
			continue
		}
		if diag := d.safeOnNode(i, r, node); diag != nil {
			diagnostics = append(diagnostics, *diag)
		}
	}
	return diagnostics
}

// safeOnNode isolates one rule's OnNode panic per spec.md §4.6/§7 ("Rule
// error: ... that rule's partial violations are discarded, one diagnostic
// is appended, other rules continue"). A broken rule is excluded from all
// further dispatch and from Finalize.
func (d *TraversalDriver) safeOnNode(i int, r activeRule, node value.Token) (diag *value.Violation) {
	defer func() {
		if rec := recover(); rec != nil {
			d.broken[i] = true
			diag = ruleErrorViolation(r.id, rec)
		}
	}()
	r.linter.OnNode(node)
	return nil
}

func (d *TraversalDriver) safeOnLine(i int, r activeRule, line int, text string, mask entity.LineMask) (diag *value.Violation) {
	defer func() {
		if rec := recover(); rec != nil {
			d.broken[i] = true
			diag = ruleErrorViolation(r.id, rec)
		}
	}()
	r.linter.OnLine(line, text, mask)
	return nil
}

// finaliseRule calls Finalize with the same isolation guarantee. A panic
// here discards only this rule's Finalize-time violations, not whatever it
// already emitted during traversal.
func (d *TraversalDriver) finaliseRule(i int, r activeRule) (violations []value.Violation) {
	defer func() {
		if rec := recover(); rec != nil {
			violations = nil
		}
	}()
	return r.linter.Finalize()
}

func ruleErrorViolation(ruleID string, recovered interface{}) *value.Violation {
	v := value.NewViolation([]string{"configuration"}, "rule execution error", nil, 1, 1)
	v = v.WithDetail(fmt.Sprintf("%s: %v", ruleID, recovered))
	v = v.WithSeverity(value.SeverityError)
	return v
}

// indexNodesByStartLine walks the tree once in pre-order and groups every
// node (including the root) by the physical line on which it starts, so Run
// can dispatch nodes in pre-order, interleaved with line visits, without
// re-walking per line.
func (d *TraversalDriver) indexNodesByStartLine(root value.Token) map[int][]value.Token {
	index := make(map[int][]value.Token)
	var walk func(value.Token)
	walk = func(node value.Token) {
		line := node.StartLine()
		if line < 1 {
			line = 1
		}
		index[line] = append(index[line], node)
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(root)
	return index
}

// computeLineMasks derives, for every physical line, whether it falls
// inside fenced/indented code, an HTML block, or front matter (spec.md
// §4.2's "boolean mask" supplied alongside OnLine).
func (d *TraversalDriver) computeLineMasks() []entity.LineMask {
	lineCount := d.ctx.LineCount()
	masks := make([]entity.LineMask, lineCount)

	frontEnd := d.ctx.FrontMatterEndLine()
	for i := 0; i < frontEnd && i < lineCount; i++ {
		masks[i].InFrontMatter = true
	}

	var mark func(value.Token)
	mark = func(node value.Token) {
		switch node.Type {
		case value.TokenTypeCodeFenced:
			for l := node.StartLine(); l <= node.EndLine() && l <= lineCount; l++ {
				if l >= 1 {
					masks[l-1].InFencedCode = true
				}
			}
		case value.TokenTypeCodeIndented:
			for l := node.StartLine(); l <= node.EndLine() && l <= lineCount; l++ {
				if l >= 1 {
					masks[l-1].InIndentedCode = true
				}
			}
		case value.TokenTypeHTMLFlow:
			for l := node.StartLine(); l <= node.EndLine() && l <= lineCount; l++ {
				if l >= 1 {
					masks[l-1].InHTMLBlock = true
				}
			}
		}
		for _, child := range node.Children {
			mark(child)
		}
	}
	mark(d.ctx.root)

	return masks
}
