package gomdlint

import (
	"context"
	"testing"
)

// TestLintString_RuleCoverageScenarios exercises the rule families named in
// spec.md §8's mandated scenarios end to end, through the public API. Rule
// internals live in internal/app/service/rules, a package that cannot import
// this one (pkg/gomdlint -> internal/app/service -> internal/app/service/rules
// would cycle), so this is the lowest layer from which a rule's behavior can
// be asserted against its real wiring rather than against a hand-built
// AnalysisContext.
func TestLintString_RuleCoverageScenarios(t *testing.T) {
	scenarios := []lintScenario{
		{
			name:              "MD001 heading level jumps from h1 to h3",
			content:           "# Title\n\n### Subsection\n\nBody text.\n",
			expectError:       false,
			expectViolations:  true,
			expectedRuleNames: []string{"MD001"},
		},
		{
			name: "MD003 inconsistent heading style after atx is established",
			content: "# Title\n\nIntro paragraph.\n\n" +
				"Subheading\n----------\n\nBody text.\n",
			expectError:       false,
			expectViolations:  true,
			expectedRuleNames: []string{"MD003"},
		},
		{
			name: "MD025 front matter title plus a top-level heading",
			content: "---\ntitle: Document Title\n---\n\n" +
				"# Another Top-Level Heading\n\nBody text.\n",
			expectError:       false,
			expectViolations:  true,
			expectedRuleNames: []string{"MD025"},
		},
		{
			name: "MD051 link fragment does not match any heading slug",
			content: "# Real Section\n\n" +
				"See the [missing section](#does-not-exist) for details.\n",
			expectError:       false,
			expectViolations:  true,
			expectedRuleNames: []string{"MD051"},
		},
		{
			name: "MD053 unused link reference definition",
			content: "# Title\n\n" +
				"This paragraph does not use the reference below.\n\n" +
				"[unused]: https://example.com \"Unused Reference\"\n",
			expectError:       false,
			expectViolations:  true,
			expectedRuleNames: []string{"MD053"},
		},
		{
			name: "MD013 line exceeds the default eighty character limit",
			content: "# Title\n\n" +
				"This line is carefully padded with filler words so that it runs past the " +
				"conventional eighty column default line length limit markdownlint enforces.\n",
			expectError:       false,
			expectViolations:  true,
			expectedRuleNames: []string{"MD013"},
		},
	}

	ctx := context.Background()

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			result, err := LintString(ctx, scenario.content)
			if scenario.expectError {
				if err == nil {
					t.Fatalf("expected an error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertLintResult(t, result, scenario)
		})
	}
}
