package service

import (
	"context"
	"sort"
	"unicode/utf8"

	"github.com/gomdlint/gomdlint/internal/app/service/parser"
	"github.com/gomdlint/gomdlint/internal/domain/value"
	"github.com/gomdlint/gomdlint/internal/shared/functional"
)

// LinterService is the top-level entry point tying together parsing,
// configuration resolution and rule dispatch for a whole linting run
// (spec.md §1's "lint a set of documents against a resolved rule set").
type LinterService struct {
	options  *value.LintOptions
	registry *RuleRegistry
	resolver *ConfigResolver
	parser   *parser.GoldmarkAdapter
	files    *FileManager
}

// NewLinterService builds a LinterService from public lint options. The
// rule registry and parser are constructed once and reused across every
// file/string in the run.
func NewLinterService(options *value.LintOptions) (*LinterService, error) {
	if options == nil {
		options = value.NewLintOptions()
	}
	registry := NewRuleRegistry()
	return &LinterService{
		options:  options,
		registry: registry,
		resolver: NewConfigResolver(registry),
		parser:   parser.NewGoldmarkAdapter(),
		files:    NewFileManager(nil),
	}, nil
}

// Lint parses and lints every file and string configured on the service,
// returning an aggregate LintResult keyed by filename/identifier.
func (s *LinterService) Lint(ctx context.Context) functional.Result[*value.LintResult] {
	configView := s.resolver.Resolve(s.options.Config)
	result := value.NewLintResult()

	identifiers := make([]string, 0, len(s.options.Files)+len(s.options.Strings))
	sources := make(map[string]string, len(identifiers))

	for _, filename := range s.options.Files {
		content, err := s.files.ReadFile(ctx, filename)
		if err != nil {
			configView.AddDiagnostic("failed to read " + filename + ": " + err.Error())
			continue
		}
		identifiers = append(identifiers, filename)
		sources[filename] = content
	}

	stringKeys := make([]string, 0, len(s.options.Strings))
	for identifier := range s.options.Strings {
		stringKeys = append(stringKeys, identifier)
	}
	sort.Strings(stringKeys)
	for _, identifier := range stringKeys {
		identifiers = append(identifiers, identifier)
		sources[identifier] = s.options.Strings[identifier]
	}

	filesSet := make(map[string]bool, len(s.options.Files))
	for _, filename := range s.options.Files {
		filesSet[filename] = true
	}

	for _, identifier := range identifiers {
		fileView := configView
		if filesSet[identifier] {
			fileView = s.resolver.ResolveForFile(configView, identifier)
		}

		violations, err := s.lintOne(ctx, identifier, sources[identifier], fileView)
		if err != nil {
			return functional.Err[*value.LintResult](err)
		}
		result.AddViolations(identifier, violations)
	}

	if diags := configView.Diagnostics(); len(diags) > 0 {
		result.AddViolations("configuration", configurationViolations(diags))
	}

	return functional.Ok(result)
}

func (s *LinterService) lintOne(ctx context.Context, identifier, content string, configView *value.ConfigView) ([]value.Violation, error) {
	source := []byte(content)

	if !utf8.Valid(source) {
		v := value.NewViolation(
			[]string{"input"},
			"Input error",
			nil, 1, 1,
		).WithDetail(identifier + ": document is not valid UTF-8")
		return []value.Violation{*v}, nil
	}

	root := s.parser.Parse(source)

	analysisCtx := NewAnalysisContext(identifier, source, root, configView)

	activeRules := s.registry.BuildActiveRules(analysisCtx)
	driver := NewTraversalDriver(analysisCtx, activeRules)
	return driver.Run(ctx)
}

// configurationViolations turns ConfigResolver/ConfigView diagnostics into
// synthetic violations under a stable pseudo-rule id, so malformed
// configuration surfaces through the normal violation channel instead of
// aborting the run (spec.md §7's "Config error" never fails the lint).
func configurationViolations(diagnostics []string) []value.Violation {
	violations := make([]value.Violation, 0, len(diagnostics))
	for _, msg := range diagnostics {
		v := value.NewViolation(
			[]string{"configuration"},
			"Configuration error",
			nil, 0, 0,
		).WithDetail(msg)
		violations = append(violations, *v)
	}
	return violations
}
