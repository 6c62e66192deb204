package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD047() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD047", "single-trailing-newline"},
		"Files should end with a single newline character",
		[]string{"blank_lines"},
		entity.RuleTypeLine,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md047Linter{ctx: ctx}
		},
	)
}

type md047Linter struct {
	entity.BaseLinter
	ctx entity.AnalysisContext
}

func (l *md047Linter) Finalize() []value.Violation {
	raw := l.ctx.RawText()
	if raw == "" {
		return nil
	}
	lines := l.ctx.Lines()
	lastLine := len(lines)

	if !strings.HasSuffix(raw, "\n") {
		return []value.Violation{*value.NewViolation(
			[]string{"MD047", "single-trailing-newline"},
			"Files should end with a single newline character",
			nil, lastLine, len(lines[lastLine-1])+1,
		)}
	}
	if strings.HasSuffix(raw, "\n\n") {
		return []value.Violation{*value.NewViolation(
			[]string{"MD047", "single-trailing-newline"},
			"Files should end with a single newline character",
			nil, lastLine, 1,
		)}
	}
	return nil
}
