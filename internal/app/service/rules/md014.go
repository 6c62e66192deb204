package rules

import (
	"strings"

	"github.com/gomdlint/gomdlint/internal/domain/entity"
	"github.com/gomdlint/gomdlint/internal/domain/value"
)

func MD014() *entity.RuleMetadata {
	return mustMeta(
		[]string{"MD014", "commands-show-output"},
		"Dollar signs used before commands without showing output",
		[]string{"code"},
		entity.RuleTypeToken,
		value.SeverityError,
		nil,
		func(settings map[string]interface{}, ctx entity.AnalysisContext) entity.RuleLinter {
			return &md014Linter{}
		},
	)
}

type md014Linter struct {
	entity.BaseLinter
	violations []value.Violation
}

func (l *md014Linter) OnNode(node value.Token) {
	if node.Type != value.TokenTypeCodeFenced && node.Type != value.TokenTypeCodeIndented {
		return
	}
	lang, _ := node.GetStringProperty("language")
	if lang != "" && !isShellLanguage(lang) {
		return
	}

	lines := strings.Split(strings.TrimRight(node.Text, "\n"), "\n")
	var nonEmpty []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonEmpty = append(nonEmpty, line)
		}
	}
	if len(nonEmpty) == 0 {
		return
	}
	for _, line := range nonEmpty {
		if !strings.HasPrefix(strings.TrimLeft(line, " \t"), "$ ") {
			return
		}
	}

	l.violations = append(l.violations, *value.NewViolation(
		[]string{"MD014", "commands-show-output"},
		"Dollar signs used before commands without showing output",
		nil, node.StartLine(), node.StartColumn(),
	))
}

func isShellLanguage(lang string) bool {
	switch strings.ToLower(lang) {
	case "bash", "sh", "shell", "console", "zsh", "ksh":
		return true
	}
	return false
}

func (l *md014Linter) Finalize() []value.Violation { return l.violations }
