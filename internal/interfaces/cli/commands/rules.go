package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomdlint/gomdlint/internal/app/service"
	"github.com/gomdlint/gomdlint/internal/domain/value"
	"github.com/spf13/cobra"
)

// NewRulesCommand creates the rules command for rule management and information.
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Rule management and information",
		Long:  `Display information about available linting rules, their configuration, and status.`,
	}

	cmd.AddCommand(
		newRulesListCommand(),
		newRulesInfoCommand(),
		newRulesTagsCommand(),
	)

	return cmd
}

func newRulesListCommand() *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all available rules",
		Long:  `Display a list of all available linting rules with their status and descriptions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRules(tag)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Filter by tag")

	return cmd
}

func newRulesInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <rule-name>",
		Short: "Show detailed information about a specific rule",
		Long:  `Display detailed information about a specific rule including its configuration options.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showRuleInfo(args[0])
		},
	}
}

func newRulesTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List all rule tags",
		Long:  `Display all available rule tags with the number of rules in each tag.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTags()
		},
	}
}

func listRules(tag string) error {
	registry := service.NewRuleRegistry()
	all := registry.All()
	if tag != "" {
		all = registry.ByTag(tag)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })

	fmt.Printf("Available Rules (%d total):\n\n", len(all))

	for _, rule := range all {
		names := rule.Names()
		aliases := ""
		if len(names) > 1 {
			aliases = " (" + strings.Join(names[1:], ", ") + ")"
		}

		status := "enabled"
		if rule.DefaultSeverity() == value.SeverityOff {
			status = "disabled"
		}

		fmt.Printf("  [%s] %s%s\n", status, names[0], aliases)
		fmt.Printf("    %s\n", rule.Description())

		if tags := rule.Tags(); len(tags) > 0 {
			fmt.Printf("    Tags: %s\n", strings.Join(tags, ", "))
		}

		fmt.Println()
	}

	return nil
}

func showRuleInfo(ruleName string) error {
	registry := service.NewRuleRegistry()
	rule := registry.ByID(ruleName)
	if rule == nil {
		return fmt.Errorf("rule '%s' not found", ruleName)
	}

	fmt.Printf("Rule Information: %s\n", rule.ID())
	fmt.Printf("=================%s\n", strings.Repeat("=", len(rule.ID())))
	fmt.Println()

	fmt.Printf("Names: %s\n", strings.Join(rule.Names(), ", "))
	fmt.Printf("Description: %s\n", rule.Description())

	if tags := rule.Tags(); len(tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(tags, ", "))
	}

	fmt.Printf("Type: %s\n", rule.Type())

	status := "Enabled by default"
	if rule.DefaultSeverity() == value.SeverityOff {
		status = "Disabled by default"
	} else {
		fmt.Printf("Default severity: %s\n", rule.DefaultSeverity())
	}
	fmt.Printf("Status: %s\n", status)

	if settings := rule.DefaultSettings(); len(settings) > 0 {
		fmt.Println("\nDefault Configuration:")
		for key, value := range settings {
			fmt.Printf("  %s: %v\n", key, value)
		}
	}

	if info := rule.Information(); info != nil {
		fmt.Printf("\nMore Information: %s\n", info.String())
	}

	return nil
}

func listTags() error {
	registry := service.NewRuleRegistry()
	all := registry.All()

	tagCounts := make(map[string]int)
	for _, rule := range all {
		for _, tag := range rule.Tags() {
			tagCounts[tag]++
		}
	}

	var tags []string
	for tag := range tagCounts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	fmt.Printf("Available Tags (%d total):\n\n", len(tags))

	for _, tag := range tags {
		count := tagCounts[tag]
		fmt.Printf("  %-20s (%d rules)\n", tag, count)

		tagRules := registry.ByTag(tag)
		if len(tagRules) > 0 {
			var ruleNames []string
			for i, rule := range tagRules {
				if i >= 5 {
					ruleNames = append(ruleNames, "...")
					break
				}
				ruleNames = append(ruleNames, rule.ID())
			}
			fmt.Printf("    Rules: %s\n", strings.Join(ruleNames, ", "))
		}
		fmt.Println()
	}

	return nil
}
