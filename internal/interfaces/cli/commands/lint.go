package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gomdlint/gomdlint/internal/app/service"
	cliout "github.com/gomdlint/gomdlint/internal/interfaces/cli/output"
	"github.com/gomdlint/gomdlint/pkg/gomdlint"
	"github.com/spf13/cobra"
)

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Lint markdown files",
		Long: `Lint one or more markdown files against configured rules.
		
Examples:
  gomdlint lint README.md
  gomdlint lint docs/*.md
  gomdlint lint --config .markdownlint.json *.md
  gomdlint lint --format json --output results.json docs/`,
		Args: cobra.MinimumNArgs(0),
		RunE: runLint,
	}

	// Command-specific flags
	cmd.Flags().StringSlice("ignore", []string{}, "Ignore files matching these patterns")
	cmd.Flags().Bool("fix", false, "Automatically fix violations where possible")
	cmd.Flags().Bool("stdin", false, "Read from stdin instead of files")
	cmd.Flags().String("stdin-name", "stdin", "Name for stdin input")
	cmd.Flags().Bool("dot", false, "Include hidden files and directories")

	return cmd
}

func runLint(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	log, correlationID := newInvocationLogger("lint")
	defer log.WithField("correlation_id", correlationID).Debug("invocation finished")

	// Parse flags
	configFile, _ := cmd.Flags().GetString("config")
	noConfig, _ := cmd.Flags().GetBool("no-config")
	outputFile, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	color, _ := cmd.Flags().GetBool("color")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	fix, _ := cmd.Flags().GetBool("fix")
	stdin, _ := cmd.Flags().GetBool("stdin")
	stdinName, _ := cmd.Flags().GetString("stdin-name")
	ignorePaths, _ := cmd.Flags().GetStringSlice("ignore")
	includeDot, _ := cmd.Flags().GetBool("dot")

	// Progress tracking
	startTime := time.Now()

	themedOutput := cliout.NewThemedOutput()

	// In test mode, use the command's output writers
	if testing.Testing() {
		themedOutput = themedOutput.WithWriter(cmd.OutOrStdout()).WithErrorWriter(cmd.ErrOrStderr())
	}

	// Apply color setting
	themedOutput = themedOutput.WithColors(color)

	if !quiet && (format == "" || format == "default") {
		themedOutput.Processing("Starting markdown linting...")
	}

	// Prepare lint options
	options := gomdlint.LintOptions{
		Config:             make(map[string]interface{}),
		NoInlineConfig:     false,
		ResultVersion:      3,
		HandleRuleFailures: true,
	}

	// Load configuration if specified
	if !noConfig {
		configSource, err := loadConfigurationSourceFromLint(configFile)
		if err != nil && configFile != "" {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if !configSource.IsDefault {
			options.Config = configSource.Config

			// Show which config is being used in verbose mode
			if verbose && !quiet && (format == "" || format == "default") {
				if configSource.IsHierarchy {
					themedOutput.Info("Using hierarchical configuration from %d sources", len(configSource.Sources))
					for _, source := range configSource.Sources {
						themedOutput.Info("  - %s (%s)", source.Path, source.Type)
					}
				} else if len(configSource.Sources) > 0 {
					themedOutput.Info("Using configuration from: %s", configSource.Sources[0].Path)
				}
			}
		}
	}

	// Handle stdin input
	if stdin {
		content, err := readStdin()
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		options.Strings = map[string]string{stdinName: content}
	} else {
		// Collect files to lint
		files, err := collectFiles(args, ignorePaths, includeDot)
		if err != nil {
			return fmt.Errorf("failed to collect files: %w", err)
		}

		if len(files) == 0 {
			if !quiet {
				fmt.Fprintf(os.Stderr, "No markdown files found.\n")
			}
			return nil
		}

		options.Files = files

		if verbose && (format == "" || format == "default") {
			themedOutput.FileFound("Found %d files to lint", len(files))
		}
	}

	// Perform linting
	result, err := gomdlint.Lint(ctx, options)
	if err != nil {
		return fmt.Errorf("linting failed: %w", err)
	}

	// Handle auto-fixing
	if fix && result.TotalViolations > 0 {
		fixedCount, err := performAutoFix(result, options)
		if err != nil {
			return fmt.Errorf("auto-fix failed: %w", err)
		}

		if !quiet && fixedCount > 0 && (format == "" || format == "default") {
			themedOutput.Success("Fixed %d violations", fixedCount)
		}

		// Re-lint to get updated results
		result, err = gomdlint.Lint(ctx, options)
		if err != nil {
			return fmt.Errorf("re-linting after fix failed: %w", err)
		}
	}

	// Output results (unless in quiet mode and no output file specified)
	if !quiet || outputFile != "" {
		err = outputResults(result, outputFile, format, color)
		if err != nil {
			return fmt.Errorf("failed to output results: %w", err)
		}
	}

	// Print summary (only for default format to avoid corrupting structured output)
	if !quiet && (format == "" || format == "default") {
		duration := time.Since(startTime)
		printSummary(themedOutput, result, duration, verbose)
	}

	// Return non-zero exit code if violations found
	if result.TotalErrors > 0 {
		// In tests, don't call os.Exit() as it would terminate the test process
		// Tests should check for violations in the result rather than relying on error returns
		if !testing.Testing() {
			os.Exit(1)
		}
	}

	return nil
}

// collectFiles gathers markdown files from the given arguments.
func collectFiles(args []string, ignorePaths []string, includeDot bool) ([]string, error) {
	var files []string
	ignoreMap := make(map[string]bool)

	for _, pattern := range ignorePaths {
		ignoreMap[pattern] = true
	}

	// If no args provided, default to current directory
	if len(args) == 0 {
		args = []string{"."}
	}

	for _, arg := range args {
		// Check if it's a glob pattern (doublestar.FilepathGlob also
		// understands "**" for recursive matches, unlike filepath.Glob)
		if strings.ContainsAny(arg, "*?[") {
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
			}

			for _, match := range matches {
				if fileInfo, err := os.Stat(match); err == nil && !fileInfo.IsDir() {
					if isMarkdownFile(match) && !shouldIgnore(match, ignoreMap) {
						files = append(files, match)
					}
				}
			}
			continue
		}

		// Handle single file case
		if fileInfo, err := os.Stat(arg); err == nil && !fileInfo.IsDir() {
			if isMarkdownFile(arg) {
				files = append(files, arg)
			}
			continue
		}

		// Use a more direct approach since filepath.Walk seems to have issues in test environment
		var walkFunc func(dir string) error
		walkFunc = func(dir string) error {
			entries, err := os.ReadDir(dir)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				path := filepath.Join(dir, entry.Name())

				// Skip ignored paths
				if shouldIgnore(path, ignoreMap) {
					continue
				}

				// Skip hidden files/dirs unless requested
				if !includeDot && strings.HasPrefix(entry.Name(), ".") {
					continue
				}

				if entry.IsDir() {
					// Recursively walk subdirectories
					if err := walkFunc(path); err != nil {
						// Continue with other files/directories
					}
				} else if isMarkdownFile(path) {
					files = append(files, path)
				}
			}
			return nil
		}

		err := walkFunc(arg)

		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// isMarkdownFile checks if a file is a markdown file based on extension.
func isMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".md" || ext == ".markdown" || ext == ".mkd" || ext == ".mdown"
}

// shouldIgnore checks if a path matches any ignore pattern. Each pattern is
// matched as a doublestar glob against the full slash-separated path and is
// also tested as a plain substring of it, so a directory name like
// "node_modules" ignores it anywhere in the tree (as well as any path that
// merely contains that text), while a pattern like "docs/**/draft-*.md"
// matches structurally.
func shouldIgnore(path string, ignoreMap map[string]bool) bool {
	cleanPath := filepath.ToSlash(path)
	for pattern := range ignoreMap {
		if ok, err := doublestar.Match(pattern, cleanPath); err == nil && ok {
			return true
		}
		if strings.Contains(cleanPath, pattern) {
			return true
		}
	}
	return false
}

// loadConfiguration loads configuration from a file.
func loadConfiguration(configFile string) (map[string]interface{}, error) {
	if configFile == "" {
		// Try to find a default config file
		possibleConfigs := []string{
			".markdownlint.json",
			".markdownlint.yaml",
			".markdownlint.yml",
			"markdownlint.json",
			"markdownlint.yaml",
			"markdownlint.yml",
		}

		for _, config := range possibleConfigs {
			if _, err := os.Stat(config); err == nil {
				configFile = config
				break
			}
		}

		if configFile == "" {
			return nil, nil // No config file found
		}
	}

	// Read and parse config file
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var config map[string]interface{}

	// Try JSON first
	if err := json.Unmarshal(data, &config); err != nil {
		// TODO: Try YAML if JSON fails
		return nil, fmt.Errorf("failed to parse config file as JSON: %w", err)
	}

	return config, nil
}

// readStdin reads content from stdin.
func readStdin() (string, error) {
	var content strings.Builder
	buffer := make([]byte, 1024)

	for {
		n, err := os.Stdin.Read(buffer)
		if n > 0 {
			content.Write(buffer[:n])
		}
		if err != nil {
			break
		}
	}

	return content.String(), nil
}

// performAutoFix attempts to automatically fix violations using the robust FixEngine.
func performAutoFix(result *gomdlint.LintResult, options gomdlint.LintOptions) (int, error) {
	// Create fix options
	fixOptions := service.NewFixOptions()
	fixOptions.CreateBackups = true
	fixOptions.ValidateAfterFix = true
	fixOptions.AtomicOperations = true
	fixOptions.DryRun = false
	fixOptions.StopOnError = false
	fixOptions.ReportProgress = false // CLI handles progress reporting separately

	// Create fix engine
	fixEngine := service.NewFixEngine(fixOptions)

	violationsByFile := make(map[string][]service.FixViolation, len(result.Results))
	for filename, violations := range result.Results {
		vs := make([]service.FixViolation, len(violations))
		for i, v := range violations {
			vs[i] = service.FixViolation{RuleNames: v.RuleNames, LineNumber: v.LineNumber}
		}
		violationsByFile[filename] = vs
	}

	// Apply fixes
	fixResult, err := fixEngine.FixFiles(context.Background(), violationsByFile)
	if err != nil {
		return 0, fmt.Errorf("fix engine failed: %w", err)
	}

	return fixResult.ViolationsFixed, nil
}

// outputResults outputs the linting results in the specified format.
func outputResults(result *gomdlint.LintResult, outputFile, format string, color bool) error {
	var output string
	var err error

	switch format {
	case "json":
		output, err = result.ToJSON()
	case "sarif":
		output, err = formatAsSARIF(result)
	case "junit":
		output, err = formatAsJUnit(result)
	case "checkstyle":
		output, err = formatAsCheckstyle(result)
	case "default", "":
		output = result.ToFormattedString(true) // Use aliases
		if color && output != "" {
			output = addColorCodes(output)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	if err != nil {
		return err
	}

	// Output to file or stdout
	if outputFile != "" {
		// Always create the output file, even if output is empty
		return os.WriteFile(outputFile, []byte(output), 0644)
	} else if output != "" {
		fmt.Print(output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Println()
		}
	}

	return nil
}

// formatAsSARIF formats results as a SARIF 2.1.0 log.
func formatAsSARIF(result *gomdlint.LintResult) (string, error) {
	var buf bytes.Buffer
	if err := cliout.WriteSARIF(&buf, result, gomdlint.Version); err != nil {
		return "", fmt.Errorf("failed to write SARIF: %w", err)
	}
	return buf.String(), nil
}

// formatAsJUnit produces no JUnit XML; it returns an error for every result.
func formatAsJUnit(result *gomdlint.LintResult) (string, error) {
	// TODO: Implement JUnit XML formatting
	return "", fmt.Errorf("JUnit format not yet implemented")
}

// formatAsCheckstyle produces no Checkstyle XML; it returns an error for every result.
func formatAsCheckstyle(result *gomdlint.LintResult) (string, error) {
	// TODO: Implement Checkstyle XML formatting
	return "", fmt.Errorf("checkstyle format not yet implemented")
}

// addColorCodes adds ANSI color codes to the output.
func addColorCodes(output string) string {
	// Simple color coding - in practice would be more sophisticated
	colored := strings.ReplaceAll(output, " error ", " \033[31merror\033[0m ")
	colored = strings.ReplaceAll(colored, " warning ", " \033[33mwarning\033[0m ")
	return colored
}

// printSummary prints a summary of the linting results.
func printSummary(themedOutput *cliout.ThemedOutput, result *gomdlint.LintResult, duration time.Duration, verbose bool) {
	if result.TotalViolations == 0 {
		themedOutput.Success("No violations found in %d files (%.2fs)",
			result.TotalFiles, duration.Seconds())
		return
	}

	themedOutput.Error("Found %d violations in %d files (%.2fs)",
		result.TotalViolations, result.TotalFiles, duration.Seconds())

	if verbose {
		themedOutput.PlainError("   Errors: %d, Warnings: %d\n",
			result.TotalErrors, result.TotalWarnings)
	}
}

// loadConfigurationSourceFromLint loads configuration source using XDG-aware system.
// This now uses the same logic as the config command for consistency.
func loadConfigurationSourceFromLint(configFile string) (*ConfigurationSource, error) {
	return loadConfigurationSourceShared(configFile)
}
