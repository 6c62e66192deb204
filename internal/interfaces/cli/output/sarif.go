package output

import (
	"io"
	"path/filepath"
	"sort"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/gomdlint/gomdlint/pkg/gomdlint"
)

const (
	toolName = "gomdlint"
	toolURI  = "https://github.com/gomdlint/gomdlint"
)

// sarifRule pairs a rule id with one violation carrying it, used to seed the
// SARIF rule catalog with a description and help link.
type sarifRule struct {
	id          string
	description string
	information string
}

// WriteSARIF renders a lint result as a SARIF 2.1.0 log, the format GitHub
// code scanning and most CI annotators expect.
func WriteSARIF(w io.Writer, result *gomdlint.LintResult, toolVersion string) error {
	report := sarif.NewReport()
	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	if toolVersion != "" {
		run.Tool.Driver.WithVersion(toolVersion)
	}

	rules := make(map[string]sarifRule)
	files := make(map[string]struct{})

	filenames := make([]string, 0, len(result.Results))
	for filename := range result.Results {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)

	for _, filename := range filenames {
		files[filepath.ToSlash(filename)] = struct{}{}
		for _, v := range result.Results[filename] {
			id := ruleID(v)
			if _, ok := rules[id]; !ok {
				rules[id] = sarifRule{id: id, description: v.RuleDescription, information: v.RuleInformation}
			}
		}
	}

	ruleIDs := make([]string, 0, len(rules))
	for id := range rules {
		ruleIDs = append(ruleIDs, id)
	}
	sort.Strings(ruleIDs)

	for _, id := range ruleIDs {
		r := rules[id]
		rule := run.AddRule(id)
		if r.description != "" {
			rule.WithShortDescription(sarif.NewMultiformatMessageString().WithText(r.description))
		}
		if r.information != "" {
			rule.WithHelpURI(r.information)
		}
	}

	fileList := make([]string, 0, len(files))
	for f := range files {
		fileList = append(fileList, f)
	}
	sort.Strings(fileList)
	for _, f := range fileList {
		run.AddDistinctArtifact(f)
	}

	for _, filename := range filenames {
		filePath := filepath.ToSlash(filename)
		for _, v := range result.Results[filename] {
			res := sarif.NewRuleResult(ruleID(v)).
				WithMessage(sarif.NewTextMessage(v.RuleDescription)).
				WithLevel(severityToSARIFLevel(v.Severity))

			region := sarif.NewRegion().WithStartLine(maxInt(v.LineNumber, 1))
			if len(v.ErrorRange) >= 1 && v.ErrorRange[0] > 0 {
				region.WithStartColumn(v.ErrorRange[0])
			}

			physicalLocation := sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewSimpleArtifactLocation(filePath)).
				WithRegion(region)

			res.WithLocations([]*sarif.Location{
				sarif.NewLocationWithPhysicalLocation(physicalLocation),
			})

			run.AddResult(res)
		}
	}

	report.AddRun(run)
	return report.PrettyWrite(w)
}

// ruleID prefers the first (canonical) rule name; a violation carries its
// aliases as the rest of RuleNames.
func ruleID(v gomdlint.Violation) string {
	if len(v.RuleNames) == 0 {
		return "unknown"
	}
	return v.RuleNames[0]
}

func severityToSARIFLevel(severity string) string {
	switch severity {
	case "error":
		return "error"
	case "warn", "warning":
		return "warning"
	default:
		return "note"
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
