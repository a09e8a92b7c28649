package error_helpers

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// HclDiagsToError converts error diags into a single prefixed error, or
// nil if there are none.
func HclDiagsToError(prefix string, diags hcl.Diagnostics) error {
	if !diags.HasErrors() {
		return nil
	}
	errStrings := diagsToString(diags, hcl.DiagError)

	if len(errStrings) > 0 {
		res := strings.Join(errStrings, "\n")
		if len(errStrings) > 1 {
			res += "\n"
		}
		return fmt.Errorf("%s: %s", prefix, res)
	}

	return diags.Errs()[0]
}

// HclDiagsToWarnings converts warning diags into a list of warning strings
func HclDiagsToWarnings(diags hcl.Diagnostics) []string {
	return diagsToString(diags, hcl.DiagWarning)
}

func diagsToString(diags hcl.Diagnostics, severity hcl.DiagnosticSeverity) []string {
	// de-dupe messages - we may get the same message for multiple ranges
	var msgMap = make(map[string]struct{})
	var strs []string
	for _, diag := range diags {
		if diag.Severity != severity {
			continue
		}
		str := diag.Summary
		if diag.Detail != "" {
			str += fmt.Sprintf(": %s", diag.Detail)
		}

		if _, ok := msgMap[str]; !ok {
			msgMap[str] = struct{}{}
			// now add in the subject and add to the output array
			if diag.Subject != nil && len(diag.Subject.Filename) > 0 {
				str += fmt.Sprintf("\n(%s)", diag.Subject.String())
			}

			strs = append(strs, str)
		}
	}

	return strs
}
