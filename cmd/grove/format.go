package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// formatTermsText formats CLITerm results as aligned columns.
func formatTermsText(w io.Writer, terms []CLITerm) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tNAMESPACE\tSYNONYMS")
	for _, t := range terms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Namespace, strings.Join(t.Synonyms, "; "))
	}
	tw.Flush()
}

// formatResolutionsText formats CLIResolution results as aligned columns.
func formatResolutionsText(w io.Writer, resolutions []CLIResolution) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "QUERY\tCANDIDATES")
	for _, res := range resolutions {
		fmt.Fprintf(tw, "%s\t%s\n", res.Query, strings.Join(res.Candidates, "; "))
	}
	tw.Flush()
}

// formatStringsText prints one value per line.
func formatStringsText(w io.Writer, values []string) {
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
}

// formatIndexSummaryText prints the index run summary.
func formatIndexSummaryText(w io.Writer, s CLIIndexSummary) {
	fmt.Fprintf(w, "Database: %s\n", s.Database)
	fmt.Fprintf(w, "Terms: %d\n", s.Terms)
	fmt.Fprintf(w, "Annotations: %d\n", s.Annotations)
	fmt.Fprintf(w, "Housekeeping genes: %d\n", s.Housekeeping)
	fmt.Fprintf(w, "Identifier mappings: %d\n", s.Mappings)
	fmt.Fprintf(w, "Elapsed: %.2fs\n", s.Elapsed)
}

// outputResultText dispatches to the appropriate text formatter based on
// the result type. It writes to os.Stdout.
func outputResultText(result CLIResult) error {
	w := io.Writer(os.Stdout)

	switch v := result.Results.(type) {
	case []CLITerm:
		formatTermsText(w, v)
	case []CLIResolution:
		formatResolutionsText(w, v)
	case []string:
		formatStringsText(w, v)
	case CLIIndexSummary:
		formatIndexSummaryText(w, v)
	case nil:
		// No output for nil results.
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so
// RunE can propagate it to Cobra. In JSON mode the error is written to
// stdout as a CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
