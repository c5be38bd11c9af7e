// Package util provides report rendering for coverage results.
package util

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// RenderReport writes the human-readable coverage report to w. Sections
// appear in a fixed order so that repeated runs over the same input tree
// produce byte-identical output.
func RenderReport(w io.Writer, report *CoverageReport) {
	fmt.Fprintf(w, "Found %s in source\n", countNoun(report.CodeKeyCount, "translation key", "translation keys"))
	fmt.Fprintf(w, "Reference locale %q: %s\n", report.Reference, countNoun(report.ReferenceCount, "key", "keys"))

	if len(report.Missing) > 0 {
		fmt.Fprintf(w, "\nMissing translations (%d):\n", len(report.Missing))
		for _, ref := range report.Missing {
			fmt.Fprintf(w, "  %s (%s:%d)\n", ref.Key, ref.File, ref.Line)
		}
	}
	if len(report.Known) > 0 {
		fmt.Fprintf(w, "\nKnown missing translations (%d):\n", len(report.Known))
		for _, ref := range report.Known {
			fmt.Fprintf(w, "  %s (%s:%d)\n", ref.Key, ref.File, ref.Line)
		}
	}
	if len(report.Unused) > 0 {
		fmt.Fprintf(w, "\nUnused translations (%d):\n", len(report.Unused))
		for _, key := range report.Unused {
			fmt.Fprintf(w, "  %s\n", key)
		}
	}
	if len(report.PerLocale) > 0 {
		fmt.Fprintf(w, "\nLocale coverage:\n")
		for _, locale := range report.Locales() {
			c := report.PerLocale[locale]
			fmt.Fprintf(w, "  %-6s %3d%% (%d/%d)\n", locale, c.Percent, c.Present, c.Total)
		}
	}

	fmt.Fprintf(w, "\n%s\n", FormatSummary(report))
}

// RenderReportJSON writes the coverage report to w as indented JSON.
func RenderReportJSON(w io.Writer, report *CoverageReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// FormatSummary returns the final one-line summary of a coverage report.
// Keys suppressed by a baseline do not count as missing.
func FormatSummary(report *CoverageReport) string {
	parts := []string{
		countNoun(report.CodeKeyCount, "key", "keys"),
		fmt.Sprintf("%d missing", len(report.Missing)),
		fmt.Sprintf("%d unused", len(report.Unused)),
		countNoun(len(report.PerLocale), "locale", "locales"),
	}
	return strings.Join(parts, ", ")
}

// FormatCatalogStatLine formats one-line statistics for a parsed catalog.
// Only non-zero categories are shown.
func FormatCatalogStatLine(doc *CatalogDoc) string {
	parts := []string{countNoun(doc.Entries, "entry", "entries")}
	if doc.Keyed > 0 {
		parts = append(parts, fmt.Sprintf("%d keyed", doc.Keyed))
	}
	if n := doc.Entries - doc.Keyed; n > 0 {
		parts = append(parts, fmt.Sprintf("%d without context", n))
	}
	return strings.Join(parts, ", ")
}

// FormatLocaleLine formats one line of locale listing output.
func FormatLocaleLine(locale string, keys, files int) string {
	return fmt.Sprintf("%s\t%s in %s",
		locale,
		countNoun(keys, "key", "keys"),
		countNoun(files, "catalog file", "catalog files"))
}

func countNoun(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
