// Package util provides coverage comparison between code keys and catalogs.
package util

import (
	"sort"
)

// LocaleCoverage is one locale's key coverage against the code key set.
type LocaleCoverage struct {
	Present int `json:"present"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// CoverageReport is the outcome of one analyzer run. Missing and Unused are
// computed against the one reference locale; every locale's percentage is
// computed against the same code key set, never against another locale.
type CoverageReport struct {
	CodeKeyCount   int                       `json:"code_keys"`
	Reference      string                    `json:"reference"`
	ReferenceCount int                       `json:"reference_keys"`
	Missing        []KeyReference            `json:"missing"`
	Known          []KeyReference            `json:"known_missing,omitempty"`
	Unused         []string                  `json:"unused"`
	PerLocale      map[string]LocaleCoverage `json:"locales"`
}

// Compare builds the coverage report: keys referenced in code but absent
// from the reference locale, keys in the reference locale never referenced
// in code, and each locale's coverage percentage.
func Compare(code *CodeKeys, reference string, locales LocaleKeySets) *CoverageReport {
	report := &CoverageReport{
		CodeKeyCount: code.Len(),
		Reference:    reference,
		PerLocale:    make(map[string]LocaleCoverage),
	}

	referenceKeys := locales[reference]
	report.ReferenceCount = len(referenceKeys)

	// Missing keys keep the first-seen order of the scan for stable output.
	for _, ref := range code.References() {
		if !referenceKeys[ref.Key] {
			report.Missing = append(report.Missing, ref)
		}
	}

	for key := range referenceKeys {
		if !code.Has(key) {
			report.Unused = append(report.Unused, key)
		}
	}
	sort.Strings(report.Unused)

	for locale, keys := range locales {
		present := 0
		for key := range keys {
			if code.Has(key) {
				present++
			}
		}
		report.PerLocale[locale] = LocaleCoverage{
			Present: present,
			Total:   code.Len(),
			Percent: percent(present, code.Len()),
		}
	}

	return report
}

// percent returns round(100*present/total) with half-up rounding, and 0 for
// an empty total.
func percent(present, total int) int {
	if total == 0 {
		return 0
	}
	return (200*present + total) / (2 * total)
}

// Passed returns true when no missing keys remain. Unused keys never fail
// a run.
func (v *CoverageReport) Passed() bool {
	return len(v.Missing) == 0
}

// Locales returns the locale identifiers of the report, sorted.
func (v *CoverageReport) Locales() []string {
	locales := make([]string, 0, len(v.PerLocale))
	for locale := range v.PerLocale {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}
