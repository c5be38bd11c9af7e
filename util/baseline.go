// Package util provides baseline loading for known missing translations.
package util

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// LoadBaseline reads a baseline file and returns the set of keys it
// suppresses. Two layouts are accepted: a JSON report produced by
// "check --format json", whose "missing" array holds key references,
// and a hand-written file whose "missing" array holds plain strings.
func LoadBaseline(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("baseline %s is not valid JSON", path)
	}

	baseline := make(map[string]bool)
	for _, r := range gjson.GetBytes(data, "missing").Array() {
		key := r.String()
		if r.IsObject() {
			key = r.Get("key").String()
		}
		if key == "" {
			continue
		}
		baseline[key] = true
	}
	log.Debugf("loaded %d baseline keys from %s", len(baseline), path)
	return baseline, nil
}

// ApplyBaseline moves missing keys covered by the baseline into the
// known list, so they are reported but no longer fail the run.
func ApplyBaseline(report *CoverageReport, baseline map[string]bool) {
	if len(baseline) == 0 {
		return
	}

	var missing, known []KeyReference
	for _, ref := range report.Missing {
		if baseline[ref.Key] {
			known = append(known, ref)
		} else {
			missing = append(missing, ref)
		}
	}
	report.Missing = missing
	report.Known = known
}
