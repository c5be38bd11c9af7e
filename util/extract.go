// Package util provides scanning, parsing and comparison for translation coverage.
package util

import (
	"fmt"
	"regexp"
	"strings"
)

// KeyReference records where a translation key was first referenced.
type KeyReference struct {
	Key  string `json:"key"`
	File string `json:"file"`
	Line int    `json:"line"`
}

// Extractor finds translation-key references in source text. A reference is
// a lookup token called with a single- or double-quoted dotted key, e.g.
// t('chat.send') or t("chat.send").
type Extractor struct {
	patterns []*regexp.Regexp
}

// NewExtractor compiles match patterns for the given lookup tokens.
func NewExtractor(tokens []string) (*Extractor, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no lookup tokens given")
	}
	extractor := &Extractor{}
	for _, token := range tokens {
		if token == "" {
			return nil, fmt.Errorf("lookup token must not be empty")
		}
		// The token must not be the tail of a longer identifier, so it is
		// anchored at start of line, a word boundary, or one of "{ (,".
		pattern, err := regexp.Compile(
			`(?:^|\b|[\s{(,])` + regexp.QuoteMeta(token) +
				`\(\s*(?:'([A-Za-z0-9_.]+)'|"([A-Za-z0-9_.]+)")`)
		if err != nil {
			return nil, fmt.Errorf("invalid lookup token %q: %w", token, err)
		}
		extractor.patterns = append(extractor.patterns, pattern)
	}
	return extractor, nil
}

// Extract scans one document and returns the first reference for each
// distinct key found, with 1-based line numbers. Later references to the
// same key within the same document are dropped. The scan is textual and
// line-oriented: references split across lines are not recognized, and
// matches inside comments or string literals are reported like any other.
func (v *Extractor) Extract(path string, data []byte) []KeyReference {
	var (
		refs []KeyReference
		seen = make(map[string]bool)
	)
	for i, line := range strings.Split(string(data), "\n") {
		for _, pattern := range v.patterns {
			for _, m := range pattern.FindAllStringSubmatch(line, -1) {
				key := m[1]
				if key == "" {
					key = m[2]
				}
				// Bare words are not keys; require a namespace.name shape.
				if !strings.Contains(key, ".") {
					continue
				}
				if seen[key] {
					continue
				}
				seen[key] = true
				refs = append(refs, KeyReference{Key: key, File: path, Line: i + 1})
			}
		}
	}
	return refs
}
