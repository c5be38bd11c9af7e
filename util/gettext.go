// Package util provides catalog file parsing utilities.
package util

import (
	"strings"
)

// Parser field states while walking one entry.
const (
	fieldNone = iota
	fieldContext
	fieldOther
)

// CatalogDoc holds what was parsed out of a single catalog document.
type CatalogDoc struct {
	// Keys is the set of context values found, one per keyed entry.
	Keys map[string]bool

	// Entries counts all entries in the document, keyed or not.
	Entries int

	// Keyed counts entries that carried a non-empty context value.
	Keyed int
}

// ParseCatalog parses one catalog document and collects the context value of
// every entry. Entries are separated by blank lines and comment lines start
// with "#". The context field starts with `msgctxt "<value>"`; immediately
// following `"<more>"` lines extend the value until another field (such as
// msgid) starts. An entry contributes a key iff its assembled context value
// is non-empty when the entry ends. Malformed entries contribute nothing;
// the parser is lenient and never fails.
func ParseCatalog(data []byte) *CatalogDoc {
	doc := &CatalogDoc{Keys: make(map[string]bool)}

	var (
		field   = fieldNone
		context strings.Builder
		inEntry bool
	)

	endEntry := func() {
		if inEntry {
			doc.Entries++
			if value := context.String(); value != "" {
				doc.Keys[value] = true
				doc.Keyed++
			}
		}
		context.Reset()
		field = fieldNone
		inEntry = false
	}

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			endEntry()
		case strings.HasPrefix(trimmed, "#"):
			// Comment lines never affect the current field.
		case strings.HasPrefix(trimmed, "msgctxt "):
			inEntry = true
			field = fieldContext
			context.Reset()
			context.WriteString(deQuote(strings.TrimSpace(strings.TrimPrefix(trimmed, "msgctxt "))))
		case strings.HasPrefix(trimmed, `"`) && field == fieldContext:
			context.WriteString(deQuote(trimmed))
		default:
			// msgid, msgstr and anything else end context continuation.
			// The assembled context stays around until the entry ends.
			inEntry = true
			field = fieldOther
		}
	}
	endEntry()

	return doc
}

// deQuote strips exactly one leading and one trailing quote character.
// No backslash decoding: keys never contain quote or escape characters in
// valid catalogs. A line without both quotes is malformed for key purposes
// and yields the empty string.
func deQuote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return ""
}
