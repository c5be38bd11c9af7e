// Package util provides locale discovery and catalog loading.
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// CatalogFileExt marks files that are parsed as catalog documents.
const CatalogFileExt = ".po"

// LocaleKeySets maps a locale identifier to its merged key set.
type LocaleKeySets map[string]map[string]bool

// ListLocales returns the locale identifiers available under the catalogs
// root: the names of its non-hidden subdirectories, in sorted order. A root
// that does not exist yields no locales, not an error.
func ListLocales(catalogRoot string) ([]string, error) {
	entries, err := os.ReadDir(catalogRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var locales []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		locales = append(locales, entry.Name())
	}
	return locales, nil
}

// ListCatalogFiles returns the catalog documents directly under the locale's
// directory (one level, not recursive), in sorted order. A locale directory
// that does not exist yields no files.
func ListCatalogFiles(catalogRoot, locale string) ([]string, error) {
	dir := filepath.Join(catalogRoot, locale)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, CatalogFileExt) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}

// LoadLocaleKeys parses every catalog document of one locale and unions
// their key sets. A locale directory that does not exist yields an empty
// set; a document that exists but cannot be read is a fatal error.
func LoadLocaleKeys(catalogRoot, locale string) (map[string]bool, error) {
	keys := make(map[string]bool)
	files, err := ListCatalogFiles(catalogRoot, locale)
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		doc := ParseCatalog(DecodeCatalog(path, data))
		for key := range doc.Keys {
			keys[key] = true
		}
	}
	return keys, nil
}

// LoadAllLocales loads the key sets of every locale under the catalogs root.
func LoadAllLocales(catalogRoot string) (LocaleKeySets, error) {
	locales, err := ListLocales(catalogRoot)
	if err != nil {
		return nil, err
	}
	sets := make(LocaleKeySets)
	for _, locale := range locales {
		keys, err := LoadLocaleKeys(catalogRoot, locale)
		if err != nil {
			return nil, err
		}
		sets[locale] = keys
	}
	return sets, nil
}
