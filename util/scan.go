// Package util provides source tree scanning for translation key references.
package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// CodeKeys holds the key references of a whole source tree. Exactly one
// reference is recorded per distinct key: the first occurrence in scan order
// wins and later occurrences are discarded, so the reported file and line
// stay stable across runs.
type CodeKeys struct {
	refs  map[string]KeyReference
	order []string
}

// NewCodeKeys returns an empty code key map.
func NewCodeKeys() *CodeKeys {
	return &CodeKeys{refs: make(map[string]KeyReference)}
}

// Add records ref unless its key is already present. Returns true when the
// reference was recorded.
func (v *CodeKeys) Add(ref KeyReference) bool {
	if _, ok := v.refs[ref.Key]; ok {
		return false
	}
	v.refs[ref.Key] = ref
	v.order = append(v.order, ref.Key)
	return true
}

// Len returns the number of distinct keys.
func (v *CodeKeys) Len() int {
	return len(v.order)
}

// Has returns true if key was recorded.
func (v *CodeKeys) Has(key string) bool {
	_, ok := v.refs[key]
	return ok
}

// Get returns the recorded reference for key.
func (v *CodeKeys) Get(key string) (KeyReference, bool) {
	ref, ok := v.refs[key]
	return ref, ok
}

// Keys returns all keys in first-seen order.
func (v *CodeKeys) Keys() []string {
	keys := make([]string, len(v.order))
	copy(keys, v.order)
	return keys
}

// References returns all references in first-seen order.
func (v *CodeKeys) References() []KeyReference {
	refs := make([]KeyReference, 0, len(v.order))
	for _, key := range v.order {
		refs = append(refs, v.refs[key])
	}
	return refs
}

// ScanSourceTree walks the given root directories and extracts key
// references from every file whose name ends with one of the extensions.
// Hidden files and directories are skipped. Roots that do not exist
// contribute zero files. Files are visited in lexical walk order, so
// repeated runs over the same tree record identical references. A file
// that exists but cannot be read aborts the scan.
func ScanSourceTree(roots, extensions []string, extractor *Extractor) (*CodeKeys, error) {
	code := NewCodeKeys()
	for _, root := range roots {
		if !IsDir(root) {
			log.Debugf("skip source root %s: no such directory", root)
			continue
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if strings.HasPrefix(d.Name(), ".") && path != root {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if !matchExtension(d.Name(), extensions) {
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			for _, ref := range extractor.Extract(path, data) {
				code.Add(ref)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	log.Debugf("found %d translation keys in source", code.Len())
	return code, nil
}

func matchExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
