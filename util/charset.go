// Package util provides charset conversion for catalog documents.
package util

import (
	"regexp"
	"strings"

	"github.com/qiniu/iconv"
	log "github.com/sirupsen/logrus"
)

var charsetPattern = regexp.MustCompile(`charset=([A-Za-z0-9_.:-]+)`)

// DetectCharset returns the charset declared in the catalog header, or ""
// when none is declared.
func DetectCharset(data []byte) string {
	if m := charsetPattern.FindSubmatch(data); m != nil {
		return string(m[1])
	}
	return ""
}

// DecodeCatalog converts catalog data to UTF-8 according to the charset
// declared in its header. Data without a declared charset, with an already
// UTF-8 compatible charset, or with the template "CHARSET" placeholder is
// returned as is. Keys are plain ASCII, so an unsupported charset degrades
// to a warning and the raw bytes instead of failing the run.
func DecodeCatalog(path string, data []byte) []byte {
	charset := DetectCharset(data)
	switch strings.ToLower(charset) {
	case "", "charset", "utf-8", "utf8", "ascii", "us-ascii":
		return data
	}
	cd, err := iconv.Open("utf-8", charset)
	if err != nil {
		log.Warnf("unsupported charset %q in %s, parsing raw bytes", charset, path)
		return data
	}
	defer cd.Close()
	converted := cd.ConvString(string(data))
	if converted == "" && len(data) > 0 {
		log.Warnf("fail to convert %s from %s to UTF-8, parsing raw bytes", path, charset)
		return data
	}
	log.Debugf("converted %s from %s to UTF-8", path, charset)
	return []byte(converted)
}
