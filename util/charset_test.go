package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestDetectCharset(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "utf-8 header",
			content: "msgid \"\"\nmsgstr \"\"\n\"Content-Type: text/plain; charset=UTF-8\\n\"\n",
			want:    "UTF-8",
		},
		{
			name:    "latin-1 header",
			content: "\"Content-Type: text/plain; charset=ISO-8859-1\\n\"\n",
			want:    "ISO-8859-1",
		},
		{
			name:    "template placeholder",
			content: "\"Content-Type: text/plain; charset=CHARSET\\n\"\n",
			want:    "CHARSET",
		},
		{
			name:    "no header",
			content: "msgctxt \"a.b\"\nmsgid \"x\"\nmsgstr \"y\"\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCharset([]byte(tt.content)); got != tt.want {
				t.Errorf("expected charset %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDecodeCatalogPassthrough(t *testing.T) {
	// UTF-8, the CHARSET placeholder and undeclared charsets are returned untouched.
	contents := []string{
		"\"Content-Type: text/plain; charset=UTF-8\\n\"\n\nmsgctxt \"a.b\"\nmsgid \"x\"\nmsgstr \"y\"\n",
		"\"Content-Type: text/plain; charset=CHARSET\\n\"\n",
		"msgctxt \"a.b\"\nmsgid \"x\"\nmsgstr \"y\"\n",
	}
	for _, content := range contents {
		data := []byte(content)
		if got := DecodeCatalog("test.po", data); !bytes.Equal(got, data) {
			t.Errorf("expected passthrough for %q", content)
		}
	}
}

func TestDecodeCatalogUnknownCharset(t *testing.T) {
	data := []byte("\"Content-Type: text/plain; charset=X-NO-SUCH-CHARSET\\n\"\n\nmsgctxt \"a.b\"\nmsgid \"x\"\nmsgstr \"y\"\n")
	got := DecodeCatalog("test.po", data)
	if !bytes.Equal(got, data) {
		t.Fatal("unknown charset must fall back to the raw bytes")
	}
	// Keys must still be discoverable from the raw bytes.
	doc := ParseCatalog(got)
	if !doc.Keys["a.b"] {
		t.Fatalf("expected key a.b from raw bytes, got %v", sortedKeys(doc.Keys))
	}
}

func TestDecodeCatalogLatin1(t *testing.T) {
	header := "msgid \"\"\nmsgstr \"\"\n\"Content-Type: text/plain; charset=ISO-8859-1\\n\"\n\n"
	entry := "msgctxt \"menu.cafe\"\nmsgid \"Cafe\"\nmsgstr \"Caf\xe9\"\n"
	decoded := DecodeCatalog("fr.po", []byte(header+entry))

	if !strings.Contains(string(decoded), "Caf\xc3\xa9") {
		t.Fatal("expected msgstr transcoded to UTF-8")
	}
	doc := ParseCatalog(decoded)
	if !doc.Keys["menu.cafe"] {
		t.Fatalf("expected key menu.cafe after transcoding, got %v", sortedKeys(doc.Keys))
	}
}
