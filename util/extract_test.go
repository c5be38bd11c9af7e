package util

import (
	"testing"
)

func TestNewExtractor(t *testing.T) {
	if _, err := NewExtractor(nil); err == nil {
		t.Fatal("NewExtractor should fail for empty token list")
	}
	if _, err := NewExtractor([]string{"t", ""}); err == nil {
		t.Fatal("NewExtractor should fail for empty token")
	}
	if _, err := NewExtractor([]string{"t", "i18n.t"}); err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []KeyReference
	}{
		{
			name: "double quoted key",
			text: `<button>{{ t("chat.send") }}</button>`,
			want: []KeyReference{{Key: "chat.send", File: "chat.tmpl", Line: 1}},
		},
		{
			name: "single quoted key",
			text: `<h2>{{ t('settings.title') }}</h2>`,
			want: []KeyReference{{Key: "settings.title", File: "chat.tmpl", Line: 1}},
		},
		{
			name: "whitespace after opening delimiter",
			text: `{{ t( "menu.exit") }}`,
			want: []KeyReference{{Key: "menu.exit", File: "chat.tmpl", Line: 1}},
		},
		{
			name: "line numbers are 1-based",
			text: "\n\n{{ t(\"page.header\") }}\n",
			want: []KeyReference{{Key: "page.header", File: "chat.tmpl", Line: 3}},
		},
		{
			name: "first line wins per document",
			text: "{{ t(\"chat.send\") }}\n{{ t(\"chat.send\") }}\n",
			want: []KeyReference{{Key: "chat.send", File: "chat.tmpl", Line: 1}},
		},
		{
			name: "several keys on one line",
			text: `{{ t("a.b") }} {{ t("c.d") }}`,
			want: []KeyReference{
				{Key: "a.b", File: "chat.tmpl", Line: 1},
				{Key: "c.d", File: "chat.tmpl", Line: 1},
			},
		},
		{
			name: "deep namespaces and underscores",
			text: `{{ t("menu.file.open_recent") }}`,
			want: []KeyReference{{Key: "menu.file.open_recent", File: "chat.tmpl", Line: 1}},
		},
		{
			name: "token after dotted receiver",
			text: `{{ i18n.t("menu.file") }}`,
			want: []KeyReference{{Key: "menu.file", File: "chat.tmpl", Line: 1}},
		},
		{
			name: "token after comma",
			text: `{{ join(sep,t("list.item")) }}`,
			want: []KeyReference{{Key: "list.item", File: "chat.tmpl", Line: 1}},
		},
		{
			name: "bare word is not a key",
			text: `{{ t("ok") }}`,
			want: nil,
		},
		{
			name: "token as suffix of longer identifier",
			text: `{{ split("a.b") }}`,
			want: nil,
		},
		{
			name: "reference split across lines",
			text: "{{ t(\n\"a.b\") }}",
			want: nil,
		},
		{
			name: "invalid character in key",
			text: `{{ t("a.b-c") }}`,
			want: nil,
		},
		{
			name: "unquoted argument",
			text: `{{ t(someVar) }}`,
			want: nil,
		},
		{
			name: "mismatched quotes",
			text: `{{ t("a.b') }}`,
			want: nil,
		},
	}

	extractor, err := NewExtractor([]string{"t"})
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract("chat.tmpl", []byte(tt.text))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d references, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("reference %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestExtractMultipleTokens(t *testing.T) {
	extractor, err := NewExtractor([]string{"t", "tr"})
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	refs := extractor.Extract("view.tmpl", []byte("{{ tr(\"nav.home\") }}\n{{ t(\"nav.away\") }}\n"))
	if len(refs) != 2 {
		t.Fatalf("expected 2 references, got %d: %v", len(refs), refs)
	}
	keys := map[string]int{}
	for _, ref := range refs {
		keys[ref.Key] = ref.Line
	}
	if keys["nav.home"] != 1 {
		t.Errorf("expected nav.home on line 1, got %v", refs)
	}
	if keys["nav.away"] != 2 {
		t.Errorf("expected nav.away on line 2, got %v", refs)
	}

	// "tr(" must not also match as "t" followed by "r("
	refs = extractor.Extract("view.tmpl", []byte(`{{ tr("only.once") }}`))
	if len(refs) != 1 {
		t.Fatalf("expected 1 reference, got %d: %v", len(refs), refs)
	}
}
