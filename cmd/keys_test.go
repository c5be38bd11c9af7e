package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/l10n-tools/po-coverage/repository"
)

func runKeysInDir(t *testing.T, dir string, setup func(c *keysCommand)) (string, error) {
	t.Helper()
	repository.OpenRepository(dir)

	origWd, _ := os.Getwd()
	defer os.Chdir(origWd)
	os.Chdir(dir)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	c := keysCommand{}
	c.O.Format = "text"
	if setup != nil {
		setup(&c)
	}
	err := c.Execute(nil)

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func TestKeysCommand_Text(t *testing.T) {
	tmpDir := setupProject(t)

	output, err := runKeysInDir(t, tmpDir, nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// Captured stdout is a pipe, so the interactive header is not shown.
	expect := "chat.send\ttemplates/chat.tmpl:1\n" +
		"settings.title\ttemplates/settings.tmpl:3\n"
	if output != expect {
		t.Fatalf("unexpected output:\n%s\nexpected:\n%s", output, expect)
	}
}

func TestKeysCommand_JSON(t *testing.T) {
	tmpDir := setupProject(t)

	output, err := runKeysInDir(t, tmpDir, func(c *keysCommand) {
		c.O.Format = "json"
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var refs []struct {
		Key  string `json:"key"`
		File string `json:"file"`
		Line int    `json:"line"`
	}
	if err := json.Unmarshal([]byte(output), &refs); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 key references, got %v", refs)
	}
	if refs[0].Key != "chat.send" || refs[0].File != "templates/chat.tmpl" || refs[0].Line != 1 {
		t.Errorf("unexpected first reference: %+v", refs[0])
	}
	if refs[1].Key != "settings.title" || refs[1].Line != 3 {
		t.Errorf("unexpected second reference: %+v", refs[1])
	}
}

func TestKeysCommand_CustomToken(t *testing.T) {
	tmpDir := setupProject(t)
	writeProjectFile(t, filepath.Join(tmpDir, "templates", "nav.tmpl"),
		`{{ tr("nav.home") }}
`)

	output, err := runKeysInDir(t, tmpDir, func(c *keysCommand) {
		c.O.Tokens = []string{"tr"}
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(output, "nav.home\ttemplates/nav.tmpl:1") {
		t.Errorf("expected nav.home from tr() lookups, got: %s", output)
	}
	// The default token t is replaced, not extended.
	if strings.Contains(output, "chat.send") {
		t.Errorf("t() lookups should not match with --token tr, got: %s", output)
	}
}

func TestKeysCommand_TooManyArgs(t *testing.T) {
	c := keysCommand{}
	err := c.Execute([]string{"extra"})
	if err == nil {
		t.Fatal("expected error for extra arguments")
	}
	if _, ok := err.(userError); !ok {
		t.Fatalf("expected userError, got %T: %v", err, err)
	}
}
