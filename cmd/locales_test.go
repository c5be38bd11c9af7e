package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/l10n-tools/po-coverage/repository"
)

func TestLocalesCommand(t *testing.T) {
	tmpDir := setupProject(t)

	repository.OpenRepository(tmpDir)
	origWd, _ := os.Getwd()
	defer os.Chdir(origWd)
	os.Chdir(tmpDir)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	c := localesCommand{}
	err := c.Execute(nil)

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	expect := "en\t2 keys in 1 catalog file\n" +
		"zh_CN\t1 key in 1 catalog file\n"
	if output != expect {
		t.Fatalf("unexpected output:\n%s\nexpected:\n%s", output, expect)
	}
}
