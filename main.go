package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/l10n-tools/po-coverage/cmd"
)

const (
	// Program is name for this project
	Program = "po-coverage"

	// exitCheckFailed is returned when the coverage gate fails (missing keys).
	exitCheckFailed = 1

	// exitFatal is returned for usage errors and read failures, so CI can
	// tell a failed gate from a broken run.
	exitFatal = 2
)

func main() {
	resp := cmd.Execute()

	if resp.Err != nil {
		errOut := resp.Cmd.ErrOrStderr()
		if resp.IsUserError() {
			if resp.Cmd.SilenceErrors {
				fmt.Fprintf(errOut, "ERROR: %s\n\n", resp.Err)
			}
			fmt.Fprint(errOut, resp.Cmd.UsageString())
			os.Exit(exitFatal)
		}
		if resp.IsCheckFailure() {
			// The coverage report is already on stdout.
			fmt.Fprintf(errOut, "ERROR: %s\n", resp.Err)
			os.Exit(exitCheckFailed)
		}
		if resp.Cmd.SilenceErrors {
			cmdPath := resp.Cmd.CommandPath()
			subCmdPath := strings.TrimPrefix(cmdPath, Program+" ")
			if subCmdPath == "" {
				subCmdPath = resp.Cmd.Name()
			}
			fmt.Fprintf(errOut, "ERROR: %s\n", resp.Err)
			fmt.Fprintf(errOut, "ERROR: fail to execute \"%s %s\"\n", Program, subCmdPath)
		}
		os.Exit(exitFatal)
	}
}
