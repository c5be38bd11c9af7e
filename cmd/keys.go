package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/l10n-tools/po-coverage/repository"
	"github.com/l10n-tools/po-coverage/util"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type keysCommand struct {
	cmd *cobra.Command
	O   struct {
		Roots      []string
		Extensions []string
		Tokens     []string
		Format     string
	}
}

func (v *keysCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "keys",
		Short: "List translation keys referenced in source files",
		Long: `List every translation key referenced in the configured source
roots, one per line with the file and line of its first occurrence.

Keys are listed in the order they are first seen during the scan,
which is the same order the check command reports missing keys in.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	v.cmd.Flags().StringSliceVar(&v.O.Roots,
		"root",
		nil,
		"source tree root to scan (repeatable)")
	v.cmd.Flags().StringSliceVar(&v.O.Extensions,
		"ext",
		nil,
		"source file extension to scan (repeatable)")
	v.cmd.Flags().StringSliceVar(&v.O.Tokens,
		"token",
		nil,
		"lookup function name to search for (repeatable)")
	v.cmd.Flags().StringVar(&v.O.Format,
		"format",
		"text",
		"output format: 'text' or 'json'")

	return v.cmd
}

func (v keysCommand) Execute(args []string) error {
	if len(args) > 0 {
		return newUserError("keys command needs no arguments")
	}
	switch v.O.Format {
	case "", "text", "json":
	default:
		return newUserErrorF("unknown format '%s', expect 'text' or 'json'", v.O.Format)
	}

	repository.ChdirProjectRoot()

	cfg, err := resolveConfig("", "", v.O.Roots, v.O.Extensions, v.O.Tokens)
	if err != nil {
		return err
	}

	extractor, err := util.NewExtractor(cfg.Tokens)
	if err != nil {
		return err
	}

	code, err := util.ScanSourceTree(cfg.Roots, cfg.Extensions, extractor)
	if err != nil {
		return err
	}

	if v.O.Format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(code.References())
	}

	// Keep piped output clean; the header is for interactive runs only.
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Printf("Found %d translation keys in source\n\n", code.Len())
	}
	for _, ref := range code.References() {
		fmt.Printf("%s\t%s:%d\n", ref.Key, ref.File, ref.Line)
	}
	return nil
}

var keysCmd = keysCommand{}

func init() {
	rootCmd.AddCommand(keysCmd.Command())
}
