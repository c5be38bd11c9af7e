package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/l10n-tools/po-coverage/flag"
	"github.com/l10n-tools/po-coverage/repository"
	"github.com/l10n-tools/po-coverage/util"
	"github.com/spf13/cobra"
)

type statCommand struct {
	cmd *cobra.Command
}

func (v *statCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "stat <catalog-file>...",
		Short: "Report entry statistics for catalog files",
		Long: `Report entry statistics for one or more catalog files:
  entries         - blank-line separated entries in the file
  keyed           - entries carrying a non-empty msgctxt key
  without context - entries that contribute no key`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v statCommand) Execute(args []string) error {
	repository.ChdirProjectRoot()

	if len(args) == 0 {
		return newUserError("stat requires at least one argument: <catalog-file>")
	}
	for _, path := range args {
		if !util.IsFile(path) {
			return newUserError("file does not exist:", path)
		}
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		doc := util.ParseCatalog(util.DecodeCatalog(path, data))

		if flag.Verbose() > 0 {
			title := fmt.Sprintf("Catalog file: %s", path)
			fmt.Println(title)
			fmt.Println(strings.Repeat("-", len(title)))
			fmt.Printf("  entries:         %d\n", doc.Entries)
			fmt.Printf("  keyed:           %d\n", doc.Keyed)
			fmt.Printf("  without context: %d\n", doc.Entries-doc.Keyed)
		} else {
			fmt.Printf("%s: %s\n", path, util.FormatCatalogStatLine(doc))
		}
	}

	return nil
}

var statCmd = statCommand{}

func init() {
	rootCmd.AddCommand(statCmd.Command())
}
