package cmd

import (
	"fmt"

	"github.com/l10n-tools/po-coverage/repository"
	"github.com/l10n-tools/po-coverage/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type localesCommand struct {
	cmd *cobra.Command
	O   struct {
		Catalogs string
	}
}

func (v *localesCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "locales",
		Short: "List locales found in the catalogs directory",
		Long: `List the locales in the catalogs directory, one per line, with the
number of keys and catalog files each locale provides. A locale is a
non-hidden subdirectory of the catalogs directory.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	v.cmd.Flags().StringVar(&v.O.Catalogs,
		"catalogs",
		"",
		"directory holding one subdirectory per locale")

	return v.cmd
}

func (v localesCommand) Execute(args []string) error {
	if len(args) > 0 {
		return newUserError("locales command needs no arguments")
	}

	repository.ChdirProjectRoot()

	cfg, err := resolveConfig("", v.O.Catalogs, nil, nil, nil)
	if err != nil {
		return err
	}

	locales, err := util.ListLocales(cfg.Catalogs)
	if err != nil {
		return err
	}
	if len(locales) == 0 {
		log.Warnf("no locales found in %s", cfg.Catalogs)
		return nil
	}

	for _, locale := range locales {
		files, err := util.ListCatalogFiles(cfg.Catalogs, locale)
		if err != nil {
			return err
		}
		keys, err := util.LoadLocaleKeys(cfg.Catalogs, locale)
		if err != nil {
			return err
		}
		fmt.Println(util.FormatLocaleLine(locale, len(keys), len(files)))
	}
	return nil
}

var localesCmd = localesCommand{}

func init() {
	rootCmd.AddCommand(localesCmd.Command())
}
