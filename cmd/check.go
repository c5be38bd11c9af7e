package cmd

import (
	"os"

	"github.com/l10n-tools/po-coverage/repository"
	"github.com/l10n-tools/po-coverage/util"
	"github.com/spf13/cobra"
)

type checkCommand struct {
	cmd *cobra.Command
	O   struct {
		Reference  string
		Catalogs   string
		Roots      []string
		Extensions []string
		Tokens     []string
		Baseline   string
		Format     string
	}
}

func (v *checkCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "check",
		Short: "Check translation coverage and gate the build",
		Long: `Check that every translation key referenced in source files has an
entry in the reference locale's catalogs.

The check scans the configured source roots for lookup calls such as
t("chat.send"), loads each locale's catalogs from the catalogs
directory, and reports:
  missing  - keys used in source but absent from the reference locale
  unused   - keys in the reference locale that no source file uses
  coverage - per-locale percentage of code keys with an entry

The command exits with status 1 when the reference locale misses keys.
Unused keys never fail the run.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false

	// Catalog options
	fs.StringVar(&v.O.Reference, "reference", "", "reference locale that must cover all code keys")
	fs.StringVar(&v.O.Catalogs, "catalogs", "", "directory holding one subdirectory per locale")
	fs.SetAnnotation("reference", groupAnnotationKey, []string{"Catalog options"})
	fs.SetAnnotation("catalogs", groupAnnotationKey, []string{"Catalog options"})

	// Scan options
	fs.StringSliceVar(&v.O.Roots, "root", nil, "source tree root to scan (repeatable)")
	fs.StringSliceVar(&v.O.Extensions, "ext", nil, "source file extension to scan (repeatable)")
	fs.StringSliceVar(&v.O.Tokens, "token", nil, "lookup function name to search for (repeatable)")
	fs.SetAnnotation("root", groupAnnotationKey, []string{"Scan options"})
	fs.SetAnnotation("ext", groupAnnotationKey, []string{"Scan options"})
	fs.SetAnnotation("token", groupAnnotationKey, []string{"Scan options"})

	// Output options
	fs.StringVar(&v.O.Baseline, "baseline", "", "JSON file listing known missing keys that do not fail the run")
	fs.StringVar(&v.O.Format, "format", "text", "output format: 'text' or 'json'")
	fs.SetAnnotation("baseline", groupAnnotationKey, []string{"Output options"})
	fs.SetAnnotation("format", groupAnnotationKey, []string{"Output options"})

	// Custom usage template with grouped flags
	v.cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{flagUsagesByGroup . | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`)

	return v.cmd
}

func (v checkCommand) Execute(args []string) error {
	if len(args) > 0 {
		return newUserError("check command needs no arguments")
	}
	switch v.O.Format {
	case "", "text", "json":
	default:
		return newUserErrorF("unknown format '%s', expect 'text' or 'json'", v.O.Format)
	}

	report, err := v.runAnalysis()
	if err != nil {
		return err
	}

	if v.O.Format == "json" {
		if err := util.RenderReportJSON(os.Stdout, report); err != nil {
			return err
		}
	} else {
		util.RenderReport(os.Stdout, report)
	}

	if !report.Passed() {
		return newCheckFailedError(len(report.Missing))
	}
	return nil
}

func (v checkCommand) runAnalysis() (*util.CoverageReport, error) {
	repository.ChdirProjectRoot()

	cfg, err := resolveConfig(v.O.Reference, v.O.Catalogs, v.O.Roots, v.O.Extensions, v.O.Tokens)
	if err != nil {
		return nil, err
	}

	extractor, err := util.NewExtractor(cfg.Tokens)
	if err != nil {
		return nil, err
	}

	code, err := util.ScanSourceTree(cfg.Roots, cfg.Extensions, extractor)
	if err != nil {
		return nil, err
	}

	locales, err := util.LoadAllLocales(cfg.Catalogs)
	if err != nil {
		return nil, err
	}

	report := util.Compare(code, cfg.Reference, locales)

	if v.O.Baseline != "" {
		baseline, err := util.LoadBaseline(v.O.Baseline)
		if err != nil {
			return nil, err
		}
		util.ApplyBaseline(report, baseline)
	}

	return report, nil
}

var checkCmd = checkCommand{}

func init() {
	rootCmd.AddCommand(checkCmd.Command())
}
