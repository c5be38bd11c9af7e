// Package cmd provides CLI implementations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/l10n-tools/po-coverage/config"
	"github.com/l10n-tools/po-coverage/flag"
	"github.com/l10n-tools/po-coverage/repository"
	"github.com/l10n-tools/po-coverage/version"
	log "github.com/sirupsen/logrus"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = rootCommand{}

// userError marks an error that should display command usage.
type userError struct{ msg string }

func (e userError) Error() string { return e.msg }

// newUserError creates an error that should display usage (e.g. argument/flag errors).
func newUserError(a ...interface{}) error {
	return userError{msg: strings.TrimSuffix(fmt.Sprintln(a...), "\n")}
}

// newUserErrorF creates an error that should display usage.
func newUserErrorF(format string, a ...interface{}) error {
	return userError{msg: fmt.Sprintf(format, a...)}
}

// checkFailedError marks a failed coverage gate. The report has already
// been written to stdout when this error is returned.
type checkFailedError struct{ missing int }

func (e checkFailedError) Error() string {
	if e.missing == 1 {
		return "1 translation key is missing"
	}
	return fmt.Sprintf("%d translation keys are missing", e.missing)
}

func newCheckFailedError(missing int) error {
	return checkFailedError{missing: missing}
}

// Response wraps error for subcommand, and is returned from cmd package.
type Response struct {
	// Err contains error returned from the subcommand executed.
	Err error

	// Cmd contains the command object.
	Cmd *cobra.Command
}

// IsUserError returns true if the error should display command usage.
func (v *Response) IsUserError() bool {
	_, ok := v.Err.(userError)
	return ok
}

// IsCheckFailure returns true if the error reports missing translations
// found by a check run, as opposed to a broken run.
func (v *Response) IsCheckFailure() bool {
	_, ok := v.Err.(checkFailedError)
	return ok
}

type rootCommand struct {
	cmd *cobra.Command
}

func (v *rootCommand) initLog() {
	f := new(log.TextFormatter)
	f.DisableTimestamp = true
	f.DisableLevelTruncation = true
	if flag.GitHubActionEvent() != "" {
		f.ForceColors = true
	}
	log.SetFormatter(f)
	verbose := flag.Verbose()
	quiet := flag.Quiet()
	if verbose == 1 {
		log.SetLevel(log.DebugLevel)
	} else if verbose > 1 {
		log.SetLevel(log.TraceLevel)
	} else if quiet == 1 {
		log.SetLevel(log.WarnLevel)
	} else if quiet > 1 {
		log.SetLevel(log.ErrorLevel)
	}
}

func (v *rootCommand) initRepository() {
	repository.OpenRepository("")
}

// Command represents the base command when called without any subcommands
func (v *rootCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "po-coverage",
		Short: "Translation coverage checker for PO-style catalogs",
		// Let main.go handle error output; do not show usage on every error
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Version = version.Version
	v.cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
	v.cmd.PersistentFlags().CountP("quiet",
		"q",
		"quiet mode")
	v.cmd.PersistentFlags().CountP("verbose",
		"v",
		"verbose mode")
	v.cmd.PersistentFlags().String("github-action-event",
		"",
		"github-action event name")
	v.cmd.PersistentFlags().String("config",
		"",
		"load configuration from this file (overrides ~/.po-coverage.yaml and repo .po-coverage.yaml)")
	_ = v.cmd.PersistentFlags().MarkHidden("github-action-event")

	_ = viper.BindPFlag(
		"quiet",
		v.cmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag(
		"verbose",
		v.cmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag(
		"github-action-event",
		v.cmd.PersistentFlags().Lookup("github-action-event"))
	_ = viper.BindPFlag(
		"config",
		v.cmd.PersistentFlags().Lookup("config"))

	return v.cmd
}

func (v rootCommand) Execute(args []string) error {
	return newUserError("run 'po-coverage -h' for help")
}

func (v *rootCommand) AddCommand(cmds ...*cobra.Command) {
	v.Command().AddCommand(cmds...)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() Response {
	var (
		resp Response
	)

	// Ensure all commands use SilenceErrors so main.go handles error output.
	setSilenceErrorsRecursive(rootCmd.Command())

	c, err := rootCmd.Command().ExecuteC()
	resp.Err = err
	resp.Cmd = c
	return resp
}

func init() {
	cobra.OnInitialize(rootCmd.initLog)
	cobra.OnInitialize(rootCmd.initRepository)
}

// setSilenceErrorsRecursive sets SilenceErrors on c and all its descendants.
func setSilenceErrorsRecursive(c *cobra.Command) {
	c.SilenceErrors = true
	for _, child := range c.Commands() {
		setSilenceErrorsRecursive(child)
	}
}

// loadConfig resolves tool configuration from defaults, configuration files
// and po-coverage.* git config, in ascending priority.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadToolConfig(repository.WorkDirOrCwd(), flag.ConfigFile())
	if err != nil {
		return nil, err
	}
	gitConfig := repository.Config()
	if value := gitConfig.Get("po-coverage.reference"); value != "" {
		cfg.Reference = value
	}
	if value := gitConfig.Get("po-coverage.catalogs"); value != "" {
		cfg.Catalogs = value
	}
	return cfg, nil
}

// resolveConfig loads the tool configuration and applies command-line
// overrides on top. Unset flags keep the configured values.
func resolveConfig(reference, catalogs string, roots, extensions, tokens []string) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if reference != "" {
		cfg.Reference = reference
	}
	if catalogs != "" {
		cfg.Catalogs = catalogs
	}
	if len(roots) > 0 {
		cfg.Roots = roots
	}
	if len(extensions) > 0 {
		cfg.Extensions = extensions
	}
	if len(tokens) > 0 {
		cfg.Tokens = tokens
	}
	if err := cfg.Validate(); err != nil {
		return nil, newUserError(err.Error())
	}
	return cfg, nil
}
