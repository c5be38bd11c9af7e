// Package flag provides read-only accessors for global command line flags.
package flag

import (
	"github.com/spf13/viper"
)

// Verbose returns the count of the --verbose flag.
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns the count of the --quiet flag.
func Quiet() int {
	return viper.GetInt("quiet")
}

// ConfigFile returns the value of the --config flag.
func ConfigFile() string {
	return viper.GetString("config")
}

// GitHubActionEvent returns the event name when running in GitHub Actions.
func GitHubActionEvent() string {
	return viper.GetString("github-action-event")
}
