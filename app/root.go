// Package app implements the main application commands.
package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "DESIGNSPEC"

// settings binds command flags to DESIGNSPEC_* environment variables.
var settings = newSettings() //nolint:gochecknoglobals

var rootCmd = &cobra.Command{
	Use:   "designspec-web",
	Short: "DesignSpec Ltd website and client dashboard",
	Long: `designspec-web serves the DesignSpec Ltd marketing site, the public
quote and appointment forms and the role dashboards behind a pluggable
identity provider.`,
	Args: cobra.OnlyValidArgs,
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().String("config", "", "directory holding main.toml (default ./etc/)")
	_ = settings.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// configDir returns the configured config directory with a trailing slash.
func configDir() string {
	dir := settings.GetString("config")
	if dir != "" && !strings.HasSuffix(dir, "/") {
		dir += "/"
	}

	return dir
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
