// Package app implements the main application commands.
package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix     = "STORENAV"
	configPathKey = "config"
)

var rootCmd = &cobra.Command{
	Use:   "storenav",
	Short: "storenav renders the navigation menus of a storefront",
	Long: `storenav serves storefront pages with navigation menus whose links are
marked active for the page being displayed. Menus are stored in a database
and managed through a JSON API.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().String(configPathKey, "./etc/", "Directory holding main.toml")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlag(configPathKey, rootCmd.PersistentFlags().Lookup(configPathKey)); err != nil {
		panic(err)
	}
}

// configPath returns the config directory from --config or STORENAV_CONFIG.
func configPath() string {
	p := viper.GetString(configPathKey)
	if p != "" && !strings.HasSuffix(p, "/") {
		p += "/"
	}

	return p
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
