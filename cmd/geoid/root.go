package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli bundles the root command with its configuration source.
type cli struct {
	rootCmd *cobra.Command
	viper   *viper.Viper
}

// newCLI assembles the command tree and configures config file discovery.
func newCLI() *cli {
	c := &cli{viper: viper.New()}
	c.setupConfig()

	c.rootCmd = &cobra.Command{
		Use:          "geoid",
		Short:        "Work with detector element identifiers",
		Long:         "geoid builds, formats, sorts and enumerates the identifiers addressing detector elements (cryostats, TPCs, planes, wires) and their readout groupings.",
		SilenceUsage: true,
	}
	c.rootCmd.AddCommand(c.newShowCommand())
	c.rootCmd.AddCommand(c.newListCommand())
	c.rootCmd.AddCommand(c.newPotCommand())
	return c
}

// setupConfig points viper at the configuration file: an explicit
// GEOID_CONFIG path wins, otherwise geoid.yaml is discovered in the usual
// places. A missing config file is not an error.
func (c *cli) setupConfig() {
	if configFile := os.Getenv("GEOID_CONFIG"); configFile != "" {
		c.viper.SetConfigFile(configFile)
	} else {
		c.viper.SetConfigName("geoid")
		c.viper.SetConfigType("yaml")
		c.viper.AddConfigPath(".")
		c.viper.AddConfigPath("$HOME/.geoid")
		c.viper.AddConfigPath("/etc/geoid")
	}
	_ = c.viper.ReadInConfig()
}

// Execute runs the CLI.
func (c *cli) Execute() error {
	return c.rootCmd.Execute()
}
