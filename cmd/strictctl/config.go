// Config loading for the strictctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = ".strictctl"
	configFileType = "yaml"
	configFileExt  = ".strictctl.yaml"

	// Config keys.
	cfgKeyOutput = "output"

	// Output modes.
	outputText = "text"
	outputJSON = "json"
)

// configFile holds the structure written to .strictctl.yaml by init.
type configFile struct {
	Output string `yaml:"output"`
}

// cfg holds the loaded configuration, set by loadConfig before any
// subcommand runs.
var cfg *viper.Viper

// loadConfig reads the config file with Viper. A missing file is not an
// error; defaults apply.
func loadConfig(cmd *cobra.Command, args []string) error {
	v := viper.New()
	v.SetDefault(cfgKeyOutput, outputText)

	if flagConfig != "" {
		v.SetConfigFile(flagConfig)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			cfg = v
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	cfg = v
	return nil
}

// jsonOutput reports whether output should be JSON, from the --json
// flag or the config file.
func jsonOutput() bool {
	if flagJSON {
		return true
	}
	return cfg != nil && cfg.GetString(cfgKeyOutput) == outputJSON
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  "Create " + configFileExt + " in the current directory with default settings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFileExt
		if flagConfig != "" {
			path = flagConfig
		}
		if err := writeConfigIfMissing(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

// writeConfigIfMissing creates the config file with default values if it
// does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(&configFile{Output: outputText})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
