// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the transcode CLI, which converts a
// structured-data file between JSON, YAML and TOML.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/transcode/internal/convert"
	"github.com/pdiddy/transcode/internal/format"
	"github.com/pdiddy/transcode/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the transcode CLI.
var rootCmd = &cobra.Command{
	Use:   "transcode INPUT [OUTPUT]",
	Short: "Convert a file between JSON, YAML, and TOML",
	Long: `transcode parses INPUT and writes it to OUTPUT in another serialization
format. Formats are taken from the file extensions (.json, .yaml/.yml, .toml).

When --format is given it decides the output format; if OUTPUT is omitted the
output path is INPUT with its extension replaced.`,
	Example: `  transcode config.json config.toml
  transcode data.yml --format json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
			return err
		}
		if len(args) == 1 && !cmd.Flags().Changed("format") {
			return format.ErrNoOutput
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var output string
		if len(args) > 1 {
			output = args[1]
		}

		var override types.FileFormat
		if name, _ := cmd.Flags().GetString("format"); cmd.Flags().Changed("format") {
			f, err := format.Parse(name)
			if err != nil {
				return err
			}
			override = f
		}

		cfg := loadConfig()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		in, out, err := format.Refs(args[0], output, override)
		if err != nil {
			return err
		}

		cmd.SilenceUsage = true
		return convert.Run(in, out, cfg, cmd.OutOrStdout())
	},
}

// configFlags maps config keys to the flags that override them.
var configFlags = map[string]string{
	"json_indent":           "json-indent",
	"yaml_indent":           "yaml-indent",
	"toml_indent_tables":    "toml-indent-tables",
	"toml_multiline_arrays": "toml-multiline-arrays",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./transcode.yaml or ~/.config/transcode/transcode.yaml)")

	rootCmd.Flags().StringP("format", "f", "", "output format: "+strings.Join(format.Names, ", "))
	rootCmd.Flags().Int("json-indent", 0, "spaces per JSON indent level (0 for compact output)")
	rootCmd.Flags().Int("yaml-indent", types.DefaultYAMLIndent, "spaces per YAML indent level")
	rootCmd.Flags().Bool("toml-indent-tables", false, "indent nested TOML tables")
	rootCmd.Flags().Bool("toml-multiline-arrays", false, "write each TOML array element on its own line")

	for key, flag := range configFlags {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("transcode")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "transcode"))
		}
	}

	viper.SetEnvPrefix("TRANSCODE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig collects emitter settings from flags, environment and config file.
func loadConfig() types.TranscodeConfig {
	return types.TranscodeConfig{
		JSONIndent:          viper.GetInt("json_indent"),
		YAMLIndent:          viper.GetInt("yaml_indent"),
		TOMLIndentTables:    viper.GetBool("toml_indent_tables"),
		TOMLMultilineArrays: viper.GetBool("toml_multiline_arrays"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
