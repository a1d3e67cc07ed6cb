// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the amr-extract CLI.
//
// Subcommands: flatten (split multi-sentence AMR graphs and filter them by
// keyword), sentences (pull keyword sentences out of a PDF/HTML/TXT corpus),
// stats (count AMR graph kinds), and version.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/amr-extract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the amr-extract CLI.
var rootCmd = &cobra.Command{
	Use:   "amr-extract",
	Short: "Extract keyword sentences from AMR annotations and document corpora",
	Long: `amr-extract finds sentences that mention a target keyword.

For AMR annotation files it splits multi-sentence graphs into one graph per
:sntN branch and keeps the graphs whose concepts or names contain the keyword.
For document corpora (PDF, HTML, TXT) it extracts text, splits it into
sentences, and keeps the sentences containing the keyword.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./amr-extract.yaml or ~/.config/amr-extract/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("amr-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "amr-extract"))
		}
	}

	viper.SetEnvPrefix("AMR_EXTRACT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	setDefaults(types.DefaultPipelineConfig())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers the built-in configuration with viper so that config
// files and environment variables only need to name what they change.
func setDefaults(d types.PipelineConfig) {
	viper.SetDefault("flatten.input", d.Flatten.InputPath)
	viper.SetDefault("flatten.output", d.Flatten.OutputPath)
	viper.SetDefault("flatten.keyword", d.Flatten.Keyword)
	viper.SetDefault("flatten.filter", d.Flatten.Filter)
	viper.SetDefault("flatten.report_format", string(d.Flatten.ReportFormat))
	viper.SetDefault("corpus.docs_dir", d.Corpus.DocsDir)
	viper.SetDefault("corpus.texts_dir", d.Corpus.TextsDir)
	viper.SetDefault("corpus.keyword", d.Corpus.Keyword)
	viper.SetDefault("corpus.encodings", d.Corpus.Encodings)
}

// bindFlags binds each flag name to its viper key. Flags keep precedence over
// config files and environment variables only when set explicitly.
func bindFlags(cmd *cobra.Command, keys map[string]string) {
	for flag, key := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
