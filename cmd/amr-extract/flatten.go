// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/amr-extract/internal/flatten"
	"github.com/pdiddy/amr-extract/pkg/types"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten",
	Short: "Split multi-sentence AMR graphs and keep those mentioning the keyword",
	Long: `Flatten reads an AMR annotation file, replaces every multi-sentence graph
with one graph per :sntN branch (ids become <id>.1, <id>.2, ...), and writes
the graphs that contain the keyword as a concept or inside a quoted name.

Use --filter=false to flatten without filtering.`,
	RunE: runFlatten,
}

func runFlatten(cmd *cobra.Command, args []string) error {
	_, err := flatten.Run(flattenConfig(), os.Stdout)
	return err
}

func flattenConfig() types.FlattenConfig {
	return types.FlattenConfig{
		InputPath:    viper.GetString("flatten.input"),
		OutputPath:   viper.GetString("flatten.output"),
		Keyword:      viper.GetString("flatten.keyword"),
		Filter:       viper.GetBool("flatten.filter"),
		DebugRecords: viper.GetInt("flatten.debug"),
		ReportPath:   viper.GetString("flatten.report"),
		ReportFormat: types.ReportFormat(viper.GetString("flatten.report_format")),
	}
}

func init() {
	flattenCmd.Flags().String("input", "", "AMR annotation file to read")
	flattenCmd.Flags().String("output", "", "flattened AMR file to write")
	flattenCmd.Flags().String("keyword", "", "keyword to keep")
	flattenCmd.Flags().Bool("filter", true, "keep only graphs containing the keyword")
	flattenCmd.Flags().Int("debug", 0, "print a per-branch analysis of the first N graphs")
	flattenCmd.Flags().String("report", "", "write a run report to this path")
	flattenCmd.Flags().String("report-format", "", "report format: yaml or json")

	bindFlags(flattenCmd, map[string]string{
		"input":         "flatten.input",
		"output":        "flatten.output",
		"keyword":       "flatten.keyword",
		"filter":        "flatten.filter",
		"debug":         "flatten.debug",
		"report":        "flatten.report",
		"report-format": "flatten.report_format",
	})

	rootCmd.AddCommand(flattenCmd)
}
