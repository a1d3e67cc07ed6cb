// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/amr-extract/internal/amr"
	"github.com/pdiddy/amr-extract/internal/flatten"
	"github.com/pdiddy/amr-extract/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Count simple, multi-sentence, and keyword graphs in an AMR file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("flatten.input")
		if len(args) == 1 {
			path = args[0]
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", types.ErrMissingInput, path)
			}
			return fmt.Errorf("reading %s: %w", path, err)
		}

		kw := viper.GetString("flatten.keyword")
		proc, err := flatten.NewProcessor(kw, false)
		if err != nil {
			return err
		}
		s := flatten.Analyze(amr.Parse(string(data)), proc)

		fmt.Printf("File: %s\n", path)
		fmt.Printf("Total AMR graphs:       %d\n", s.Total)
		fmt.Printf("Multi-sentence graphs:  %d\n", s.MultiSentence)
		fmt.Printf("Simple graphs:          %d\n", s.Simple)
		fmt.Printf(":sntN branches:         %d\n", s.Branches)
		if proc.HasKeyword() {
			fmt.Printf("Graphs with %q: %d\n", kw, s.KeywordMatches)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
