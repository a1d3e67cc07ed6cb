// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/amr-extract/internal/corpus"
	"github.com/pdiddy/amr-extract/internal/keyword"
	"github.com/pdiddy/amr-extract/pkg/types"
)

var sentencesCmd = &cobra.Command{
	Use:   "sentences",
	Short: "Extract sentences containing the keyword from PDF, HTML, and TXT files",
	Long: `Sentences reads every file in the docs and texts directories, extracts
plain text (trying UTF-8, Windows-1252, ISO-8859-1, then auto-detection for
text formats), splits it into sentences, and prints the sentences that
contain the keyword as a whole word. Unsupported file types are skipped.`,
	RunE: runSentences,
}

func runSentences(cmd *cobra.Command, args []string) error {
	cfg := corpusConfig()

	m, err := keyword.New(cfg.Keyword)
	if err != nil {
		return err
	}

	files, err := corpus.ListFiles(cfg.DocsDir, cfg.TextsDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Total files: %d\n", len(files))
	if cfg.Limit > 0 && cfg.Limit < len(files) {
		files = files[:cfg.Limit]
	}

	reader := corpus.NewReader(cfg.Encodings, os.Stderr)
	matches, summary := corpus.ExtractSentences(reader, files, m, os.Stdout)

	corpus.PrintSummary(os.Stdout, cfg.Keyword, matches, summary)

	if cfg.OutputPath == "" {
		for _, mt := range matches {
			fmt.Fprintln(os.Stdout, mt.Annotated())
		}
		return nil
	}
	if err := corpus.WriteMatches(cfg.OutputPath, cfg.Keyword, matches, summary); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Matches saved: %s\n", cfg.OutputPath)
	return nil
}

func corpusConfig() types.CorpusConfig {
	return types.CorpusConfig{
		DocsDir:    viper.GetString("corpus.docs_dir"),
		TextsDir:   viper.GetString("corpus.texts_dir"),
		Keyword:    viper.GetString("corpus.keyword"),
		Encodings:  viper.GetStringSlice("corpus.encodings"),
		Limit:      viper.GetInt("corpus.limit"),
		OutputPath: viper.GetString("corpus.output"),
	}
}

func init() {
	sentencesCmd.Flags().String("docs-dir", "", "directory of PDF and HTML documents")
	sentencesCmd.Flags().String("texts-dir", "", "directory of plain-text documents")
	sentencesCmd.Flags().String("keyword", "", "keyword to search for")
	sentencesCmd.Flags().StringSlice("encodings", nil, "encodings tried in order before auto-detection")
	sentencesCmd.Flags().Int("limit", 0, "process at most N files (0 = all)")
	sentencesCmd.Flags().String("output", "", "write matches to this file (.yaml for a YAML export)")

	bindFlags(sentencesCmd, map[string]string{
		"docs-dir":  "corpus.docs_dir",
		"texts-dir": "corpus.texts_dir",
		"keyword":   "corpus.keyword",
		"encodings": "corpus.encodings",
		"limit":     "corpus.limit",
		"output":    "corpus.output",
	})

	rootCmd.AddCommand(sentencesCmd)
}
