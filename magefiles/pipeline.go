//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Flatten builds the CLI and flattens the default AMR file, keeping graphs
// that mention the configured keyword.
func Flatten() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "flatten")
}

// FlattenAll builds the CLI and flattens the default AMR file without filtering.
func FlattenAll() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "flatten", "--filter=false")
}

// Sentences builds the CLI and extracts keyword sentences from data/docs and data/txts.
func Sentences() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "sentences")
}
