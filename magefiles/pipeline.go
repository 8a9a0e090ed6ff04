//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// bin returns the path to the built CLI binary.
func bin() string {
	return filepath.Join(binDir, binName)
}

// Journals resolves the journal list for a discipline. Pass the discipline
// and the input CSV path.
func Journals(discipline, input string) error {
	mg.Deps(Build)
	return sh.RunV(bin(), "journals", "--discipline", discipline, "--input", input)
}

// Fetch retrieves OpenAlex works for the resolved journals of a discipline.
func Fetch(discipline string) error {
	mg.Deps(Build)
	return sh.RunV(bin(), "fetch", "--discipline", discipline)
}

// Tag reconstructs abstracts and matches keyword patterns for a discipline.
func Tag(discipline string) error {
	mg.Deps(Build)
	return sh.RunV(bin(), "tag", "--discipline", discipline)
}

// Report writes the prevalence tables for a discipline.
func Report(discipline string) error {
	mg.Deps(Build)
	return sh.RunV(bin(), "report", "--discipline", discipline)
}
