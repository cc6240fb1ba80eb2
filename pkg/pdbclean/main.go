// Package pdbclean is the tool logic after the command line has been
// parsed. It checks the configuration, reads the structure, runs the
// removal passes, maybe writes a report and writes the cleaned
// structure. One input file, one output file, strictly in that
// order, nothing runs concurrently.

package pdbclean

import (
	"errors"
	"fmt"
	"os"

	"github.com/andrew-torda/pdbclean/pkg/filter"
	"github.com/andrew-torda/pdbclean/pkg/pdbio"
)

// CmdFlag collects what the command line resolved to.
type CmdFlag struct {
	Input           string   // structure file to read
	Output          string   // where the cleaned structure goes
	Hetatm          []string // heteroatom names to remove
	KeepProteinOnly bool
	RemoveWater     bool
	Report          string // report destination, "" is quiet
}

// checkFlags refuses broken configurations before anything is read,
// so a bad invocation never leaves a partial output file behind.
func checkFlags(flags *CmdFlag, opts *filter.Options) error {
	if flags.Input == "" {
		return errors.New("no input file given")
	}
	if flags.Output == "" {
		return errors.New("no output file given")
	}
	if err := opts.Check(); err != nil {
		return err
	}
	if fi, err := os.Stat(flags.Input); err != nil {
		return fmt.Errorf("input file: %w", err)
	} else if fi.IsDir() {
		return errors.New(flags.Input + " is a directory, not a structure file")
	}
	return nil
}

// Mymain is the top level main, after parsing the command line.
func Mymain(flags *CmdFlag) error {
	opts := &filter.Options{
		RemoveWater:     flags.RemoveWater,
		KeepProteinOnly: flags.KeepProteinOnly,
		Hetatm:          flags.Hetatm,
	}
	if err := checkFlags(flags, opts); err != nil {
		return err
	}
	s, err := pdbio.ReadFile(flags.Input)
	if err != nil {
		return err
	}
	if err := filter.Run(s, opts); err != nil {
		return err
	}
	if err := report(flags.Report, s); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := pdbio.WriteFile(flags.Output, s); err != nil {
		return fmt.Errorf("writing %s: %w", flags.Output, err)
	}
	fmt.Println("cleaned", flags.Input, "->", flags.Output)
	return nil
}
