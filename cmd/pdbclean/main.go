// Parse the command line and hand over to pkg/pdbclean.

package main

import (
	"fmt"
	"os"
	"path"

	flag "github.com/spf13/pflag"

	"github.com/andrew-torda/pdbclean/pkg/common"
	"github.com/andrew-torda/pdbclean/pkg/pdbclean"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]),
		"--input in.pdb --output out.pdb [--hetatm NAME]... [--keep-protein-only] [--remove-water]")
	flag.PrintDefaults()
}

func main() {
	var flags pdbclean.CmdFlag

	flag.StringVar(&flags.Input, "input", "", "structure file to clean")
	flag.StringVar(&flags.Output, "output", "", "where to write the cleaned structure")
	flag.StringArrayVar(&flags.Hetatm, "hetatm", nil,
		"heteroatom residue name to remove, may be repeated")
	flag.BoolVar(&flags.KeepProteinOnly, "keep-protein-only", false,
		"keep only standard protein residues")
	flag.BoolVar(&flags.RemoveWater, "remove-water", false, "remove water residues")
	flag.StringVar(&flags.Report, "report", "",
		"write a per-chain summary to a file, or \"stdout\"")
	flag.Usage = usage
	flag.Parse()

	if err := pdbclean.Mymain(&flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
