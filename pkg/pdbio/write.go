package pdbio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/pdbclean/pkg/structure"
)

// rawName gives the four column atom name field. Atoms that came
// from a file carry it verbatim. For an atom built in memory we
// follow the usual convention, names up to three characters start
// in the second column.
func rawName(a *structure.Atom) string {
	if a.RawName != "" {
		return a.RawName
	}
	if len(a.Name) < 4 {
		return fmt.Sprintf(" %-3s", a.Name)
	}
	return a.Name
}

func orSpace(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}

// Write sends the structure to w, one record per atom, models, then
// chains, then residues, then atoms, in the order they are held.
// A TER line closes each chain that still has residues. MODEL and
// ENDMDL lines only appear when there is more than one model.
func Write(w io.Writer, s *structure.Structure) error {
	bw := bufio.NewWriter(w)
	multi := len(s.Models) > 1
	for _, m := range s.Models {
		if multi {
			fmt.Fprintf(bw, "MODEL     %4d\n", m.Num)
		}
		for _, c := range m.Chains {
			for _, r := range c.Residues {
				for _, a := range r.Atoms {
					rec := "ATOM  "
					if a.Het {
						rec = "HETATM"
					}
					fmt.Fprintf(bw,
						"%s%5s %4s%c%3s %1s%4d%c   %8.3f%8.3f%8.3f%6s%6s          %2s%2s\n",
						rec, a.Serial, rawName(a), orSpace(a.AltLoc),
						r.Name, c.ID, r.Key.SeqNum, orSpace(r.Key.ICode),
						a.X, a.Y, a.Z,
						a.Occupancy, a.BFactor, a.Element, a.Charge)
				}
			}
			if len(c.Residues) > 0 {
				fmt.Fprintln(bw, "TER")
			}
		}
		if multi {
			fmt.Fprintln(bw, "ENDMDL")
		}
	}
	fmt.Fprintln(bw, "END")
	return bw.Flush()
}

// WriteFile writes the structure to fname, clobbering whatever was
// there before. The structure itself is not touched, so on failure
// the caller can try again somewhere else.
func WriteFile(fname string, s *structure.Structure) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := Write(fp, s); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
