// The cleaning report. It says, per chain, how many standard
// residues survived and which heteroatoms are left, with counts.
// It is bookkeeping for the user, the output file never depends
// on it.

package pdbclean

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/andrew-torda/pdbclean/pkg/partition"
	"github.com/andrew-torda/pdbclean/pkg/structure"
)

// a fakecloser is a wrapper around an io.Writer which turns it into
// a WriteCloser, for when the destination is stdout and must not
// really be closed.
type fakecloser struct {
	io.Writer
}

func (fakecloser) Close() error { return nil }

// repWhere decides where the report goes. "" means it is thrown
// away, "stdout" is the obvious, anything else is a filename.
func repWhere(dest string) (io.WriteCloser, error) {
	switch dest {
	case "":
		return fakecloser{io.Discard}, nil
	case "stdout":
		return fakecloser{os.Stdout}, nil
	}
	return os.Create(dest)
}

// report partitions the structure and prints the summary. Chains
// come out in file order, heteroatom names within a chain by count,
// biggest first, then alphabetically.
func report(dest string, s *structure.Structure) error {
	if dest == "" {
		return nil
	}
	w, err := repWhere(dest)
	if err != nil {
		return err
	}
	protein, hetero := partition.ByChain(s)

	seen := make(map[string]bool) // a chain appears once, even with many models
	for _, m := range s.Models {
		for _, c := range m.Chains {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			fmt.Fprintf(w, "chain %q: %d standard residues\n",
				c.ID, len(protein[c.ID]))

			type npair struct {
				name string
				n    int
			}
			het := hetero[c.ID]
			pairs := make([]npair, 0, len(het))
			for k, v := range het {
				pairs = append(pairs, npair{k, len(v)})
			}
			sort.Slice(pairs, func(i, j int) bool {
				if pairs[i].n != pairs[j].n {
					return pairs[i].n > pairs[j].n
				}
				return pairs[i].name < pairs[j].name
			})
			for _, p := range pairs {
				fmt.Fprintf(w, "    %s %d\n", p.name, p.n)
			}
		}
	}
	return w.Close()
}
