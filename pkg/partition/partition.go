// Package partition groups the residues of a structure by chain, and
// the heteroatoms further by name. It only reads. It does not decide
// what gets removed and the output file is never built from it, it is
// there so a report can say what is in each chain.

package partition

import (
	"github.com/andrew-torda/pdbclean/pkg/classify"
	"github.com/andrew-torda/pdbclean/pkg/structure"
)

// ProteinChains maps a chain identifier to its standard residues in
// file order.
type ProteinChains map[string][]*structure.Residue

// HeteroChains maps a chain identifier to the non-standard residues
// of the chain, grouped by residue name, file order kept within each
// group.
type HeteroChains map[string]map[string][]*structure.Residue

// ByChain walks the structure once and splits its residues into the
// standard and the non-standard ones. The test is membership of the
// fixed reference set, water and everything else is hetero here, no
// matter what an exclusion list might have said. Chains without
// residues of one kind simply have no entry in that map.
func ByChain(s *structure.Structure) (ProteinChains, HeteroChains) {
	protein := make(ProteinChains)
	hetero := make(HeteroChains)
	for _, m := range s.Models {
		for _, c := range m.Chains {
			for _, r := range c.Residues {
				if classify.IsStandard(r.Name) {
					protein[c.ID] = append(protein[c.ID], r)
					continue
				}
				if hetero[c.ID] == nil {
					hetero[c.ID] = make(map[string][]*structure.Residue)
				}
				hetero[c.ID][r.Name] = append(hetero[c.ID][r.Name], r)
			}
		}
	}
	return protein, hetero
}
