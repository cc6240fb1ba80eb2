// Package filter removes unwanted residues from a structure.
// Each rule is a full pass over the structure. A pass walks a
// snapshot of each chain's residue keys and deletes from the live
// chain, so we never iterate over something we are mutating. Later
// passes see the survivors of earlier ones, and passes never run
// concurrently. Chains that end up empty stay in the structure.

package filter

import (
	"errors"

	"github.com/andrew-torda/pdbclean/pkg/classify"
	"github.com/andrew-torda/pdbclean/pkg/structure"
)

// Options says which residues have to go. There are two modes. In
// the selective mode water goes if RemoveWater is set and the named
// heteroatoms go if Hetatm is not empty. If KeepProteinOnly is set,
// water and everything outside the standard set goes, which covers
// anything Hetatm could name. Asking for both protein-only and a
// non-empty Hetatm is contradictory and is refused. RemoveWater next
// to KeepProteinOnly is accepted silently, water removal is implied
// there anyway.
type Options struct {
	RemoveWater     bool
	KeepProteinOnly bool
	Hetatm          []string // residue names to exclude in selective mode
}

// ErrConflict is returned when protein-only mode is combined with an
// explicit heteroatom exclusion list.
var ErrConflict = errors.New(
	"cannot combine keep-protein-only with a list of heteroatoms to remove")

// Check looks for contradictory settings. It is called by Run, but
// callers who want to refuse a configuration before doing any work
// can call it themselves.
func (opts *Options) Check() error {
	if opts.KeepProteinOnly && len(opts.Hetatm) > 0 {
		return ErrConflict
	}
	return nil
}

// Run applies the removal passes the options ask for, mutating s in
// place. On a configuration error s is untouched.
func Run(s *structure.Structure, opts *Options) error {
	if err := opts.Check(); err != nil {
		return err
	}
	if opts.KeepProteinOnly {
		removePass(s, isWater)
		removePass(s, isNonStandard)
		return nil
	}
	if opts.RemoveWater {
		removePass(s, isWater)
	}
	if len(opts.Hetatm) > 0 {
		set := nameSet(opts.Hetatm)
		removePass(s, func(r *structure.Residue) bool { return set[r.Name] })
	}
	return nil
}

func isWater(r *structure.Residue) bool { return classify.IsWater(r.Name) }

func isNonStandard(r *structure.Residue) bool {
	return !classify.IsStandard(r.Name)
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// removePass makes one traversal of the whole structure and deletes
// every residue the predicate matches. The key snapshot from Keys()
// is what lets us delete during the walk.
func removePass(s *structure.Structure, gone func(*structure.Residue) bool) {
	for _, m := range s.Models {
		for _, c := range m.Chains {
			for _, k := range c.Keys() {
				if gone(c.Residue(k)) {
					c.Remove(k)
				}
			}
		}
	}
}
