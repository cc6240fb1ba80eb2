// Package structure holds the in-memory model of a coordinate file.
// A structure owns its models, a model its chains and a chain its
// residues, down to the atoms. It is a strict tree. There are no back
// pointers and nothing is shared, so whoever holds the structure may
// mutate it without worrying about anybody else.
// Removing a residue from its chain is the only structural edit
// anything in this program performs. Order is never changed.
package structure

// An Atom keeps the fields of one ATOM or HETATM record. Coordinates
// are real numbers, since they are what this program is about. The
// other columns are carried as they appeared in the file, so writing
// them out again changes nothing.
type Atom struct {
	Serial    string // columns 7-11 as written
	RawName   string // columns 13-16 as written, alignment included
	Name      string // atom name with the padding removed
	AltLoc    byte
	X, Y, Z   float64
	Occupancy string // columns 55-60 as written
	BFactor   string // columns 61-66 as written
	Element   string // columns 77-78 as written
	Charge    string // columns 79-80 as written
	Het       bool   // true if the record was HETATM
}

// A Key identifies a residue within its chain. The insertion code
// qualifies the sequence number, so ("52", ' ') and ("52", 'A') are
// different residues.
type Key struct {
	SeqNum int
	ICode  byte
}

type Residue struct {
	Name  string // three letter code like "ALA" or "HOH"
	Key   Key
	Atoms []*Atom
}

type Chain struct {
	ID       string // usually a single character like "A"
	Residues []*Residue
}

type Model struct {
	Num    int
	Chains []*Chain
}

type Structure struct {
	Models []*Model
}

// Keys returns a fresh slice with the keys of the residues currently
// in the chain. Anybody who wants to delete residues while walking a
// chain must walk this snapshot and not the live residue slice.
func (c *Chain) Keys() []Key {
	ret := make([]Key, len(c.Residues))
	for i, r := range c.Residues {
		ret[i] = r.Key
	}
	return ret
}

// Residue returns the residue with the given key, or nil if there is
// no such residue in the chain.
func (c *Chain) Residue(k Key) *Residue {
	for _, r := range c.Residues {
		if r.Key == k {
			return r
		}
	}
	return nil
}

// Remove deletes the residue with the given key, keeping the order of
// the survivors. The caller only asks to remove residues it has just
// seen, so a missing key is not a user problem.
func (c *Chain) Remove(k Key) {
	for i, r := range c.Residues {
		if r.Key == k {
			c.Residues = append(c.Residues[:i], c.Residues[i+1:]...)
			return
		}
	}
	panic("programming bug, removing residue that is not there")
}

// Chain returns the chain with this identifier, or nil. Chain
// identifiers are unique within a model.
func (m *Model) Chain(id string) *Chain {
	for _, c := range m.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// GetChain returns the chain with this identifier, making it first if
// it does not exist yet. The reader uses it while building a model.
func (m *Model) GetChain(id string) *Chain {
	if c := m.Chain(id); c != nil {
		return c
	}
	c := &Chain{ID: id}
	m.Chains = append(m.Chains, c)
	return c
}

// NAtoms counts the atoms in the whole structure.
func (s *Structure) NAtoms() int {
	var n int
	for _, m := range s.Models {
		for _, c := range m.Chains {
			for _, r := range c.Residues {
				n += len(r.Atoms)
			}
		}
	}
	return n
}

// NResidues counts the residues in the whole structure.
func (s *Structure) NResidues() int {
	var n int
	for _, m := range s.Models {
		for _, c := range m.Chains {
			n += len(c.Residues)
		}
	}
	return n
}
