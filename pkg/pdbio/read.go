// Package pdbio reads and writes coordinate files in the old pdb
// format. Reading collects ATOM and HETATM records into the
// structure tree. Everything that is not coordinate data (headers,
// remarks, TER and friends) is passed over. Writing emits one record
// per atom using the same fixed columns, so a structure that was not
// filtered comes back out as it went in.

package pdbio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/andrew-torda/pdbclean/pkg/structure"
)

const recLen = 80 // records are padded to this before slicing

// Read parses coordinate records from r into a structure. Structures
// without MODEL records get a single implicit model. A file with no
// coordinate records at all is refused, since it cannot have been a
// pdb file.
func Read(r io.Reader) (*structure.Structure, error) {
	s := new(structure.Structure)
	mdl := &structure.Model{Num: 1}
	scnnr := bufio.NewScanner(r)
	n := 0 // line number, for error messages
	for scnnr.Scan() {
		n++
		line := scnnr.Text()
		switch {
		case strings.HasPrefix(line, "ATOM"),
			strings.HasPrefix(line, "HETATM"):
			if err := addAtom(mdl, line, n); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "ENDMDL"):
			if len(mdl.Chains) > 0 {
				s.Models = append(s.Models, mdl)
			}
			mdl = &structure.Model{Num: len(s.Models) + 1}
		case strings.HasPrefix(line, "MODEL"):
			if len(mdl.Chains) > 0 {
				s.Models = append(s.Models, mdl)
			}
			num := len(s.Models) + 1
			if len(line) >= 14 {
				if i, err := strconv.Atoi(strings.TrimSpace(line[10:14])); err == nil {
					num = i
				}
			}
			mdl = &structure.Model{Num: num}
		}
	}
	if err := scnnr.Err(); err != nil {
		return nil, err
	}
	if len(mdl.Chains) > 0 {
		s.Models = append(s.Models, mdl)
	}
	if len(s.Models) == 0 {
		return nil, &ParseError{Desc: "no coordinate records found"}
	}
	return s, nil
}

// addAtom takes one ATOM or HETATM line apart and hangs the atom on
// the right chain and residue of mdl, making them as needed. The
// columns are the classic ones: serial 7-11, atom name 13-16, altloc
// 17, residue name 18-20, chain 22, residue number 23-26, insertion
// code 27, then three 8.3 coordinates. Fields after the coordinates
// are optional and kept exactly as written.
func addAtom(mdl *structure.Model, line string, n int) error {
	const minLen = 54 // a record must reach the end of the z column
	if len(line) < minLen {
		return &ParseError{N: n, Line: line, Desc: "coordinate record too short"}
	}
	if len(line) < recLen {
		line = line + strings.Repeat(" ", recLen-len(line))
	}

	seqNum, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return &ParseError{N: n, Line: line, Desc: "cannot read residue number"}
	}
	var xyz [3]float64
	for i, f := range []string{line[30:38], line[38:46], line[46:54]} {
		if xyz[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return &ParseError{N: n, Line: line, Desc: "cannot read coordinate"}
		}
	}

	a := &structure.Atom{
		Serial:    line[6:11],
		RawName:   line[12:16],
		Name:      strings.TrimSpace(line[12:16]),
		AltLoc:    line[16],
		X:         xyz[0],
		Y:         xyz[1],
		Z:         xyz[2],
		Occupancy: line[54:60],
		BFactor:   line[60:66],
		Element:   line[76:78],
		Charge:    line[78:80],
		Het:       strings.HasPrefix(line, "HETATM"),
	}

	key := structure.Key{SeqNum: seqNum, ICode: line[26]}
	chain := mdl.GetChain(line[21:22])
	res := chain.Residue(key)
	if res == nil {
		res = &structure.Residue{
			Name: strings.TrimSpace(line[17:20]),
			Key:  key,
		}
		chain.Residues = append(chain.Residues, res)
	}
	res.Atoms = append(res.Atoms, a)
	return nil
}
