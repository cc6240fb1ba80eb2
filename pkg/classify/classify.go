// Package classify says what kind of residue a three letter name is.
// There is one fixed reference set of standard protein residues,
// water is its own category and the caller can name heteroatoms that
// should be treated as explicitly excluded.

package classify

// A Category is what a residue name turns out to be.
type Category byte

const (
	Standard       Category = iota // one of the 29 reference names
	Water                          // the literal "HOH"
	ExcludedHetero                 // named in the caller's exclusion set
	OtherHetero                    // anything else
)

func (c Category) String() string {
	switch c {
	case Standard:
		return "standard"
	case Water:
		return "water"
	case ExcludedHetero:
		return "excluded hetero"
	case OtherHetero:
		return "hetero"
	}
	return "unknown"
}

const waterName = "HOH"

// standardRes is the fixed reference set. The twenty canonical amino
// acids, then the protonation and tautomer variants one meets in
// files prepared for simulations. Histidine comes in the amber
// (HID/HIE/HIP) and charmm (HSD/HSE/HSP) spellings, ASH and GLH are
// protonated aspartate and glutamate, CYX is cystine in a disulphide
// bridge. Read-only after initialisation.
var standardRes = map[string]bool{
	"ALA": true, "ARG": true, "ASN": true, "ASP": true, "CYS": true,
	"GLN": true, "GLU": true, "GLY": true, "HIS": true, "ILE": true,
	"LEU": true, "LYS": true, "MET": true, "PHE": true, "PRO": true,
	"SER": true, "THR": true, "TRP": true, "TYR": true, "VAL": true,
	"HID": true, "HIE": true, "HIP": true,
	"HSD": true, "HSE": true, "HSP": true,
	"ASH": true, "GLH": true, "CYX": true,
}

// IsStandard says if a residue name is in the fixed reference set.
// Names are compared exactly, so "ala" is not "ALA".
func IsStandard(name string) bool { return standardRes[name] }

// IsWater says if a residue name is water.
func IsWater(name string) bool { return name == waterName }

// Residue classifies one residue name against the reference set and
// the caller's exclusion set. Water is recognised before the
// exclusion set is consulted, since water has its own removal rule.
// A nil exclusion set is fine.
func Residue(name string, exclude map[string]bool) Category {
	switch {
	case standardRes[name]:
		return Standard
	case name == waterName:
		return Water
	case exclude[name]:
		return ExcludedHetero
	}
	return OtherHetero
}
