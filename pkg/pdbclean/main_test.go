package pdbclean_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/pdbclean/pkg/common"
	. "github.com/andrew-torda/pdbclean/pkg/pdbclean"
	"github.com/andrew-torda/pdbclean/pkg/pdbio"
)

func atomLine(rec string, serial int, name, res, chain string, seq int,
	x, y, z float64, elem string) string {
	rawname := name
	if len(rawname) < 4 {
		rawname = fmt.Sprintf(" %-3s", rawname)
	}
	return fmt.Sprintf(
		"%-6s%5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  ",
		rec, serial, rawname, res, chain, seq, x, y, z, 1.0, 20.0, elem)
}

func sample() string {
	lines := []string{
		atomLine("ATOM", 1, "N", "ALA", "A", 1, 11.104, 6.134, -6.504, "N"),
		atomLine("ATOM", 2, "CA", "ALA", "A", 1, 11.804, 6.922, -5.504, "C"),
		atomLine("ATOM", 3, "N", "GLY", "A", 2, 12.104, 7.134, -4.504, "N"),
		atomLine("HETATM", 4, "O", "HOH", "A", 101, 1.000, 2.000, 3.000, "O"),
		atomLine("HETATM", 5, "P", "PO4", "B", 1, 4.000, 5.000, 6.000, "P"),
		atomLine("HETATM", 6, "O", "HOH", "B", 2, 7.000, 8.000, 9.000, "O"),
		"END",
	}
	return strings.Join(lines, "\n") + "\n"
}

// write the sample input and give back its name plus an output path
func setup(t *testing.T) (string, string) {
	t.Helper()
	in, err := common.WrtTemp(sample())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(in) })
	return in, filepath.Join(t.TempDir(), "out.pdb")
}

func outNames(t *testing.T, fname string) []string {
	t.Helper()
	s, err := pdbio.ReadFile(fname)
	if err != nil {
		t.Fatal("reading the output back:", err)
	}
	var ret []string
	for _, m := range s.Models {
		for _, c := range m.Chains {
			for _, r := range c.Residues {
				ret = append(ret, r.Name)
			}
		}
	}
	return ret
}

func TestRemoveWater(t *testing.T) {
	in, out := setup(t)
	flags := CmdFlag{Input: in, Output: out, RemoveWater: true}
	if err := Mymain(&flags); err != nil {
		t.Fatal(err)
	}
	names := outNames(t, out)
	for _, n := range names {
		if n == "HOH" {
			t.Fatal("water survived --remove-water")
		}
	}
	found := false
	for _, n := range names {
		if n == "PO4" {
			found = true
		}
	}
	if !found {
		t.Fatal("--remove-water took the PO4 with it")
	}
}

func TestHetatmOnly(t *testing.T) {
	in, out := setup(t)
	flags := CmdFlag{Input: in, Output: out, Hetatm: []string{"PO4"}}
	if err := Mymain(&flags); err != nil {
		t.Fatal(err)
	}
	for _, n := range outNames(t, out) {
		if n == "PO4" {
			t.Fatal("PO4 survived --hetatm PO4")
		}
	}
	// water must still be there, the passes are independent
	water := 0
	for _, n := range outNames(t, out) {
		if n == "HOH" {
			water++
		}
	}
	if water != 2 {
		t.Fatalf("want 2 waters untouched, have %d", water)
	}
}

func TestKeepProteinOnly(t *testing.T) {
	in, out := setup(t)
	flags := CmdFlag{Input: in, Output: out, KeepProteinOnly: true}
	if err := Mymain(&flags); err != nil {
		t.Fatal(err)
	}
	want := []string{"ALA", "GLY"}
	got := outNames(t, out)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("protein-only output holds %v", got)
	}
}

// The contradictory flag pair must be refused before anything is
// read, and no output file may appear.
func TestConflictWritesNothing(t *testing.T) {
	in, out := setup(t)
	flags := CmdFlag{Input: in, Output: out,
		KeepProteinOnly: true, Hetatm: []string{"PO4"}}
	if err := Mymain(&flags); err == nil {
		t.Fatal("conflicting flags were accepted")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatal("a conflicting configuration left an output file behind")
	}
}

func TestMissingInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdb")
	flags := CmdFlag{Input: "/no/such/input.pdb", Output: out, RemoveWater: true}
	if err := Mymain(&flags); err == nil {
		t.Fatal("a missing input file was accepted")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatal("a missing input left an output file behind")
	}
}

func TestUnsetPaths(t *testing.T) {
	if err := Mymain(&CmdFlag{Output: "x"}); err == nil {
		t.Error("no input path was accepted")
	}
	if err := Mymain(&CmdFlag{Input: "x"}); err == nil {
		t.Error("no output path was accepted")
	}
}

// Asking for a report must not change the structure that is written.
func TestReportLeavesOutputAlone(t *testing.T) {
	in, out1 := setup(t)
	if err := Mymain(&CmdFlag{Input: in, Output: out1, RemoveWater: true}); err != nil {
		t.Fatal(err)
	}
	out2 := filepath.Join(t.TempDir(), "out2.pdb")
	rep := filepath.Join(t.TempDir(), "report.txt")
	flags := CmdFlag{Input: in, Output: out2, RemoveWater: true, Report: rep}
	if err := Mymain(&flags); err != nil {
		t.Fatal(err)
	}
	b1, err := os.ReadFile(out1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(out2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatal("the report changed the output file")
	}
	repb, err := os.ReadFile(rep)
	if err != nil {
		t.Fatal("no report was written:", err)
	}
	if !strings.Contains(string(repb), "chain") {
		t.Fatalf("report looks wrong:\n%s", repb)
	}
}

// No removal flags at all: the output must hold every atom the input
// held.
func TestNoOpKeepsEverything(t *testing.T) {
	in, out := setup(t)
	if err := Mymain(&CmdFlag{Input: in, Output: out}); err != nil {
		t.Fatal(err)
	}
	s1, err := pdbio.ReadFile(in)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := pdbio.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if s1.NAtoms() != s2.NAtoms() || s1.NResidues() != s2.NResidues() {
		t.Fatalf("no-op run changed the structure: %d/%d atoms, %d/%d residues",
			s1.NAtoms(), s2.NAtoms(), s1.NResidues(), s2.NResidues())
	}
}
