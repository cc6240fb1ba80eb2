// 14 May 2025

/*
Pdbclean removes unwanted residues from a pdb format coordinate file
and writes the rest back out, columns untouched.

What goes is decided one of two ways. Normally you say what you do
not want: --remove-water throws away the HOH residues, and each
--hetatm NAME throws away the residues with that name. The two are
independent and you can give both. Or you say --keep-protein-only,
and then only the standard protein residues survive. Standard means
the twenty amino acids plus the protonation and tautomer spellings
(HID, HIE, HIP, HSD, HSE, HSP, ASH, GLH, CYX).

--keep-protein-only together with --hetatm is refused. If only the
standard residues are kept there is nothing left for a heteroatom
list to say, so giving one is probably a mistake you want to hear
about. --remove-water next to --keep-protein-only is accepted
silently, water removal is implied there anyway.

Usage:
	pdbclean --input in.pdb --output out.pdb [flags]

The flags are:
	--input file
		The coordinate file to read. May be gzipped.
	--output file
		Where the cleaned structure goes. Clobbered if it exists.
	--hetatm NAME
		A residue name to remove. Give the flag once per name.
	--keep-protein-only
		Keep nothing but standard protein residues.
	--remove-water
		Remove HOH residues.
	--report dest
		Write a per chain summary (standard residue count,
		heteroatom counts) to dest. "stdout" writes to standard
		output. Without the flag there is no report.

Residues are only ever removed, never reordered or renumbered, and a
chain that loses all its residues stays in the structure as an empty
chain. The exit status is 0 on success and 1 on any failure, with a
one line message on stderr saying what went wrong.
*/
package main
