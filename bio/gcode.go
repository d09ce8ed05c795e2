package bio

import (
	"bytes"
	"fmt"
)

const (
	// StopSymbol is the amino acid symbol for stop codons.
	StopSymbol = '*'
	// UnknownSymbol is the translation of a codon containing
	// letters other than A, C, G or T.
	UnknownSymbol = 'X'
)

// tcag is the nucleotide order used by NCBI genetic code tables.
const tcag = "TCAG"

// GeneticCode is a translation table. Codons are capital DNA
// letters, amino acids are capital letters, stop codons are
// translated to StopSymbol.
type GeneticCode struct {
	ID   int
	Name string
	// Map is a map, codon string is the key, amino acid is the value.
	Map map[string]byte
	// NCodon is the number of sense codons.
	NCodon int
}

// GeneticCodes contains the supported genetic codes, the key is the
// NCBI genetic code id.
var GeneticCodes = map[int]*GeneticCode{
	1: newGeneticCode(1, "Standard",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"),
	2: newGeneticCode(2, "Vertebrate Mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG"),
	4: newGeneticCode(4, "Mold Mitochondrial; Protozoan Mitochondrial; Coelenterate Mitochondrial; Mycoplasma; Spiroplasma",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"),
	11: newGeneticCode(11, "Bacterial, Archaeal and Plant Plastid",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"),
}

// Standard is the standard genetic code (NCBI id 1).
var Standard = GeneticCodes[1]

// newGeneticCode creates a genetic code from the NCBI ncbieaa
// string, which lists amino acids for codons in TCAG order.
func newGeneticCode(id int, name, ncbieaa string) *GeneticCode {
	if len(ncbieaa) != 64 {
		panic(fmt.Sprintf("genetic code %d: wrong table length %d", id, len(ncbieaa)))
	}
	gcode := &GeneticCode{
		ID:   id,
		Name: name,
		Map:  make(map[string]byte, 64),
	}
	i := 0
	for _, l1 := range []byte(tcag) {
		for _, l2 := range []byte(tcag) {
			for _, l3 := range []byte(tcag) {
				aa := ncbieaa[i]
				gcode.Map[string([]byte{l1, l2, l3})] = aa
				if aa != StopSymbol {
					gcode.NCodon++
				}
				i++
			}
		}
	}
	return gcode
}

// String returns a short genetic code description.
func (gcode *GeneticCode) String() string {
	return fmt.Sprintf("<GeneticCode: %d, \"%s\">", gcode.ID, gcode.Name)
}

// iupac lists the nucleotides matched by the IUPAC ambiguity codes.
var iupac = map[byte]string{
	'A': "A", 'C': "C", 'G': "G", 'T': "T",
	'R': "AG", 'Y': "CT", 'S': "CG", 'W': "AT", 'K': "GT", 'M': "AC",
	'B': "CGT", 'D': "AGT", 'H': "ACT", 'V': "ACG", 'N': "ACGT",
}

// TranslateCodon translates a single codon (capital letters). A codon
// with IUPAC ambiguity codes is translated if all the codons it
// matches encode the same amino acid (or are all stop codons).
// Otherwise, and for letters outside IUPAC, UnknownSymbol is
// returned.
func (gcode *GeneticCode) TranslateCodon(codon string) byte {
	if aa, ok := gcode.Map[codon]; ok {
		return aa
	}
	if len(codon) != 3 {
		return UnknownSymbol
	}
	var aa byte
	for _, l1 := range []byte(iupac[codon[0]]) {
		for _, l2 := range []byte(iupac[codon[1]]) {
			for _, l3 := range []byte(iupac[codon[2]]) {
				a := gcode.Map[string([]byte{l1, l2, l3})]
				if aa != 0 && a != aa {
					return UnknownSymbol
				}
				aa = a
			}
		}
	}
	if aa == 0 {
		return UnknownSymbol
	}
	return aa
}

// Translate translates nucleotide sequence string into the protein
// string. Every complete codon is translated, stop codons included,
// a trailing incomplete codon is ignored.
func (gcode *GeneticCode) Translate(nseq string) string {
	var buffer bytes.Buffer
	buffer.Grow(len(nseq) / 3)
	for i := 0; i+3 <= len(nseq); i += 3 {
		buffer.WriteByte(gcode.TranslateCodon(nseq[i : i+3]))
	}
	return buffer.String()
}

// IsStopCodon tests if the string is a stop-codon (DNA alphabet,
// capital letters).
func (gcode *GeneticCode) IsStopCodon(codon string) bool {
	return gcode.Map[codon] == StopSymbol
}
