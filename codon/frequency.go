// Package codon computes codon and dicodon usage of coding regions.
// Codons are counted by the amino acid they encode, dicodons by the
// pair of amino acids; stop codons are never counted.
package codon

import (
	"strings"

	"github.com/vabalass/codons-and-dicodons/bio"
)

// Counter counts codons and dicodons over coding regions.
type Counter struct {
	GCode *bio.GeneticCode

	Codons   map[string]int
	Dicodons map[string]int
	// NCodon and NDicodon are the total numbers of counted codons
	// and dicodons.
	NCodon   int
	NDicodon int
}

// NewCounter creates an empty counter.
func NewCounter(gcode *bio.GeneticCode) *Counter {
	return &Counter{
		GCode:    gcode,
		Codons:   make(map[string]int),
		Dicodons: make(map[string]int),
	}
}

// Count counts all codons of a region starting from its first
// nucleotide. A dicodon is counted at every codon position which is
// followed by a complete codon, unless any of the two codons is a
// stop codon.
func (c *Counter) Count(region string) {
	for k := 0; k+3 <= len(region); k += 3 {
		aa := c.GCode.TranslateCodon(region[k : k+3])
		if aa != bio.StopSymbol {
			c.Codons[string(aa)]++
			c.NCodon++
		}
		if k+6 <= len(region) {
			pair := c.GCode.Translate(region[k : k+6])
			if strings.IndexByte(pair, bio.StopSymbol) < 0 {
				c.Dicodons[pair]++
				c.NDicodon++
			}
		}
	}
}

// Frequencies returns codon and dicodon frequencies. A profile is
// empty if nothing was counted.
func (c *Counter) Frequencies() (codons, dicodons Profile) {
	return NewProfile(c.Codons, c.NCodon), NewProfile(c.Dicodons, c.NDicodon)
}

// Analyze returns codon and dicodon frequencies pooled over all the
// regions.
func Analyze(regions []string, gcode *bio.GeneticCode) (codons, dicodons Profile) {
	c := NewCounter(gcode)
	for _, region := range regions {
		c.Count(region)
	}
	return c.Frequencies()
}
