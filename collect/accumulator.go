package collect

import (
	"github.com/vabalass/codons-and-dicodons/bio"
	"github.com/vabalass/codons-and-dicodons/codon"
	"github.com/vabalass/codons-and-dicodons/orf"
)

// FileProfile is the usage of a single sample file, summed over its
// records.
type FileProfile struct {
	Name     string
	NRecords int
	NRegions int
	Codons   codon.Profile
	Dicodons codon.Profile
}

// Analyzer computes usage profiles of sequences.
type Analyzer struct {
	Locator orf.Locator
}

// NewAnalyzer creates an analyzer with the default minimal coding
// region length.
func NewAnalyzer(gcode *bio.GeneticCode) Analyzer {
	return Analyzer{Locator: orf.NewLocator(gcode)}
}

// AnalyzeSequences computes usage of every record and adds the
// record frequencies up.
func (a Analyzer) AnalyzeSequences(name string, seqs bio.Sequences) *FileProfile {
	fp := &FileProfile{
		Name:     name,
		NRecords: len(seqs),
		Codons:   codon.Profile{},
		Dicodons: codon.Profile{},
	}
	for _, seq := range seqs {
		regions := a.Locator.CodingRegions(seq.Sequence)
		log.Debugf("%s/%s: %d nucleotides, %d coding regions", name, seq.Name, len(seq.Sequence), len(regions))
		fp.NRegions += len(regions)
		c, d := codon.Analyze(regions, a.Locator.GCode)
		fp.Codons.Add(c)
		fp.Dicodons.Add(d)
	}
	return fp
}

// GroupUsage is the accumulated usage of a group.
type GroupUsage struct {
	NSamples int
	Codons   codon.Profile
	Dicodons codon.Profile
}

// Accumulator collects file profiles per sample and per group.
type Accumulator struct {
	Groups   []Group
	Codons   *codon.Table
	Dicodons *codon.Table
	// Usage is indexed by group name.
	Usage map[string]*GroupUsage

	NRecords int
	NRegions int
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator(groups []Group) *Accumulator {
	acc := &Accumulator{
		Groups:   groups,
		Codons:   codon.NewTable(),
		Dicodons: codon.NewTable(),
		Usage:    make(map[string]*GroupUsage, len(groups)),
	}
	for _, g := range groups {
		acc.Usage[g.Name] = &GroupUsage{Codons: codon.Profile{}, Dicodons: codon.Profile{}}
	}
	return acc
}

// Add adds a file profile. Every file becomes a sample, even if
// nothing was counted in it. Files matching a group are added to the
// group usage.
func (acc *Accumulator) Add(fp *FileProfile) *Accumulator {
	acc.Codons.Add(fp.Name, fp.Codons)
	acc.Dicodons.Add(fp.Name, fp.Dicodons)
	acc.NRecords += fp.NRecords
	acc.NRegions += fp.NRegions

	if g := Classify(acc.Groups, fp.Name); g != nil {
		log.Debugf("%s belongs to group %s", fp.Name, g.Name)
		u := acc.Usage[g.Name]
		u.NSamples++
		u.Codons.Add(fp.Codons)
		u.Dicodons.Add(fp.Dicodons)
	}
	return acc
}
