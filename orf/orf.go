// Package orf extracts reading frames from nucleotide sequences and
// locates open reading frames (coding regions) in them.
package orf

import (
	"github.com/vabalass/codons-and-dicodons/bio"
)

const (
	// StartCodon is the only codon which opens a coding region.
	StartCodon = "ATG"
	// DefaultMinLength is the default minimal coding region length
	// (exclusive) in nucleotides.
	DefaultMinLength = 100
)

// Frames returns the six reading frames of a sequence. For every
// offset 0, 1 and 2 the forward frame is followed by the frame of the
// reverse complement.
func Frames(nseq string) []string {
	rc := bio.RevComp(nseq)
	frames := make([]string, 0, 6)
	for offset := 0; offset < 3; offset++ {
		frames = append(frames, suffix(nseq, offset), suffix(rc, offset))
	}
	return frames
}

// suffix returns s[offset:] or an empty string if s is too short.
func suffix(s string, offset int) string {
	if offset >= len(s) {
		return ""
	}
	return s[offset:]
}

// Locator finds coding regions in reading frames.
type Locator struct {
	GCode *bio.GeneticCode
	// Regions of MinLength nucleotides or shorter are discarded.
	MinLength int
}

// NewLocator creates a Locator with the default minimal length.
func NewLocator(gcode *bio.GeneticCode) Locator {
	return Locator{GCode: gcode, MinLength: DefaultMinLength}
}

// Locate returns coding regions of a single reading frame. Every
// in-frame start codon is paired with the first in-frame stop codon
// after it. The scan continues with the codon following the start,
// so regions nested in a longer region are reported as well.
func (l Locator) Locate(frame string) (regions []string) {
	n := len(frame)
	for i := 0; i+3 <= n; i += 3 {
		if frame[i:i+3] != StartCodon {
			continue
		}
		for j := i + 3; j+3 <= n; j += 3 {
			if l.GCode.IsStopCodon(frame[j : j+3]) {
				if j+3-i > l.MinLength {
					regions = append(regions, frame[i:j+3])
				}
				break
			}
		}
	}
	return
}

// CodingRegions returns coding regions from all six reading frames
// of a sequence.
func (l Locator) CodingRegions(nseq string) (regions []string) {
	for _, frame := range Frames(nseq) {
		regions = append(regions, l.Locate(frame)...)
	}
	return
}
