package codon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gonum/floats"
)

// Profile maps amino acid symbols (codons) or amino acid pairs
// (dicodons) to their frequencies.
type Profile map[string]float64

// NewProfile converts counts to frequencies. If total is zero an
// empty profile is returned.
func NewProfile(counts map[string]int, total int) Profile {
	p := make(Profile, len(counts))
	if total == 0 {
		return p
	}
	for sym, n := range counts {
		p[sym] = float64(n) / float64(total)
	}
	return p
}

// Get returns the frequency of a symbol, zero for absent symbols.
func (p Profile) Get(sym string) float64 {
	return p[sym]
}

// Add adds frequencies of another profile to this one.
func (p Profile) Add(other Profile) {
	for sym, f := range other {
		p[sym] += f
	}
}

// Copy returns a copy of the profile.
func (p Profile) Copy() Profile {
	c := make(Profile, len(p))
	c.Add(p)
	return c
}

// Keys returns sorted profile symbols.
func (p Profile) Keys() []string {
	keys := make([]string, 0, len(p))
	for sym := range p {
		keys = append(keys, sym)
	}
	sort.Strings(keys)
	return keys
}

// Vector returns frequencies of the symbols, absent symbols are
// zero.
func (p Profile) Vector(symbols []string) []float64 {
	v := make([]float64, len(symbols))
	for i, sym := range symbols {
		v[i] = p.Get(sym)
	}
	return v
}

// Sum returns the sum of all frequencies.
func (p Profile) Sum() float64 {
	return floats.Sum(p.Vector(p.Keys()))
}

func (p Profile) String() string {
	var b strings.Builder
	b.WriteString("<Profile:")
	for _, sym := range p.Keys() {
		fmt.Fprintf(&b, " %s: %v,", sym, p[sym])
	}
	s := b.String()
	if len(p) > 0 {
		s = s[:len(s)-1]
	}
	return s + ">"
}
