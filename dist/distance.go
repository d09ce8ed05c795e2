// Package dist builds distance matrices between usage profiles.
//
// The distance between two profiles x and y is the sum over all the
// symbols of |x[u]^2 - y[u]^2|, i.e. the L1 distance between the
// squared frequency vectors. It is neither the Euclidean distance nor
// the squared Euclidean distance.
package dist

import (
	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
	"github.com/op/go-logging"

	"github.com/vabalass/codons-and-dicodons/codon"
)

var log = logging.MustGetLogger("dist")

// squares returns the squared frequencies of symbols.
func squares(p codon.Profile, symbols []string) []float64 {
	v := p.Vector(symbols)
	floats.Mul(v, v)
	return v
}

// Distance returns the distance between two profiles over the
// symbols. Symbols absent from a profile have zero frequency.
func Distance(x, y codon.Profile, symbols []string) float64 {
	return floats.Distance(squares(x, symbols), squares(y, symbols), 1)
}

// Matrix computes the distance matrix between all the samples of
// the table. Rows and columns follow t.Names().
func Matrix(t *codon.Table) *mat64.Dense {
	names := t.Names()
	n := len(names)
	symbols := t.Symbols()
	log.Debugf("Distance matrix for %d samples, %d symbols", n, len(symbols))

	sq := make([][]float64, n)
	for i, name := range names {
		sq[i] = squares(t.Profile(name), symbols)
	}

	m := mat64.NewDense(n, n, nil)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x != y {
				m.Set(x, y, floats.Distance(sq[x], sq[y], 1))
			}
		}
	}
	return m
}
