package dist

import (
	"math"
	"testing"

	"github.com/vabalass/codons-and-dicodons/codon"
)

const smallDiff = 1e-12

// appreq tests if a and b are approximately equal.
func appreq(a, b float64) bool {
	return math.Abs(a-b) <= smallDiff
}

func TestDistance(tst *testing.T) {
	x := codon.Profile{"A": 0.5, "B": 0.5}
	y := codon.Profile{"A": 1}
	symbols := []string{"A", "B"}
	// |0.25 - 1| + |0.25 - 0|
	if d := Distance(x, y, symbols); !appreq(d, 1) {
		tst.Error("Expected 1, got", d)
	}
	if d := Distance(y, x, symbols); !appreq(d, 1) {
		tst.Error("Distance should be symmetric, got", d)
	}
	// this is not the euclidean distance
	x = codon.Profile{"A": 0.6, "B": 0.4}
	y = codon.Profile{"A": 0.4, "B": 0.6}
	if d := Distance(x, y, symbols); !appreq(d, 0.4) {
		tst.Error("Expected 0.4, got", d)
	}
}

func TestMatrixIdentical(tst *testing.T) {
	t := codon.NewTable()
	t.Add("a", codon.Profile{"K": 0.25, "M": 0.75})
	t.Add("b", codon.Profile{"K": 0.25, "M": 0.75})
	m := Matrix(t)
	r, c := m.Dims()
	if r != 2 || c != 2 {
		tst.Fatalf("Wrong matrix dimensions %dx%d", r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				tst.Errorf("Expected zero at %d,%d, got %v", i, j, m.At(i, j))
			}
		}
	}
}

func TestMatrix(tst *testing.T) {
	t := codon.NewTable()
	t.Add("a", codon.Profile{"K": 0.5, "M": 0.5})
	t.Add("b", codon.Profile{"K": 1})
	t.Add("c", codon.Profile{"W": 0.1, "M": 0.9})
	t.Add("d", codon.Profile{})
	m := Matrix(t)
	n, _ := m.Dims()
	if n != 4 {
		tst.Fatal("Expected 4 samples, got", n)
	}
	for i := 0; i < n; i++ {
		if m.At(i, i) != 0 {
			tst.Error("Diagonal should be zero, got", m.At(i, i))
		}
		for j := 0; j < n; j++ {
			if m.At(i, j) != m.At(j, i) {
				tst.Errorf("Matrix is not symmetric at %d,%d", i, j)
			}
			if m.At(i, j) < 0 {
				tst.Errorf("Negative distance at %d,%d", i, j)
			}
		}
	}
	if !appreq(m.At(0, 1), 1) {
		tst.Error("Wrong a-b distance:", m.At(0, 1))
	}
	// |0.25-0| + |0.25-0.81| + |0-0.01|
	if !appreq(m.At(0, 2), 0.82) {
		tst.Error("Wrong a-c distance:", m.At(0, 2))
	}
	// distance to an empty profile is the sum of squares
	if !appreq(m.At(1, 3), 1) || !appreq(m.At(0, 3), 0.5) {
		tst.Error("Wrong distances to the empty sample:", m.At(1, 3), m.At(0, 3))
	}
}

func TestMatrixEmpty(tst *testing.T) {
	m := Matrix(codon.NewTable())
	if r, c := m.Dims(); r != 0 || c != 0 {
		tst.Errorf("Expected an empty matrix, got %dx%d", r, c)
	}
}
