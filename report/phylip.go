// Package report writes analysis results: distance matrices in PHYLIP
// format, ranked usage lists and their plots.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gonum/matrix/mat64"
)

// NameWidth is the width of the sample name column.
const NameWidth = 10

// phylipName truncates or pads a name to NameWidth characters.
func phylipName(name string) string {
	r := []rune(name)
	if len(r) > NameWidth {
		r = r[:NameWidth]
	}
	return fmt.Sprintf("%-*s", NameWidth, string(r))
}

// WritePhylip writes a square distance matrix. The first line is
// the number of samples, every other line is a sample name followed
// by its distances with three decimal places.
func WritePhylip(w io.Writer, m mat64.Matrix, names []string) error {
	r, c := m.Dims()
	if r != len(names) || c != len(names) {
		return fmt.Errorf("matrix is %dx%d, but there are %d names", r, c, len(names))
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(names))
	for i, name := range names {
		bw.WriteString(phylipName(name))
		for j := range names {
			fmt.Fprintf(bw, " %.3f", m.At(i, j))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WritePhylipFile writes a distance matrix to a file.
func WritePhylipFile(fn string, m mat64.Matrix, names []string) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err = WritePhylip(f, m, names); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
