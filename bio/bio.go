// Package bio provides functions related to the genetic code and
// nucleotide sequence input.
package bio

import (
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences, e.g. all the records of a
// FASTA file.
type Sequences []Sequence

// ReadFasta reads all FASTA records from a reader. Sequences are
// converted to capital letters and U is replaced with T. A reader
// without records produces an empty slice.
func ReadFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	sc := seqio.NewScanner(fasta.NewReader(rd, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		nseq := strings.ToUpper(s.Seq.String())
		seqs = append(seqs, Sequence{
			Name:     s.Name(),
			Sequence: strings.Replace(nseq, "U", "T", -1),
		})
	}
	if err = sc.Error(); err != nil {
		return nil, err
	}
	return
}

// RevComp returns the reverse complement of a nucleotide sequence.
// IUPAC ambiguity codes are complemented as well, other letters
// become N.
func RevComp(nseq string) string {
	if nseq == "" {
		return ""
	}
	letters := alphabet.BytesToLetters([]byte(nseq))
	for i, l := range letters {
		if !alphabet.DNAredundant.IsValid(l) {
			letters[i] = 'N'
		}
	}
	s := linear.NewSeq("", letters, alphabet.DNAredundant)
	s.RevComp()
	return s.Seq.String()
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) (s string) {
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		s += seq[i:end] + "\n"
	}
	return
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() (s string) {
	s = ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
	return
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() (s string) {
	for _, seq := range seqs {
		s += seq.String()
	}
	if s == "" {
		return
	}
	return s[:len(s)-1]
}
