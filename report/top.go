package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/vabalass/codons-and-dicodons/codon"
)

// Entry is a symbol with its accumulated frequency.
type Entry struct {
	Symbol string  `json:"symbol"`
	Value  float64 `json:"value"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %.4f", e.Symbol, e.Value)
}

// Top returns at most n symbols with the highest values. Symbols
// with equal values are ordered alphabetically.
func Top(p codon.Profile, n int) []Entry {
	entries := make([]Entry, 0, len(p))
	for sym, v := range p {
		entries = append(entries, Entry{sym, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Symbol < entries[j].Symbol
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// WriteTop writes a title line followed by one line per entry.
func WriteTop(w io.Writer, title string, entries []Entry) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}
