package codon

import "sort"

// Table stores a profile per sample. Samples are kept in the order
// of their first insertion.
type Table struct {
	names    []string
	profiles map[string]Profile
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{profiles: make(map[string]Profile)}
}

// Add adds frequencies of p to the profile of sample name, creating
// the sample if needed. A nil or empty p still creates the sample.
func (t *Table) Add(name string, p Profile) {
	prof, ok := t.profiles[name]
	if !ok {
		prof = make(Profile, len(p))
		t.profiles[name] = prof
		t.names = append(t.names, name)
	}
	prof.Add(p)
}

// Names returns sample names in insertion order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Profile returns profile of a sample or nil.
func (t *Table) Profile(name string) Profile {
	return t.profiles[name]
}

// Len returns the number of samples.
func (t *Table) Len() int {
	return len(t.names)
}

// Symbols returns the sorted union of symbols of all the samples.
func (t *Table) Symbols() []string {
	found := make(map[string]bool)
	for _, p := range t.profiles {
		for sym := range p {
			found[sym] = true
		}
	}
	symbols := make([]string, 0, len(found))
	for sym := range found {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}
