package collect

import "strings"

// Group is a named set of samples. A sample belongs to the group if
// its name contains any of the patterns (case insensitive).
type Group struct {
	Name     string   `mapstructure:"name" json:"name"`
	Patterns []string `mapstructure:"patterns" json:"patterns"`
}

// DefaultGroups returns mammalian and bacterial virus groups.
// "mamalian" is kept for compatibility with existing sample names.
func DefaultGroups() []Group {
	return []Group{
		{Name: "mammalian", Patterns: []string{"mamalian", "mammalian"}},
		{Name: "bacterial", Patterns: []string{"bacterial"}},
	}
}

// Match tests if a sample name matches the group.
func (g Group) Match(name string) bool {
	name = strings.ToLower(name)
	for _, pat := range g.Patterns {
		if pat != "" && strings.Contains(name, strings.ToLower(pat)) {
			return true
		}
	}
	return false
}

// Classify returns the first group matching the sample name or nil.
func Classify(groups []Group, name string) *Group {
	for i := range groups {
		if groups[i].Match(name) {
			return &groups[i]
		}
	}
	return nil
}
