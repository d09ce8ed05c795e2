package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/vabalass/codons-and-dicodons/collect"
)

// readGroups reads sample groups from a configuration file, e.g.
//
//	groups:
//	  - name: mammalian
//	    patterns: [mamalian, mammalian]
//	  - name: bacterial
//	    patterns: [bacterial]
func readGroups(fn string) ([]collect.Group, error) {
	v := viper.New()
	v.SetConfigFile(fn)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var groups []collect.Group
	if err := v.UnmarshalKey("groups", &groups); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, errors.New("no groups defined")
	}
	seen := make(map[string]bool, len(groups))
	for _, g := range groups {
		if g.Name == "" {
			return nil, errors.New("group without name")
		}
		if seen[g.Name] {
			return nil, fmt.Errorf("duplicate group %s", g.Name)
		}
		seen[g.Name] = true
	}
	return groups, nil
}
