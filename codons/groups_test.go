package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vabalass/codons-and-dicodons/collect"
)

const groupsYAML = `groups:
  - name: mammalian
    patterns: [mamalian, mammalian]
  - name: plant
    patterns:
      - plant
`

func writeConfig(tst *testing.T, name, content string) string {
	fn := filepath.Join(tst.TempDir(), name)
	if err := os.WriteFile(fn, []byte(content), 0644); err != nil {
		tst.Fatal(err)
	}
	return fn
}

func TestReadGroups(tst *testing.T) {
	groups, err := readGroups(writeConfig(tst, "groups.yaml", groupsYAML))
	if err != nil {
		tst.Fatal("Error reading groups:", err)
	}
	exp := []collect.Group{
		{Name: "mammalian", Patterns: []string{"mamalian", "mammalian"}},
		{Name: "plant", Patterns: []string{"plant"}},
	}
	if !reflect.DeepEqual(groups, exp) {
		tst.Error("Expected", exp, "got", groups)
	}
}

func TestReadGroupsJSON(tst *testing.T) {
	fn := writeConfig(tst, "groups.json", `{"groups": [{"name": "bacterial", "patterns": ["phage"]}]}`)
	groups, err := readGroups(fn)
	if err != nil {
		tst.Fatal("Error reading groups:", err)
	}
	if len(groups) != 1 || groups[0].Name != "bacterial" || groups[0].Patterns[0] != "phage" {
		tst.Error("Unexpected groups:", groups)
	}
}

func TestReadGroupsErrors(tst *testing.T) {
	if _, err := readGroups(writeConfig(tst, "empty.yaml", "other: 1\n")); err == nil {
		tst.Error("Expected an error for a file without groups")
	}
	dup := "groups:\n  - name: a\n    patterns: [x]\n  - name: a\n    patterns: [y]\n"
	if _, err := readGroups(writeConfig(tst, "dup.yaml", dup)); err == nil {
		tst.Error("Expected an error for duplicate groups")
	}
	if _, err := readGroups(filepath.Join(tst.TempDir(), "none.yaml")); err == nil {
		tst.Error("Expected an error for a missing file")
	}
}
