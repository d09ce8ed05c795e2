package checkpoint

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vabalass/codons-and-dicodons/codon"
)

func openCache(tst *testing.T) *Cache {
	c, err := Open(filepath.Join(tst.TempDir(), "cache.db"))
	if err != nil {
		tst.Fatal("Error opening cache:", err)
	}
	tst.Cleanup(func() { c.Close() })
	return c
}

func TestSaveLoad(tst *testing.T) {
	c := openCache(tst)
	stamp := Stamp{Size: 120, ModTime: 1000, GCode: 1, MinLength: 100}
	entry := &Entry{
		Stamp:    stamp,
		NRecords: 2,
		NRegions: 5,
		Codons:   codon.Profile{"M": 0.25, "K": 0.75},
		Dicodons: codon.Profile{"MK": 1},
	}
	if err := c.Save("a.fasta", entry); err != nil {
		tst.Fatal("Error saving:", err)
	}
	loaded, err := c.Load("a.fasta", stamp)
	if err != nil {
		tst.Fatal("Error loading:", err)
	}
	if !reflect.DeepEqual(loaded, entry) {
		tst.Errorf("Loaded entry differs: %+v", loaded)
	}
}

func TestLoadMissing(tst *testing.T) {
	c := openCache(tst)
	entry, err := c.Load("none.fasta", Stamp{})
	if err != nil || entry != nil {
		tst.Error("Expected no entry and no error, got", entry, err)
	}
}

func TestLoadOutdated(tst *testing.T) {
	c := openCache(tst)
	stamp := Stamp{Size: 120, ModTime: 1000, GCode: 1, MinLength: 100}
	if err := c.Save("a.fasta", &Entry{Stamp: stamp}); err != nil {
		tst.Fatal("Error saving:", err)
	}
	stamp.ModTime++
	entry, err := c.Load("a.fasta", stamp)
	if err != nil || entry != nil {
		tst.Error("Outdated entry should be ignored, got", entry, err)
	}
	stamp.ModTime--
	entry, err = c.Load("a.fasta", stamp)
	if err != nil || entry == nil {
		tst.Fatal("Expected an entry, got", entry, err)
	}
	if entry.Codons == nil || entry.Dicodons == nil {
		tst.Error("Loaded profiles should not be nil")
	}
}

func TestNilCache(tst *testing.T) {
	var c *Cache
	if err := c.Save("a", &Entry{}); err != nil {
		tst.Error("Nil cache save should do nothing, got", err)
	}
	if e, err := c.Load("a", Stamp{}); e != nil || err != nil {
		tst.Error("Nil cache load should do nothing, got", e, err)
	}
	if err := c.Close(); err != nil {
		tst.Error("Nil cache close should do nothing, got", err)
	}
}
