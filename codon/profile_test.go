package codon

import (
	"reflect"
	"testing"
)

func TestNewProfile(tst *testing.T) {
	p := NewProfile(map[string]int{"A": 1, "C": 3}, 4)
	if !appreq(p["A"], 0.25) || !appreq(p["C"], 0.75) {
		tst.Error("Wrong frequencies:", p)
	}
	if p := NewProfile(map[string]int{"A": 0}, 0); len(p) != 0 {
		tst.Error("Zero total should produce an empty profile, got", p)
	}
}

func TestProfileAdd(tst *testing.T) {
	p := Profile{"A": 0.5, "C": 0.5}
	p.Add(Profile{"A": 0.25, "G": 0.75})
	exp := Profile{"A": 0.75, "C": 0.5, "G": 0.75}
	if !reflect.DeepEqual(p, exp) {
		tst.Error("Expected", exp, "got", p)
	}
	if p.Get("T") != 0 {
		tst.Error("Absent symbol should have zero frequency")
	}
	if _, ok := p["T"]; ok {
		tst.Error("Get should not insert symbols")
	}
}

func TestProfileVector(tst *testing.T) {
	p := Profile{"K": 0.5, "M": 0.25}
	v := p.Vector([]string{"A", "K", "M"})
	if !reflect.DeepEqual(v, []float64{0, 0.5, 0.25}) {
		tst.Error("Wrong vector:", v)
	}
	if keys := p.Keys(); !reflect.DeepEqual(keys, []string{"K", "M"}) {
		tst.Error("Wrong keys:", keys)
	}
}

func TestProfileCopy(tst *testing.T) {
	p := Profile{"K": 0.5}
	c := p.Copy()
	c["K"] = 1
	if p["K"] != 0.5 {
		tst.Error("Copy should not share storage")
	}
}

func TestProfileString(tst *testing.T) {
	if s := (Profile{"A": 0.5, "C": 0.25}).String(); s != "<Profile: A: 0.5, C: 0.25>" {
		tst.Error("Unexpected string:", s)
	}
	if s := (Profile{}).String(); s != "<Profile:>" {
		tst.Error("Unexpected string:", s)
	}
}

func TestTable(tst *testing.T) {
	t := NewTable()
	t.Add("b.fasta", Profile{"K": 0.5})
	t.Add("a.fasta", nil)
	t.Add("b.fasta", Profile{"K": 0.25, "M": 1})
	if names := t.Names(); !reflect.DeepEqual(names, []string{"b.fasta", "a.fasta"}) {
		tst.Error("Names should be in insertion order, got", names)
	}
	if t.Len() != 2 {
		tst.Error("Expected two samples, got", t.Len())
	}
	if !reflect.DeepEqual(t.Profile("b.fasta"), Profile{"K": 0.75, "M": 1}) {
		tst.Error("Wrong merged profile:", t.Profile("b.fasta"))
	}
	if p := t.Profile("a.fasta"); p == nil || len(p) != 0 {
		tst.Error("Empty sample should have an empty profile")
	}
	if syms := t.Symbols(); !reflect.DeepEqual(syms, []string{"K", "M"}) {
		tst.Error("Wrong symbols:", syms)
	}
}

func TestTableAddCopies(tst *testing.T) {
	t := NewTable()
	p := Profile{"K": 0.5}
	t.Add("a", p)
	p["K"] = 1
	if t.Profile("a")["K"] != 0.5 {
		tst.Error("Table should not share profile storage with the caller")
	}
}
