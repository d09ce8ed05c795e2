// Package collect runs the usage analysis over a directory of FASTA
// files. Every file is a sample; files are also accumulated into
// groups (e.g. mammalian and bacterial viruses) for usage reports.
package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonum/matrix/mat64"
	"github.com/op/go-logging"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/vabalass/codons-and-dicodons/bio"
	"github.com/vabalass/codons-and-dicodons/checkpoint"
	"github.com/vabalass/codons-and-dicodons/dist"
	"github.com/vabalass/codons-and-dicodons/report"
)

var log = logging.MustGetLogger("collect")

// DefaultExtension is the extension of the sample files.
const DefaultExtension = ".fasta"

// Kinds of usage.
const (
	Codons   = "codons"
	Dicodons = "dicodons"
)

// Collector analyzes all the sample files of a directory.
type Collector struct {
	Dir       string
	Extension string
	Analyzer  Analyzer
	Groups    []Group
	// Cache is optional.
	Cache *checkpoint.Cache
	// Progress enables the progress bar.
	Progress bool
}

// NewCollector creates a collector with the default settings.
func NewCollector(dir string, gcode *bio.GeneticCode) *Collector {
	return &Collector{
		Dir:       dir,
		Extension: DefaultExtension,
		Analyzer:  NewAnalyzer(gcode),
		Groups:    DefaultGroups(),
	}
}

// Result is the outcome of a collector run.
type Result struct {
	// Names are the sample names, also rows and columns of the
	// matrices.
	Names         []string
	CodonMatrix   *mat64.Dense
	DicodonMatrix *mat64.Dense
	Groups        []Group
	Usage         map[string]*GroupUsage

	NRecords int
	NRegions int
	NCached  int
}

// Files returns names of the sample files. Files are sorted by name,
// files with other extensions and directories are skipped.
func (c *Collector) Files() ([]string, error) {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), c.Extension) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// Run analyzes all the files and computes distance matrices. Any
// error reading a file stops the run.
func (c *Collector) Run() (*Result, error) {
	files, err := c.Files()
	if err != nil {
		return nil, err
	}
	log.Infof("Found %d %s files in %s", len(files), c.Extension, c.Dir)

	var bar *pb.ProgressBar
	if c.Progress {
		bar = pb.New(len(files))
		bar.Output = os.Stderr
		bar.Start()
		defer bar.Finish()
	}

	acc := NewAccumulator(c.Groups)
	nCached := 0
	for _, name := range files {
		log.Noticef("Analyzing file: %s", name)
		fp, cached, err := c.analyzeFile(name)
		if err != nil {
			return nil, err
		}
		if cached {
			nCached++
		}
		acc = acc.Add(fp)
		if bar != nil {
			bar.Increment()
		}
	}

	log.Infof("Total: %d records, %d coding regions", acc.NRecords, acc.NRegions)

	return &Result{
		Names:         acc.Codons.Names(),
		CodonMatrix:   dist.Matrix(acc.Codons),
		DicodonMatrix: dist.Matrix(acc.Dicodons),
		Groups:        acc.Groups,
		Usage:         acc.Usage,
		NRecords:      acc.NRecords,
		NRegions:      acc.NRegions,
		NCached:       nCached,
	}, nil
}

// analyzeFile returns the profile of a file, from the cache if it is
// up to date.
func (c *Collector) analyzeFile(name string) (fp *FileProfile, cached bool, err error) {
	fn := filepath.Join(c.Dir, name)
	info, err := os.Stat(fn)
	if err != nil {
		return nil, false, err
	}
	stamp := checkpoint.Stamp{
		Size:      info.Size(),
		ModTime:   info.ModTime().UnixNano(),
		GCode:     c.Analyzer.Locator.GCode.ID,
		MinLength: c.Analyzer.Locator.MinLength,
	}
	// files from different directories share the cache
	key, err := filepath.Abs(fn)
	if err != nil {
		key = fn
	}

	entry, err := c.Cache.Load(key, stamp)
	if err != nil {
		log.Warning("Error reading cached profile:", err)
	} else if entry != nil {
		return &FileProfile{
			Name:     name,
			NRecords: entry.NRecords,
			NRegions: entry.NRegions,
			Codons:   entry.Codons,
			Dicodons: entry.Dicodons,
		}, true, nil
	}

	f, err := os.Open(fn)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	seqs, err := bio.ReadFasta(f)
	if err != nil {
		return nil, false, fmt.Errorf("error reading %s: %w", fn, err)
	}

	fp = c.Analyzer.AnalyzeSequences(name, seqs)
	log.Debugf("%s: %d records, %d coding regions", name, fp.NRecords, fp.NRegions)

	err = c.Cache.Save(key, &checkpoint.Entry{
		Stamp:    stamp,
		NRecords: fp.NRecords,
		NRegions: fp.NRegions,
		Codons:   fp.Codons,
		Dicodons: fp.Dicodons,
	})
	if err != nil {
		log.Warningf("Profile of %s is not cached", name)
	}
	return fp, false, nil
}

// Report is a ranked usage list of a group.
type Report struct {
	Group   string         `json:"group"`
	Kind    string         `json:"kind"`
	N       int            `json:"n"`
	Entries []report.Entry `json:"entries"`
}

// Title returns report title, e.g. "Top 10 Codons in Mammalian
// Viruses:".
func (r Report) Title() string {
	return fmt.Sprintf("Top %d %s in %s Viruses:", r.N, capitalize(r.Kind), capitalize(r.Group))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Top returns codon reports for every group followed by dicodon
// reports for every group. Each report has at most n entries.
func (r *Result) Top(n int) []Report {
	reports := make([]Report, 0, 2*len(r.Groups))
	for _, kind := range []string{Codons, Dicodons} {
		for _, g := range r.Groups {
			u := r.Usage[g.Name]
			p := u.Codons
			if kind == Dicodons {
				p = u.Dicodons
			}
			reports = append(reports, Report{
				Group:   g.Name,
				Kind:    kind,
				N:       n,
				Entries: report.Top(p, n),
			})
		}
	}
	return reports
}
