/*

Codons computes codon and dicodon usage of virus genomes and writes
distance matrices between the samples in PHYLIP format.

Every FASTA file in the input directory is a sample. Coding regions
(ATG to the first stop codon, longer than 100 nucleotides) are located
in all six reading frames, codons and dicodons are counted by the
amino acids they encode, and the distance between two samples is the
sum of absolute differences of squared frequencies.

The basic usage looks like this:

	codons data

, this will write codon_phylip_output.phy and
dicodon_phylip_output.phy and print the top 10 codons and dicodons of
mammalian and bacterial viruses.

To see all the options run:

	codons -h

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"github.com/vabalass/codons-and-dicodons/bio"
	"github.com/vabalass/codons-and-dicodons/checkpoint"
	"github.com/vabalass/codons-and-dicodons/collect"
	"github.com/vabalass/codons-and-dicodons/report"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("codons")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("codons", "codon and dicodon usage distance matrices").Version(version)

	// input
	dataDir   = app.Arg("dir", "directory with FASTA files").Default("data").ExistingDir()
	extension = app.Flag("ext", "extension of FASTA files").Default(collect.DefaultExtension).String()
	groupsF   = app.Flag("groups", "sample groups definition file (yaml, json or toml)").ExistingFile()

	// analysis parameters
	gcodeID = app.Flag("gcode", "NCBI genetic code id, standard by default").Default("1").Int()
	minLen  = app.Flag("minlen", "coding regions should be longer than this (nucleotides)").Default("100").Int()
	topN    = app.Flag("top", "number of codons and dicodons to report for every group").Default("10").Int()

	// output
	codonOut   = app.Flag("codon-out", "codon distance matrix file").Default("codon_phylip_output.phy").String()
	dicodonOut = app.Flag("dicodon-out", "dicodon distance matrix file").Default("dicodon_phylip_output.phy").String()
	plotDir    = app.Flag("plot", "save top usage bar charts to a directory").String()
	jsonF      = app.Flag("json", "write json output to a file").String()

	// technical
	cacheF     = app.Flag("cache", "cache file profiles in a database").String()
	progress   = app.Flag("progress", "show progress bar").Bool()
	cpuProfile = app.Flag("cpuprofile", "write cpu profile to file").String()
	outLogF    = app.Flag("log", "write log to a file").String()
	logLevel   = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

func run() (summary *RunSummary) {
	startTime := time.Now()
	summary = &RunSummary{}

	gcode, ok := bio.GeneticCodes[*gcodeID]
	if !ok {
		log.Fatalf("couldn't load genetic code with id=%d", *gcodeID)
	}
	log.Infof("Genetic code: %d, \"%s\"", gcode.ID, gcode.Name)
	summary.GCode = gcode.ID

	c := collect.NewCollector(*dataDir, gcode)
	c.Extension = *extension
	c.Analyzer.Locator.MinLength = *minLen
	c.Progress = *progress

	if *groupsF != "" {
		groups, err := readGroups(*groupsF)
		if err != nil {
			log.Fatal("Error reading groups:", err)
		}
		c.Groups = groups
	}
	for _, g := range c.Groups {
		log.Infof("Group %s: %v", g.Name, g.Patterns)
	}

	if *cacheF != "" {
		cache, err := checkpoint.Open(*cacheF)
		if err != nil {
			log.Fatal("Error opening cache:", err)
		}
		defer cache.Close()
		c.Cache = cache
	}

	res, err := c.Run()
	if err != nil {
		log.Fatal(err)
	}
	log.Noticef("Analyzed %d samples, %d records, %d coding regions (%d cached samples)",
		len(res.Names), res.NRecords, res.NRegions, res.NCached)

	if err := report.WritePhylipFile(*codonOut, res.CodonMatrix, res.Names); err != nil {
		log.Fatal("Error writing codon matrix:", err)
	}
	log.Infof("Codon distance matrix: %s", *codonOut)
	if err := report.WritePhylipFile(*dicodonOut, res.DicodonMatrix, res.Names); err != nil {
		log.Fatal("Error writing dicodon matrix:", err)
	}
	log.Infof("Dicodon distance matrix: %s", *dicodonOut)

	reports := res.Top(*topN)
	for _, r := range reports {
		if err := report.WriteTop(os.Stdout, r.Title(), r.Entries); err != nil {
			log.Error(err)
		}
	}

	if *plotDir != "" {
		savePlots(*plotDir, reports)
	}

	summary.Samples = res.Names
	summary.NRecords = res.NRecords
	summary.NRegions = res.NRegions
	summary.NCached = res.NCached
	summary.Reports = reports

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	return
}

// savePlots saves a bar chart for every non-empty report.
func savePlots(dir string, reports []collect.Report) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Error("Error creating plot directory:", err)
		return
	}
	for _, r := range reports {
		if len(r.Entries) == 0 {
			log.Warningf("No %s in group %s, nothing to plot", r.Kind, r.Group)
			continue
		}
		fn := filepath.Join(dir, fmt.Sprintf("%s_%s.png", r.Group, r.Kind))
		if err := report.PlotTop(r.Entries, r.Title(), fn); err != nil {
			log.Error("Error saving plot:", err)
			continue
		}
		log.Infof("Saved plot %s", fn)
	}
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	for _, module := range []string{"codons", "collect", "checkpoint", "dist"} {
		logging.SetLevel(level, module)
	}

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	summary := run()
	summary.Version = version
	summary.CommandLine = os.Args

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
