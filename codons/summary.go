package main

import "github.com/vabalass/codons-and-dicodons/collect"

// RunSummary is storing codons run summary information.
type RunSummary struct {
	// Version stores codons version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// GCode is the NCBI genetic code id.
	GCode int `json:"gcode"`
	// Samples are the sample names in the distance matrix order.
	Samples []string `json:"samples"`
	// NRecords is the total number of FASTA records.
	NRecords int `json:"nRecords"`
	// NRegions is the total number of coding regions.
	NRegions int `json:"nRegions"`
	// NCached is the number of samples read from the cache.
	NCached int `json:"nCached,omitempty"`
	// Reports are the top usage lists for every group.
	Reports []collect.Report `json:"reports"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}
