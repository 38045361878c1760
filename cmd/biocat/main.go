package main

import (
	"log"
	"os"

	"github.com/rakyll/command"

	"github.com/PrakyathPNayak/biocat"
)

var (
	INFO  *log.Logger
	WARN  *log.Logger
	ERROR *log.Logger
)

func main() {
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WARN = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ERROR = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	command.On("stats", "database overview and connection check", &cmdStats{}, []string{})
	command.On("sources", "discover sequence-bearing tables and columns", &cmdSources{}, []string{})
	command.On("fetch", "fetch sequences from a discovered source", &cmdFetch{}, []string{})
	command.On("search", "search a source for a DNA pattern", &cmdSearch{}, []string{})
	command.On("genes", "search genes by symbol, name or description", &cmdGenes{}, []string{})
	command.On("sample", "analyze a random sample of sequences", &cmdSample{}, []string{})
	command.On("protein", "biophysical properties of one protein", &cmdProtein{}, []string{})
	command.On("helix", "double-helix coordinates for a DNA sequence", &cmdHelix{}, []string{})
	command.On("catalog", "list or run canned catalog queries", &cmdCatalog{}, []string{})
	command.ParseAndRun()
}

func registerLogger() {
	biocat.Info = INFO
	biocat.Warn = WARN
}
