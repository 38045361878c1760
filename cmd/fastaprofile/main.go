package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/PrakyathPNayak/biocat/analysis"
)

// ShowProgress show progress.
var ShowProgress bool

func main() {
	// Command variables.
	var fastaFile string // input fasta file
	var outFile string   // output file
	var window int       // window size
	var step int         // window step (GC mode)
	var protein bool     // protein mode
	var plotDir string   // plot output directory

	// Parse command arguments.
	app := kingpin.New("fastaprofile", "Windowed GC content or hydrophobicity profiles from a fasta file")
	app.Version("v0.1")
	fastaFileArg := app.Arg("fastafile", "fasta file").Required().String()
	outFileArg := app.Arg("outfile", "out file").Required().String()
	windowFlag := app.Flag("window", "window size (0=default per mode)").Default("0").Int()
	stepFlag := app.Flag("step", "window step, GC mode only (0=quarter window)").Default("0").Int()
	proteinFlag := app.Flag("protein", "treat records as protein chains").Default("false").Bool()
	progressFlag := app.Flag("progress", "show progress").Default("false").Bool()
	plotDirFlag := app.Flag("plot-dir", "write one plot per record into this directory").Default("").String()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	fastaFile = *fastaFileArg
	outFile = *outFileArg
	window = *windowFlag
	step = *stepFlag
	protein = *proteinFlag
	ShowProgress = *progressFlag
	plotDir = *plotDirFlag

	records := readFasta(fastaFile, protein)

	w, err := os.Create(outFile)
	if err != nil {
		log.Fatalf("cannot create %s: %v", outFile, err)
	}
	defer w.Close()
	fmt.Fprintln(w, "record\tposition\tvalue")

	var bar *pb.ProgressBar
	if ShowProgress {
		bar = pb.StartNew(len(records))
	}

	for _, rec := range records {
		signal, err := profile(rec.seq, window, step, protein)
		if err != nil {
			log.Printf("skipping %s: %v", rec.name, err)
			continue
		}
		for i := 0; i < signal.Len(); i++ {
			fmt.Fprintf(w, "%s\t%d\t%.4f\n", rec.name, signal.Positions[i], signal.Values[i])
		}

		mean, variance, n := signal.Summary()
		slope, _, rsquare := signal.Trend()
		fmt.Printf("%s: n=%d mean=%.3f var=%.3f slope=%.4g r2=%.3f\n",
			rec.name, n, mean, variance, slope, rsquare)

		if plotDir != "" {
			savePlot(signal, rec.name, protein, filepath.Join(plotDir, rec.name+".png"))
		}
		if ShowProgress {
			bar.Increment()
		}
	}
	if ShowProgress {
		bar.Finish()
	}
}

type record struct {
	name string
	seq  string
}

func profile(seq string, window, step int, protein bool) (*analysis.Signal, error) {
	if protein {
		return analysis.HydrophobicityProfile(seq, window)
	}
	return analysis.GCContentWindow(seq, window, step)
}

func readFasta(fileName string, protein bool) []record {
	f, err := os.Open(fileName)
	if err != nil {
		log.Fatalf("cannot open %s: %v", fileName, err)
	}
	defer f.Close()

	var alpha alphabet.Alphabet = alphabet.DNAredundant
	if protein {
		alpha = alphabet.Protein
	}
	tmpl := linear.NewSeq("", nil, alpha)
	sc := seqio.NewScanner(fasta.NewReader(f, tmpl))

	var records []record
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		records = append(records, record{name: s.Name(), seq: s.Seq.String()})
	}
	if err := sc.Error(); err != nil {
		log.Fatalf("cannot read %s: %v", fileName, err)
	}
	return records
}

func savePlot(s *analysis.Signal, name string, protein bool, filePath string) {
	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = "position"
	if protein {
		p.Y.Label.Text = "hydrophobicity"
	} else {
		p.Y.Label.Text = "GC%"
	}

	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		pts[i].X = float64(s.Positions[i])
		pts[i].Y = s.Values[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		log.Fatalf("cannot create line: %v", err)
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filePath); err != nil {
		log.Fatalf("cannot save plot: %v", err)
	}
}
