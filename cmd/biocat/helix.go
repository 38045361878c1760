package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/PrakyathPNayak/biocat/helix"
)

// Command to emit double-helix coordinates for a DNA sequence as TSV, with
// an optional 2D projection plot.
type cmdHelix struct {
	cmdConfig // embed config parser.

	seq     *string
	maxBase *int
	out     *string
}

func (cmd *cmdHelix) Flags(fs *flag.FlagSet) *flag.FlagSet {
	fs = cmd.cmdConfig.Flags(fs)
	cmd.seq = fs.String("s", "", "DNA sequence to render")
	cmd.maxBase = fs.Int("n", helix.DefaultMaxLength, "max bases to render")
	cmd.out = fs.String("o", "", "write x-z projection plot to this file")
	return fs
}

func (cmd *cmdHelix) Run(args []string) {
	cmd.ParseConfig()

	seq := *cmd.seq
	if seq == "" && len(args) > 0 {
		seq = args[0]
	}
	m, err := helix.Build(seq, *cmd.maxBase)
	if err != nil {
		ERROR.Fatalf("cannot build helix: %v", err)
	}

	w := os.Stdout
	fmt.Fprintln(w, "base\tcomplement\tx1\ty1\tz1\tx2\ty2\tz2")
	for i := 0; i < m.Len(); i++ {
		p1, p2 := m.Strand1[i], m.Strand2[i]
		fmt.Fprintf(w, "%c\t%c\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			m.Bases[i], m.Complements[i], p1.X, p1.Y, p1.Z, p2.X, p2.Y, p2.Z)
	}

	if *cmd.out != "" {
		cmd.plotProjection(m)
	}
}

// plotProjection draws the x-z projection of both strands and the bonds
// between them.
func (cmd *cmdHelix) plotProjection(m *helix.Model) {
	p := plot.New()
	p.Title.Text = "DNA double helix (x-z projection)"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "z"

	s1 := make(plotter.XYs, m.Len())
	s2 := make(plotter.XYs, m.Len())
	for i := 0; i < m.Len(); i++ {
		s1[i] = plotter.XY{X: m.Strand1[i].X, Y: m.Strand1[i].Z}
		s2[i] = plotter.XY{X: m.Strand2[i].X, Y: m.Strand2[i].Z}
	}
	l1, err := plotter.NewLine(s1)
	if err != nil {
		ERROR.Fatalf("Cannot create line: %v\n", err)
	}
	l2, err := plotter.NewLine(s2)
	if err != nil {
		ERROR.Fatalf("Cannot create line: %v\n", err)
	}
	p.Add(l1, l2)

	for _, b := range m.Bonds {
		bond, err := plotter.NewLine(plotter.XYs{
			{X: b.From.X, Y: b.From.Z},
			{X: b.To.X, Y: b.To.Z},
		})
		if err != nil {
			continue
		}
		p.Add(bond)
	}

	if err := p.Save(4*vg.Inch, 6*vg.Inch, *cmd.out); err != nil {
		ERROR.Fatalf("Cannot save plot: %v\n", err)
	}
	INFO.Printf("wrote %s", *cmd.out)
}
