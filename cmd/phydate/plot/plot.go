// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot implements a command to plot
// the number of samples by year or month.
package plot

import (
	"fmt"

	"github.com/js-arias/blind"
	"github.com/js-arias/command"
	"github.com/js-arias/phydate/bucket"
	"github.com/js-arias/phydate/project"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: "plot [--month] -o|--output <image-file> <project-file>",
	Short: "plot sample counts",
	Long: `
Command plot reads the table of samples by year of a PhyDate project and draws
a bar chart with the number of samples in each year, and a line with the
cumulative number of samples.

The argument of the command is the name of the project file.

By default the 'years' table is used. Use the flag --month to use the 'months'
table. Tables are defined with 'phydate count --output'.

The flag --output, or -o, is required and sets the name of the image file. The
format of the image is defined by the file extension (for example, .png, .svg,
or .pdf).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var monthFlag bool
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&monthFlag, "month", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if output == "" {
		return c.UsageError("expecting output file, flag --output")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	set := project.Years
	if monthFlag {
		set = project.Months
	}
	bs, err := p.Buckets(set)
	if err != nil {
		return err
	}
	if len(bs) == 0 {
		return fmt.Errorf("on project %q: %s table without samples", args[0], set)
	}

	return makePlot(bs)
}

func makePlot(bs []bucket.Bucket) error {
	p := plot.New()
	p.Y.Label.Text = "samples"
	if monthFlag {
		p.X.Label.Text = "month"
	} else {
		p.X.Label.Text = "year"
	}

	vals := make(plotter.Values, 0, len(bs))
	cum := make(plotter.XYs, 0, len(bs))
	labels := make([]string, 0, len(bs))
	for i, b := range bs {
		vals = append(vals, float64(b.Count))
		cum = append(cum, plotter.XY{X: float64(i), Y: float64(b.Cumulative)})
		labels = append(labels, b.Label())
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(8))
	if err != nil {
		return fmt.Errorf("while building chart: %v", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = blind.Sequential(blind.Iridescent, 0.3)
	p.Add(bars)
	p.Legend.Add("samples", bars)

	line, err := plotter.NewLine(cum)
	if err != nil {
		return fmt.Errorf("while building chart: %v", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = blind.Sequential(blind.Iridescent, 0.9)
	p.Add(line)
	p.Legend.Add("cumulative", line)
	p.Legend.Top = true
	p.Legend.Left = true

	p.NominalX(labels...)

	if err := p.Save(5*vg.Inch, 3*vg.Inch, output); err != nil {
		return err
	}
	return nil
}
