// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phydate/bucket"
	"github.com/js-arias/phydate/project"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a PhyDate project and prints the information of the different
project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if err := printParams(c.Stdout(), p); err != nil {
		return err
	}
	if p.Path(project.Tree) != "" {
		if err := printTree(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.Samples) != "" {
		if err := printSamples(c.Stdout(), p); err != nil {
			return err
		}
	}
	for _, set := range []project.Dataset{project.Years, project.Months} {
		if p.Path(set) == "" {
			continue
		}
		if err := printBuckets(c.Stdout(), p, set); err != nil {
			return err
		}
	}
	return nil
}

func printParams(w io.Writer, p *project.Project) error {
	prm, err := p.Params()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Parameters:\n")
	if p.Path(project.Params) != "" {
		fmt.Fprintf(w, "\tfile: %s\n", prm.Name())
	} else {
		fmt.Fprintf(w, "\tfile: undefined\n")
	}
	if r, ok := prm.Root(); ok {
		fmt.Fprintf(w, "\troot: %.6f\n", r)
	} else {
		fmt.Fprintf(w, "\troot: undefined\n")
	}
	win := prm.Window()
	fmt.Fprintf(w, "\tyears: [%d-%d]\n", win.Min, win.Max)
	fmt.Fprintf(w, "\n")
	return nil
}

func printTree(w io.Writer, p *project.Project) error {
	t, err := p.Tree()
	if err != nil {
		return err
	}
	leaves := t.Leaves()

	fmt.Fprintf(w, "Tree:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Tree))
	fmt.Fprintf(w, "\tnamed terminals: %d\n", len(leaves))
	if u := t.Unnamed(); u > 0 {
		fmt.Fprintf(w, "\tunnamed terminals: %d\n", u)
	}
	if len(leaves) > 0 {
		dist := make([]float64, 0, len(leaves))
		for _, l := range leaves {
			dist = append(dist, l.Dist)
		}
		fmt.Fprintf(w, "\tdistance: [%.6f-%.6f]\n", floats.Min(dist), floats.Max(dist))
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func printSamples(w io.Writer, p *project.Project) error {
	samples, err := p.Samples()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Samples:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Samples))
	fmt.Fprintf(w, "\tsamples: %d\n", len(samples))
	if len(samples) > 0 {
		dates := make([]string, 0, len(samples))
		for _, s := range samples {
			dates = append(dates, s.Date.Format("2006-01-02"))
		}
		slices.Sort(dates)
		fmt.Fprintf(w, "\tdates: [%s - %s]\n", dates[0], dates[len(dates)-1])
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func printBuckets(w io.Writer, p *project.Project, set project.Dataset) error {
	bs, err := p.Buckets(set)
	if err != nil {
		return err
	}

	if set == project.Months {
		fmt.Fprintf(w, "Samples by month:\n")
	} else {
		fmt.Fprintf(w, "Samples by year:\n")
	}
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(set))
	fmt.Fprintf(w, "\tsamples: %d\n", bucket.Total(bs))
	if len(bs) > 0 {
		fmt.Fprintf(w, "\tbuckets: %d [%s - %s]\n", len(bs), bs[0].Label(), bs[len(bs)-1].Label())
	}
	fmt.Fprintf(w, "\n")
	return nil
}
