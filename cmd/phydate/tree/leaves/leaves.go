// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package leaves implements a command to print
// the terminals of the timetree of a PhyDate project
// with their distance from the root.
package leaves

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phydate/newick"
	"github.com/js-arias/phydate/project"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: "leaves [--first <number>] [--stats] <project-file>",
	Short: "print tree terminals and their root distance",
	Long: `
Command leaves reads the timetree of a PhyDate project and prints the named
terminals, in the order in which they are found in the tree file, with their
distance from the root (i.e., the sum of the branch lengths from the root to
the terminal).

The argument of the command is the name of the project file.

The output is a tab-delimited table with the following columns:

	name      the name of the terminal
	distance  the distance from the root

By default all terminals will be printed. Use the flag --first to print only
the indicated number of terminals.

If the flag --stats is defined, instead of the terminals, a summary of the
distances will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var first int
var statsFlag bool

func setFlags(c *command.Command) {
	c.Flags().IntVar(&first, "first", 0, "")
	c.Flags().BoolVar(&statsFlag, "stats", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if first < 0 {
		return c.UsageError("flag --first must be a positive number")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Tree()
	if err != nil {
		return err
	}
	if u := t.Unnamed(); u > 0 {
		fmt.Fprintf(c.Stderr(), "warning: %d terminals without name\n", u)
	}

	leaves := t.Leaves()
	if statsFlag {
		printStats(c.Stdout(), leaves)
		return nil
	}
	if first > 0 && first < len(leaves) {
		leaves = leaves[:first]
	}
	return writeLeaves(c.Stdout(), leaves)
}

func writeLeaves(w io.Writer, leaves []newick.Leaf) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "name\tdistance\n")
	for _, l := range leaves {
		fmt.Fprintf(bw, "%s\t%s\n", l.Name, strconv.FormatFloat(l.Dist, 'f', 6, 64))
	}
	return bw.Flush()
}

func printStats(w io.Writer, leaves []newick.Leaf) {
	fmt.Fprintf(w, "terminals: %d\n", len(leaves))
	if len(leaves) == 0 {
		return
	}

	dist := make([]float64, 0, len(leaves))
	for _, l := range leaves {
		dist = append(dist, l.Dist)
	}
	slices.Sort(dist)

	fmt.Fprintf(w, "min:       %.6f\n", floats.Min(dist))
	fmt.Fprintf(w, "mean:      %.6f\n", stat.Mean(dist, nil))
	fmt.Fprintf(w, "median:    %.6f\n", stat.Quantile(0.5, stat.Empirical, dist, nil))
	fmt.Fprintf(w, "max:       %.6f\n", floats.Max(dist))
	if len(dist) > 1 {
		fmt.Fprintf(w, "std dev:   %.6f\n", stat.StdDev(dist, nil))
	}
}
