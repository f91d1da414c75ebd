// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// the timetree of a PhyDate project
// as a tab-delimited time calibrated tree.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phydate/project"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `export [--name <tree-name>] [--unit <unit>] [--age <value>]
	[-o|--output <file>] <project-file>`,
	Short: "export the timetree as a tab-delimited tree file",
	Long: `
Command export reads the timetree of a PhyDate project and writes it as a
tab-delimited time-calibrated tree file, the format used by PhyGeo and other
tools based on the timetree package. In this format each node is a row, with
the age of the node in years before the present.

The argument of the command is the name of the project file.

By default, the tree will be named after the Newick file. Use the flag --name
to set a different name.

Ages in the exported file are integers. By default they are in years. As
samples are usually taken within a few months, use the flag --unit to set a
finer unit. Valid units are:

	year  ages in years (the default)
	day   ages in days (365.25 days per year)
	hour  ages in hours

The distance of each node from the root is rounded to the nearest unit. If
all the branches are too short for the unit the command fails. If only some
branches collapse into a length of 0, a warning with the number of collapsed
branches is printed in the standard error.

By default, the age of the root is the largest distance between any terminal
and the root (i.e., the youngest sample is at the present). To set a
different age for the root, use the flag --age with a value in the same unit
used for the ages.

By default, the output will be printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var unitFlag string
var rootAge int64
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "name", "", "")
	c.Flags().StringVar(&unitFlag, "unit", "year", "")
	c.Flags().Int64Var(&rootAge, "age", -1, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	unit, err := parseUnit(unitFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Tree()
	if err != nil {
		return err
	}
	if treeName == "" {
		base := filepath.Base(p.Path(project.Tree))
		treeName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	conv, err := timeTree(t, treeName, unit, rootAge)
	if errors.Is(err, errHeightLost) {
		return fmt.Errorf("on tree %q: %v: use a finer --unit", p.Path(project.Tree), err)
	}
	if err != nil {
		return fmt.Errorf("on tree %q: %v", p.Path(project.Tree), err)
	}
	if conv.collapsed > 0 {
		fmt.Fprintf(c.Stderr(), "warning: %d branches shorter than a %s collapsed\n", conv.collapsed, unitFlag)
	}
	tc := timetree.NewCollection()
	if err := tc.Add(conv.tree); err != nil {
		return err
	}

	if output == "" {
		return tc.TSV(c.Stdout())
	}
	return writeTrees(tc)
}

func writeTrees(tc *timetree.Collection) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
