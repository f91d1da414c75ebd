// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dates implements a command to date
// the samples of the timetree of a PhyDate project.
package dates

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phydate/project"
	"github.com/js-arias/phydate/sample"
)

var Command = &command.Command{
	Usage: `dates [--root <date>]
	[-o|--output <file>] [--parquet <file>]
	<project-file>`,
	Short: "date the samples of a timetree",
	Long: `
Command dates reads the timetree of a PhyDate project and dates each named
terminal using its distance from the root, and the date of the root.

The argument of the command is the name of the project file.

The date of the root, as a decimal year, is read from the project
parameters (see 'phydate param'). Use the flag --root to use a different
date, either as a decimal year or in the form YYYY-MM-DD.

The date of a sample is the date of the root plus the distance of the
terminal from the root. The integer part of the resulting decimal year is
the year, and the day is the fraction of the year times the days of the year
(366 in leap years) counted from January 1.

By default, the output will be printed in the standard output as a
tab-delimited table with the following columns:

	name     the name of the sample
	decyear  the date as a decimal year
	date     the date, in the form YYYY-MM-DD
	year     the year
	month    the month, in the form YYYY-MM

Use the flag --output, or -o, to write the table into a file. The file will
be added to the project.

If the flag --parquet is defined, the samples will also be written in the
indicated file using the Parquet format. If no output file is defined with
--output, the Parquet file will be added to the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var rootFlag string
var output string
var parquetFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&rootFlag, "root", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&parquetFile, "parquet", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	root, err := rootDate(p)
	if err != nil {
		return c.UsageError(err.Error())
	}

	t, err := p.Tree()
	if err != nil {
		return err
	}
	if u := t.Unnamed(); u > 0 {
		fmt.Fprintf(c.Stderr(), "warning: %d terminals without name\n", u)
	}
	samples := sample.FromLeaves(t.Leaves(), root)

	if parquetFile != "" {
		if err := writeParquet(samples); err != nil {
			return err
		}
	}

	if output == "" {
		if parquetFile != "" {
			p.Add(project.Samples, parquetFile)
			if err := p.Write(); err != nil {
				return err
			}
		}
		return sample.WriteTSV(c.Stdout(), samples)
	}
	if err := writeSamples(samples); err != nil {
		return err
	}
	p.Add(project.Samples, output)
	return p.Write()
}

func rootDate(p *project.Project) (float64, error) {
	prm, err := p.Params()
	if err != nil {
		return 0, err
	}
	if rootFlag != "" {
		if err := prm.SetRoot(rootFlag); err != nil {
			return 0, err
		}
	}
	r, ok := prm.Root()
	if !ok {
		return 0, fmt.Errorf("undefined root date: use flag --root or 'phydate param --root'")
	}
	return r, nil
}

func writeSamples(samples []sample.Sample) (err error) {
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

	if err := sample.WriteTSV(f, samples); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}

func writeParquet(samples []sample.Sample) (err error) {
	f, err := os.Create(parquetFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := sample.WriteParquet(f, samples); err != nil {
		return fmt.Errorf("while writing to %q: %v", parquetFile, err)
	}
	return nil
}
