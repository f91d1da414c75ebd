// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package param implements a command to manage
// the dating parameters of a PhyDate project.
package param

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phydate/param"
	"github.com/js-arias/phydate/project"
)

var Command = &command.Command{
	Usage: `param [--add <param-file>] [--file <file-name>]
	[--root <decimal-year>] [--min <year>] [--max <year>]
	<project-file>`,
	Short: "manage dating parameters",
	Long: `
Command param manages the parameters used to date the samples of a PhyDate
project.

The argument of the command is the name of the project file.

By default, the command will print the currently defined parameters.

If the flag --add is defined, it will use the indicated file for the dating
parameters.

By default, any change on the parameters will be stored in the current
parameters file. If the project does not have a parameters file, the file
'params.tab' will be used. Use the flag --file to define a new parameters
file.

The flag --root sets the date of the root of the tree, as a decimal year
(e.g., 2019.95), or as a date in the form YYYY-MM-DD (e.g., 2019-12-13). A
date is stored as the decimal year of the middle of that day. This value is not derived from the tree, so it must be
defined before dating the samples by their distance from the root.

The flags --min and --max set the range of plausible years (inclusive) for
the years read from sample names. By default, the range is 2019-2025.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var addFile string
var paramFile string
var rootFlag string
var minYear int
var maxYear int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addFile, "add", "", "")
	c.Flags().StringVar(&paramFile, "file", "", "")
	c.Flags().StringVar(&rootFlag, "root", "", "")
	c.Flags().IntVar(&minYear, "min", 0, "")
	c.Flags().IntVar(&maxYear, "max", 0, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if addFile != "" {
		if _, err := param.Read(addFile); err != nil {
			return err
		}
		p.Add(project.Params, addFile)
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}

	prm, err := p.Params()
	if err != nil {
		return err
	}
	if paramFile != "" {
		prm.SetName(paramFile)
	}

	ed := false
	if rootFlag != "" {
		if err := prm.SetRoot(rootFlag); err != nil {
			return err
		}
		ed = true
	}
	w := prm.Window()
	if minYear > 0 {
		w.Min = minYear
	}
	if maxYear > 0 {
		w.Max = maxYear
	}
	if w != prm.Window() {
		if err := prm.SetWindow(w); err != nil {
			return err
		}
		ed = true
	}

	if p.Path(project.Params) != prm.Name() {
		if err := prm.Write(); err != nil {
			return err
		}
		p.Add(project.Params, prm.Name())
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}
	if ed {
		if err := prm.Write(); err != nil {
			return err
		}
		return nil
	}

	printParams(c.Stdout(), prm)
	return nil
}

func printParams(w io.Writer, prm *param.P) {
	fmt.Fprintf(w, "file:     %s\n", prm.Name())
	if r, ok := prm.Root(); ok {
		fmt.Fprintf(w, "root:     %g\n", r)
	} else {
		fmt.Fprintf(w, "root:     undefined\n")
	}
	win := prm.Window()
	fmt.Fprintf(w, "years:    %d-%d\n", win.Min, win.Max)
}
