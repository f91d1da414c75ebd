// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add a timetree
// to a PhyDate project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phydate/newick"
	"github.com/js-arias/phydate/project"
)

var Command = &command.Command{
	Usage: `add [-f|--file <tree-file>]
	<project-file> [<newick-file>]`,
	Short: "add a timetree to a PhyDate project",
	Long: `
Command add reads a timetree in Newick format and adds it to a PhyDate
project. The tree must be a time-calibrated tree, with branch lengths in
years.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the Newick file. The file is validated, and its path
is stored in the project. If no file is given, the tree will be read from the
standard input, and stored in the file 'timetree.nwk'. A different file name
can be defined using the flag --file, or -f. If both a Newick file and the
flag --file are given, the tree is stored in the --file name. Stored trees
are written as plain Newick, without comments.

The number of named terminals will be printed in the standard output. The
terminals without a name are reported in the standard error, as they can not
be used as samples.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	var t *newick.Tree
	if len(args) > 1 && args[1] != "-" {
		name := args[1]
		t, err = readTree(name)
		if err != nil {
			return err
		}
		if treeFile != "" && treeFile != name {
			if err := writeTree(treeFile, t); err != nil {
				return err
			}
			name = treeFile
		}
		p.Add(project.Tree, name)
	} else {
		if treeFile == "" {
			treeFile = "timetree.nwk"
		}
		t, err = readStdin(c.Stdin())
		if err != nil {
			return err
		}
		p.Add(project.Tree, treeFile)
	}

	if err := p.Write(); err != nil {
		return err
	}

	fmt.Fprintf(c.Stdout(), "terminals: %d\n", len(t.Terms()))
	if u := t.Unnamed(); u > 0 {
		fmt.Fprintf(c.Stderr(), "warning: %d terminals without name\n", u)
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readTree(name string) (*newick.Tree, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := newick.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}

// ReadStdin reads a tree from the standard input
// and stores it in the tree file.
func readStdin(r io.Reader) (*newick.Tree, error) {
	t, err := newick.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("while reading stdin: %v", err)
	}
	if err := writeTree(treeFile, t); err != nil {
		return nil, err
	}
	return t, nil
}

func writeTree(name string, t *newick.Tree) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := t.Write(f, 1); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
