// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with the timetree of a project.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phydate/cmd/phydate/tree/add"
	"github.com/js-arias/phydate/cmd/phydate/tree/export"
	"github.com/js-arias/phydate/cmd/phydate/tree/leaves"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for timetrees",
}

func init() {
	Command.Add(add.Command)
	Command.Add(export.Command)
	Command.Add(leaves.Command)
}
