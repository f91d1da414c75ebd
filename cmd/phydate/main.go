// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyDate is a tool to date the samples of a timetree
// and count them by year and month.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phydate/cmd/phydate/count"
	"github.com/js-arias/phydate/cmd/phydate/dates"
	"github.com/js-arias/phydate/cmd/phydate/param"
	"github.com/js-arias/phydate/cmd/phydate/plot"
	"github.com/js-arias/phydate/cmd/phydate/prj"
	"github.com/js-arias/phydate/cmd/phydate/tree"
)

var app = &command.Command{
	Usage: "phydate <command> [<argument>...]",
	Short: "a tool to date and count the samples of a timetree",
}

func init() {
	app.Add(count.Command)
	app.Add(dates.Command)
	app.Add(param.Command)
	app.Add(plot.Command)
	app.Add(prj.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
