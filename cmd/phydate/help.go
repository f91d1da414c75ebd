// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(bucketFilesGuide)
	app.Add(paramFilesGuide)
	app.Add(projectsGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
PhyDate uses a project file to keep the reference of all the files used in
an analysis. This guide explains the structure of the file, but most of the
time, the best way to edit or view this file is by using phydate commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# phydate project files
	dataset	path
	months	months.csv
	params	params.tab
	samples	samples.tab
	tree	timetree.nwk
	years	years.csv

The valid file types are:

- Timetree. Defined by the dataset keyword "tree". A Newick file with a
  single time-calibrated tree. The recommended way to add a tree is by using
  the command 'phydate tree add'.
- Dating parameters. Defined by the dataset keyword "params". The
  recommended way to set the parameters is by using the command
  'phydate param'.
- Dated samples. Defined by the dataset keyword "samples". A tab-delimited
  file produced by the command 'phydate dates'.
- Yearly counts. Defined by the dataset keyword "years". A comma-delimited
  file produced by the command 'phydate count'.
- Monthly counts. Defined by the dataset keyword "months". A comma-delimited
  file produced by the command 'phydate count --month'.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
In PhyDate, the timetree must be a single tree in Newick (parenthetical)
format, with branch lengths in years. Usually this is the output of a
molecular clock analysis (e.g., the timetree.nwk file of TreeTime).

Each node is written as a label followed by an optional branch length
preceded by a colon, children are enclosed in parenthesis and separated by
commas, and the tree ends with a semicolon. For example:

	(A:0.1,(B:0.2,C:0.3):0.1);

Labels with spaces, colons, commas, parenthesis, or quotes must be enclosed
in single (or double) quotes; a quote inside a quoted label is written
twice. Comments enclosed in square brackets are ignored. A missing branch
length is read as zero.

Only terminals with a name are used as samples. Terminal names usually
follow the form "hCoV-19/<country>/<identifier>/<year>", and the year suffix
is used when counting samples by name.

The distance of a terminal from the root is the sum of the branch lengths of
its path to the root. The date of a sample is the date of the root (as a
decimal year, for example 2019.95) plus that distance.
	`,
}

var paramFilesGuide = &command.Command{
	Usage: "param-files",
	Short: "about parameter files",
	Long: `
The dating parameters are stored in a tab-delimited file with the following
fields:

	- parameter  the name of the parameter
	- value      the value of the parameter

Here is an example file:

	# phydate parameters
	parameter	value
	root	2019.95
	min-year	2019
	max-year	2025

The valid parameters are:

	- root      the date of the root of the tree, as a decimal year. It has
	            no default value, and must be defined before dating the
	            samples by its distance to the root.
	- min-year  the oldest plausible year read from a sample name. By
	            default it is 2019.
	- max-year  the youngest plausible year read from a sample name. By
	            default it is 2025.

The recommended way to set the parameters is by using the command
'phydate param'.
	`,
}

var bucketFilesGuide = &command.Command{
	Usage: "bucket-files",
	Short: "about yearly and monthly count files",
	Long: `
The counts of samples by year, or by month, are stored as comma-delimited
files with a header row. The yearly files have the following columns:

	- year              the year
	- variant_count     the number of samples in the year
	- cumulative_count  the number of samples up to the year

Here is an example file:

	year,variant_count,cumulative_count
	2019,12,12
	2020,1530,1542
	2021,988,2530

The monthly files use the column "year_month", with the month in the form
YYYY-MM, instead of "year":

	year_month,variant_count,cumulative_count
	2019-12,12,12
	2020-01,93,105
	2020-03,411,516

Only years (or months) with at least one sample are included, and rows are
sorted from the oldest to the youngest.
	`,
}
