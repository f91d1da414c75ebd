// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package count implements a command to count
// the samples of a timetree by year or month.
package count

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phydate/bucket"
	"github.com/js-arias/phydate/newick"
	"github.com/js-arias/phydate/param"
	"github.com/js-arias/phydate/project"
	"github.com/js-arias/phydate/sample"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var Command = &command.Command{
	Usage: `count [--by <policy>] [--month]
	[--root <date>] [--min <year>] [--max <year>]
	[--table] [-o|--output <file>] <project-file>`,
	Short: "count samples by year or month",
	Long: `
Command count reads the timetree of a PhyDate project, dates its samples, and
prints the number of samples found in each year, as well as the cumulative
number of samples up to that year.

The argument of the command is the name of the project file.

The flag --by sets the dating policy. Valid values are:

	distance  the sample date is the date of the root plus the
	          distance of the terminal from the root. This is the
	          default.
	name      the sample year is read from the last path element of
	          the terminal name (for example hCoV-19/Wuhan/WH01/2019).
	          Names without a year, or with a year outside of the
	          plausible range, are skipped.

When dating by distance, the date of the root is read from the project
parameters. Use the flag --root to use a different date, either as a
decimal year or in the form YYYY-MM-DD.

When dating by name, the range of plausible years is read from the project
parameters. Use the flags --min and --max to use a different range.

By default, samples are counted by year. Use the flag --month to count the
samples by month. Monthly counts require the distance policy.

Only years (or months) with at least one sample are reported.

By default, the output is a comma-delimited table printed in the standard
output. Use the flag --table to print a formatted table instead. Use the flag
--output, or -o, to write the table into a file. The file will be added to the
project as the 'years' or 'months' dataset.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var monthFlag bool
var tableFlag bool
var byFlag string
var rootFlag string
var minYear int
var maxYear int
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&monthFlag, "month", false, "")
	c.Flags().BoolVar(&tableFlag, "table", false, "")
	c.Flags().StringVar(&byFlag, "by", "", "")
	c.Flags().StringVar(&rootFlag, "root", "", "")
	c.Flags().IntVar(&minYear, "min", 0, "")
	c.Flags().IntVar(&maxYear, "max", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	policy, err := sample.ParsePolicy(byFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}
	if monthFlag && policy == sample.ByName {
		return c.UsageError("flag --month requires the distance policy")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	prm, err := p.Params()
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

	var bs []bucket.Bucket
	switch policy {
	case sample.ByDistance:
		bs, err = byDistance(t, prm)
		if err != nil {
			return c.UsageError(err.Error())
		}
	case sample.ByName:
		w := prm.Window()
		if minYear != 0 {
			w.Min = minYear
		}
		if maxYear != 0 {
			w.Max = maxYear
		}
		if w.Min > w.Max {
			return c.UsageError(fmt.Sprintf("invalid year range [%d, %d]", w.Min, w.Max))
		}
		years, skipped := sample.NameYears(t.Terms(), w)
		if skipped > 0 {
			fmt.Fprintf(c.Stderr(), "warning: %d samples skipped: no year in [%d, %d]\n", skipped, w.Min, w.Max)
		}
		bs = bucket.Years(years)
	}

	if tableFlag {
		if err := printTable(c.Stdout(), bs); err != nil {
			return err
		}
	}

	if output == "" {
		if tableFlag {
			return nil
		}
		return bucket.WriteCSV(c.Stdout(), bs, monthFlag)
	}
	if err := writeBuckets(bs); err != nil {
		return err
	}
	set := project.Years
	if monthFlag {
		set = project.Months
	}
	p.Add(set, output)
	return p.Write()
}

func byDistance(t *newick.Tree, prm *param.P) ([]bucket.Bucket, error) {
	if rootFlag != "" {
		if err := prm.SetRoot(rootFlag); err != nil {
			return nil, err
		}
	}
	root, ok := prm.Root()
	if !ok {
		return nil, fmt.Errorf("undefined root date: use flag --root or 'phydate param --root'")
	}

	dates := sample.Dates(sample.FromLeaves(t.Leaves(), root))
	if monthFlag {
		return bucket.Monthly(dates), nil
	}
	return bucket.Yearly(dates), nil
}

func printTable(w io.Writer, bs []bucket.Bucket) error {
	table := tablewriter.NewWriter(w)

	first := "Year"
	if monthFlag {
		first = "Month"
	}
	table.Header([]string{first, "Samples", "Cumulative"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(bs))
	for _, b := range bs {
		data = append(data, []string{
			b.Label(),
			strconv.Itoa(b.Count),
			strconv.Itoa(b.Cumulative),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeBuckets(bs []bucket.Bucket) (err error) {
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

	if err := bucket.WriteCSV(f, bs, monthFlag); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
