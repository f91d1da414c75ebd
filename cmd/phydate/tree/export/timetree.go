// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package export

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/js-arias/phydate/newick"
	"github.com/js-arias/timetree"
)

// Valid age units,
// as the number of units in a year.
var units = map[string]float64{
	"year": 1,
	"day":  365.25,
	"hour": 365.25 * 24,
}

// errHeightLost is returned when all the branches of a tree
// are shorter than the age unit.
var errHeightLost = errors.New("tree height lost at the given unit")

// parseUnit returns the number of units in a year.
func parseUnit(name string) (float64, error) {
	u, ok := units[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown age unit %q", name)
	}
	return u, nil
}

// conversion is a timetree built from a Newick tree.
type conversion struct {
	tree *timetree.Tree

	// number of branches with a positive length
	// that have a length of 0 in the timetree.
	collapsed int
}

// timeTree converts a tree with branch lengths in years
// into a timetree with ages in the given unit.
// Node heights are rounded to the nearest unit,
// so rounding errors are not accumulated along the paths.
// If age is negative,
// the age of the root is the height of the tree.
func timeTree(t *newick.Tree, name string, unit float64, age int64) (conversion, error) {
	height := make([]int64, t.Len())
	dist := make([]float64, t.Len())
	order := make([]int, 0, t.Len())

	var maxH int64
	var maxDist float64
	stack := []int{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, id)

		if id != t.Root() {
			p := t.Parent(id)
			dist[id] = dist[p] + t.Length(id)
			height[id] = int64(math.Round(dist[id] * unit))
			maxH = max(maxH, height[id])
			maxDist = max(maxDist, dist[id])
		}

		chs := t.Children(id)
		for i := len(chs) - 1; i >= 0; i-- {
			stack = append(stack, chs[i])
		}
	}
	if maxH == 0 && maxDist > 0 {
		return conversion{}, fmt.Errorf("%w: tree height %.6f years", errHeightLost, maxDist)
	}

	if age < 0 {
		age = maxH
	}
	if age < maxH {
		return conversion{}, fmt.Errorf("root age %d younger than tree height %d", age, maxH)
	}

	c := conversion{tree: timetree.New(name, age)}
	ids := make([]int, t.Len())
	for _, id := range order {
		if id == t.Root() {
			ids[id] = c.tree.Root()
			continue
		}
		p := t.Parent(id)
		brLen := height[id] - height[p]
		if brLen == 0 && t.Length(id) > 0 {
			c.collapsed++
		}

		var tax string
		if t.IsTerm(id) {
			tax = t.Name(id)
		}
		nid, err := c.tree.Add(ids[p], brLen, tax)
		if err != nil {
			return conversion{}, fmt.Errorf("node %d: %v", id, err)
		}
		ids[id] = nid
	}
	c.tree.Format()
	return c, nil
}
