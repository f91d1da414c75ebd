// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

// A Leaf is a named terminal of a tree
// with its distance from the root.
type Leaf struct {
	Name string

	// Dist is the sum of the branch lengths
	// in the path from the root to the terminal.
	Dist float64
}

// Leaves returns the named terminals of the tree
// in the order in which they are found
// in the Newick string,
// with the distance of each terminal from the root.
//
// Terminals without a name are ignored.
func (t *Tree) Leaves() []Leaf {
	var leaves []Leaf
	t.walk(func(id int, dist float64) {
		if !t.IsTerm(id) || t.nodes[id].name == "" {
			return
		}
		leaves = append(leaves, Leaf{
			Name: t.nodes[id].name,
			Dist: dist,
		})
	})
	return leaves
}

// Terms returns the names of the named terminals,
// in the order in which they are found
// in the Newick string.
func (t *Tree) Terms() []string {
	var terms []string
	t.walk(func(id int, _ float64) {
		if !t.IsTerm(id) || t.nodes[id].name == "" {
			return
		}
		terms = append(terms, t.nodes[id].name)
	})
	return terms
}

// Unnamed returns the number of terminals without a name.
func (t *Tree) Unnamed() int {
	var n int
	for _, nd := range t.nodes {
		if len(nd.chs) == 0 && nd.name == "" {
			n++
		}
	}
	return n
}

// Walk visits each node of the tree in pre-order
// calling fn with the node ID
// and the distance of the node from the root.
//
// The length of the root branch is ignored.
func (t *Tree) walk(fn func(id int, dist float64)) {
	type item struct {
		id   int
		dist float64
	}

	stack := []item{{id: t.Root()}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(it.id, it.dist)

		// push in reverse order
		// so the first child is visited first
		chs := t.nodes[it.id].chs
		for i := len(chs) - 1; i >= 0; i-- {
			c := chs[i]
			stack = append(stack, item{
				id:   c,
				dist: it.dist + t.nodes[c].length,
			})
		}
	}
}
