// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements a reader for phylogenetic trees
// in Newick (parenthetical) format,
// and the calculation of the distance
// from the root to each terminal of the tree.
//
// Branch lengths are read as given,
// so in a time calibrated tree
// (e.g., a tree with branch lengths in years)
// the distance from the root is the time elapsed
// since the root.
package newick

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// A ParseError is returned when the Newick string
// is malformed.
type ParseError struct {
	// Pos is the byte offset of the offending token.
	Pos int

	// Token is the text of the offending token.
	Token string

	// Msg describes the problem.
	Msg string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("newick: at byte %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("newick: at byte %d: token %q: %s", e.Pos, e.Token, e.Msg)
}

// A Tree is a rooted phylogenetic tree.
//
// Nodes are identified by an integer ID,
// the root is always the node 0,
// and nodes are numbered in the order
// in which they are found in the Newick string.
type Tree struct {
	nodes []node
}

type node struct {
	name   string
	length float64
	parent int
	chs    []int

	named  bool
	hasLen bool
}

// Parse reads a single tree in Newick format.
//
// Each node can have a label,
// quoted or not,
// and a branch length preceded by a colon.
// The tree must end with a semicolon.
// Comments in square brackets are ignored.
// A missing branch length is read as 0.
// An input without nodes,
// such as a lone semicolon,
// is an empty tree.
//
// If the input is malformed it returns a *ParseError.
func Parse(r io.Reader) (*Tree, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(string(b))
}

func parse(src string) (*Tree, error) {
	s := &scanner{src: src}
	t := &Tree{}
	cur := t.add(-1)

	var open []int
	for {
		tk, err := s.next()
		if err != nil {
			return nil, err
		}

		switch tk.kind {
		case tokOpen:
			n := &t.nodes[cur]
			if len(n.chs) > 0 || n.named || n.hasLen {
				return nil, unexpected(tk)
			}
			open = append(open, cur)
			cur = t.add(cur)
		case tokComma:
			if len(open) == 0 {
				return nil, &ParseError{Pos: tk.pos, Token: tk.text, Msg: "comma outside of parenthesis"}
			}
			cur = t.add(open[len(open)-1])
		case tokClose:
			if len(open) == 0 {
				return nil, &ParseError{Pos: tk.pos, Token: tk.text, Msg: "unbalanced parenthesis"}
			}
			cur = open[len(open)-1]
			open = open[:len(open)-1]
		case tokLabel:
			n := &t.nodes[cur]
			if n.named || n.hasLen {
				return nil, unexpected(tk)
			}
			n.name = tk.value
			n.named = true
		case tokColon:
			n := &t.nodes[cur]
			if n.hasLen {
				return nil, unexpected(tk)
			}
			l, err := length(s)
			if err != nil {
				return nil, err
			}
			n.length = l
			n.hasLen = true
		case tokSemicolon:
			if len(t.nodes) == 1 && !t.nodes[0].named && !t.nodes[0].hasLen {
				return nil, &ParseError{Pos: tk.pos, Token: tk.text, Msg: "empty tree"}
			}
			if len(open) > 0 {
				return nil, &ParseError{Pos: tk.pos, Token: tk.text, Msg: "unbalanced parenthesis"}
			}
			tail, err := s.next()
			if err != nil {
				return nil, err
			}
			if tail.kind != tokEOF {
				return nil, &ParseError{Pos: tail.pos, Token: tail.text, Msg: "unexpected content after the end of the tree"}
			}
			return t, nil
		case tokEOF:
			if len(t.nodes) == 1 && !t.nodes[0].named && !t.nodes[0].hasLen {
				return nil, &ParseError{Pos: tk.pos, Msg: "empty tree"}
			}
			if len(open) > 0 {
				return nil, &ParseError{Pos: tk.pos, Msg: "unbalanced parenthesis"}
			}
			return nil, &ParseError{Pos: tk.pos, Msg: "missing ';' at the end of the tree"}
		}
	}
}

// length reads the branch length after a colon.
func length(s *scanner) (float64, error) {
	tk, err := s.next()
	if err != nil {
		return 0, err
	}
	if tk.kind != tokLabel || tk.quoted {
		return 0, &ParseError{Pos: tk.pos, Token: tk.text, Msg: "expecting branch length"}
	}
	l, err := strconv.ParseFloat(tk.value, 64)
	if err != nil {
		return 0, &ParseError{Pos: tk.pos, Token: tk.text, Msg: "invalid branch length"}
	}
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return 0, &ParseError{Pos: tk.pos, Token: tk.text, Msg: "invalid branch length"}
	}
	if l < 0 {
		return 0, &ParseError{Pos: tk.pos, Token: tk.text, Msg: "negative branch length"}
	}
	return l, nil
}

func unexpected(tk token) *ParseError {
	return &ParseError{Pos: tk.pos, Token: tk.text, Msg: "unexpected token"}
}

// Add adds a new node as a child of the parent node,
// and returns the ID of the new node.
func (t *Tree) add(parent int) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{parent: parent})
	if parent >= 0 {
		p := &t.nodes[parent]
		p.chs = append(p.chs, id)
	}
	return id
}

// Children returns the IDs of the children of a node.
func (t *Tree) Children(id int) []int {
	chs := make([]int, len(t.nodes[id].chs))
	copy(chs, t.nodes[id].chs)
	return chs
}

// IsTerm returns true if a node is a terminal
// (i.e., a node without children).
func (t *Tree) IsTerm(id int) bool {
	return len(t.nodes[id].chs) == 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Length returns the length of the branch
// that connects the node with its parent.
func (t *Tree) Length(id int) float64 {
	return t.nodes[id].length
}

// Name returns the label of a node.
func (t *Tree) Name(id int) string {
	return t.nodes[id].name
}

// Parent returns the ID of the parent of a node.
// The parent of the root is -1.
func (t *Tree) Parent(id int) int {
	return t.nodes[id].parent
}

// Root returns the ID of the root node.
func (t *Tree) Root() int {
	return 0
}
