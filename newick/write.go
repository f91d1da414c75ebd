// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Write writes a tree in Newick format.
// Branch lengths are multiplied by scale.
func (t *Tree) Write(w io.Writer, scale float64) error {
	bw := bufio.NewWriter(w)
	t.write(bw, t.Root(), scale)
	bw.WriteString(";\n")
	return bw.Flush()
}

func (t *Tree) write(w *bufio.Writer, id int, scale float64) {
	n := t.nodes[id]
	if len(n.chs) > 0 {
		w.WriteByte('(')
		for i, c := range n.chs {
			if i > 0 {
				w.WriteByte(',')
			}
			t.write(w, c, scale)
		}
		w.WriteByte(')')
	}
	w.WriteString(quote(n.name))
	if id == t.Root() {
		return
	}
	w.WriteByte(':')
	w.WriteString(strconv.FormatFloat(n.length*scale, 'f', -1, 64))
}

// Quote returns a label
// quoted if it has any delimiter.
func quote(name string) string {
	if name == "" {
		return ""
	}
	if !strings.ContainsAny(name, "()[],:;'\"") && strings.IndexFunc(name, unicode.IsSpace) < 0 {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
