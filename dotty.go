package coursetree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes). Missing children are drawn as small empty circles,
// so left and right children can be told apart.
func Tree2Dot(t *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	// nodes are numbered on first sight; empty child slots count from 10001
	numbers := make(map[*node]int)
	number := func(n *node) int {
		if k, ok := numbers[n]; ok {
			return k
		}
		numbers[n] = len(numbers) + 1
		return len(numbers)
	}
	var nodelist, edgelist strings.Builder
	nilid := 10000
	if !t.IsEmpty() {
		t.inOrder(func(n *node) bool {
			ID := number(n)
			label := fmt.Sprintf("%s\\n%s", dotEscape(n.course.ID), dotEscape(n.course.Title))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
			for _, child := range []*node{n.left, n.right} {
				if child == nil {
					nilid++
					fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				} else {
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, number(child))
				}
			}
			return true
		})
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(n *node) string {
	s := ",style=filled,shape=box"
	if n.left == nil && n.right == nil {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",color=black,fillcolor=white"
	}
	return s
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
