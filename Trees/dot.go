package Trees

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-trees/Queues"
)

// Dot describes the tree as a Graphviz digraph. Nodes are visited breadth
// first; every present child gets an edge and every absent child gets an
// edge to its own point shaped marker node0, node1, ... in visiting order.
// Elements are named with fmt.Sprint, so equal elements share a graph node.
// The tree isn't modified.
// Time: O(n)
func (u *BSTree[T]) Dot() string {
	var sb strings.Builder
	sb.WriteString("digraph G { \n")
	sb.WriteString("graph [ordering=\"out\"]; \n")
	if u.root != nil {
		q := Queues.MakeArrayQueue[*node[T]](minDotQueue)
		q.Push(u.root)
		k := 0
		edge := func(from string, c *node[T]) {
			if c != nil {
				fmt.Fprintf(&sb, "%s -> %v;\n", from, c.v)
				q.Push(c)
			} else {
				fmt.Fprintf(&sb, "node%d [shape=point];\n", k)
				fmt.Fprintf(&sb, "%s -> node%d;\n", from, k)
				k++
			}
		}
		for !q.Empty() {
			cur, _ := q.Pop()
			from := fmt.Sprint(cur.v)
			edge(from, cur.l)
			edge(from, cur.r)
		}
	}
	sb.WriteString("};")
	return sb.String()
}

const minDotQueue = 16
