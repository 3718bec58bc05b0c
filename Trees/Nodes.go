package Trees

// A node in a BSTree. Every node is referenced by exactly one parent
// pointer or by the root pointer of exactly one tree.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// nodePtr is an owning handle: the address of the single pointer that
// references a node. Replacing a subtree is *p = x.
type nodePtr[T any] **node[T]

// height of the subtree rooting at n. -1 for nil.
// Time: O(n)
func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.l), height(n.r))
}

// count of the nodes in the subtree rooting at n.
// Time: O(n)
func count[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.l) + count(n.r)
}

// balanced reports whether every node below n has child heights differing by at most 1.
// The height of n is returned along with it so each subtree is measured once.
func balanced[T any](n *node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, lb := balanced(n.l)
	if !lb {
		return 0, false
	}
	rh, rb := balanced(n.r)
	if !rb {
		return 0, false
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// popRightmost unlinks the rightmost node of the non nil subtree at p and
// returns its value. The unlinked node has no right child, so its left
// child takes its place.
func popRightmost[T any](p nodePtr[T]) T {
	for (*p).r != nil {
		p = &(*p).r
	}
	v := (*p).v
	*p = (*p).l
	return v
}

func preOrder[T any](n *node[T], s []T) []T {
	if n != nil {
		s = append(s, n.v)
		s = preOrder(n.l, s)
		s = preOrder(n.r, s)
	}
	return s
}

func inOrder[T any](n *node[T], s []T) []T {
	if n != nil {
		s = inOrder(n.l, s)
		s = append(s, n.v)
		s = inOrder(n.r, s)
	}
	return s
}

func postOrder[T any](n *node[T], s []T) []T {
	if n != nil {
		s = postOrder(n.l, s)
		s = postOrder(n.r, s)
		s = append(s, n.v)
	}
	return s
}

// iterate returns a one shot iterator over s in the form of [OrderedTree.InOrder].
func iterate[T any](s []T) func() (T, bool) {
	i := 0
	return func() (r T, has bool) {
		if i < len(s) {
			r, has = s[i], true
			s[i] = *new(T) // release the reference as soon as it's handed out.
			i++
		}
		return
	}
}
