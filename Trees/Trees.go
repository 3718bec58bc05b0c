package Trees

// OrderedTree represents a sorted multiset implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool), and x is the
// zero value of T.
// Equal elements are allowed and are always placed to the left of each other,
// so for every node, all elements in its left subtree compare <= to it and all
// elements in its right subtree compare > to it.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively. None of the implementations are safe for
// concurrent use.
type OrderedTree[T any] interface {
	//Insert v to the tree. Panics with InvalidElementError if v is nil.
	Insert(v T)
	//Remove one copy of v from the tree. Returns false if v isn't in the tree,
	//in which case the tree isn't modified.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Get the stored element that compares equal to v.
	Get(v T) (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Height of the tree. -1 for an empty tree and 0 for a single node.
	Height() int
	//Size of the tree.
	Size() int
	//Empty returns true iff the tree has no elements.
	Empty() bool
	//InOrder returns a closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree, which is sorted.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//f works on a snapshot taken when InOrder is called, so modifying the
	//tree while iterating doesn't affect f, and two iterators never share state.
	InOrder() func() (T, bool)
	//PreOrder is InOrder in pre-order.
	PreOrder() func() (T, bool)
	//PostOrder is InOrder in post-order.
	PostOrder() func() (T, bool)
	//Balanced returns whether the heights of the two subtrees of every node
	//differ by at most 1.
	Balanced() bool

	top() *node[T]
}

var (
	_ OrderedTree[int] = (*BSTree[int])(nil)
	_ OrderedTree[int] = (*Scapegoat[int])(nil)
)
