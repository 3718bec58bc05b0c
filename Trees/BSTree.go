package Trees

import (
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree that allows repeated values. It applies
// no balancing of its own; the shape only changes through Insert, Remove and
// Balance.
// T is the type of values it will hold. The order is given by a three-way
// comparator that returns a negative number, zero or a positive number when
// its first argument is less than, equal to or greater than its second.
// The comparator must define a total order and stay consistent for the
// lifetime of the tree.
type BSTree[T any] struct {
	root *node[T]
	cmp  func(T, T) int
}

// New returns an empty BSTree ordered by cmp.
// BSTree shouldn't be created directly using struct literal.
func New[T any](cmp func(T, T) int) *BSTree[T] {
	return &BSTree[T]{cmp: cmp}
}

// NewOrdered returns an empty BSTree ordered by the < operator.
func NewOrdered[T constraints.Ordered]() *BSTree[T] {
	return New[T](compare[T])
}

func compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if b < a {
		return 1
	}
	return 0
}

func (u *BSTree[T]) top() *node[T] {
	return u.root
}

// Empty [OrderedTree.Empty]
// Time: O(1)
func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Size [OrderedTree.Size]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Size() int {
	return count(u.root)
}

// find returns the handle of the first node on the search path that compares
// equal to v, or nil.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) find(v T) nodePtr[T] {
	for p := &u.root; *p != nil; {
		if c := u.cmp(v, (*p).v); c < 0 {
			p = &(*p).l
		} else if c > 0 {
			p = &(*p).r
		} else {
			return p
		}
	}
	return nil
}

// Has [OrderedTree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return u.find(v) != nil
}

// Get [OrderedTree.Get]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Get(v T) (T, bool) {
	if p := u.find(v); p != nil {
		return (*p).v, true
	}
	return *new(T), false
}

// insert v as a new leaf. Ties go to the left.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) insert(v T) {
	p := &u.root
	for *p != nil {
		if u.cmp(v, (*p).v) <= 0 {
			p = &(*p).l
		} else {
			p = &(*p).r
		}
	}
	*p = &node[T]{v: v}
}

// Insert [OrderedTree.Insert]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) {
	validate(v)
	u.insert(v)
}

// remove one copy of v. A node with two children takes the value of its
// in-order predecessor, the maximum of its left subtree, and that node is
// spliced out instead.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) remove(v T) bool {
	p := u.find(v)
	if p == nil {
		return false
	}
	if cur := *p; cur.l == nil {
		*p = cur.r
	} else if cur.r == nil {
		*p = cur.l
	} else {
		cur.v = popRightmost(&cur.l)
	}
	return true
}

// Remove [OrderedTree.Remove]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) bool {
	validate(v)
	return u.remove(v)
}

// Minimum [OrderedTree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [OrderedTree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Height [OrderedTree.Height]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() int {
	return height(u.root)
}

// InOrder [OrderedTree.InOrder]. Recursive.
// Time: O(n) to take the snapshot, then O(1) at each call to the returned function. Space: O(n)
func (u *BSTree[T]) InOrder() func() (T, bool) {
	return iterate(inOrder(u.root, nil))
}

// PreOrder [OrderedTree.PreOrder]. Recursive.
func (u *BSTree[T]) PreOrder() func() (T, bool) {
	return iterate(preOrder(u.root, nil))
}

// PostOrder [OrderedTree.PostOrder]. Recursive.
func (u *BSTree[T]) PostOrder() func() (T, bool) {
	return iterate(postOrder(u.root, nil))
}

// Balanced [OrderedTree.Balanced]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Balanced() bool {
	_, b := balanced(u.root)
	return b
}

// Equal returns true iff o has the same shape as u and the elements at every
// corresponding position compare equal. Recursive.
// Time: O(n)
func (u *BSTree[T]) Equal(o OrderedTree[T]) bool {
	return u.equal(u.root, o.top())
}

func (u *BSTree[T]) equal(a, b *node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return u.cmp(a.v, b.v) == 0 && u.equal(a.l, b.l) && u.equal(a.r, b.r)
}

// SameValues returns true iff u and o hold the same elements, regardless of shape.
// Time: O(n)
func (u *BSTree[T]) SameValues(o OrderedTree[T]) bool {
	a, b := inOrder(u.root, nil), inOrder(o.top(), nil)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if u.cmp(a[i], b[i]) != 0 {
			return false
		}
	}
	return true
}

// Balance rebuilds u into a minimal height shape holding the same elements.
// The sorted elements are reinserted lower median first, so the result only
// depends on the in-order sequence. Recursive.
// Time: O(n log n); Space: O(n)
func (u *BSTree[T]) Balance() {
	u.rebuild(0)
}

// rebuild is Balance with sz as a capacity hint for the snapshot.
func (u *BSTree[T]) rebuild(sz int) {
	if u.root == nil {
		return
	}
	s := inOrder(u.root, make([]T, 0, sz))
	u.root = nil
	u.build(s)
}

func (u *BSTree[T]) build(s []T) {
	if len(s) == 0 {
		return
	}
	mid := (len(s) - 1) >> 1
	u.insert(s[mid])
	u.build(s[:mid])
	u.build(s[mid+1:])
}
