package Trees

import (
	"math"

	"golang.org/x/exp/constraints"
)

// alpha is the weight of the scapegoat height bound log_{1/alpha}(size).
const alpha = 2.0 / 3.0

var logInvAlpha = math.Log(1 / alpha)

// Scapegoat is a BSTree that keeps its height at most log_{3/2}(n), where n is
// the number of elements in the tree. Instead of rotating on every
// modification, it rebuilds the whole tree with [BSTree.Balance] whenever an
// Insert or Remove leaves the tree taller than the bound. This makes a single
// modification O(n) in the worst case.
// The bound can't be met when many elements compare equal, as equal elements
// always chain to the left; the tree stays correct but rebuilds more often.
type Scapegoat[T any] struct {
	t  BSTree[T]
	sz int  // maintained by Insert and Remove, never by traversal.
	rb uint // number of rebuilds triggered by the bound.
}

// NewScapegoat returns an empty Scapegoat ordered by cmp.
func NewScapegoat[T any](cmp func(T, T) int) *Scapegoat[T] {
	return &Scapegoat[T]{t: BSTree[T]{cmp: cmp}}
}

// NewOrderedScapegoat returns an empty Scapegoat ordered by the < operator.
func NewOrderedScapegoat[T constraints.Ordered]() *Scapegoat[T] {
	return NewScapegoat[T](compare[T])
}

// scapegoatBound returns log_{3/2}(sz). It's undefined, and returns false,
// when sz<=1.
func scapegoatBound(sz int) (float64, bool) {
	if sz <= 1 {
		return 0, false
	}
	return math.Log(float64(sz)) / logInvAlpha, true
}

// maintain rebuilds the tree if it violates the height bound.
// Time: O(n) for the height check, O(n log n) if rebuilt.
func (u *Scapegoat[T]) maintain() {
	if b, ok := scapegoatBound(u.sz); ok && float64(u.t.Height()) > b {
		u.t.rebuild(u.sz)
		u.rb++
	}
}

// Insert [OrderedTree.Insert]. A nil v is rejected before the tree or its
// size changes.
// Time: O(n)
func (u *Scapegoat[T]) Insert(v T) {
	validate(v)
	u.sz++
	u.t.insert(v)
	u.maintain()
}

// Remove [OrderedTree.Remove]. The size only changes if an element was removed.
// Time: O(n)
func (u *Scapegoat[T]) Remove(v T) bool {
	validate(v)
	deleted := u.t.remove(v)
	if deleted {
		u.sz--
	}
	u.maintain()
	return deleted
}

// Size [OrderedTree.Size]. It's the maintained counter.
// Time: O(1)
func (u *Scapegoat[T]) Size() int {
	return u.sz
}

// Count the nodes of the tree. It always equals Size. Recursive.
// Time: O(n)
func (u *Scapegoat[T]) Count() int {
	return u.t.Size()
}

// Rebalances is the number of times the tree was rebuilt because the height
// bound was violated. Explicit calls to Balance aren't counted.
func (u *Scapegoat[T]) Rebalances() uint {
	return u.rb
}

// Balance [BSTree.Balance]
func (u *Scapegoat[T]) Balance() {
	u.t.rebuild(u.sz)
}

func (u *Scapegoat[T]) top() *node[T] {
	return u.t.root
}

// Empty [OrderedTree.Empty]
func (u *Scapegoat[T]) Empty() bool {
	return u.t.Empty()
}

// Has [OrderedTree.Has]
func (u *Scapegoat[T]) Has(v T) bool {
	return u.t.Has(v)
}

// Get [OrderedTree.Get]
func (u *Scapegoat[T]) Get(v T) (T, bool) {
	return u.t.Get(v)
}

// Minimum [OrderedTree.Minimum]
func (u *Scapegoat[T]) Minimum() (T, bool) {
	return u.t.Minimum()
}

// Maximum [OrderedTree.Maximum]
func (u *Scapegoat[T]) Maximum() (T, bool) {
	return u.t.Maximum()
}

// Height [OrderedTree.Height]
func (u *Scapegoat[T]) Height() int {
	return u.t.Height()
}

// InOrder [OrderedTree.InOrder]
func (u *Scapegoat[T]) InOrder() func() (T, bool) {
	return iterate(inOrder(u.t.root, make([]T, 0, u.sz)))
}

// PreOrder [OrderedTree.PreOrder]
func (u *Scapegoat[T]) PreOrder() func() (T, bool) {
	return iterate(preOrder(u.t.root, make([]T, 0, u.sz)))
}

// PostOrder [OrderedTree.PostOrder]
func (u *Scapegoat[T]) PostOrder() func() (T, bool) {
	return iterate(postOrder(u.t.root, make([]T, 0, u.sz)))
}

// Balanced [OrderedTree.Balanced]
func (u *Scapegoat[T]) Balanced() bool {
	return u.t.Balanced()
}

// Equal [BSTree.Equal]
func (u *Scapegoat[T]) Equal(o OrderedTree[T]) bool {
	return u.t.Equal(o)
}

// SameValues [BSTree.SameValues]
func (u *Scapegoat[T]) SameValues(o OrderedTree[T]) bool {
	return u.t.SameValues(o)
}

// Dot [BSTree.Dot]
func (u *Scapegoat[T]) Dot() string {
	return u.t.Dot()
}
