package Queues

// minCap is the smallest buffer an ArrayQueue grows to.
const minCap = 4

// ArrayQueue is a Queue backed by a circular buffer that grows by 3/2 when full.
// The zero value is an empty queue ready to use.
type ArrayQueue[T any] struct {
	sz, head uint
	content  []T
}

func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

var _ Queue[int] = (*ArrayQueue[int])(nil)

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// resize the buffer to newLen>=Size(), moving the items to the front.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if n := copy(nc, u.content[u.head:min(u.head+u.sz, uint(len(u.content)))]); uint(n) < u.sz {
		copy(nc[n:], u.content[:u.sz-uint(n)])
	}
	u.content, u.head = nc, 0
}

// Shrink the buffer to fit the items.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz)
}

// Clear the queue, keeping the buffer.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(max(u.sz*3/2, minCap))
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *ArrayQueue[T]) Peek() (T, bool) {
	if u.Empty() {
		return *new(T), false
	}
	return u.content[u.head], true
}
