package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue_PushPop(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if _, err := q.Pop(); err == nil {
		t.Fatal("popped from an empty queue")
	} else if e := new(EmptyQueueError); !errors.As(err, &e) {
		t.Fatalf("wrong error %v", err)
	}
	next := 0
	for i := range 1000 {
		q.Push(i)
		if i%3 == 0 {
			v, err := q.Pop()
			if err != nil || v != next {
				t.Fatalf("popped %d %v, want %d", v, err, next)
			}
			next++
		}
	}
	if q.Size() != uint(1000-next) {
		t.Fatalf("size is %d, want %d", q.Size(), 1000-next)
	}
	if v, ok := q.Peek(); !ok || v != next {
		t.Fatalf("peeked %d, want %d", v, next)
	}
	for ; !q.Empty(); next++ {
		if v, _ := q.Pop(); v != next {
			t.Fatalf("popped %d, want %d", v, next)
		}
	}
	if next != 1000 {
		t.Errorf("lost items, last %d", next)
	}
	if _, ok := q.Peek(); ok {
		t.Errorf("peeked an empty queue")
	}
}

func TestArrayQueue_Wrap(t *testing.T) {
	var q ArrayQueue[int]
	for i := range 4 {
		q.Push(i)
	}
	q.Pop()
	q.Pop()
	q.Push(4)
	q.Push(5) // wraps around the end of the buffer.
	q.Push(6) // grows while wrapped.
	for want := 2; want <= 6; want++ {
		if v, err := q.Pop(); err != nil || v != want {
			t.Fatalf("popped %d %v, want %d", v, err, want)
		}
	}
}

func TestArrayQueue_ShrinkClear(t *testing.T) {
	q := MakeArrayQueue[int](64)
	for i := range 10 {
		q.Push(i)
	}
	for range 5 {
		q.Pop()
	}
	q.Shrink()
	if len(q.content) != 5 || q.Size() != 5 {
		t.Fatalf("shrunk to %d with size %d", len(q.content), q.Size())
	}
	if v, _ := q.Peek(); v != 5 {
		t.Fatalf("peeked %d after shrink", v)
	}
	q.Clear()
	if !q.Empty() || len(q.content) != 5 {
		t.Fatalf("clear failed")
	}
	q.Shrink()
	q.Push(1)
	if v, _ := q.Pop(); v != 1 {
		t.Errorf("popped %d after clear", v)
	}
}
