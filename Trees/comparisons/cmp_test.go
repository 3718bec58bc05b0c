package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchmarkItemCount = 1 << 12

// compares with https://github.com/emirpasic/gods red-black tree, https://github.com/google/btree
// and https://github.com/petar/GoLLRB on the same random permutation.
// gods and btree replace equal keys, so only distinct keys are used.
var perm = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

func setupScapegoat(b *testing.B) *Trees.Scapegoat[int] {
	b.Helper()
	t := Trees.NewOrderedScapegoat[int]()
	for _, v := range perm {
		t.Insert(v)
	}
	return t
}

func setupRedBlack(b *testing.B) *redblacktree.Tree {
	b.Helper()
	t := redblacktree.NewWithIntComparator()
	for _, v := range perm {
		t.Put(v, struct{}{})
	}
	return t
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewOrderedG[int](32)
	for _, v := range perm {
		t.ReplaceOrInsert(v)
	}
	return t
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for _, v := range perm {
		t.InsertNoReplace(llrb.Int(v))
	}
	return t
}

func BenchmarkInsertScapegoat(b *testing.B) {
	for range b.N {
		setupScapegoat(b)
	}
}

func BenchmarkInsertRedBlack(b *testing.B) {
	for range b.N {
		setupRedBlack(b)
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	for range b.N {
		setupBTree(b)
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for range b.N {
		setupLLRB(b)
	}
}

func BenchmarkHasScapegoat(b *testing.B) {
	t := setupScapegoat(b)
	b.ResetTimer()
	for range b.N {
		for _, v := range perm {
			if !t.Has(v) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasRedBlack(b *testing.B) {
	t := setupRedBlack(b)
	b.ResetTimer()
	for range b.N {
		for _, v := range perm {
			if _, found := t.Get(v); !found {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, v := range perm {
			if !t.Has(v) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHasLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for _, v := range perm {
			if !t.Has(llrb.Int(v)) {
				b.Fail()
			}
		}
	}
}

func BenchmarkRemoveScapegoat(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupScapegoat(b)
		b.StartTimer()
		for _, v := range perm {
			t.Remove(v)
		}
	}
}

func BenchmarkRemoveRedBlack(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupRedBlack(b)
		b.StartTimer()
		for _, v := range perm {
			t.Remove(v)
		}
	}
}

func BenchmarkRemoveBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupBTree(b)
		b.StartTimer()
		for _, v := range perm {
			t.Delete(v)
		}
	}
}

func BenchmarkRemoveLLRB(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupLLRB(b)
		b.StartTimer()
		for _, v := range perm {
			t.Delete(llrb.Int(v))
		}
	}
}
