package main

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/g-m-twostay/go-trees/Trees"
)

var (
	bAddN = 1 << 12
	bRmvN = bAddN / 2
)
var _R = rand.New(rand.NewSource(0))

var __r1 bool

// workload inserts all, removes the first bRmvN of them, then queries every value.
func workload(all []int) func(b *testing.B) {
	return func(b *testing.B) {
		for range b.N {
			tree := Trees.NewOrderedScapegoat[int]()
			for _, v := range all {
				tree.Insert(v)
			}
			for _, v := range all[:bRmvN] {
				tree.Remove(v)
			}
			for _, v := range all {
				__r1 = tree.Has(v)
			}
		}
	}
}

// shape reports the height and rebuild count the workload ends with.
func shape(all []int) (int, uint) {
	tree := Trees.NewOrderedScapegoat[int]()
	for _, v := range all {
		tree.Insert(v)
	}
	for _, v := range all[:bRmvN] {
		tree.Remove(v)
	}
	return tree.Height(), tree.Rebalances()
}

const bNumSteps = 8

func main() {
	testing.Init()
	sorted := make([]int, bAddN)
	for i := range sorted {
		sorted[i] = i
	}
	inputs := []struct {
		name string
		all  []int
	}{{"random", _R.Perm(bAddN)}, {"sorted", sorted}, {"reversed", slices.Clone(sorted)}}
	slices.Reverse(inputs[2].all)
	for _, in := range inputs {
		var cs []float64
		for range bNumSteps {
			br := testing.Benchmark(workload(in.all))
			cs = append(cs, float64(br.NsPerOp())/1e6)
		}
		var sum float64 = 0
		for _, v := range cs {
			sum += v
		}
		avg := sum / float64(len(cs))
		sum = 0
		for _, v := range cs {
			a := v - avg
			sum += a * a
		}
		h, rb := shape(in.all)
		fmt.Printf("%s: average %fms/op, stddev %fms/op, height %d, rebuilds %d\n", in.name, avg, math.Sqrt(sum/float64(len(cs))), h, rb)
	}
}
