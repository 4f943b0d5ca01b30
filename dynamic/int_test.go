package dynamic

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestInternalLoadFactorIsFractional(t *testing.T) {
	seq := New[*int]()
	x := 1
	seq.Append(&x)
	if lf := seq.loadFactor(seq.length); lf != 0.25 {
		t.Errorf("expected load factor 1/4 to be 0.25, is %f", lf)
	}
	if lf := seq.loadFactor(3); lf != 0.75 {
		t.Errorf("expected load factor 3/4 to be 0.75, is %f", lf)
	}
}

func TestInternalCapacities(t *testing.T) {
	c := []struct {
		policy        Policy
		capacity      int
		length        int
		grown, shrunk int
	}{
		{DefaultPolicy(), 4, 1, 8, 4},
		{DefaultPolicy(), 8, 3, 16, 4},
		{DefaultPolicy(), 64, 31, 128, 32},
		{Policy{5, 1.0, 1.5, 0.5, 0.6}, 5, 5, 8, 5},
		{Policy{5, 1.0, 1.5, 0.5, 0.6}, 9, 4, 14, 5},
		{Policy{2, 1.0, 1.1, 0.4, 0.5}, 3, 3, 4, 3},
	}
	for i, x := range c {
		seq := &Sequence[*int]{policy: x.policy, items: make([]*int, x.capacity), length: x.length}
		if g := seq.grownCapacity(); g != x.grown {
			t.Errorf("%d: expected grown capacity to be %d, is %d", i, x.grown, g)
		}
		if s := seq.shrunkCapacity(); s != x.shrunk {
			t.Errorf("%d: expected shrunk capacity to be %d, is %d", i, x.shrunk, s)
		}
	}
}

func TestInternalResize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sequences.dynamic")
	defer teardown()
	//
	items := []int{1, 2, 3, 4, 5}
	seq := New[*int]()
	for i := range items {
		seq.Append(&items[i])
	}
	t.Log(printSeq(seq))
	seq.resize(5)
	if len(seq.items) != 5 {
		t.Fatalf("expected capacity to be 5 after resize, is %d", len(seq.items))
	}
	for i := range items {
		if seq.items[i] != &items[i] {
			t.Errorf("expected resize to keep item %d in place", i)
		}
	}
	t.Log(printSeq(seq))
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected resize below length to panic")
		}
	}()
	seq.resize(4)
}

// --- Print buffer ----------------------------------------------------------

func printSeq[T comparable](seq *Sequence[T]) string {
	header := fmt.Sprintf("\nSequence(len=%d, cap=%d, lf=%.3f)\n", seq.length, len(seq.items), seq.loadFactor(seq.length))
	printer := tp.New()
	live := printer.AddBranch(fmt.Sprintf("live  1…%d", seq.length))
	for i := 0; i < seq.length; i++ {
		live.AddNode(fmt.Sprintf("%d: %v", i+1, seq.items[i]))
	}
	printer.AddNode(fmt.Sprintf("free  %d slot(s)", len(seq.items)-seq.length))
	return header + printer.String() + "\n"
}
