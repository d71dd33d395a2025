package bdeque

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func sequence(from, to int) []int {
	s := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		s = append(s, i)
	}
	return s
}

func mustCheck(t *testing.T, d *Deque[int]) {
	t.Helper()
	if err := d.Check(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
}

func TestZeroDequeIsUsable(t *testing.T) {
	var d Deque[int]
	if !d.Empty() || d.Len() != 0 {
		t.Fatalf("zero deque should be empty")
	}
	if !d.Begin().Equal(d.End()) {
		t.Errorf("begin of zero deque should equal end")
	}
	d.PushBack(2)
	d.PushFront(1)
	if got := d.Slice(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("unexpected content %v", got)
	}
	if d.Config().Inf != DefaultInf {
		t.Errorf("zero deque should use default config, has %v", d.Config())
	}
	mustCheck(t, &d)
}

func TestNewWithConfig(t *testing.T) {
	if _, err := NewWithConfig[int](Config{Inf: -1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	d, err := NewWithConfig[int](Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Config().Sup() != 4*DefaultInf {
		t.Errorf("expected default sup, got %d", d.Config().Sup())
	}
	d, err = NewWithConfig[int](Config{Inf: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Config().Sup() != 12 {
		t.Errorf("expected sup 12, got %d", d.Config().Sup())
	}
	for _, inf := range []int{MaxInf + 1, math.MaxInt} {
		if _, err := NewWithConfig[int](Config{Inf: inf}); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Inf=%d: expected ErrInvalidConfig, got %v", inf, err)
		}
	}
	if _, err := NewWithConfig[int](Config{Inf: MaxInf}); err != nil {
		t.Errorf("Inf=MaxInf should be accepted, got %v", err)
	}
}

func TestPushBackSplits(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	d := New[int]()
	for i := 1; i <= 700; i++ {
		d.PushBack(i)
	}
	mustCheck(t, d)
	if d.Len() != 700 {
		t.Fatalf("expected 700 elements, have %d", d.Len())
	}
	if d.BlockCount() < 2 {
		t.Errorf("expected at least one split, have %d blocks", d.BlockCount())
	}
	if v, _ := d.At(0); v != 1 {
		t.Errorf("At(0) = %d, want 1", v)
	}
	if v, _ := d.At(699); v != 700 {
		t.Errorf("At(699) = %d, want 700", v)
	}
	if !slices.Equal(d.Slice(), sequence(1, 700)) {
		t.Errorf("forward traversal out of order")
	}
	sizes := []int{}
	for _, info := range d.Layout() {
		sizes = append(sizes, info.Size)
	}
	if !slices.Equal(sizes, []int{300, 400}) {
		t.Errorf("expected blocks [300 400], have %v", sizes)
	}
}

func TestPopFrontMerges(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	d := FromSlice(sequence(1, 700))
	for i := 0; i < 650; i++ {
		if _, err := d.PopFront(); err != nil {
			t.Fatalf("unexpected PopFront error: %v", err)
		}
		mustCheck(t, d)
	}
	if d.Len() != 50 {
		t.Fatalf("expected 50 elements, have %d", d.Len())
	}
	if v, _ := d.Front(); v != 651 {
		t.Errorf("Front() = %d, want 651", v)
	}
	if d.BlockCount() != 1 {
		t.Errorf("expected blocks to be merged into one, have %d", d.BlockCount())
	}
	if !slices.Equal(d.Slice(), sequence(651, 700)) {
		t.Errorf("order broken after merges")
	}
}

func TestPushFrontOrder(t *testing.T) {
	d := New[int]()
	for i := 1; i <= 1000; i++ {
		d.PushFront(i)
	}
	mustCheck(t, d)
	if v, _ := d.Front(); v != 1000 {
		t.Errorf("Front() = %d, want 1000", v)
	}
	if v, _ := d.Back(); v != 1 {
		t.Errorf("Back() = %d, want 1", v)
	}
	want := sequence(1, 1000)
	slices.Reverse(want)
	if !slices.Equal(d.Slice(), want) {
		t.Errorf("PushFront did not preserve order")
	}
	d.PushBack(0)
	for _, v := range d.Backward() {
		if v != 0 {
			t.Errorf("backward iteration should start with last pushed value, got %d", v)
		}
		break
	}
}

func TestPopBackDrainsToEmpty(t *testing.T) {
	d := FromSlice(sequence(1, 1300))
	for i := 1300; i >= 1; i-- {
		v, err := d.PopBack()
		if err != nil || v != i {
			t.Fatalf("PopBack() = %d, %v; want %d", v, err, i)
		}
		mustCheck(t, d)
	}
	if !d.Empty() || d.BlockCount() != 0 {
		t.Errorf("expected empty deque with no blocks, have %d blocks", d.BlockCount())
	}
	if !d.Begin().Equal(d.End()) {
		t.Errorf("begin should equal end on emptied deque")
	}
}

func TestErrorsOnEmpty(t *testing.T) {
	d := New[int]()
	if _, err := d.At(0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("At(0) on empty: expected ErrOutOfBounds, got %v", err)
	}
	if _, err := d.Front(); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("Front on empty: expected ErrEmptyContainer, got %v", err)
	}
	if _, err := d.Back(); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("Back on empty: expected ErrEmptyContainer, got %v", err)
	}
	if _, err := d.PopBack(); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("PopBack on empty: expected ErrEmptyContainer, got %v", err)
	}
	if _, err := d.PopFront(); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("PopFront on empty: expected ErrEmptyContainer, got %v", err)
	}
	if _, err := d.Erase(d.Begin()); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("Erase on empty: expected ErrEmptyContainer, got %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("failed operations modified the deque")
	}
	mustCheck(t, d)
}

func TestAtOutOfBounds(t *testing.T) {
	d := FromSlice([]int{1, 2, 3})
	for _, pos := range []int{-1, 3, 100} {
		if _, err := d.At(pos); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d): expected ErrOutOfBounds, got %v", pos, err)
		}
		if err := d.Set(pos, 0); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d): expected ErrOutOfBounds, got %v", pos, err)
		}
	}
	if err := d.Set(1, 20); err != nil {
		t.Fatalf("unexpected Set error: %v", err)
	}
	if !slices.Equal(d.Slice(), []int{1, 20, 3}) {
		t.Errorf("unexpected content after Set: %v", d.Slice())
	}
}

func TestClearIsIdempotent(t *testing.T) {
	d := New[int]()
	d.Clear()
	if d.Len() != 0 {
		t.Fatalf("clear on empty deque changed length")
	}
	d = FromSlice(sequence(1, 2000))
	d.Clear()
	d.Clear()
	mustCheck(t, d)
	if !d.Empty() || d.BlockCount() != 0 {
		t.Errorf("expected empty deque after clear")
	}
	d.PushBack(7)
	if v, _ := d.Front(); v != 7 {
		t.Errorf("deque not usable after clear")
	}
}

func TestCloneIndependence(t *testing.T) {
	a := FromSlice(sequence(1, 900))
	b := a.Clone()
	mustCheck(t, b)
	if !Equal(a, b) {
		t.Fatalf("clone differs from original")
	}
	a.PushBack(1000)
	_ = a.Set(0, -1)
	_, _ = a.PopFront()
	_, _ = a.PopFront()
	if b.Len() != 900 {
		t.Errorf("clone length changed to %d", b.Len())
	}
	if !slices.Equal(b.Slice(), sequence(1, 900)) {
		t.Errorf("mutating original changed clone")
	}
}

func TestCloneFuncDeepCopies(t *testing.T) {
	a := New[[]int]()
	a.PushBack([]int{1, 2})
	b := a.CloneFunc(func(s []int) []int { return slices.Clone(s) })
	v, _ := a.Front()
	v[0] = 99
	w, _ := b.Front()
	if w[0] != 1 {
		t.Errorf("CloneFunc did not copy element, got %v", w)
	}
}

func TestAssign(t *testing.T) {
	a := FromSlice(sequence(1, 700))
	small, _ := NewWithConfig[int](Config{Inf: 2})
	small.PushBack(42)
	a.Assign(a)
	if a.Len() != 700 {
		t.Fatalf("self assignment changed deque")
	}
	a.Assign(small)
	mustCheck(t, a)
	if !Equal(a, small) || a.Config() != small.Config() {
		t.Fatalf("assignment did not copy content and config")
	}
	small.PushBack(43)
	if a.Len() != 1 {
		t.Errorf("assigned deque aliases source")
	}
	a.Assign(nil)
	if !a.Empty() {
		t.Errorf("assigning nil should clear")
	}
}

func TestAssignKeepsTail(t *testing.T) {
	a := FromSlice(sequence(1, 700))
	tail := a.blocks.tail
	end := a.End()
	a.Assign(FromSlice(sequence(1, 1000)))
	mustCheck(t, a)
	if a.blocks.tail != tail {
		t.Errorf("assignment replaced the tail sentinel")
	}
	if a.End().node != end.node {
		t.Errorf("End() should keep referring to the same tail sentinel")
	}
	if !slices.Equal(a.Slice(), sequence(1, 1000)) {
		t.Errorf("unexpected content after assignment")
	}
	a.Assign(New[int]())
	mustCheck(t, a)
	if !a.Empty() || a.blocks.tail != tail || a.blocks.head != tail {
		t.Errorf("assigning an empty deque should leave just the tail sentinel")
	}
}

func TestTracingInGenericCode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	d, _ := NewWithConfig[string](Config{Inf: 1})
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		d.PushBack(s) // splits at 4
	}
	for range 4 {
		_, _ = d.PopFront() // merges
	}
	d.Clear()
	if !d.Empty() {
		t.Errorf("expected empty deque")
	}
}

func TestCollectAndValues(t *testing.T) {
	src := FromSlice(sequence(1, 50))
	d := Collect(src.Values())
	if !Equal(src, d) {
		t.Errorf("Collect(Values()) differs from source")
	}
	n := 0
	for range d.Values() {
		n++
		if n == 10 {
			break
		}
	}
	if n != 10 {
		t.Errorf("early break not honored")
	}
	var nilDeque *Deque[int]
	if nilDeque.Len() != 0 || len(nilDeque.Slice()) != 0 {
		t.Errorf("nil deque should be empty")
	}
}
