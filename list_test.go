package rrblist

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func ints(from, to int) []int {
	s := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}

func mustOf(t *testing.T, values []int, opts ...Option) *List[int] {
	t.Helper()
	l, err := Of(values, opts...)
	if err != nil {
		t.Fatalf("Of failed: %v", err)
	}
	return l
}

func expect(t *testing.T, l *List[int], want []int) {
	t.Helper()
	if err := l.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	if got := l.ToSlice(); !slices.Equal(got, want) {
		t.Fatalf("values mismatch:\n got=%v\nwant=%v", got, want)
	}
}

func TestOfAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	l := mustOf(t, ints(0, 1000), WithBranchBits(3))
	if l.Len() != 1000 || l.IsMutable() {
		t.Fatalf("expected immutable list of 1000 values")
	}
	for _, i := range []int{0, 1, 7, 8, 63, 64, 511, 999} {
		if v, ok := l.Get(i); !ok || v != i {
			t.Errorf("Get(%d) = %d/%v", i, v, ok)
		}
	}
	if _, ok := l.Get(1000); ok {
		t.Errorf("Get beyond end should report absence")
	}
	if v, ok := l.First(); !ok || v != 0 {
		t.Errorf("First = %d/%v", v, ok)
	}
	if v, ok := l.Last(); !ok || v != 999 {
		t.Errorf("Last = %d/%v", v, ok)
	}
	if _, ok := Empty[int]().Last(); ok {
		t.Errorf("Last of empty list should report absence")
	}
	expect(t, l, ints(0, 1000))
}

func TestFromSeq(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	l, err := FromSeq(slices.Values(ints(0, 600)), WithBranchBits(2))
	if err != nil {
		t.Fatal(err)
	}
	expect(t, l, ints(0, 600))
	if _, err := FromSeq[int](nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for nil sequence, got %v", err)
	}
	if _, err := Of([]int{1}, WithBranchBits(0)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for invalid option, got %v", err)
	}
	if Empty[int](WithBranchBits(99)).Stats().Branching != 32 {
		t.Errorf("expected invalid option to fall back to default branching")
	}
}

func TestImmutableOperationsKeepOriginal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	orig := ints(0, 100)
	l := mustOf(t, orig, WithBranchBits(2))
	l2 := l.Append(100)
	expect(t, l2, ints(0, 101))
	l3 := l.Prepend(-2, -1)
	expect(t, l3, ints(-2, 100))
	l4, err := l.Set(50, -50)
	if err != nil {
		t.Fatal(err)
	}
	want := ints(0, 100)
	want[50] = -50
	expect(t, l4, want)
	l5, err := l.Insert(30, 7, 7)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, l5, slices.Insert(ints(0, 100), 30, 7, 7))
	l6, err := l.Delete(99)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, l6, ints(0, 99))
	l7, err := l.DeleteRange(10, 90)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, l7, append(ints(0, 10), ints(90, 100)...))
	l8, err := l.Slice(20, 40)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, l8, ints(20, 40))
	expect(t, l.Skip(95), ints(95, 100))
	expect(t, l.Skip(200), nil)
	expect(t, l.Take(3), ints(0, 3))
	expect(t, l.Take(-1), nil)
	expect(t, l.Pop(), ints(0, 99))
	expect(t, l.PopFront(), ints(1, 100))
	expect(t, l, orig)
	for _, derived := range []*List[int]{l2, l3, l4, l5, l6, l7, l8} {
		if derived.IsMutable() {
			t.Errorf("derived list should be immutable")
		}
	}
	if n := SharedNodes(l, l2); n == 0 {
		t.Errorf("expected appended list to share nodes with its origin")
	}
}

func TestPopOnEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	e := Empty[int]()
	if e.Pop() != e || e.PopFront() != e {
		t.Errorf("expected Pop on empty list to return the list itself")
	}
	l := mustOf(t, []int{1}).Pop()
	if !l.IsEmpty() {
		t.Errorf("expected empty list after pop")
	}
	expect(t, l.Append(2), []int{2})
}

func TestOutOfRangeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	l := mustOf(t, ints(0, 10))
	checks := []func() error{
		func() error { _, err := l.Set(10, 0); return err },
		func() error { _, err := l.Set(-1, 0); return err },
		func() error { _, err := l.Insert(11, 0); return err },
		func() error { _, err := l.Delete(10); return err },
		func() error { _, err := l.DeleteRange(5, 11); return err },
		func() error { _, err := l.Slice(3, 2); return err },
		func() error { _, err := l.Slice(0, -1); return err },
	}
	for i, check := range checks {
		if err := check(); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("check %d: expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
	expect(t, l, ints(0, 10))
}

func TestConcatLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	a := mustOf(t, ints(0, 70), WithBranchBits(2))
	b := mustOf(t, ints(70, 75), WithBranchBits(2))
	c := mustOf(t, ints(75, 300), WithBranchBits(2))
	l, err := a.Concat(b, c)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, l, ints(0, 300))
	expect(t, a, ints(0, 70))
	expect(t, b, ints(70, 75))
	expect(t, c, ints(75, 300))
	l, err = a.Concat(a)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, l, append(ints(0, 70), ints(0, 70)...))
	if _, err := a.Concat(mustOf(t, []int{1})); !errors.Is(err, ErrIncompatibleConfig) {
		t.Errorf("expected ErrIncompatibleConfig, got %v", err)
	}
	if _, err := a.Concat(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	l := mustOf(t, []int{1, 2, 3})
	if l.String() != "[1 2 3]" {
		t.Errorf("unexpected rendering %q", l.String())
	}
	if Empty[string]().String() != "[]" {
		t.Errorf("unexpected rendering of empty list")
	}
}

func TestDeleteFrontUntilEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	for _, tc := range []struct {
		n    int
		opts []Option
	}{
		{n: 100},
		{n: 37, opts: []Option{WithBranchBits(2)}},
	} {
		l := mustOf(t, ints(0, tc.n), tc.opts...)
		for i := range tc.n {
			var err error
			if l, err = l.Delete(0); err != nil {
				t.Fatalf("n=%d, delete %d: %v", tc.n, i, err)
			}
			if l.Len() != tc.n-1-i {
				t.Fatalf("n=%d: expected size %d, is %d", tc.n, tc.n-1-i, l.Len())
			}
			if v, ok := l.First(); !l.IsEmpty() && (!ok || v != i+1) {
				t.Fatalf("n=%d: expected first value %d, is %d/%v", tc.n, i+1, v, ok)
			}
		}
		if _, ok := l.Get(0); ok || !l.IsEmpty() {
			t.Errorf("n=%d: expected empty list without value at 0", tc.n)
		}
		expect(t, l, nil)
	}
}

func TestFrozenListsAfterGrowth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	l := mustOf(t, ints(0, 33))
	if v, ok := l.Get(0); !ok || v != 0 {
		t.Fatalf("Get(0) = %d/%v", v, ok)
	}
	expect(t, l, ints(0, 33))
	l2, err := l.Set(32, -1)
	if err != nil {
		t.Fatal(err)
	}
	want := ints(0, 33)
	want[32] = -1
	expect(t, l2, want)
	expect(t, l.Append(33).Prepend(-1), ints(-1, 34))
	expect(t, l, ints(0, 33))
}

func TestSmallTreeExamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	l := Empty[int](WithBranchBits(2))
	for i := 1; i <= 5; i++ {
		l = l.Append(i)
	}
	l = l.Prepend(0)
	expect(t, l, ints(0, 6))
	s, err := l.Slice(1, 4)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, s, []int{1, 2, 3})

	five := Empty[int](WithBranchBits(2))
	for i := range 5 {
		five = five.Append(i)
	}
	six, err := five.Concat(Empty[int](WithBranchBits(2)).Append(5))
	if err != nil {
		t.Fatal(err)
	}
	expect(t, six, ints(0, 6))
	if levels := six.Levels(); len(levels) == 0 || !levels[0][0].Relaxed {
		t.Errorf("expected relaxed root after concatenation, have %+v", levels)
	}
	expect(t, five, ints(0, 5))
}
