package rrb

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mutable(t *testing.T, bits uint) *State[int] {
	t.Helper()
	e, err := Empty[int](Config{BranchBits: bits})
	if err != nil {
		t.Fatalf("cannot create empty state: %v", err)
	}
	return e.ToMutable()
}

func seq(from, to int) []int {
	s := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}

func assertValues(t *testing.T, s *State[int], want []int) {
	t.Helper()
	if err := s.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	if s.Len() != len(want) {
		t.Fatalf("expected size %d, is %d", len(want), s.Len())
	}
	if got := s.ToSlice(); !slices.Equal(got, want) {
		t.Fatalf("values mismatch:\n got=%v\nwant=%v", got, want)
	}
	for i, w := range want {
		if v, ok := s.Get(i); !ok || v != w {
			t.Fatalf("Get(%d) = %d/%v, expected %d", i, v, ok, w)
		}
	}
}

func TestEmptyIsShared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	a, _ := Empty[int](Config{})
	b, _ := Empty[int](DefaultConfig())
	if a != b {
		t.Errorf("expected empty states to be identical")
	}
	c, _ := Empty[string](Config{})
	if c.Len() != 0 || c.IsMutable() {
		t.Errorf("expected immutable empty state")
	}
	if _, err := Empty[int](Config{BranchBits: MaxBranchBits + 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestAppendPrependSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	s.Append(1, 2, 3, 4, 5)
	assertValues(t, s, seq(1, 6))
	s.Prepend(0)
	assertValues(t, s, seq(0, 6))
	if err := s.Slice(1, 4); err != nil {
		t.Fatal(err)
	}
	assertValues(t, s, []int{1, 2, 3})
}

func TestAppendOnlyTreeIsPlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	for i := range 100 {
		s.Append(i)
	}
	assertValues(t, s, seq(0, 100))
	st := s.Stats()
	t.Logf("stats = %+v", st)
	if st.Height != 3 {
		t.Errorf("expected height 3 for 100 values, is %d", st.Height)
	}
	if st.Leaves != 25 {
		t.Errorf("expected 25 leaves, have %d", st.Leaves)
	}
	if st.Relaxed != 0 {
		t.Errorf("expected no relaxed nodes, have %d", st.Relaxed)
	}
}

func TestPrependOneByOne(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	for i := 99; i >= 0; i-- {
		s.Prepend(i)
	}
	assertValues(t, s, seq(0, 100))
	s.Append(100, 101, 102)
	assertValues(t, s, seq(0, 103))
}

func TestSetAcrossLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	s.Append(seq(0, 50)...)
	want := seq(0, 50)
	for _, i := range []int{0, 49, 17, 3, 33, 25} {
		if err := s.Set(i, -i); err != nil {
			t.Fatal(err)
		}
		want[i] = -i
	}
	assertValues(t, s, want)
}

func TestIndexOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	s.Append(1, 2, 3)
	if err := s.Set(3, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Set: expected ErrIndexOutOfRange, got %v", err)
	}
	if err := s.Insert(4, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Insert: expected ErrIndexOutOfRange, got %v", err)
	}
	if err := s.Delete(2, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Delete: expected ErrIndexOutOfRange, got %v", err)
	}
	if err := s.Slice(-1, 2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Slice: expected ErrIndexOutOfRange, got %v", err)
	}
	if _, ok := s.Get(-1); ok {
		t.Errorf("Get(-1) should fail")
	}
	assertValues(t, s, []int{1, 2, 3})
}

func TestInsertAndDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	s.Append(seq(0, 40)...)
	want := seq(0, 40)
	if err := s.Insert(13, 100, 101, 102); err != nil {
		t.Fatal(err)
	}
	want = slices.Insert(want, 13, 100, 101, 102)
	assertValues(t, s, want)
	if err := s.Delete(5, 30); err != nil {
		t.Fatal(err)
	}
	want = slices.Delete(want, 5, 30)
	assertValues(t, s, want)
	if err := s.Delete(0, 1); err != nil {
		t.Fatal(err)
	}
	want = want[1:]
	assertValues(t, s, want)
	if err := s.Delete(len(want)-1, len(want)); err != nil {
		t.Fatal(err)
	}
	want = want[:len(want)-1]
	assertValues(t, s, want)
}

func TestDeleteToEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	s.Append(seq(0, 20)...)
	if err := s.Delete(0, 20); err != nil {
		t.Fatal(err)
	}
	assertValues(t, s, nil)
	s.Append(7)
	assertValues(t, s, []int{7})
	if err := s.Delete(0, 1); err != nil {
		t.Fatal(err)
	}
	assertValues(t, s, nil)
}

func TestFrozenStateIsUnchanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	s.Append(seq(0, 64)...)
	frozen := s.ToImmutable(true)
	left, right := frozen.left, frozen.right
	if v, ok := frozen.Get(30); !ok || v != 30 {
		t.Errorf("expected 30, got %d", v)
	}
	if frozen.left != left || frozen.right != right {
		t.Errorf("read access modified views of a frozen state")
	}
	m := frozen.ToMutable()
	m.Append(64)
	if err := m.Set(0, -1); err != nil {
		t.Fatal(err)
	}
	if err := m.Set(40, -40); err != nil {
		t.Fatal(err)
	}
	assertValues(t, frozen, seq(0, 64))
	want := append(seq(0, 64), 64)
	want[0], want[40] = -1, -40
	assertValues(t, m, want)
	if n := SharedNodes(frozen, m); n == 0 {
		t.Errorf("expected derived state to share nodes with its origin")
	}
}

func TestSnapshotContinuesSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	s.Append(seq(0, 10)...)
	snap := s.ToImmutable(false)
	if !s.IsMutable() || snap.IsMutable() {
		t.Fatalf("expected mutable session and immutable snapshot")
	}
	s.Prepend(-1)
	if err := s.Set(5, 50); err != nil {
		t.Fatal(err)
	}
	assertValues(t, snap, seq(0, 10))
	assertValues(t, s, []int{-1, 0, 1, 2, 3, 50, 5, 6, 7, 8, 9})
}

func TestMutatingImmutablePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	s.Append(1, 2, 3)
	frozen := s.ToImmutable(true)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on write to immutable state")
		}
	}()
	_ = frozen.Set(0, 5)
}

func TestToDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	s.Append(seq(0, 20)...)
	s.Prepend(-1)
	var b strings.Builder
	if err := s.ToDot(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.Contains(out, "->") {
		t.Errorf("unexpected DOT output:\n%s", out)
	}
}

func TestLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	s.Append(seq(0, 20)...)
	levels := s.Levels()
	if len(levels) != 3 || len(levels[0]) != 1 || len(levels[2]) != 5 {
		t.Fatalf("unexpected levels %v", levels)
	}
	if levels[0][0].Size != 20 || levels[0][0].Leaf || !levels[2][0].Leaf {
		t.Errorf("unexpected root or leaf description: %+v", levels)
	}
	if !levels[0][0].Editable {
		t.Errorf("expected nodes of a fresh session to be editable")
	}
}

func TestSetCopiesPathOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rrblist")
	defer teardown()

	s := mutable(t, 2)
	s.Append(seq(0, 256)...)
	s.commit()
	frozen := s.ToImmutable(true)
	st := frozen.Stats()
	m := frozen.ToMutable()
	if err := m.Set(100, -1); err != nil {
		t.Fatal(err)
	}
	n := m.Stats().Nodes - SharedNodes(frozen, m)
	t.Logf("%d of %d nodes copied for a tree of height %d", n, st.Nodes, st.Height)
	if n != st.Height+1 {
		t.Errorf("expected copies along a single path of %d nodes, have %d", st.Height+1, n)
	}
	if v, _ := frozen.Get(100); v != 100 {
		t.Errorf("frozen state changed by derived session")
	}
}
