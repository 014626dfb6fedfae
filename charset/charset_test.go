package charset

import "testing"

func mustRange(t *testing.T, start, end CodePoint) *CSet {
	t.Helper()
	s, err := NewRange(start, end)
	if err != nil {
		t.Fatalf("NewRange(%d, %d): %v", start, end, err)
	}
	return s
}

func TestNewRangeRejectsInverted(t *testing.T) {
	if _, err := NewRange(10, 5); err == nil {
		t.Fatal("expected error for start > end")
	}
}

func TestContainsAndSearch(t *testing.T) {
	s := mustRange(t, 'a', 'z')
	if !s.Contains('m') {
		t.Error("expected 'm' to be contained")
	}
	if s.Contains('A') {
		t.Error("did not expect 'A' to be contained")
	}
}

func TestAddMergesAdjacent(t *testing.T) {
	s := New()
	for _, c := range []CodePoint{'b', 'c', 'a'} {
		if err := s.Add(c); err != nil {
			t.Fatalf("Add(%c): %v", c, err)
		}
	}
	want := mustRange(t, 'a', 'c')
	if !s.Equal(want) {
		t.Fatalf("got %v, want %v", s.Ranges(), want.Ranges())
	}
}

func TestAddNearMinCodePoint(t *testing.T) {
	// Regression: the original sentinel-based implementation this was
	// ported from used MinCodePoint as a "no predecessor range" marker
	// and could misindex when item == MinCodePoint+1 with an empty
	// prefix; this guards that no such wraparound happens here.
	s := New()
	if err := s.Add(2); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(1); err != nil {
		t.Fatal(err)
	}
	want := New()
	_ = want.Add(1)
	_ = want.Add(2)
	if !s.Equal(want) {
		t.Fatalf("got %v, want %v", s.Ranges(), want.Ranges())
	}
}

func TestDiscardSplits(t *testing.T) {
	s := mustRange(t, 'a', 'z')
	s.Discard('m')
	if s.Contains('m') {
		t.Error("expected 'm' removed")
	}
	if !s.Contains('a') || !s.Contains('z') {
		t.Error("expected endpoints to remain")
	}
	if len(s.Ranges()) != 2 {
		t.Fatalf("expected split into 2 ranges, got %v", s.Ranges())
	}
}

func TestPopRemovesLowest(t *testing.T) {
	s := New()
	_ = s.Add('c')
	_ = s.Add('a')
	_ = s.Add('b')
	c, err := s.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if c != 'a' {
		t.Fatalf("Pop() = %c, want 'a'", c)
	}
}

func TestPopEmpty(t *testing.T) {
	s := New()
	if _, err := s.Pop(); err == nil {
		t.Fatal("expected error popping empty set")
	}
}

func TestAddRangeMergesOverlap(t *testing.T) {
	s := mustRange(t, 'a', 'c')
	if err := s.AddRange('b', 'f'); err != nil {
		t.Fatal(err)
	}
	want := mustRange(t, 'a', 'f')
	if !s.Equal(want) {
		t.Fatalf("got %v, want %v", s.Ranges(), want.Ranges())
	}
}

func TestAddRangeAdjacentMerges(t *testing.T) {
	s := mustRange(t, 'a', 'c')
	if err := s.AddRange('d', 'f'); err != nil {
		t.Fatal(err)
	}
	want := mustRange(t, 'a', 'f')
	if !s.Equal(want) {
		t.Fatalf("got %v, want %v", s.Ranges(), want.Ranges())
	}
}

func TestDiscardRangeSplitsStraddle(t *testing.T) {
	s := mustRange(t, 'a', 'z')
	if err := s.DiscardRange('m', 'p'); err != nil {
		t.Fatal(err)
	}
	if s.Contains('m') || s.Contains('p') {
		t.Error("expected discarded range removed")
	}
	if !s.Contains('a') || !s.Contains('z') {
		t.Error("expected ends retained")
	}
	if len(s.Ranges()) != 2 {
		t.Fatalf("expected 2 ranges, got %v", s.Ranges())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	s := mustRange(t, 'a', 'c')
	dup := s.Copy()
	_ = dup.Add('z')
	if s.Contains('z') {
		t.Error("mutating copy affected original")
	}
}
