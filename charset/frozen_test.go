package charset

import "testing"

func TestFreezeThawRoundTrip(t *testing.T) {
	s := mustRange(t, 'a', 'z')
	frozen := s.Freeze()
	thawed := frozen.Thaw()
	if !thawed.Equal(s) {
		t.Fatalf("thawed = %v, want %v", thawed.Ranges(), s.Ranges())
	}
}

func TestFrozenUsableAsMapKey(t *testing.T) {
	a := mustRange(t, 'a', 'm')
	b := mustRange(t, 'a', 'm')
	c := mustRange(t, 'n', 'z')

	m := map[FrozenCSet]int{}
	m[a.Freeze()] = 1
	m[b.Freeze()] = 2 // same members as a; must overwrite, not add an entry
	m[c.Freeze()] = 3

	if len(m) != 2 {
		t.Fatalf("len(m) = %d, want 2", len(m))
	}
	if m[a.Freeze()] != 2 {
		t.Fatalf("m[a.Freeze()] = %d, want 2", m[a.Freeze()])
	}
}

func TestFreezeIndependentOfLaterMutation(t *testing.T) {
	s := mustRange(t, 'a', 'c')
	frozen := s.Freeze()
	_ = s.Add('z')
	thawed := frozen.Thaw()
	if thawed.Contains('z') {
		t.Fatal("frozen snapshot was affected by later mutation of source set")
	}
}
