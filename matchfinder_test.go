package vlz

import "testing"

func TestGain(t *testing.T) {
	tests := []struct {
		run, offset, want int
	}{
		{0, 0, 0},
		{4, 1, 2},
		{4, 0x200000, 0}, // offset loss (2+1+1+1=5) exceeds run
		{1000, 1, 997},
		{3, 1, 1}, // positive gain even though run < minMatchRun
	}
	for _, tt := range tests {
		if got := gain(tt.run, tt.offset); got != tt.want {
			t.Errorf("gain(%d, %d) = %d, want %d", tt.run, tt.offset, got, tt.want)
		}
	}
}

func TestPosRingFIFOEviction(t *testing.T) {
	r := newPosRing(1, 3)
	for i := 0; i < 5; i++ {
		r.insert(0, i)
	}
	got := r.appendPositions(nil, 0)
	want := []int{4, 3, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDualPrefixHashFindsExactMatch(t *testing.T) {
	s := []byte("ABCDEFGHIJABCDEFGHIJ")
	d := newDualPrefixHash(DefaultBlockSize, DefaultSearchLen)

	// Prime the tables on the first copy.
	for i := 0; i < 10; i++ {
		d.best(s, i)
	}

	c := d.best(s, 10)
	if c.run < 4 {
		t.Fatalf("expected a match at position 10, got run=%d", c.run)
	}
	if c.offset != 10 {
		t.Fatalf("expected offset 10, got %d", c.offset)
	}
}
