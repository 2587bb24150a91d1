package vlz

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestCompressScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", nil, []byte{0x00}},
		{"A", []byte("A"), []byte{0x01, 0x03, 0x41}},
		{"eight As", bytes.Repeat([]byte("A"), 8), []byte{0x08, 0x03, 0x41, 0x28}},
		{"ABCDEFABCDEF", []byte("ABCDEFABCDEF"),
			[]byte{0x0C, 0x0D, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0xC6, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compress(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("Compress(%q) = % x, want % x", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompress64KZeros(t *testing.T) {
	in := make([]byte, 65536)
	got := Compress(in)

	out, err := decompressAll(got)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, in) {
		t.Fatal("round trip of 64K zeros failed")
	}
	if len(got) > 20 {
		t.Fatalf("compressed 64K zeros to %d bytes, expected substantially less", len(got))
	}
}

func TestRoundTripBoundaryLengths(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 5, 6, 7, 8, 100, 1000} {
		in := make([]byte, n)
		r.Read(in)
		got, err := decompressAll(Compress(in))
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
		if !bytes.Equal(got, in) {
			t.Fatalf("len %d: round trip mismatch", n)
		}
	}
}

func TestRoundTripRepeatedByte(t *testing.T) {
	in := bytes.Repeat([]byte{'x'}, 1000)
	compressed := Compress(in)
	if len(compressed) >= 1000 {
		t.Fatalf("compressed size %d, expected substantially less than 1000", len(compressed))
	}
	out, err := decompressAll(compressed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, in) {
		t.Fatal("round trip mismatch")
	}
}

func TestRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	in := make([]byte, 50000)
	r.Read(in)

	compressed := Compress(in)
	if len(compressed) > len(in)+len(in)/100+16 {
		t.Fatalf("incompressible input expanded too much: %d -> %d", len(in), len(compressed))
	}
	out, err := decompressAll(compressed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, in) {
		t.Fatal("round trip mismatch")
	}
}

func TestRoundTripTuning(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	in := make([]byte, 20000)
	for i := range in {
		in[i] = byte(r.Intn(6)) // low-entropy, so matches are plentiful
	}

	for _, searchLen := range []int{1, 2, 8, 64} {
		for _, blockSize := range []int{256, 4096, 65536} {
			out, err := decompressAll(Compress(in, WithSearchLen(searchLen), WithBlockSize(blockSize)))
			if err != nil {
				t.Fatalf("searchLen=%d blockSize=%d: %v", searchLen, blockSize, err)
			}
			if !bytes.Equal(out, in) {
				t.Fatalf("searchLen=%d blockSize=%d: round trip mismatch", searchLen, blockSize)
			}
		}
	}
}

func TestBackrefInvariants(t *testing.T) {
	// Every emitted back-reference must encode to fewer bytes than the
	// run it replaces, per the format's contract.
	r := rand.New(rand.NewSource(3))
	in := make([]byte, 10000)
	for i := range in {
		in[i] = byte(r.Intn(4))
	}

	d := newDualPrefixHash(DefaultBlockSize, DefaultSearchLen)
	n := len(in)
	i := 0
	for i < n-tailGuard {
		c := d.best(in, i)
		if c.run >= minMatchRun {
			encLen := len(appendBackrefPacket(nil, c.run, c.offset))
			if encLen >= c.run {
				t.Fatalf("at %d: backref run=%d offset=%d encodes to >= run bytes", i, c.run, c.offset)
			}
			i += c.run
			continue
		}
		i++
	}
}

// decompressAll feeds the whole compressed message to a fresh
// Decompressor in one call and returns the decoded result.
func decompressAll(compressed []byte) ([]byte, error) {
	d := NewDecompressor()
	complete, _, err := d.Feed(compressed)
	if err != nil {
		return nil, err
	}
	if !complete {
		return nil, errIncomplete
	}
	return d.Result(), nil
}
