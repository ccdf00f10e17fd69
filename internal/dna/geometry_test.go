package dna

import (
	"math"
	"testing"

	"helixd/pkg/types"
)

func defaultGeometry() Geometry {
	cfg := types.DefaultConfig()
	return Geometry{HelixRadius: cfg.HelixRadius, BasePairDistance: cfg.BasePairDistance}
}

func TestBuild_EmptySequence(t *testing.T) {
	seq := Build("", defaultGeometry())
	if seq.Length != 0 || len(seq.Bases) != 0 {
		t.Fatalf("empty build: %+v", seq)
	}
	if seq.GCContent != 0 {
		t.Fatalf("gc=%v", seq.GCContent)
	}
}

func TestBuild_PairCountAndOrdering(t *testing.T) {
	seq := Build("ATGC", defaultGeometry())
	if len(seq.Bases) != 8 {
		t.Fatalf("bases=%d", len(seq.Bases))
	}
	for i := 0; i < seq.Length; i++ {
		s1, s2 := seq.Bases[2*i], seq.Bases[2*i+1]
		if s1.Strand != 1 || s2.Strand != 2 {
			t.Fatalf("pair %d strands: %d,%d", i, s1.Strand, s2.Strand)
		}
		if s1.Index != i || s2.Index != i || s1.PairIndex != i || s2.PairIndex != i {
			t.Fatalf("pair %d indices: %+v %+v", i, s1, s2)
		}
		if s1.Position[1] != s2.Position[1] {
			t.Fatalf("pair %d heights differ: %v vs %v", i, s1.Position[1], s2.Position[1])
		}
	}
}

func TestBuild_StrandsMirrorThroughAxis(t *testing.T) {
	// cos(θ+π) = -cos θ, so strand 2 must be the reflection of strand 1.
	seq := Build("ATGCATGCAT", defaultGeometry())
	for i := 0; i < seq.Length; i++ {
		p1, p2 := seq.Bases[2*i].Position, seq.Bases[2*i+1].Position
		if math.Abs(p1[0]+p2[0]) > 1e-9 || math.Abs(p1[2]+p2[2]) > 1e-9 {
			t.Fatalf("pair %d not mirrored: %v vs %v", i, p1, p2)
		}
	}
}

func TestBuild_TwoTurnSweepAndCentering(t *testing.T) {
	g := defaultGeometry()
	seq := Build("ATGCATGCATGCATGCATGC", g)
	n := seq.Length

	// First pair sits at angle 0 on the +x axis.
	p0 := seq.Bases[0].Position
	if math.Abs(p0[0]-g.HelixRadius) > 1e-9 || math.Abs(p0[2]) > 1e-9 {
		t.Fatalf("first pair position: %v", p0)
	}
	if want := -float64(n) / 2 * g.BasePairDistance; math.Abs(p0[1]-want) > 1e-9 {
		t.Fatalf("first pair y=%v want %v", p0[1], want)
	}

	// Pair i sits at (i/n)*4π: halfway through the sequence is one full turn.
	half := seq.Bases[2*(n/2)].Position
	if math.Abs(half[0]-g.HelixRadius) > 1e-9 || math.Abs(half[2]) > 1e-9 {
		t.Fatalf("halfway pair should complete one turn, got %v", half)
	}
}

func TestBuild_Length20Scenario(t *testing.T) {
	letters := Random(20)
	seq := Build(letters, defaultGeometry())
	if seq.Length != 20 || len(seq.Bases) != 40 {
		t.Fatalf("length=%d bases=%d", seq.Length, len(seq.Bases))
	}
	if seq.GCContent != GCContent(letters) {
		t.Fatalf("gc mismatch: %v vs %v", seq.GCContent, GCContent(letters))
	}
	if seq.Complement != Complement(letters) {
		t.Fatalf("complement mismatch")
	}
	for i, b := range seq.Bases {
		want := letters
		if b.Strand == 2 {
			want = seq.Complement
		}
		if b.Type != string(want[b.Index]) {
			t.Fatalf("base %d type=%q", i, b.Type)
		}
	}
}

func TestBaseInfo(t *testing.T) {
	info, err := BaseInfo("a")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if info.Name != "Adenine" || info.PairsWith != "Thymine" || info.Bonds != 2 {
		t.Fatalf("info=%+v", info)
	}
	if _, err := BaseInfo("X"); !IsUnknownBase(err) {
		t.Fatalf("err=%v", err)
	}
}

func TestErrInvalidLength(t *testing.T) {
	err := ErrInvalidLength(150)
	if !IsInvalidLength(err) {
		t.Fatalf("predicate failed")
	}
	if IsInvalidLength(ErrEmptySequence()) {
		t.Fatalf("predicate matched wrong type")
	}
}
