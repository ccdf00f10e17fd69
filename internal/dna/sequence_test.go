package dna

import (
	"strings"
	"testing"
)

func TestComplement_Basic(t *testing.T) {
	got := Complement("ATGC")
	if got != "TACG" {
		t.Fatalf("complement=%q", got)
	}
}

func TestComplement_Involution(t *testing.T) {
	for _, s := range []string{"", "A", "ATGC", "GGGGCCCC", "ATATATGCGCGC"} {
		if got := Complement(Complement(s)); got != s {
			t.Fatalf("complement(complement(%q))=%q", s, got)
		}
	}
}

func TestComplement_LowercaseAndSentinel(t *testing.T) {
	if got := Complement("atgc"); got != "TACG" {
		t.Fatalf("lowercase: %q", got)
	}
	if got := Complement("AXGC"); got != "TNCG" {
		t.Fatalf("sentinel: %q", got)
	}
}

func TestGCContent(t *testing.T) {
	cases := []struct {
		seq  string
		want float64
	}{
		{"", 0},
		{"ATAT", 0},
		{"GCGC", 100},
		{"ATGC", 50},
		{"atgc", 50},
	}
	for _, c := range cases {
		if got := GCContent(c.seq); got != c.want {
			t.Fatalf("gc(%q)=%v want %v", c.seq, got, c.want)
		}
	}
}

func TestGCContent_Bounds(t *testing.T) {
	for _, s := range []string{"A", "G", "ATGCATGC", "NNNN", Random(100)} {
		gc := GCContent(s)
		if gc < 0 || gc > 100 {
			t.Fatalf("gc(%q)=%v out of range", s, gc)
		}
	}
}

func TestMeltingTemperature_WallaceRule(t *testing.T) {
	for _, s := range []string{"", "ATGC", "AAAA", "GGGG", Random(50)} {
		up := strings.ToUpper(s)
		at := strings.Count(up, "A") + strings.Count(up, "T")
		gc := strings.Count(up, "G") + strings.Count(up, "C")
		want := float64(2*at + 4*gc)
		if got := MeltingTemperature(s); got != want {
			t.Fatalf("tm(%q)=%v want %v", s, got, want)
		}
	}
}

func TestRandom(t *testing.T) {
	s := Random(20)
	if len(s) != 20 {
		t.Fatalf("len=%d", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(Letters, r) {
			t.Fatalf("unexpected letter %q in %q", r, s)
		}
	}
}

func TestValidate_Empty(t *testing.T) {
	if _, err := Validate("   "); !IsEmptySequence(err) {
		t.Fatalf("err=%v", err)
	}
}

func TestValidate_Clean(t *testing.T) {
	v, err := Validate("  atgcATGC ")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !v.Valid() || v.Sequence != "ATGCATGC" {
		t.Fatalf("report=%+v", v)
	}
}

func TestValidate_ReportsInvalidWithoutFailing(t *testing.T) {
	v, err := Validate("ATXGZBX")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if v.Valid() {
		t.Fatalf("expected invalid, got %+v", v)
	}
	if got := string(v.Invalid); got != "BXZ" {
		t.Fatalf("invalid=%q", got)
	}
}
