package ledger

import "testing"

func TestDeriveDNA_Deterministic(t *testing.T) {
	a := DeriveDNA("Zombie 1", "salt")
	b := DeriveDNA("Zombie 1", "salt")
	if a != b {
		t.Fatalf("same inputs must derive the same dna: %d vs %d", a, b)
	}
	if a == DeriveDNA("Zombie 1", "other-salt") {
		t.Fatalf("different salt should derive different dna")
	}
	if a == DeriveDNA("Zombie 2", "salt") {
		t.Fatalf("different name should derive different dna")
	}
}

func TestDeriveDNA_Shape(t *testing.T) {
	for _, name := range []string{"a", "Zombie 1", "NoName", "まもの"} {
		dna := DeriveDNA(name, "salt")
		if dna >= dnaModulus {
			t.Fatalf("dna %d for %q exceeds 16 digits", dna, name)
		}
		if dna%100 != 0 {
			t.Fatalf("dna %d for %q is not a multiple of 100", dna, name)
		}
	}
}

func TestMixDNA(t *testing.T) {
	cases := []struct{ a, b uint64 }{
		{0, 0},
		{100, 300},
		{9999999999999900, 100},
		{1234567890123400, 9876543210987600},
	}
	for _, c := range cases {
		mixed := MixDNA(c.a, c.b)
		if mixed >= dnaModulus {
			t.Fatalf("MixDNA(%d, %d) = %d exceeds 16 digits", c.a, c.b, mixed)
		}
		if mixed%100 != 0 {
			t.Fatalf("MixDNA(%d, %d) = %d is not a multiple of 100", c.a, c.b, mixed)
		}
	}
	if got, want := MixDNA(100, 300), uint64(200); got != want {
		t.Fatalf("expected average %d, got %d", want, got)
	}
}
