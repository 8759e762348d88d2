// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn254

import "testing"

func TestG1FromLimbsInfinity(t *testing.T) {
	var zero [32]byte
	p, err := G1FromLimbs(zero[:], zero[:], zero[:], zero[:])
	if err != nil {
		t.Fatalf("G1FromLimbs(zero): %v", err)
	}
	if !p.IsInfinity() {
		t.Fatal("all-zero limbs should decode to infinity")
	}
}

func TestG1LimbRoundTrip(t *testing.T) {
	gen := G1Generator()
	xHi, xLo, yHi, yLo := gen.ToLimbs()

	got, err := G1FromLimbs(xHi[:], xLo[:], yHi[:], yLo[:])
	if err != nil {
		t.Fatalf("G1FromLimbs: %v", err)
	}
	if !got.equalForTest(gen) {
		t.Fatal("round trip through limbs changed the point")
	}
}

func TestG1FromLimbsRejectsOffCurve(t *testing.T) {
	gen := G1Generator()
	xHi, xLo, _, yLo := gen.ToLimbs()
	var badYHi [32]byte
	badYHi[31] = 1 // perturb y_hi so the point is (almost certainly) off-curve

	if _, err := G1FromLimbs(xHi[:], xLo[:], badYHi[:], yLo[:]); err == nil {
		t.Fatal("expected off-curve rejection")
	}
}

func TestMSMLengthMismatch(t *testing.T) {
	if _, err := MSM([]G1Point{G1Infinity()}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestMSMEmpty(t *testing.T) {
	p, err := MSM(nil, nil)
	if err != nil {
		t.Fatalf("MSM(empty): %v", err)
	}
	if !p.IsInfinity() {
		t.Fatal("MSM of no terms should be infinity")
	}
}

func TestMSMSingleTermMatchesScalarMul(t *testing.T) {
	gen := G1Generator()
	s := FrFromUint64(7)

	want := gen.ScalarMul(s)
	got, err := MSM([]G1Point{gen}, []Fr{s})
	if err != nil {
		t.Fatalf("MSM: %v", err)
	}
	if !got.equalForTest(want) {
		t.Fatal("MSM of a single term should match ScalarMul")
	}
}

func TestAddInfinityIdentity(t *testing.T) {
	gen := G1Generator()
	if !gen.Add(G1Infinity()).equalForTest(gen) {
		t.Fatal("p + infinity should equal p")
	}
	if !G1Infinity().Add(gen).equalForTest(gen) {
		t.Fatal("infinity + p should equal p")
	}
}

func TestNegCancels(t *testing.T) {
	gen := G1Generator()
	sum := gen.Add(gen.Neg())
	if !sum.IsInfinity() {
		t.Fatal("p + (-p) should be infinity")
	}
}

// equalForTest compares two points by their limb encoding; production
// code never needs point equality outside tests.
func (p G1Point) equalForTest(q G1Point) bool {
	if p.isInfinity != q.isInfinity {
		return false
	}
	if p.isInfinity {
		return true
	}
	px1, px2, py1, py2 := p.ToLimbs()
	qx1, qx2, qy1, qy2 := q.ToLimbs()
	return px1 == qx1 && px2 == qx2 && py1 == qy1 && py2 == qy2
}
