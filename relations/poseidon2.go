// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relations

import "github.com/luxfi/ultrahonk/bn254"

// Poseidon2External and Poseidon2Internal fold one external (full)
// round and one internal (partial) round of the Poseidon2 permutation
// into the trace (spec.md §4.4), the same x^5 S-box gnark-crypto's
// poseidon2.Permutation applies internally (see zk/poseidon.go, which
// delegates to that package rather than hand-rolling the permutation —
// the verifier side folds the resulting algebraic identity into the
// gate instead).
//
// An external round applies the S-box to all four state limbs; an
// internal round applies it only to the first. Both check that the
// shifted wire equals the un-exponentiated limb raised to the fifth
// power, gated by their respective selector so non-Poseidon2 rows
// contribute zero.

func sbox5(x bn254.Fr) bn254.Fr {
	x2 := x.Square()
	x4 := x2.Square()
	return x4.Mul(x)
}

func Poseidon2External(e *Evaluations, c Challenges) bn254.Fr {
	d1 := e.WLShift.Sub(sbox5(e.WL))
	d2 := e.WRShift.Sub(sbox5(e.WR))
	d3 := e.WOShift.Sub(sbox5(e.WO))
	d4 := e.W4Shift.Sub(sbox5(e.W4))
	acc := d1.Add(d2).Add(d3).Add(d4)
	return e.QPoseidon2External.Mul(acc)
}

func Poseidon2Internal(e *Evaluations, c Challenges) bn254.Fr {
	d1 := e.WLShift.Sub(sbox5(e.WL))
	return e.QPoseidon2Internal.Mul(d1)
}
