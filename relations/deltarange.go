// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relations

import "github.com/luxfi/ultrahonk/bn254"

// DeltaRange enforces that consecutive range-constrained values differ
// by one of {0, 1, 2, 3} (spec.md §4.4), via the classic degree-4
// product (d)(d-1)(d-2)(d-3) == 0 applied to each of the four
// step-deltas derived from the wires, gated by q_delta_range.
func DeltaRange(e *Evaluations, c Challenges) bn254.Fr {
	one := bn254.FrOne()
	two := bn254.FrFromUint64(2)
	three := bn254.FrFromUint64(3)

	deltas := [4]bn254.Fr{
		e.WR.Sub(e.WL),
		e.WO.Sub(e.WR),
		e.W4.Sub(e.WO),
		e.WLShift.Sub(e.W4),
	}

	var acc bn254.Fr
	for i, d := range deltas {
		term := d.Mul(d.Sub(one)).Mul(d.Sub(two)).Mul(d.Sub(three))
		if i == 0 {
			acc = term
		} else {
			acc = acc.Add(term)
		}
	}
	return e.QDeltaRange.Mul(acc)
}
