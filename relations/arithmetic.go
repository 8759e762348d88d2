// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relations

import "github.com/luxfi/ultrahonk/bn254"

// Arithmetic is the standard PLONK-style gate extended with a fourth
// wire: q_m*w_l*w_r + q_l*w_l + q_r*w_r + q_o*w_o + q_4*w_4 + q_c,
// gated by q_arith so that non-arithmetic rows contribute zero.
func Arithmetic(e *Evaluations, c Challenges) bn254.Fr {
	mulTerm := e.QM.Mul(e.WL).Mul(e.WR)
	linear := e.QL.Mul(e.WL).
		Add(e.QR.Mul(e.WR)).
		Add(e.QO.Mul(e.WO)).
		Add(e.Q4.Mul(e.W4)).
		Add(e.QC)
	gate := mulTerm.Add(linear)
	return e.QArith.Mul(gate)
}
