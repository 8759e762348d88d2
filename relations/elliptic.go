// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relations

import "github.com/luxfi/ultrahonk/bn254"

// EllipticCurve checks one step of incomplete short-Weierstrass point
// addition folded into the trace (spec.md §4.4): for a gate adding
// point (w_l, w_r) to (w_o, w_4_shift) to produce (w_l_shift,
// w_r_shift), the standard chord-and-tangent slope identity must hold.
// Gated by q_elliptic so non-ECC rows contribute zero.
func EllipticCurve(e *Evaluations, c Challenges) bn254.Fr {
	x1, y1 := e.WL, e.WR
	x2, y2 := e.WO, e.W4Shift
	x3, y3 := e.WLShift, e.WRShift

	dx := x2.Sub(x1)
	dy := y2.Sub(y1)

	// (x3 + x1 + x2) * dx^2 - dy^2 == 0
	slopeCheck := x3.Add(x1).Add(x2).Mul(dx.Square()).Sub(dy.Square())

	// (y3 + y1) * dx - dy * (x1 - x3) == 0
	slopeConsistency := y3.Add(y1).Mul(dx).Sub(dy.Mul(x1.Sub(x3)))

	return e.QElliptic.Mul(slopeCheck.Add(slopeConsistency))
}
