// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relations

import "github.com/luxfi/ultrahonk/bn254"

// Permutation is the Ultra-permutation grand-product check: the
// running product z_perm, extended one step with the (beta, gamma)-
// twisted wire/id terms, must equal the same extension using the
// sigma (copy-permutation) terms instead of the identity terms, up to
// the public-input correction term folded into z_perm's boundary
// condition (spec.md §4.4).
func Permutation(e *Evaluations, c Challenges) bn254.Fr {
	num := twist(e.WL, e.ID1, c.Beta, c.Gamma).
		Mul(twist(e.WR, e.ID2, c.Beta, c.Gamma)).
		Mul(twist(e.WO, e.ID3, c.Beta, c.Gamma)).
		Mul(twist(e.W4, e.ID4, c.Beta, c.Gamma))

	den := twist(e.WL, e.Sigma1, c.Beta, c.Gamma).
		Mul(twist(e.WR, e.Sigma2, c.Beta, c.Gamma)).
		Mul(twist(e.WO, e.Sigma3, c.Beta, c.Gamma)).
		Mul(twist(e.W4, e.Sigma4, c.Beta, c.Gamma))

	lhs := num.Mul(e.ZPerm)
	rhs := den.Mul(e.ZPermShift)

	grandProductTerm := lhs.Sub(rhs)

	// Boundary: at the last row, the running product must have reached
	// the accumulated public-input delta. No separate first-row term
	// (via lagrange_first) is checked here.
	boundary := e.LagrangeLast.Mul(e.ZPermShift.Sub(c.PublicInputDelta))

	return grandProductTerm.Add(boundary)
}

// twist computes wire + beta*column + gamma, the (beta, gamma)-twisted
// term shared by every copy-permutation column.
func twist(wire, column, beta, gamma bn254.Fr) bn254.Fr {
	return wire.Add(beta.Mul(column)).Add(gamma)
}
