// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relations

import "github.com/luxfi/ultrahonk/bn254"

// LogDerivativeLookup checks the log-derivative lookup argument
// (spec.md §4.4): lookup_inverses must equal the reciprocal of the
// (eta, eta_two, eta_three)-compressed table row plus gamma, and the
// weighted sum of inverses (by read count) must telescope to zero
// across the whole trace. Evaluated pointwise here, the per-row
// identity is:
//
//	lookup_inverses * (table_1 + eta*table_2 + eta_two*table_3 + eta_three*table_4 + gamma)
//	  == q_lookup - lookup_read_counts
//
// where the left side is the table-row-plus-gamma term compressed the
// same way the prover compressed it when building the table, gated so
// that rows with q_lookup == 0 only need lookup_inverses == 0.
func LogDerivativeLookup(e *Evaluations, c Challenges) bn254.Fr {
	compressedTable := e.Table1.
		Add(c.Eta.Mul(e.Table2)).
		Add(c.EtaTwo.Mul(e.Table3)).
		Add(c.EtaThree.Mul(e.Table4)).
		Add(c.Gamma)

	lhs := e.LookupInverses.Mul(compressedTable)
	rhs := e.QLookup.Sub(e.LookupReadCounts)
	return lhs.Sub(rhs)
}
