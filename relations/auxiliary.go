// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relations

import "github.com/luxfi/ultrahonk/bn254"

// Auxiliary covers the RAM/ROM memory-consistency and non-native-field
// gate family folded under a single selector (spec.md §4.4): the
// record-tag identity w_4 == w_l + eta*w_r + eta_two*w_o + eta_three
// used to bind a memory record's (index, value, timestamp) triple into
// one field element for the permutation argument's wire compression.
func Auxiliary(e *Evaluations, c Challenges) bn254.Fr {
	recordTerm := e.WL.
		Add(c.Eta.Mul(e.WR)).
		Add(c.EtaTwo.Mul(e.WO)).
		Add(c.EtaThree).
		Sub(e.W4)
	return e.QAux.Mul(recordTerm)
}
