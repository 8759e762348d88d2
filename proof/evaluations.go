// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import "github.com/luxfi/ultrahonk/bn254"

// NumEvaluations is the protocol-fixed count of Sum-check final
// evaluations (spec.md §3: "one Fr per polynomial in the scheme
// (~40 values)"): the four wires and their shifts used by the
// permutation/auxiliary/elliptic relations, the grand product and its
// shift, the lookup helper columns, the thirteen gate selectors, the
// four sigma and four id polynomials, the four lookup tables, and the
// two Lagrange boundary polynomials.
const NumEvaluations = 39

// Evaluations holds the multilinear evaluations at the Sum-check
// challenge point u, read positionally from the proof (spec.md §4.4).
// Fixed-size and named, per spec.md §9's "fixed-size arrays" design
// note, rather than a bare []Fr — a dynamic slice would hide wire
// drift instead of catching it at decode time.
type Evaluations struct {
	W1, W2, W3, W4                   bn254.Fr
	W1Shift, W2Shift, W3Shift        bn254.Fr
	W4Shift                          bn254.Fr
	ZPerm, ZPermShift                bn254.Fr
	LookupInverses, LookupReadCounts bn254.Fr

	QM, QC, QL, QR, QO, Q4                          bn254.Fr
	QArith, QDeltaRange, QElliptic, QAux            bn254.Fr
	QLookup, QPoseidon2External, QPoseidon2Internal bn254.Fr

	Sigma1, Sigma2, Sigma3, Sigma4 bn254.Fr
	ID1, ID2, ID3, ID4             bn254.Fr
	Table1, Table2, Table3, Table4 bn254.Fr

	LagrangeFirst, LagrangeLast bn254.Fr
}

// slots returns pointers to every field in the fixed wire order, used
// by both the decoder (positional read) and anything that needs to
// iterate every evaluation (e.g. a batched-opening fold).
func (e *Evaluations) slots() []*bn254.Fr {
	return []*bn254.Fr{
		&e.W1, &e.W2, &e.W3, &e.W4,
		&e.W1Shift, &e.W2Shift, &e.W3Shift, &e.W4Shift,
		&e.ZPerm, &e.ZPermShift,
		&e.LookupInverses, &e.LookupReadCounts,
		&e.QM, &e.QC, &e.QL, &e.QR, &e.QO, &e.Q4,
		&e.QArith, &e.QDeltaRange, &e.QElliptic, &e.QAux,
		&e.QLookup, &e.QPoseidon2External, &e.QPoseidon2Internal,
		&e.Sigma1, &e.Sigma2, &e.Sigma3, &e.Sigma4,
		&e.ID1, &e.ID2, &e.ID3, &e.ID4,
		&e.Table1, &e.Table2, &e.Table3, &e.Table4,
		&e.LagrangeFirst, &e.LagrangeLast,
	}
}

// All returns every evaluation in wire order, e.g. for a Shplonk batch
// fold that treats them uniformly.
func (e *Evaluations) All() [NumEvaluations]bn254.Fr {
	var out [NumEvaluations]bn254.Fr
	for i, s := range e.slots() {
		out[i] = *s
	}
	return out
}

func decodeEvaluations(r *reader) (Evaluations, error) {
	var e Evaluations
	slots := e.slots()
	if len(slots) != NumEvaluations {
		panic("proof: Evaluations.slots() length drifted from NumEvaluations")
	}
	for _, slot := range slots {
		v, err := r.fr("proof.evaluations")
		if err != nil {
			return Evaluations{}, err
		}
		*slot = v
	}
	return e, nil
}
