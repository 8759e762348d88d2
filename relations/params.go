// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package relations implements the eight UltraHonk sub-relations (C5,
// spec.md §4.4): pure functions from the Sum-check final evaluations
// and the relation challenges to a single Fr contribution, combined by
// the caller with the alpha batching challenges. Modeled on
// zk/poseidon.go's separation of "one hash primitive per file" — here,
// one gate relation per file — rather than one large switch.
package relations

import "github.com/luxfi/ultrahonk/bn254"

// Challenges bundles every challenge a sub-relation may need. Passing
// one struct rather than a long parameter list keeps every relation's
// signature identical, which is what lets sumcheck.Verify call all
// eight through one slice of function values (relations.All) instead
// of eight bespoke call sites.
type Challenges struct {
	Eta, EtaTwo, EtaThree bn254.Fr
	Beta, Gamma           bn254.Fr

	// PublicInputDelta is the permutation relation's public-input
	// correction term, folded in by the caller (spec.md §4.4) rather
	// than recomputed per relation.
	PublicInputDelta bn254.Fr
}

// Relation evaluates one UltraHonk sub-relation against a single point
// in the Boolean hypercube (or, during Sum-check, the partially
// folded evaluations of one round). It must not mutate e or c, and
// must not retain either across calls (spec.md §9: "Do not share
// mutable scratch across sub-relations" — each relation gets a fresh
// stack frame, nothing is pooled).
type Relation func(e *proofEvaluations, c Challenges) bn254.Fr

// proofEvaluations is the minimal read-only view every relation needs.
// Defined here, rather than importing package proof directly, to keep
// relations free of a dependency on the wire-decoding layer — Sumcheck
// adapts proof.Evaluations into this shape once per verification.
type proofEvaluations struct {
	WL, WR, WO, W4            bn254.Fr
	WLShift, WRShift, WOShift bn254.Fr
	W4Shift                   bn254.Fr
	ZPerm, ZPermShift         bn254.Fr
	LookupInverses            bn254.Fr
	LookupReadCounts          bn254.Fr

	QM, QC, QL, QR, QO, Q4 bn254.Fr
	QArith, QDeltaRange    bn254.Fr
	QElliptic, QAux        bn254.Fr
	QLookup                bn254.Fr
	QPoseidon2External     bn254.Fr
	QPoseidon2Internal     bn254.Fr

	Sigma1, Sigma2, Sigma3, Sigma4  bn254.Fr
	ID1, ID2, ID3, ID4              bn254.Fr
	Table1, Table2, Table3, Table4  bn254.Fr
	LagrangeFirst, LagrangeLast     bn254.Fr
}

// Evaluations is the exported constructor surface: Sumcheck builds one
// of these from the decoded proof.Evaluations at the final claimed
// point and passes it to each Relation returned by All.
type Evaluations = proofEvaluations

// NumRelations is the number of named sub-relations contributing to
// the combined identity (spec.md §4.4: "8 sub-relations").
const NumRelations = 8

// All returns the eight sub-relations in the fixed order their alpha
// batching challenges are assigned (relation 0 is weighted by 1, and
// relation i >= 1 by alpha_{i-1} — spec.md §4.2).
func All() [NumRelations]Relation {
	return [NumRelations]Relation{
		Arithmetic,
		Permutation,
		LogDerivativeLookup,
		DeltaRange,
		EllipticCurve,
		Auxiliary,
		Poseidon2External,
		Poseidon2Internal,
	}
}
