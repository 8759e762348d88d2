// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sumcheck implements the Sum-check protocol verifier (C6,
// spec.md §4.5): round by round, it checks that each round polynomial
// is consistent with the running claim, derives the next challenge
// from the transcript, and folds the claim via Lagrange interpolation.
// After the final round it evaluates the combined relation identity
// at the claimed point and checks it against the final folded claim.
package sumcheck

import (
	"github.com/luxfi/ultrahonk/bn254"
	ultraerrors "github.com/luxfi/ultrahonk/errors"
	"github.com/luxfi/ultrahonk/proof"
	"github.com/luxfi/ultrahonk/relations"
	"github.com/luxfi/ultrahonk/transcript"
)

// Degree is the individual degree bound D of each sub-relation
// restricted to one variable (spec.md §4.4); a round polynomial is
// therefore given by D+1 evaluations at 0..D.
const Degree = 7

// RelationChallenges bundles the batching and gate challenges the
// combined identity needs, threaded through from the transcript
// driver by the caller (package ultrahonk).
type RelationChallenges struct {
	Eta, EtaTwo, EtaThree bn254.Fr
	Beta, Gamma           bn254.Fr
	Alphas                [transcript.NumAlphas]bn254.Fr
	GateChallenges        []bn254.Fr
	PublicInputDelta      bn254.Fr
}

// Result is everything the Gemini/Shplonk reduction (C7) needs after
// Sum-check succeeds: the challenge point u and the claimed evaluation
// of every witness polynomial at u (i.e. the proof's final
// evaluations, passed through unchanged — Sum-check does not recompute
// them, it only checks they are consistent with the round polynomials).
type Result struct {
	Challenges []bn254.Fr
	Final      proof.Evaluations
}

// Verify runs the full Sum-check protocol over logN rounds.
func Verify(d *transcript.Driver, rounds [][]bn254.Fr, final proof.Evaluations, rc RelationChallenges) (*Result, error) {
	logN := len(rounds)
	u := make([]bn254.Fr, logN)

	claim := bn254.FrZero()
	for round := 0; round < logN; round++ {
		poly := rounds[round]
		if len(poly) != Degree+1 {
			return nil, ultraerrors.NewSumcheckError(round, "round polynomial has wrong arity")
		}

		sum := poly[0].Add(poly[1])
		if !sum.Equal(claim) {
			return nil, ultraerrors.NewSumcheckError(round, "S(0)+S(1) does not match running claim")
		}

		for _, v := range poly {
			d.Raw().AbsorbFr(v)
		}

		challenge := d.Raw().SqueezeChallenge()
		u[round] = challenge

		claim = interpolate(poly, challenge)
	}

	combined := evaluateCombinedRelation(final, rc)
	vanishing := pow(u, rc.GateChallenges)
	expected := combined.Mul(vanishing)

	if !expected.Equal(claim) {
		return nil, ultraerrors.NewSumcheckError(-1, "final relation evaluation does not match folded claim")
	}

	return &Result{Challenges: u, Final: final}, nil
}

// interpolate evaluates the unique degree-D polynomial through points
// (0, poly[0]), (1, poly[1]), ..., (D, poly[D]) at x, via the
// Lagrange formula. D is small and fixed (7), so this is the
// straightforward O(D^2) evaluation rather than a fast-interpolation
// scheme.
func interpolate(poly []bn254.Fr, x bn254.Fr) bn254.Fr {
	n := len(poly)
	nodes := make([]bn254.Fr, n)
	for i := range nodes {
		nodes[i] = bn254.FrFromUint64(uint64(i))
	}

	result := bn254.FrZero()
	for i := 0; i < n; i++ {
		num := bn254.FrOne()
		den := bn254.FrOne()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			num = num.Mul(x.Sub(nodes[j]))
			den = den.Mul(nodes[i].Sub(nodes[j]))
		}
		term := poly[i].Mul(num).Mul(den.Inverse())
		result = result.Add(term)
	}
	return result
}

// pow evaluates the "zero polynomial" correction pow(u, gate_challenges)
// = prod_i (gate_challenges[i]*u[i] + (1-gate_challenges[i])*(1-u[i])),
// the standard UltraHonk "pow" polynomial that lets the gate challenges
// gate which hypercube corner the combined relation is actually
// checked at (spec.md §4.4/§4.5).
func pow(u, gateChallenges []bn254.Fr) bn254.Fr {
	one := bn254.FrOne()
	result := bn254.FrOne()
	for i := range u {
		term := gateChallenges[i].Mul(u[i]).Add(one.Sub(gateChallenges[i]).Mul(one.Sub(u[i])))
		result = result.Mul(term)
	}
	return result
}

// evaluateCombinedRelation adapts the proof's final evaluations into
// relations.Evaluations and folds the eight sub-relations with their
// alpha batching challenges (spec.md §4.4: relation 0 weighted by 1,
// relations 1..7 by alpha_0..alpha_6 — the remaining alphas beyond the
// eight relations are reserved for sub-identities within a relation
// and are threaded through RelationChallenges.Alphas for that purpose
// by the caller, not consumed here).
func evaluateCombinedRelation(final proof.Evaluations, rc RelationChallenges) bn254.Fr {
	e := adapt(final)
	c := relations.Challenges{
		Eta: rc.Eta, EtaTwo: rc.EtaTwo, EtaThree: rc.EtaThree,
		Beta: rc.Beta, Gamma: rc.Gamma,
		PublicInputDelta: rc.PublicInputDelta,
	}

	all := relations.All()
	sum := bn254.FrZero()
	for i, rel := range all {
		contribution := rel(&e, c)
		if i == 0 {
			sum = contribution
			continue
		}
		sum = sum.Add(rc.Alphas[i-1].Mul(contribution))
	}
	return sum
}

func adapt(f proof.Evaluations) relations.Evaluations {
	return relations.Evaluations{
		WL: f.W1, WR: f.W2, WO: f.W3, W4: f.W4,
		WLShift: f.W1Shift, WRShift: f.W2Shift, WOShift: f.W3Shift, W4Shift: f.W4Shift,
		ZPerm: f.ZPerm, ZPermShift: f.ZPermShift,
		LookupInverses: f.LookupInverses, LookupReadCounts: f.LookupReadCounts,
		QM: f.QM, QC: f.QC, QL: f.QL, QR: f.QR, QO: f.QO, Q4: f.Q4,
		QArith: f.QArith, QDeltaRange: f.QDeltaRange, QElliptic: f.QElliptic, QAux: f.QAux,
		QLookup: f.QLookup, QPoseidon2External: f.QPoseidon2External, QPoseidon2Internal: f.QPoseidon2Internal,
		Sigma1: f.Sigma1, Sigma2: f.Sigma2, Sigma3: f.Sigma3, Sigma4: f.Sigma4,
		ID1: f.ID1, ID2: f.ID2, ID3: f.ID3, ID4: f.ID4,
		Table1: f.Table1, Table2: f.Table2, Table3: f.Table3, Table4: f.Table4,
		LagrangeFirst: f.LagrangeFirst, LagrangeLast: f.LagrangeLast,
	}
}
