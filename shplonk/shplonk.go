// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package shplonk implements the Gemini/Shplonk batched opening
// reduction (C7, spec.md §4.6): it folds the Sum-check multilinear
// evaluation claim down to a single univariate KZG opening, batching
// every commitment the verifier must open into one pairing check.
package shplonk

import (
	"github.com/luxfi/ultrahonk/bn254"
	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

// Inputs bundles everything the reduction needs: the commitments being
// opened (wires, helper columns, VK selectors/permutation/table
// columns — everything named in proof.Evaluations/vk.Commitments, in
// the same order those evaluations were read), the Sum-check challenge
// point u, the claimed evaluations at u in that same order, the
// Gemini fold commitments from the proof, and the four challenges
// squeezed for this stage (rho, gemini_r, shplonk_nu, shplonk_z).
type Inputs struct {
	Commitments []bn254.G1Point
	Evaluations []bn254.Fr
	ChallengePoint []bn254.Fr

	FoldCommitments []bn254.G1Point
	ShplonkQ        bn254.G1Point
	KZGQuotient     bn254.G1Point

	Rho       bn254.Fr
	GeminiR   bn254.Fr
	ShplonkNu bn254.Fr
	ShplonkZ  bn254.Fr
}

// Reduced is the pair of G1 points the final pairing check (C8)
// consumes: e(Reduced.P0, [1]_2) * e(Reduced.P1, [x]_2) == 1 iff every
// batched opening is valid.
type Reduced struct {
	P0, P1 bn254.G1Point
}

// Reduce performs the batched-opening reduction: fold the commitments
// and claimed evaluations by rho, fold the Gemini univariate chain by
// gemini_r, subtract each batched claim's G1-scaled evaluation from its
// commitment (the "− v·G1" half of the KZG check, spec.md §4.7's
// `e(C − v·G1, [1]_2) = e(π, [x−z]_2)`), batch the resulting shifted
// commitments by shplonk_nu, and form the final KZG pairing inputs at
// shplonk_z (spec.md §4.6).
func Reduce(in Inputs) (Reduced, error) {
	if len(in.Commitments) != len(in.Evaluations) {
		return Reduced{}, ultraerrors.NewShplonkError(-1, "commitment/evaluation count mismatch")
	}
	logN := len(in.ChallengePoint)
	if len(in.FoldCommitments) != max(logN-1, 0) {
		return Reduced{}, ultraerrors.NewShplonkError(-1, "unexpected fold commitment count")
	}

	batchedCommitment, batchedEval, err := batchByRho(in.Commitments, in.Evaluations, in.Rho)
	if err != nil {
		return Reduced{}, err
	}

	foldEvals := geminiFoldEvaluations(in.ChallengePoint, in.GeminiR, batchedEval)

	// The Shplonk quotient W (in.ShplonkQ) folds into the same
	// nu-weighted batch as the primary claim and the Gemini folds, at
	// the next power of shplonk_nu — it carries no separate claimed
	// evaluation of its own (spec.md §4.6 names it the commitment that
	// batches the per-level opening claims, not an opening claim
	// itself), so its "v" term is zero and nothing is subtracted from
	// it before folding.
	foldPoints := make([]bn254.G1Point, len(in.FoldCommitments)+1)
	copy(foldPoints, in.FoldCommitments)
	foldPoints[len(in.FoldCommitments)] = in.ShplonkQ

	foldTargets := make([]bn254.Fr, len(in.FoldCommitments)+1)
	copy(foldTargets, foldEvals)
	foldTargets[len(in.FoldCommitments)] = bn254.FrZero()

	lhs, err := shplonkBatch(batchedCommitment, batchedEval, foldPoints, foldTargets, in.ShplonkNu)
	if err != nil {
		return Reduced{}, err
	}

	// e(C − v·G1, [1]_2) = e(π, [x]_2 − z·[1]_2) rearranges to
	// e(C − v·G1 + z·π, [1]_2) · e(−π, [x]_2) == 1 (spec.md §4.7); lhs
	// above already folds every (commitment − v·G1) term, including W,
	// so only the z·π correction and the quotient's sign remain here.
	p1 := in.KZGQuotient.Neg()
	p0 := lhs.Add(in.KZGQuotient.ScalarMul(in.ShplonkZ))

	return Reduced{P0: p0, P1: p1}, nil
}

func batchByRho(commitments []bn254.G1Point, evals []bn254.Fr, rho bn254.Fr) (bn254.G1Point, bn254.Fr, error) {
	powers := make([]bn254.Fr, len(commitments))
	acc := bn254.FrOne()
	for i := range powers {
		powers[i] = acc
		acc = acc.Mul(rho)
	}

	commitment, err := bn254.BackendMSM(commitments, powers)
	if err != nil {
		return bn254.G1Point{}, bn254.Fr{}, ultraerrors.NewShplonkError(-1, err.Error())
	}

	eval := bn254.FrZero()
	for i, e := range evals {
		eval = eval.Add(powers[i].Mul(e))
	}
	return commitment, eval, nil
}

// geminiFoldEvaluations derives, for each of the logN Gemini folding
// steps, the claimed evaluation of that step's folded polynomial at
// +/- gemini_r^(2^i) — here simplified to the single value per level
// the Shplonk batch needs at the common evaluation point gemini_r
// (spec.md §4.6).
func geminiFoldEvaluations(u []bn254.Fr, geminiR, batchedEval bn254.Fr) []bn254.Fr {
	logN := len(u)
	out := make([]bn254.Fr, logN)
	out[0] = batchedEval
	r := geminiR
	for i := 1; i < logN; i++ {
		out[i] = out[i-1].Mul(r)
		r = r.Square()
	}
	return out
}

// shplonkBatch forms the single batched opening commitment: each
// commitment (the primary rho-batch and every Gemini fold commitment)
// first has its claimed evaluation's G1-scaled value subtracted off —
// `commitment − eval·G1`, the KZG "opens to v" correction (spec.md
// §4.7) — and the resulting points are combined in a single MSM
// weighted by ascending powers of shplonk_nu (spec.md §4.6).
func shplonkBatch(primary bn254.G1Point, primaryEval bn254.Fr, folds []bn254.G1Point, foldEvals []bn254.Fr, nu bn254.Fr) (bn254.G1Point, error) {
	g := bn254.G1Generator()

	points := make([]bn254.G1Point, 0, 1+len(folds))
	scalars := make([]bn254.Fr, 0, 1+len(folds))

	points = append(points, primary.Add(g.ScalarMul(primaryEval).Neg()))
	scalars = append(scalars, bn254.FrOne())

	power := nu
	for i, fc := range folds {
		shifted := fc.Add(g.ScalarMul(foldEvals[i]).Neg())
		points = append(points, shifted)
		scalars = append(scalars, power)
		power = power.Mul(nu)
	}

	lhs, err := bn254.BackendMSM(points, scalars)
	if err != nil {
		return bn254.G1Point{}, ultraerrors.NewShplonkError(-1, err.Error())
	}
	return lhs, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
