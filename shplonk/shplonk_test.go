// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package shplonk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ultrahonk/bn254"
)

func TestReduceRejectsCommitmentEvaluationMismatch(t *testing.T) {
	_, err := Reduce(Inputs{
		Commitments: []bn254.G1Point{bn254.G1Infinity()},
		Evaluations: []bn254.Fr{},
	})
	require.Error(t, err)
}

func TestReduceRejectsWrongFoldCommitmentCount(t *testing.T) {
	_, err := Reduce(Inputs{
		Commitments:     []bn254.G1Point{bn254.G1Infinity()},
		Evaluations:     []bn254.Fr{bn254.FrZero()},
		ChallengePoint:  []bn254.Fr{bn254.FrZero(), bn254.FrZero(), bn254.FrZero()},
		FoldCommitments: []bn254.G1Point{bn254.G1Infinity()}, // want logN-1 = 2
	})
	require.Error(t, err)
}

func TestShplonkBatchCancelsMatchingEvaluation(t *testing.T) {
	g := bn254.G1Generator()
	v := bn254.FrFromUint64(11)
	// A commitment to the constant polynomial v is just v*G1; claiming
	// that exact evaluation must cancel it to the identity once
	// subtracted, or the batch is not actually binding to claimed
	// evaluations at all.
	commitment := g.ScalarMul(v)
	lhs, err := shplonkBatch(commitment, v, nil, nil, bn254.FrFromUint64(2))
	require.NoError(t, err)
	require.True(t, lhs.IsInfinity(), "a commitment and its exactly-matching claimed evaluation should cancel")
}

func TestShplonkBatchRejectsMismatchedEvaluation(t *testing.T) {
	g := bn254.G1Generator()
	commitment := g.ScalarMul(bn254.FrFromUint64(11))
	lhs, err := shplonkBatch(commitment, bn254.FrFromUint64(12), nil, nil, bn254.FrFromUint64(2))
	require.NoError(t, err)
	require.False(t, lhs.IsInfinity(), "a mismatched claimed evaluation must not cancel to the identity")
}

func TestReduceAcceptsWellFormedInputs(t *testing.T) {
	gen := bn254.G1Generator()
	inputs := Inputs{
		Commitments:     []bn254.G1Point{gen, gen},
		Evaluations:     []bn254.Fr{bn254.FrFromUint64(3), bn254.FrFromUint64(5)},
		ChallengePoint:  []bn254.Fr{bn254.FrOne(), bn254.FrOne()},
		FoldCommitments: []bn254.G1Point{gen},
		ShplonkQ:        gen,
		KZGQuotient:     gen,
		Rho:             bn254.FrFromUint64(2),
		GeminiR:         bn254.FrFromUint64(3),
		ShplonkNu:       bn254.FrFromUint64(5),
		ShplonkZ:        bn254.FrFromUint64(7),
	}
	reduced, err := Reduce(inputs)
	require.NoError(t, err)
	require.False(t, reduced.P1.IsInfinity())
}
