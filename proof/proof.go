// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"fmt"

	"github.com/luxfi/ultrahonk/bn254"
	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

// sumcheckDegree is D, the individual degree bound of each UltraHonk
// sub-relation (spec.md §4.4); a round polynomial therefore carries
// D+1 evaluations.
const sumcheckDegree = 7

// fixedChunks is the wire-size, in 32-byte chunks, of everything in a
// proof that does not scale with log_n: four wire commitments, three
// lookup/permutation helper commitments, the 39 final evaluations, the
// Shplonk quotient commitment, and the KZG opening commitment.
//
//	wires:            4  G1 -> 16 chunks
//	lookup+z_perm:    3  G1 -> 12 chunks
//	evaluations:      39 Fr -> 39 chunks
//	shplonk quotient: 1  G1 ->  4 chunks
//	kzg quotient:     1  G1 ->  4 chunks
//	total:                     75 chunks
const fixedChunks = 16 + 12 + NumEvaluations + 4 + 4

// perRoundChunks is the wire-size of each Sum-check round polynomial
// (D+1 = 8 Fr). The logN-1 Gemini fold commitments (1 G1 = 4 chunks
// each) are not part of this constant; wireChunks counts them
// separately.
const perRoundChunks = sumcheckDegree + 1

// Proof is the fully decoded argument (spec.md §3): wire commitments,
// lookup/permutation helper commitments, one round polynomial per
// Sum-check round, the final evaluations, the Gemini fold
// commitments, and the two opening commitments (Shplonk quotient and
// KZG quotient). Every field here is read, never recomputed — Decode
// performs no arithmetic beyond on-curve and canonical-Fr checks.
type Proof struct {
	W1, W2, W3, W4 bn254.G1Point

	LookupReadCounts bn254.G1Point
	LookupInverses   bn254.G1Point
	ZPerm            bn254.G1Point

	// RoundPolynomials holds, for each of the logN Sum-check rounds,
	// the D+1 = 8 evaluations of that round's univariate restriction.
	RoundPolynomials [][]bn254.Fr

	FinalEvaluations Evaluations

	// GeminiFoldCommitments holds the logN-1 fold polynomial
	// commitments produced by the Gemini reduction (spec.md §4.6).
	GeminiFoldCommitments []bn254.G1Point

	ShplonkQ    bn254.G1Point
	KZGQuotient bn254.G1Point
}

// wireChunks returns the total 32-byte chunk count a proof for a
// circuit of the given depth must have.
func wireChunks(logN uint64) uint64 {
	n := logN
	return uint64(fixedChunks) + n*uint64(perRoundChunks) + (n-1)*4
}

// Decode parses a proof blob for a circuit of depth logN, reading
// fields positionally in the order spec.md §3/§4 lay out: wires, then
// lookup helpers and the grand product, then one round polynomial per
// Sum-check round, then the final evaluations, then the Gemini fold
// commitments, then the Shplonk quotient, then the KZG opening
// quotient. numPublicInputs is accepted for symmetry with
// DecodePublicInputs and vk.Load but is not consulted here — public
// inputs live in a separate blob (spec.md §9 open question (b)) and
// play no part in the proof's own wire layout.
func Decode(data []byte, logN, numPublicInputs uint64) (*Proof, error) {
	if logN == 0 || logN > 28 {
		return nil, ultraerrors.NewDecodeError("proof.log_n", "out of supported range [1,28]")
	}
	_ = numPublicInputs

	want := wireChunks(logN) * chunkSize
	if uint64(len(data)) != want {
		return nil, ultraerrors.NewDecodeError("proof",
			fmt.Sprintf("expected %d bytes for log_n=%d, got %d", want, logN, len(data)))
	}

	r, err := newReader(data)
	if err != nil {
		return nil, err
	}

	p := &Proof{}

	if p.W1, err = r.g1("proof.w_l"); err != nil {
		return nil, err
	}
	if p.W2, err = r.g1("proof.w_r"); err != nil {
		return nil, err
	}
	if p.W3, err = r.g1("proof.w_o"); err != nil {
		return nil, err
	}
	if p.W4, err = r.g1("proof.w_4"); err != nil {
		return nil, err
	}
	if p.LookupReadCounts, err = r.g1("proof.lookup_read_counts"); err != nil {
		return nil, err
	}
	if p.LookupInverses, err = r.g1("proof.lookup_inverses"); err != nil {
		return nil, err
	}
	if p.ZPerm, err = r.g1("proof.z_perm"); err != nil {
		return nil, err
	}

	p.RoundPolynomials = make([][]bn254.Fr, logN)
	for round := uint64(0); round < logN; round++ {
		poly := make([]bn254.Fr, sumcheckDegree+1)
		for j := range poly {
			v, err := r.fr(fmt.Sprintf("proof.sumcheck_univariates[%d][%d]", round, j))
			if err != nil {
				return nil, err
			}
			poly[j] = v
		}
		p.RoundPolynomials[round] = poly
	}

	if p.FinalEvaluations, err = decodeEvaluations(r); err != nil {
		return nil, err
	}

	p.GeminiFoldCommitments = make([]bn254.G1Point, logN-1)
	for i := range p.GeminiFoldCommitments {
		v, err := r.g1(fmt.Sprintf("proof.gemini_fold_comms[%d]", i))
		if err != nil {
			return nil, err
		}
		p.GeminiFoldCommitments[i] = v
	}

	if p.ShplonkQ, err = r.g1("proof.shplonk_q"); err != nil {
		return nil, err
	}
	if p.KZGQuotient, err = r.g1("proof.kzg_quotient"); err != nil {
		return nil, err
	}

	if r.remaining() != 0 {
		return nil, ultraerrors.NewDecodeError("proof", "trailing bytes after last expected field")
	}

	return p, nil
}
