// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vk implements the verification-key loader (C3): parsing the
// preprocessed selector and permutation commitments and circuit-size
// header out of the binary vk blob (spec.md §3, §4.3, §6).
package vk

import (
	"encoding/binary"

	"github.com/luxfi/ultrahonk/bn254"
	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

// NumCommitments is the exact, protocol-fixed count of G1 commitments
// in a VerificationKey (spec.md §3: "27 G1 commitments"). Encoding this
// as a compile-time constant rather than a dynamic count documents the
// protocol version and catches wire-format drift at decode time
// (spec.md §9).
const NumCommitments = 27

// headerBytes is the length of the log_n/num_public_inputs/
// public_input_offset header: three big-endian uint64s.
const headerBytes = 24

// g1Bytes is the wire size of one G1 point: four 32-byte limbs.
const g1Bytes = 4 * 32

// VerificationKey is immutable after construction (spec.md §3). It
// holds the circuit depth, public-input shape, and the 27 named G1
// commitments in the fixed order the wire format prescribes.
type VerificationKey struct {
	LogN              uint64
	N                 uint64
	NumPublicInputs   uint64
	PublicInputOffset uint64

	QM, QC, QL, QR, QO, Q4                      bn254.G1Point
	QArith, QDeltaRange, QElliptic, QAux        bn254.G1Point
	QLookup, QPoseidon2External, QPoseidon2Internal bn254.G1Point
	S1, S2, S3, S4                              bn254.G1Point
	ID1, ID2, ID3, ID4                          bn254.G1Point
	Table1, Table2, Table3, Table4              bn254.G1Point
	LagrangeFirst, LagrangeLast                 bn254.G1Point
}

// Commitments returns the 27 commitments in the exact wire order
// (spec.md §3: "The exact count and order of commitments is part of
// the wire format"). Load fills the struct in this same order, and
// package ultrahonk uses this list to line the VK commitments up with
// their claimed evaluations for the batched opening. The VK's
// commitments are not absorbed into the transcript.
func (k *VerificationKey) Commitments() [NumCommitments]bn254.G1Point {
	return [NumCommitments]bn254.G1Point{
		k.QM, k.QC, k.QL, k.QR, k.QO, k.Q4,
		k.QArith, k.QDeltaRange, k.QElliptic, k.QAux,
		k.QLookup, k.QPoseidon2External, k.QPoseidon2Internal,
		k.S1, k.S2, k.S3, k.S4,
		k.ID1, k.ID2, k.ID3, k.ID4,
		k.Table1, k.Table2, k.Table3, k.Table4,
		k.LagrangeFirst, k.LagrangeLast,
	}
}

// Load parses a vk blob: three big-endian uint64 header fields
// followed by 27 G1 points, each four 32-byte limbs (spec.md §6).
// Open question (a) in spec.md §9 is resolved here by fiat: Load only
// ever accepts the `bb write_vk --output_format bytes` binary layout,
// never the paired bytes_and_fields JSON form — external tooling is
// expected to preprocess JSON into this binary shape before calling in.
func Load(data []byte) (*VerificationKey, error) {
	want := headerBytes + NumCommitments*g1Bytes
	if len(data) != want {
		return nil, ultraerrors.NewDecodeError("vk", "unexpected byte length")
	}

	logN := binary.BigEndian.Uint64(data[0:8])
	numPublicInputs := binary.BigEndian.Uint64(data[8:16])
	publicInputOffset := binary.BigEndian.Uint64(data[16:24])

	if logN == 0 || logN > 28 {
		return nil, ultraerrors.NewDecodeError("vk.log_n", "out of supported range [1,28]")
	}

	k := &VerificationKey{
		LogN:              logN,
		N:                 uint64(1) << logN,
		NumPublicInputs:   numPublicInputs,
		PublicInputOffset: publicInputOffset,
	}

	cursor := headerBytes
	points := make([]*bn254.G1Point, NumCommitments)
	slots := []*bn254.G1Point{
		&k.QM, &k.QC, &k.QL, &k.QR, &k.QO, &k.Q4,
		&k.QArith, &k.QDeltaRange, &k.QElliptic, &k.QAux,
		&k.QLookup, &k.QPoseidon2External, &k.QPoseidon2Internal,
		&k.S1, &k.S2, &k.S3, &k.S4,
		&k.ID1, &k.ID2, &k.ID3, &k.ID4,
		&k.Table1, &k.Table2, &k.Table3, &k.Table4,
		&k.LagrangeFirst, &k.LagrangeLast,
	}
	copy(points, slots)

	names := []string{
		"q_m", "q_c", "q_l", "q_r", "q_o", "q_4",
		"q_arith", "q_delta_range", "q_elliptic", "q_aux",
		"q_lookup", "q_poseidon2_external", "q_poseidon2_internal",
		"s_1", "s_2", "s_3", "s_4",
		"id_1", "id_2", "id_3", "id_4",
		"table_1", "table_2", "table_3", "table_4",
		"lagrange_first", "lagrange_last",
	}

	for i := 0; i < NumCommitments; i++ {
		p, err := decodeG1At(data, cursor)
		if err != nil {
			return nil, ultraerrors.NewDecodeError("vk."+names[i], err.Error())
		}
		*points[i] = p
		cursor += g1Bytes
	}

	return k, nil
}

func decodeG1At(data []byte, offset int) (bn254.G1Point, error) {
	xHi := data[offset : offset+32]
	xLo := data[offset+32 : offset+64]
	yHi := data[offset+64 : offset+96]
	yLo := data[offset+96 : offset+128]
	return bn254.G1FromLimbs(xHi, xLo, yHi, yLo)
}
