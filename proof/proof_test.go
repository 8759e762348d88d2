// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ultrahonk/bn254"
)

// buildTestProof constructs a structurally valid proof blob for a
// circuit of the given depth, filling every field with deterministic
// but otherwise arbitrary values. It exists purely to exercise
// Decode's positional layout and length accounting, not to represent
// a real satisfying witness.
func buildTestProof(t *testing.T, logN uint64) []byte {
	t.Helper()
	var out []byte

	g1 := func(seed uint64) []byte {
		p := bn254.G1Generator().ScalarMul(bn254.FrFromUint64(seed))
		xHi, xLo, yHi, yLo := p.ToLimbs()
		b := append([]byte{}, xHi[:]...)
		b = append(b, xLo[:]...)
		b = append(b, yHi[:]...)
		b = append(b, yLo[:]...)
		return b
	}
	fr := func(seed uint64) []byte {
		v := bn254.FrFromUint64(seed).Bytes()
		return v[:]
	}

	seed := uint64(1)
	nextG1 := func() []byte { seed++; return g1(seed) }
	nextFr := func() []byte { seed++; return fr(seed) }

	for i := 0; i < 7; i++ { // w_l, w_r, w_o, w_4, lookup_read_counts, lookup_inverses, z_perm
		out = append(out, nextG1()...)
	}
	for round := uint64(0); round < logN; round++ {
		for j := 0; j < sumcheckDegree+1; j++ {
			out = append(out, nextFr()...)
		}
	}
	for i := 0; i < NumEvaluations; i++ {
		out = append(out, nextFr()...)
	}
	for i := uint64(0); i < logN-1; i++ {
		out = append(out, nextG1()...)
	}
	out = append(out, nextG1()...) // shplonk_q
	out = append(out, nextG1()...) // kzg_quotient

	return out
}

func TestDecodeWellFormedProof(t *testing.T) {
	logN := uint64(3)
	data := buildTestProof(t, logN)

	p, err := Decode(data, logN, 2)
	require.NoError(t, err)
	require.Len(t, p.RoundPolynomials, int(logN))
	for _, round := range p.RoundPolynomials {
		require.Len(t, round, sumcheckDegree+1)
	}
	require.Len(t, p.GeminiFoldCommitments, int(logN)-1)
}

func TestDecodeRejectsTruncatedProof(t *testing.T) {
	logN := uint64(3)
	data := buildTestProof(t, logN)
	_, err := Decode(data[:len(data)-1], logN, 2)
	require.Error(t, err)
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	logN := uint64(3)
	data := buildTestProof(t, logN)
	data = append(data, make([]byte, 32)...)
	_, err := Decode(data, logN, 2)
	require.Error(t, err)
}

func TestDecodeRejectsWrongLogN(t *testing.T) {
	data := buildTestProof(t, 3)
	_, err := Decode(data, 4, 2)
	require.Error(t, err)
}

func TestDecodePublicInputsCountMismatch(t *testing.T) {
	v := bn254.FrFromUint64(7).Bytes()
	_, err := DecodePublicInputs(v[:], 2)
	require.Error(t, err)
}

func TestDecodePublicInputsRoundTrip(t *testing.T) {
	a, b := bn254.FrFromUint64(11).Bytes(), bn254.FrFromUint64(22).Bytes()
	data := append(append([]byte{}, a[:]...), b[:]...)

	got, err := DecodePublicInputs(data, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got[0].Equal(bn254.FrFromUint64(11)))
	require.True(t, got[1].Equal(bn254.FrFromUint64(22)))
}
