// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vk

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ultrahonk/bn254"
)

func buildTestVK(t *testing.T, logN uint64) []byte {
	t.Helper()
	buf := make([]byte, headerBytes+NumCommitments*g1Bytes)
	binary.BigEndian.PutUint64(buf[0:8], logN)
	binary.BigEndian.PutUint64(buf[8:16], 2)
	binary.BigEndian.PutUint64(buf[16:24], 1)

	gen := bn254.G1Generator()
	xHi, xLo, yHi, yLo := gen.ToLimbs()
	cursor := headerBytes
	for i := 0; i < NumCommitments; i++ {
		copy(buf[cursor:cursor+32], xHi[:])
		copy(buf[cursor+32:cursor+64], xLo[:])
		copy(buf[cursor+64:cursor+96], yHi[:])
		copy(buf[cursor+96:cursor+128], yLo[:])
		cursor += g1Bytes
	}
	return buf
}

func TestLoadValidVK(t *testing.T) {
	data := buildTestVK(t, 4)
	k, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, uint64(4), k.LogN)
	require.Equal(t, uint64(16), k.N)
	require.Equal(t, uint64(2), k.NumPublicInputs)
	require.Equal(t, uint64(1), k.PublicInputOffset)
}

func TestLoadRejectsZeroLogN(t *testing.T) {
	data := buildTestVK(t, 0)
	_, err := Load(data)
	require.Error(t, err)
}

func TestLoadRejectsOversizedLogN(t *testing.T) {
	data := buildTestVK(t, 29)
	_, err := Load(data)
	require.Error(t, err)
}

func TestLoadRejectsWrongLength(t *testing.T) {
	data := buildTestVK(t, 4)
	_, err := Load(data[:len(data)-1])
	require.Error(t, err)
}

func TestCommitmentsOrderMatchesDecode(t *testing.T) {
	data := buildTestVK(t, 2)
	k, err := Load(data)
	require.NoError(t, err)

	comms := k.Commitments()
	require.Len(t, comms, NumCommitments)
	require.Equal(t, k.QM, comms[0])
	require.Equal(t, k.LagrangeLast, comms[NumCommitments-1])
}
