// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"fmt"

	"github.com/luxfi/ultrahonk/bn254"
	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

// DecodePublicInputs parses the public-inputs blob: a flat run of
// 32-byte big-endian Fr values, one per public input, separate from
// the proof blob itself (spec.md §3, §9 open question (b): public
// inputs travel alongside the proof rather than inside it, mirroring
// how bb's verify_proof takes them as a distinct argument).
//
// want is the count the vk declares (VerificationKey.NumPublicInputs);
// a mismatch is a decode error rather than a silent truncate or pad,
// since a wrong count here would desynchronize every later transcript
// absorb.
func DecodePublicInputs(data []byte, want uint64) ([]bn254.Fr, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	if uint64(r.remaining()) != want {
		return nil, ultraerrors.NewDecodeError("public_inputs",
			fmt.Sprintf("expected %d field elements, got %d", want, r.remaining()))
	}

	out := make([]bn254.Fr, want)
	for i := range out {
		v, err := r.fr("public_inputs")
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
