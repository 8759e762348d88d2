// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package proof implements the positional proof decoder (C4): the
// proof blob is a flat stream of 32-byte field-sized chunks (spec.md
// §3, §4.3), and this package walks it linearly the same way
// zk/contract.go walks a precompile's raw input byte-by-byte with
// fixed-width fields (countPublicInputs, RequiredGas's op dispatch) —
// generalized here from a single big-endian uint32 read to a typed,
// length-validated walk over an entire proof.
package proof

import (
	"github.com/luxfi/ultrahonk/bn254"
	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

// chunkSize is the wire unit: one 32-byte field element.
const chunkSize = 32

// reader walks a byte slice chunk by chunk, failing fast if the
// caller asks for more than is left.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) (*reader, error) {
	if len(data)%chunkSize != 0 {
		return nil, ultraerrors.NewDecodeError("proof", "length not a multiple of 32")
	}
	return &reader{data: data}, nil
}

func (r *reader) remaining() int {
	return (len(r.data) - r.pos) / chunkSize
}

func (r *reader) chunk(field string) ([]byte, error) {
	if r.pos+chunkSize > len(r.data) {
		return nil, ultraerrors.NewDecodeError(field, "unexpected end of proof")
	}
	c := r.data[r.pos : r.pos+chunkSize]
	r.pos += chunkSize
	return c, nil
}

func (r *reader) fr(field string) (bn254.Fr, error) {
	c, err := r.chunk(field)
	if err != nil {
		return bn254.Fr{}, err
	}
	return bn254.FrFromBytes(c)
}

func (r *reader) g1(field string) (bn254.G1Point, error) {
	xHi, err := r.chunk(field + ".x_hi")
	if err != nil {
		return bn254.G1Point{}, err
	}
	xLo, err := r.chunk(field + ".x_lo")
	if err != nil {
		return bn254.G1Point{}, err
	}
	yHi, err := r.chunk(field + ".y_hi")
	if err != nil {
		return bn254.G1Point{}, err
	}
	yLo, err := r.chunk(field + ".y_lo")
	if err != nil {
		return bn254.G1Point{}, err
	}
	p, err := bn254.G1FromLimbs(xHi, xLo, yHi, yLo)
	if err != nil {
		return bn254.G1Point{}, ultraerrors.NewDecodeError(field, err.Error())
	}
	return p, nil
}
