// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package transcript implements the Fiat-Shamir transcript engine (C2):
// a running Keccak-256 digest that absorbs proof and verification-key
// bytes and squeezes challenges, matching the "keccak" oracle flavor of
// bb v0.87 (spec.md §4.2). golang.org/x/crypto is already pulled in
// transitively by gnark-crypto; this package is what promotes it to a
// direct dependency, the same way the teacher reaches for
// crypto/sha256 in zk/stark.go's Transcript/Append/Challenge helper —
// generalized here from SHA-256 to Keccak-256 and from a uint64
// challenge to a full Fr, because that's what the wire format demands.
package transcript

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/luxfi/ultrahonk/bn254"
)

// Transcript holds the running digest h and the one-byte counter used
// to re-mix h after every squeeze.
type Transcript struct {
	h       [32]byte
	counter byte
}

// New creates an empty transcript. Initialization (absorbing circuit
// size, public input count/offset, and the public inputs themselves)
// is the caller's responsibility — see Driver.Init, which does it in
// the exact order spec.md §4.2 requires.
func New() *Transcript {
	return &Transcript{}
}

// Absorb sets h = keccak256(h || data).
func (t *Transcript) Absorb(data []byte) {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(t.h[:])
	hasher.Write(data)
	copy(t.h[:], hasher.Sum(nil))
}

// AbsorbFr absorbs a scalar as 32 big-endian bytes.
func (t *Transcript) AbsorbFr(x bn254.Fr) {
	b := x.Bytes()
	t.Absorb(b[:])
}

// AbsorbU64 absorbs a uint64 as 8 big-endian bytes — used for the
// circuit size, public-input count, and public-input offset during
// initialization (spec.md §4.2).
func (t *Transcript) AbsorbU64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	t.Absorb(b[:])
}

// AbsorbG1 absorbs a G1 point as its four 32-byte wire limbs
// (spec.md §4.2: "each G1 point as four 32-byte limbs").
func (t *Transcript) AbsorbG1(p bn254.G1Point) {
	xHi, xLo, yHi, yLo := p.ToLimbs()
	t.Absorb(xHi[:])
	t.Absorb(xLo[:])
	t.Absorb(yHi[:])
	t.Absorb(yLo[:])
}

// SqueezeChallenge returns Fr::from_be_bytes_reduce(h) and then
// refreshes h by absorbing the one-byte round counter (spec.md §4.2).
// Unlike decoding a wire Fr, a squeezed challenge is reduced mod r
// rather than rejected if it happens to exceed r — the hash output is
// already uniform over 256 bits, there is no non-canonical-encoding
// attack surface to defend against here.
func (t *Transcript) SqueezeChallenge() bn254.Fr {
	challenge := bn254.FrFromBytesReduce(t.h[:])
	t.Absorb([]byte{t.counter})
	t.counter++
	return challenge
}
