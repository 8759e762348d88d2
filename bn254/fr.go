// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bn254 provides the field and curve primitives the UltraHonk
// verifier runs on: the scalar field Fr, the base field Fq, G1 affine
// points, the two fixed G2 constants, multi-scalar multiplication, and
// the pairing check. It is a thin domain layer over
// github.com/consensys/gnark-crypto's bn254 implementation, the same
// library the teacher uses for BN254 arithmetic (see zk/poseidon.go,
// zk/stark.go).
package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

// FrBytes is the wire size of a scalar-field element: 32 big-endian bytes.
const FrBytes = fr.Bytes

// Fr is an element of the BN254 scalar field, i.e. the field over
// which the UltraHonk circuit's witness and challenges live.
type Fr struct {
	inner fr.Element
}

// FrModulus returns the scalar field modulus r.
func FrModulus() *big.Int {
	return fr.Modulus()
}

// FrFromUint64 builds an Fr from a small unsigned integer (used for
// interpolation nodes, relation constants, and the like).
func FrFromUint64(v uint64) Fr {
	var f Fr
	f.inner.SetUint64(v)
	return f
}

// FrFromBytes decodes 32 big-endian bytes into an Fr. Per spec.md §3 and
// §6, values greater than or equal to the scalar field modulus r MUST
// be rejected — unlike zk/poseidon.go's Poseidon2Hasher, which
// deliberately lets gnark-crypto reduce silently, a verifier cannot
// accept non-canonical encodings: the Fiat-Shamir transcript's byte
// layout is part of the proof system's security, and two different
// byte strings must never decode to the same field element.
func FrFromBytes(b []byte) (Fr, error) {
	var zero Fr
	if len(b) != FrBytes {
		return zero, ultraerrors.NewDecodeError("fr", "wrong byte length")
	}
	var asInt big.Int
	asInt.SetBytes(b)
	if asInt.Cmp(fr.Modulus()) >= 0 {
		return zero, ultraerrors.NewDecodeError("fr", "value >= scalar field modulus")
	}
	var f Fr
	f.inner.SetBytes(b)
	return f, nil
}

// FrFromBytesReduce decodes 32 big-endian bytes into an Fr by reducing
// modulo r rather than rejecting out-of-range input. This is distinct
// from FrFromBytes: it is only ever used on transcript hash output
// (transcript.SqueezeChallenge), which is uniformly random over 256
// bits and has no canonical-encoding requirement to enforce.
func FrFromBytesReduce(b []byte) Fr {
	var f Fr
	f.inner.SetBytes(b)
	return f
}

// Bytes serializes the element as 32 big-endian bytes.
func (x Fr) Bytes() [32]byte {
	return x.inner.Bytes()
}

// IsZero reports whether x is the additive identity.
func (x Fr) IsZero() bool {
	return x.inner.IsZero()
}

// Add returns x + y.
func (x Fr) Add(y Fr) Fr {
	var z Fr
	z.inner.Add(&x.inner, &y.inner)
	return z
}

// Sub returns x - y.
func (x Fr) Sub(y Fr) Fr {
	var z Fr
	z.inner.Sub(&x.inner, &y.inner)
	return z
}

// Neg returns -x.
func (x Fr) Neg() Fr {
	var z Fr
	z.inner.Neg(&x.inner)
	return z
}

// Mul returns x * y.
func (x Fr) Mul(y Fr) Fr {
	var z Fr
	z.inner.Mul(&x.inner, &y.inner)
	return z
}

// Square returns x * x.
func (x Fr) Square() Fr {
	var z Fr
	z.inner.Square(&x.inner)
	return z
}

// Inverse returns x^-1, or the zero element if x is zero (matching
// gnark-crypto's convention; callers verifying a proof never invert a
// value that could legitimately be zero without checking first).
func (x Fr) Inverse() Fr {
	var z Fr
	z.inner.Inverse(&x.inner)
	return z
}

// Exp returns x^e.
func (x Fr) Exp(e uint64) Fr {
	var z Fr
	z.inner.Exp(x.inner, new(big.Int).SetUint64(e))
	return z
}

// Equal reports whether x == y.
func (x Fr) Equal(y Fr) bool {
	return x.inner.Equal(&y.inner)
}

// BatchInvert inverts every element of xs in place, using one field
// inversion plus O(n) multiplications (Montgomery's trick) instead of
// n inversions — the dominant saving the spec calls out for C1.
func BatchInvert(xs []Fr) {
	n := len(xs)
	if n == 0 {
		return
	}
	prefix := make([]fr.Element, n)
	acc := fr.One()
	for i := 0; i < n; i++ {
		prefix[i] = acc
		acc.Mul(&acc, &xs[i].inner)
	}
	inv := new(fr.Element).Inverse(&acc)
	for i := n - 1; i >= 0; i-- {
		var next fr.Element
		next.Mul(inv, &prefix[i])
		inv.Mul(inv, &xs[i].inner)
		xs[i].inner = next
	}
}

// FrZero and FrOne are the additive and multiplicative identities.
func FrZero() Fr {
	return Fr{}
}

func FrOne() Fr {
	var f Fr
	f.inner.SetOne()
	return f
}
