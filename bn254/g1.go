// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

// G1Point is an affine point on the BN254 G1 curve, or the distinguished
// point at infinity. BN254 has cofactor 1 on G1, so on-curve implies
// membership in the prime-order subgroup (spec.md §3) — no separate
// subgroup check is needed.
type G1Point struct {
	inner      bn254.G1Affine
	isInfinity bool
}

// G1Infinity returns the point at infinity.
func G1Infinity() G1Point {
	return G1Point{isInfinity: true}
}

// G1Generator returns the standard BN254 G1 generator point.
func G1Generator() G1Point {
	gen, _, _, _ := bn254.Generators()
	return G1Point{inner: gen}
}

// IsInfinity reports whether p is the point at infinity.
func (p G1Point) IsInfinity() bool {
	return p.isInfinity
}

// halfWidth is the byte width of each 128-bit limb in the wire encoding.
const halfWidth = 16

// G1FromLimbs decodes a G1 point from four 32-byte big-endian words
// (x_hi, x_lo, y_hi, y_lo), each interpreted as a zero-padded 128-bit
// half, per spec.md §4.3/§6 (the bb v0.87 wire format). All-zero limbs
// decode to the point at infinity. Every other decoded point is
// on-curve checked.
func G1FromLimbs(xHi, xLo, yHi, yLo []byte) (G1Point, error) {
	if len(xHi) != 32 || len(xLo) != 32 || len(yHi) != 32 || len(yLo) != 32 {
		return G1Point{}, ultraerrors.NewDecodeError("g1", "wrong limb length")
	}
	if isAllZero(xHi) && isAllZero(xLo) && isAllZero(yHi) && isAllZero(yLo) {
		return G1Infinity(), nil
	}

	x, err := recombineLimb(xHi, xLo)
	if err != nil {
		return G1Point{}, ultraerrors.NewDecodeError("g1.x", err.Error())
	}
	y, err := recombineLimb(yHi, yLo)
	if err != nil {
		return G1Point{}, ultraerrors.NewDecodeError("g1.y", err.Error())
	}

	var pt bn254.G1Affine
	pt.X.SetBigInt(x)
	pt.Y.SetBigInt(y)
	if !pt.IsOnCurve() {
		return G1Point{}, ultraerrors.NewDecodeError("g1", "point not on curve")
	}
	return G1Point{inner: pt}, nil
}

// recombineLimb interprets hi and lo as independent 128-bit big-endian
// halves — the low 16 bytes of each word — and recombines them as
// hi*2^128 + lo, rejecting halves that don't fit in 128 bits.
func recombineLimb(hi, lo []byte) (*big.Int, error) {
	hiVal := new(big.Int).SetBytes(hi)
	loVal := new(big.Int).SetBytes(lo)
	limbBound := new(big.Int).Lsh(big.NewInt(1), 128)
	if hiVal.Cmp(limbBound) >= 0 || loVal.Cmp(limbBound) >= 0 {
		return nil, errNotA128BitLimb
	}
	result := new(big.Int).Lsh(hiVal, 128)
	result.Add(result, loVal)
	if result.Cmp(fp.Modulus()) >= 0 {
		return nil, errCoordinateOutOfRange
	}
	return result, nil
}

var (
	errNotA128BitLimb       = decodeLimbErr("limb exceeds 128 bits")
	errCoordinateOutOfRange = decodeLimbErr("coordinate not in base field")
)

type decodeLimbErr string

func (e decodeLimbErr) Error() string { return string(e) }

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// ToLimbs encodes p as four 32-byte big-endian words (x_hi, x_lo, y_hi,
// y_lo), the inverse of G1FromLimbs.
func (p G1Point) ToLimbs() (xHi, xLo, yHi, yLo [32]byte) {
	if p.isInfinity {
		return
	}
	var xBig, yBig big.Int
	p.inner.X.BigInt(&xBig)
	p.inner.Y.BigInt(&yBig)
	splitLimb(&xBig, &xHi, &xLo)
	splitLimb(&yBig, &yHi, &yLo)
	return
}

func splitLimb(v *big.Int, hi, lo *[32]byte) {
	limbMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	loVal := new(big.Int).And(v, limbMask)
	hiVal := new(big.Int).Rsh(v, 128)
	loVal.FillBytes(lo[:])
	hiVal.FillBytes(hi[:])
}

// Add returns p + q.
func (p G1Point) Add(q G1Point) G1Point {
	if p.isInfinity {
		return q
	}
	if q.isInfinity {
		return p
	}
	var r bn254.G1Affine
	r.Add(&p.inner, &q.inner)
	return G1Point{inner: r}
}

// ScalarMul returns s * p.
func (p G1Point) ScalarMul(s Fr) G1Point {
	if p.isInfinity || s.IsZero() {
		return G1Infinity()
	}
	var r bn254.G1Affine
	sBig := new(big.Int)
	s.inner.BigInt(sBig)
	r.ScalarMultiplication(&p.inner, sBig)
	return G1Point{inner: r}
}

// Neg returns -p.
func (p G1Point) Neg() G1Point {
	if p.isInfinity {
		return p
	}
	var r bn254.G1Affine
	r.Neg(&p.inner)
	return G1Point{inner: r}
}

// MSM computes Σ scalars[i] * points[i] using gnark-crypto's Pippenger
// bucket-method multi-exponentiation — the dominant cost the spec
// calls out for C1 and C7. Fails if the slices differ in length.
func MSM(points []G1Point, scalars []Fr) (G1Point, error) {
	if len(points) != len(scalars) {
		return G1Point{}, ultraerrors.NewDecodeError("msm", "points/scalars length mismatch")
	}
	if len(points) == 0 {
		return G1Infinity(), nil
	}

	affine := make([]bn254.G1Affine, 0, len(points))
	elems := make([]fr.Element, 0, len(points))
	acc := G1Infinity()
	for i, p := range points {
		if p.isInfinity || scalars[i].IsZero() {
			continue
		}
		affine = append(affine, p.inner)
		elems = append(elems, scalars[i].inner)
	}
	if len(affine) == 0 {
		return acc, nil
	}

	var result bn254.G1Affine
	if _, err := result.MultiExp(affine, elems, ecc.MultiExpConfig{}); err != nil {
		return G1Point{}, ultraerrors.NewBackendError("msm", err.Error())
	}
	return G1Point{inner: result}, nil
}
