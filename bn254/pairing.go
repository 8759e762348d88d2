// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn254

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"

	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

// PairingCheck returns true iff e(p0, [1]_2) * e(p1, [x]_2) == 1 in
// F_{p^12} — the final KZG verification equation (spec.md §4.1, §4.7).
// The two G2 operands are always the hard-coded constants from g2.go;
// callers never supply their own G2 point.
func PairingCheck(p0, p1 G1Point) (bool, error) {
	g1s := [2]bn254.G1Affine{p0.inner, p1.inner}
	g2s := [2]bn254.G2Affine{g2Generator.inner, g2SRS.inner}

	if p0.isInfinity {
		g1s[0].X.SetZero()
		g1s[0].Y.SetZero()
	}
	if p1.isInfinity {
		g1s[1].X.SetZero()
		g1s[1].Y.SetZero()
	}

	ok, err := bn254.PairingCheck(g1s[:], g2s[:])
	if err != nil {
		return false, ultraerrors.NewBackendError("pairing", err.Error())
	}
	return ok, nil
}
