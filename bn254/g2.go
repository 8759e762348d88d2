// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn254

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// G2Point is a point on the BN254 twist G2. Per spec.md §3, only two
// G2 values ever exist in this verifier: the generator and the SRS
// point, both fixed constants. No G2 value is ever deserialized from
// proof or VK bytes — there is deliberately no G2 decoder.
type G2Point struct {
	inner bn254.G2Affine
}

// g2Generator and g2SRS are package-level so they're computed once.
var (
	g2Generator G2Point
	g2SRS       G2Point
)

func init() {
	_, _, _, g2Gen := bn254.Generators()
	g2Generator = G2Point{inner: g2Gen}

	// g2SRS is [x]_2 = x * [1]_2 from the bb v0.87 / Aztec Ignition KZG
	// ceremony. The verifier hard-codes this value (spec.md §1, §9) —
	// it never derives or regenerates an SRS. The byte constants live
	// in srs_constants.go, kept separate so the ceremony-specific data
	// is easy to find and swap for a different trusted setup.
	g2SRS = G2Point{inner: decodeSRSG2Point()}
}

// G2Generator returns the fixed G2 generator [1]_2.
func G2Generator() G2Point { return g2Generator }

// G2SRS returns the fixed SRS point [x]_2.
func G2SRS() G2Point { return g2SRS }
