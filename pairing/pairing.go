// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pairing implements the final check (C8, spec.md §4.1, §4.7):
// a single pairing-product equality over the two G1 points the
// Shplonk reduction produced. This package is intentionally thin — it
// exists so callers depend on a narrow, named surface rather than
// reaching into bn254 directly, matching the teacher's habit of giving
// each verification stage (zk/verifier.go's VerifyProof) its own named
// entry point instead of inlining every step in one function.
package pairing

import (
	"github.com/luxfi/ultrahonk/bn254"
	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

// Check runs e(p0, [1]_2) * e(p1, [x]_2) == 1 through the active
// backend (spec.md §4.1: "routed through the same backend facade as
// MSM"), returning a PairingFailedError — never a bare false — when
// the equation does not hold, so callers can distinguish "proof
// rejected" from "malformed input" purely by error type.
func Check(p0, p1 bn254.G1Point) error {
	ok, err := bn254.BackendPairingCheck(p0, p1)
	if err != nil {
		return err
	}
	if !ok {
		return ultraerrors.NewPairingFailedError()
	}
	return nil
}
