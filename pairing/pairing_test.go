// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pairing

import (
	"errors"
	"testing"

	"github.com/luxfi/ultrahonk/bn254"
	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

func TestCheckBothInfinityPasses(t *testing.T) {
	if err := Check(bn254.G1Infinity(), bn254.G1Infinity()); err != nil {
		t.Fatalf("Check(infinity, infinity): %v", err)
	}
}

func TestCheckFailureIsTypedPairingFailedError(t *testing.T) {
	p := bn254.G1Generator().ScalarMul(bn254.FrFromUint64(9))
	err := Check(p, p)
	if err == nil {
		t.Fatal("expected a pairing failure for an arbitrary, unrelated pair")
	}
	if !errors.Is(err, ultraerrors.ErrPairingFailed) {
		t.Fatalf("expected ErrPairingFailed, got %v", err)
	}
}
