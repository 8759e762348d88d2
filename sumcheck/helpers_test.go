// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sumcheck

import (
	"testing"

	"github.com/luxfi/ultrahonk/proof"
	"github.com/luxfi/ultrahonk/transcript"
)

func newTestDriver(t *testing.T, logN int) *transcript.Driver {
	t.Helper()
	tr := transcript.New()
	d := transcript.NewDriver(tr, logN)
	return d
}

func proofEvaluationsZero() proof.Evaluations {
	return proof.Evaluations{}
}
