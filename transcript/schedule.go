// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transcript

import (
	"fmt"

	"github.com/luxfi/ultrahonk/bn254"
	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

// NumAlphas is the number of sub-relation batching challenges
// (spec.md §4.2: "alpha_0…alpha_{25}") — one per UltraHonk sub-relation
// beyond the first, which is implicitly weighted by 1.
const NumAlphas = 26

// GateChallengeName returns the schedule name of the round-th gate
// challenge, the name the verifier squeezes through Driver.Squeeze
// after the alphas.
func GateChallengeName(round int) string {
	return fmt.Sprintf("gate_challenges_%d", round)
}

// Schedule returns the exact, fixed sequence of challenge names for a
// circuit of the given depth, in the order spec.md §4.2 mandates:
//
//	eta, eta_two, eta_three, beta, gamma,
//	alpha_0..alpha_25,
//	gate_challenges_0..gate_challenges_{log_n-1},
//	rho, gemini_r, shplonk_nu, shplonk_z
//
// Design note (spec.md §9): deriving this sequence from one table,
// rather than scattering absorb/squeeze calls across components,
// eliminates a whole class of reordering bugs. Driver below is what
// enforces that callers actually squeeze in this order.
func Schedule(logN int) []string {
	names := make([]string, 0, 5+NumAlphas+logN+4)
	names = append(names, "eta", "eta_two", "eta_three", "beta", "gamma")
	for i := 0; i < NumAlphas; i++ {
		names = append(names, fmt.Sprintf("alpha_%d", i))
	}
	for i := 0; i < logN; i++ {
		names = append(names, fmt.Sprintf("gate_challenges_%d", i))
	}
	names = append(names, "rho", "gemini_r", "shplonk_nu", "shplonk_z")
	return names
}

// Driver pairs a Transcript with the fixed challenge schedule and
// rejects any attempt to squeeze a challenge out of order. Sum-check's
// per-round challenges u_i are not part of the named schedule: Sumcheck
// squeezes each one directly on the underlying Transcript
// (Raw().SqueezeChallenge) after absorbing that round's polynomial,
// while the fixed named challenges (eta, beta, gamma, alphas,
// gate_challenges, rho, gemini_r, shplonk_nu, shplonk_z) are squeezed
// through Squeeze, which asserts the name matches what the schedule
// expects next.
type Driver struct {
	t        *Transcript
	schedule []string
	pos      int
}

// NewDriver builds a Driver for a circuit with the given depth.
func NewDriver(t *Transcript, logN int) *Driver {
	return &Driver{t: t, schedule: Schedule(logN)}
}

// Init absorbs the transcript's initial state — circuit size, public
// input count, public input offset, then each public input — exactly
// as spec.md §4.2 specifies, before any proof element is absorbed.
func (d *Driver) Init(n, numPublicInputs, publicInputOffset uint64, publicInputs []bn254.Fr) {
	d.t.AbsorbU64(n)
	d.t.AbsorbU64(numPublicInputs)
	d.t.AbsorbU64(publicInputOffset)
	for _, pi := range publicInputs {
		d.t.AbsorbFr(pi)
	}
}

// Squeeze squeezes the next challenge and asserts its name matches
// what the fixed schedule expects at this position.
func (d *Driver) Squeeze(name string) (bn254.Fr, error) {
	if d.pos >= len(d.schedule) {
		return bn254.Fr{}, ultraerrors.NewDecodeError("transcript.schedule", "no more challenges expected")
	}
	if d.schedule[d.pos] != name {
		return bn254.Fr{}, ultraerrors.NewDecodeError("transcript.schedule",
			fmt.Sprintf("expected challenge %q at position %d, got %q", d.schedule[d.pos], d.pos, name))
	}
	d.pos++
	return d.t.SqueezeChallenge(), nil
}

// Raw exposes the underlying Transcript for absorbs that don't
// correspond to a named challenge (round polynomials, commitments).
func (d *Driver) Raw() *Transcript { return d.t }
