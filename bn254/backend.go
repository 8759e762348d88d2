// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn254

import (
	"sync"

	ultraerrors "github.com/luxfi/ultrahonk/errors"
)

// Backend is the indirection spec.md §4.1/§9 requires for MSM and the
// pairing check: a host environment (e.g. an on-chain precompile) may
// register a faster or differently-trusted implementation without any
// caller of MSM/PairingCheck changing. This mirrors the override
// pattern the teacher uses to swap in GPU acceleration
// (kzg4844/kzg4844_gpu.go's useGPU + function-pointer swap,
// zk/poseidon.go's gpuHashFunc) — generalized here to a named,
// interface-typed registration instead of a single global bool, since
// the spec requires the facade to be reachable by name, not just
// toggled on/off.
type Backend interface {
	// Name identifies the backend for diagnostics.
	Name() string
	// MSM computes Σ scalars[i] * points[i].
	MSM(points []G1Point, scalars []Fr) (G1Point, error)
	// PairingCheck evaluates e(p0, [1]_2) * e(p1, [x]_2) == 1.
	PairingCheck(p0, p1 G1Point) (bool, error)
}

// defaultBackend is the always-available in-process implementation
// (spec.md §4.1: "If no backend is registered, a default in-process
// implementation is used").
type defaultBackend struct{}

func (defaultBackend) Name() string { return "gnark-crypto" }

func (defaultBackend) MSM(points []G1Point, scalars []Fr) (G1Point, error) {
	return MSM(points, scalars)
}

func (defaultBackend) PairingCheck(p0, p1 G1Point) (bool, error) {
	return PairingCheck(p0, p1)
}

var (
	backendMu      sync.RWMutex
	activeBackend Backend = defaultBackend{}
)

// RegisterBackend installs backend as the process-wide MSM/pairing
// implementation. Spec.md §5 treats this as "write-once, process-wide
// configuration installed at startup" — callers are expected to
// register once before any Verify call, not toggle it per call.
func RegisterBackend(backend Backend) {
	backendMu.Lock()
	defer backendMu.Unlock()
	if backend == nil {
		activeBackend = defaultBackend{}
		return
	}
	activeBackend = backend
}

// ActiveBackend returns the currently registered backend.
func ActiveBackend() Backend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return activeBackend
}

// BackendMSM routes to the active backend, wrapping any failure as a
// BackendError per spec.md §7.
func BackendMSM(points []G1Point, scalars []Fr) (G1Point, error) {
	p, err := ActiveBackend().MSM(points, scalars)
	if err != nil {
		return G1Point{}, wrapBackendErr("msm", err)
	}
	return p, nil
}

// BackendPairingCheck routes to the active backend.
func BackendPairingCheck(p0, p1 G1Point) (bool, error) {
	ok, err := ActiveBackend().PairingCheck(p0, p1)
	if err != nil {
		return false, wrapBackendErr("pairing", err)
	}
	return ok, nil
}

func wrapBackendErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return ultraerrors.NewBackendError(op, err.Error())
}
