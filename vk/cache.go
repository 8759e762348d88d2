// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vk

import (
	"crypto/sha256"
	"sync"
)

// Cache lets a caller avoid re-parsing the same vk blob across
// repeated Verify calls for one circuit (spec.md §3: "The VK may be
// cached by the caller; the verifier treats it as read-only input").
// This is the same map-keyed-by-digest shape as the teacher's
// ZKVerifier.VerifyingKeys (zk/verifier.go), adapted: keyed by the raw
// vk bytes' own digest instead of a caller-supplied key, and holding
// no mutable per-entry state once populated — a cached
// VerificationKey is immutable (spec.md §3) so there is nothing to
// invalidate short of eviction.
type Cache struct {
	mu      sync.RWMutex
	entries map[[32]byte]*VerificationKey
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[[32]byte]*VerificationKey)}
}

// LoadCached parses data, or returns the previously parsed
// VerificationKey if these exact bytes were loaded before.
func (c *Cache) LoadCached(data []byte) (*VerificationKey, error) {
	digest := sha256.Sum256(data)

	c.mu.RLock()
	if k, ok := c.entries[digest]; ok {
		c.mu.RUnlock()
		return k, nil
	}
	c.mu.RUnlock()

	k, err := Load(data)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[digest] = k
	c.mu.Unlock()
	return k, nil
}
