// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fx/registry.go
// Summary: Global effect registry mapping identifiers to factories.
// Usage: Scene definitions resolve effect IDs here to build slot effects.
// Notes: Built-in effects self-register at init; IDs must be unique.

package fx

import "sync"

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Factory constructs an effect from its configuration map.
type Factory func(Config) (Effect, error)

// Register associates an effect ID with a factory. It panics on duplicate
// IDs.
func Register(id string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[id]; exists {
		panic("fx: duplicate registration for " + id)
	}
	registry[id] = factory
}

// Lookup fetches a factory by ID.
func Lookup(id string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[id]
	return f, ok
}

// RegisteredIDs returns the set of effect identifiers currently registered.
func RegisteredIDs() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}
