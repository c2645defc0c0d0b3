// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Registry assigns dense integer IDs to distinct keys in the order in
// which they are first added. It combines the order of a slice with the
// fast lookup of a map that stores the index into the slice. With pointer
// keys the IDs are by identity: equal contents never merge.
type Registry[K comparable] struct {

	// Order is the list of keys, indexed by ID.
	Order []K

	// Map is the key to ID mapping.
	Map map[K]int
}

// NewRegistry returns a new empty registry.
func NewRegistry[K comparable]() *Registry[K] {
	return &Registry[K]{Map: make(map[K]int)}
}

// Add registers the given key if it is not already registered,
// and returns its ID and whether it was newly added.
func (rg *Registry[K]) Add(key K) (int, bool) {
	if rg.Map == nil {
		rg.Map = make(map[K]int)
	}
	if id, has := rg.Map[key]; has {
		return id, false
	}
	id := len(rg.Order)
	rg.Map[key] = id
	rg.Order = append(rg.Order, key)
	return id, true
}

// ID returns the ID of the given key, or -1 if it is not registered.
func (rg *Registry[K]) ID(key K) int {
	if id, has := rg.Map[key]; has {
		return id
	}
	return -1
}

// Has returns whether the given key is registered.
func (rg *Registry[K]) Has(key K) bool {
	_, has := rg.Map[key]
	return has
}

// Len returns the number of registered keys.
func (rg *Registry[K]) Len() int {
	if rg == nil {
		return 0
	}
	return len(rg.Order)
}
