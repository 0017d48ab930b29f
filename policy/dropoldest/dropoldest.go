// Package dropoldest implements the overwrite-oldest overflow policy.
package dropoldest

import "github.com/IvanBrykalov/collections/policy"

// dropOldest evicts the front (oldest) element to make room for the new one.
type dropOldest struct {
	h policy.Hooks
}

type dropOldestPolicy struct{}

// New returns a Policy factory that constructs per-buffer drop-oldest instances.
func New() policy.Policy { return dropOldestPolicy{} }

// New implements policy.Policy by binding buffer hooks.
func (dropOldestPolicy) New(h policy.Hooks) policy.BufferPolicy {
	return &dropOldest{h: h}
}

// OnFull evicts from the front until there is room, then admits.
func (p *dropOldest) OnFull() (admit bool) {
	for p.h.Len() >= p.h.Cap() {
		if !p.h.EvictFront() {
			return false
		}
	}
	return true
}
