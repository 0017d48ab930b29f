// Package dropnewest implements the refuse-when-full overflow policy:
// a full buffer keeps its oldest elements and drops incoming ones.
package dropnewest

import "github.com/IvanBrykalov/collections/policy"

type dropNewest struct{}

type dropNewestPolicy struct{}

// New returns a Policy factory that constructs drop-newest instances.
func New() policy.Policy { return dropNewestPolicy{} }

// New implements policy.Policy. Drop-newest keeps no state and needs no hooks.
func (dropNewestPolicy) New(policy.Hooks) policy.BufferPolicy { return dropNewest{} }

// OnFull never admits.
func (dropNewest) OnFull() (admit bool) { return false }
