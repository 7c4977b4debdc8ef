// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gen

import (
	"fmt"

	"pgregory.net/rand"

	"github.com/Fantom-foundation/Tosca-state/go/tosca"
)

// ChangeSetGenerator produces random change sets over small pools of
// addresses and storage keys. Drawing from small pools makes it likely that
// generated change sets interact with each other and with themselves, e.g.
// by writing and deleting the same account.
type ChangeSetGenerator struct {
	// NumAddresses is the number of distinct addresses to draw from.
	NumAddresses int
	// NumKeys is the number of distinct storage keys to draw from.
	NumKeys int
	// MaxEntries is the maximum number of entries produced per category.
	MaxEntries int
	// MaxCodeSize is the maximum length of generated codes.
	MaxCodeSize int
}

// NewChangeSetGenerator creates a generator with default pool sizes.
func NewChangeSetGenerator() *ChangeSetGenerator {
	return &ChangeSetGenerator{
		NumAddresses: 8,
		NumKeys:      8,
		MaxEntries:   4,
		MaxCodeSize:  32,
	}
}

// Addresses returns the pool of addresses the generator draws from.
func (g *ChangeSetGenerator) Addresses() []tosca.Address {
	res := make([]tosca.Address, 0, g.NumAddresses)
	for i := 0; i < g.NumAddresses; i++ {
		res = append(res, address(i))
	}
	return res
}

// Keys returns the pool of storage keys the generator draws from.
func (g *ChangeSetGenerator) Keys() []tosca.Key {
	res := make([]tosca.Key, 0, g.NumKeys)
	for i := 0; i < g.NumKeys; i++ {
		res = append(res, key(i))
	}
	return res
}

// Generate produces a new random change set. The same random source state
// results in the same change set.
func (g *ChangeSetGenerator) Generate(rnd *rand.Rand) (tosca.ChangeSet, error) {
	if g.NumAddresses <= 0 || g.NumKeys <= 0 {
		return tosca.ChangeSet{}, fmt.Errorf("%w: %d addresses, %d keys", ErrEmptyPool, g.NumAddresses, g.NumKeys)
	}
	if g.MaxEntries < 0 || g.MaxCodeSize < 0 {
		return tosca.ChangeSet{}, fmt.Errorf("%w: %d entries, %d code size", ErrNegativeLimit, g.MaxEntries, g.MaxCodeSize)
	}

	res := tosca.ChangeSet{}
	for i := g.entries(rnd); i > 0; i-- {
		res.SetBalance(g.address(rnd), randValue(rnd))
	}
	for i := g.entries(rnd); i > 0; i-- {
		code := make(tosca.Code, rnd.Intn(g.MaxCodeSize+1))
		rnd.Read(code)
		res.SetCode(g.address(rnd), code)
	}
	for i := g.entries(rnd); i > 0; i-- {
		res.SetNonce(g.address(rnd), randValue(rnd))
	}
	for i := g.entries(rnd); i > 0; i-- {
		res.ResetStorage(g.address(rnd))
	}
	for i := g.entries(rnd); i > 0; i-- {
		res.SetStorage(g.address(rnd), g.key(rnd), randWord(rnd))
	}
	for i := g.entries(rnd); i > 0; i-- {
		res.SetTransientStorage(g.address(rnd), g.key(rnd), randWord(rnd))
	}
	for i := g.entries(rnd); i > 0; i-- {
		res.Delete(g.address(rnd))
	}
	return res, nil
}

const (
	ErrEmptyPool     = tosca.ConstError("generator pool is empty")
	ErrNegativeLimit = tosca.ConstError("generator limit is negative")
)

func (g *ChangeSetGenerator) entries(rnd *rand.Rand) int {
	return rnd.Intn(g.MaxEntries + 1)
}

func (g *ChangeSetGenerator) address(rnd *rand.Rand) tosca.Address {
	return address(rnd.Intn(g.NumAddresses))
}

func (g *ChangeSetGenerator) key(rnd *rand.Rand) tosca.Key {
	return key(rnd.Intn(g.NumKeys))
}

func address(i int) tosca.Address {
	return tosca.Address{18: byte(i >> 8), 19: byte(i)}
}

func key(i int) tosca.Key {
	return tosca.Key(tosca.NewWord(uint64(i)))
}

// randWord produces a random word, with a bias towards zero to exercise the
// removal of storage entries.
func randWord(rnd *rand.Rand) tosca.Word {
	switch rnd.Intn(4) {
	case 0:
		return tosca.Word{}
	case 1:
		return tosca.NewWord(rnd.Uint64n(16))
	default:
		return tosca.NewWord(rnd.Uint64(), rnd.Uint64(), rnd.Uint64(), rnd.Uint64())
	}
}

func randValue(rnd *rand.Rand) tosca.Value {
	if rnd.Intn(2) == 0 {
		return tosca.NewValue(rnd.Uint64n(1000))
	}
	return tosca.NewValue(rnd.Uint64(), rnd.Uint64(), rnd.Uint64(), rnd.Uint64())
}
