// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package overlay provides a backend buffering the writes of an execution
// engine on top of a read-only base backend. The buffered writes can be
// exported as a change set and folded into a world state afterwards.
package overlay

import (
	"slices"

	"github.com/Fantom-foundation/Tosca-state/go/tosca"
)

// Base is the read interface an overlay is layered on.
type Base interface {
	tosca.RuntimeEnvironment
	tosca.RuntimeBaseBackend
}

// Backend buffers updates on top of a base backend without modifying it.
// Reads reflect the state the base backend would expose after applying the
// buffered change set. In particular, deleting an account is final for the
// lifetime of the backend, since change sets apply deletes after all other
// updates.
type Backend struct {
	Base
	changes tosca.ChangeSet
}

var (
	_ tosca.RuntimeEnvironment = (*Backend)(nil)
	_ tosca.RuntimeBaseBackend = (*Backend)(nil)
)

func New(base Base) *Backend {
	return &Backend{Base: base}
}

// --- reads ---

func (b *Backend) Balance(address tosca.Address) tosca.Value {
	if b.isDeleted(address) {
		return tosca.Value{}
	}
	if balance, found := b.changes.Balances[address]; found {
		return balance
	}
	return b.Base.Balance(address)
}

func (b *Backend) Code(address tosca.Address) tosca.Code {
	if b.isDeleted(address) {
		return nil
	}
	if code, found := b.changes.Codes[address]; found {
		return slices.Clone(code)
	}
	return b.Base.Code(address)
}

func (b *Backend) Nonce(address tosca.Address) tosca.Value {
	if b.isDeleted(address) {
		return tosca.Value{}
	}
	if nonce, found := b.changes.Nonces[address]; found {
		return nonce
	}
	return b.Base.Nonce(address)
}

func (b *Backend) Exists(address tosca.Address) bool {
	if b.isDeleted(address) {
		return false
	}
	return b.isTouched(address) || b.Base.Exists(address)
}

func (b *Backend) Storage(address tosca.Address, key tosca.Key) tosca.Word {
	if b.isDeleted(address) {
		return tosca.Word{}
	}
	if value, found := b.changes.Storages[tosca.Slot{Address: address, Key: key}]; found {
		return value
	}
	if _, reset := b.changes.StorageResets[address]; reset {
		return tosca.Word{}
	}
	return b.Base.Storage(address, key)
}

func (b *Backend) TransientStorage(address tosca.Address, key tosca.Key) tosca.Word {
	if b.isDeleted(address) {
		return tosca.Word{}
	}
	if value, found := b.changes.TransientStorages[tosca.Slot{Address: address, Key: key}]; found {
		return value
	}
	return b.Base.TransientStorage(address, key)
}

// --- writes ---

func (b *Backend) SetBalance(address tosca.Address, balance tosca.Value) {
	b.changes.SetBalance(address, balance)
}

func (b *Backend) SetCode(address tosca.Address, code tosca.Code) {
	b.changes.SetCode(address, slices.Clone(code))
}

func (b *Backend) SetNonce(address tosca.Address, nonce tosca.Value) {
	b.changes.SetNonce(address, nonce)
}

// ResetStorage clears the persistent storage of the given account, including
// all storage writes buffered for it so far.
func (b *Backend) ResetStorage(address tosca.Address) {
	for slot := range b.changes.Storages {
		if slot.Address == address {
			delete(b.changes.Storages, slot)
		}
	}
	b.changes.ResetStorage(address)
}

func (b *Backend) SetStorage(address tosca.Address, key tosca.Key, value tosca.Word) {
	b.changes.SetStorage(address, key, value)
}

func (b *Backend) SetTransientStorage(address tosca.Address, key tosca.Key, value tosca.Word) {
	b.changes.SetTransientStorage(address, key, value)
}

func (b *Backend) Delete(address tosca.Address) {
	b.changes.Delete(address)
}

// ClearTransientStorage drops all buffered transient storage writes. It does
// not zero transient values held by the base backend: those remain visible
// through TransientStorage, since the base cannot enumerate its slots and
// reads must match the base after applying ChangeSet. Engines needing an
// empty transient storage at a transaction boundary must clear it in the
// base, e.g. by applying zero writes for the slots they populated. It is
// never called implicitly.
func (b *Backend) ClearTransientStorage() {
	b.changes.TransientStorages = nil
}

// ChangeSet returns the buffered updates as an independent change set.
func (b *Backend) ChangeSet() tosca.ChangeSet {
	return b.changes.Clone()
}

func (b *Backend) isDeleted(address tosca.Address) bool {
	_, deleted := b.changes.Deletes[address]
	return deleted
}

// isTouched reports whether an update creating the given account is buffered.
func (b *Backend) isTouched(address tosca.Address) bool {
	if _, found := b.changes.Balances[address]; found {
		return true
	}
	if _, found := b.changes.Codes[address]; found {
		return true
	}
	if _, found := b.changes.Nonces[address]; found {
		return true
	}
	if _, found := b.changes.StorageResets[address]; found {
		return true
	}
	for slot := range b.changes.Storages {
		if slot.Address == address {
			return true
		}
	}
	for slot := range b.changes.TransientStorages {
		if slot.Address == address {
			return true
		}
	}
	return false
}
