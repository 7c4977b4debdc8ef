// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tosca

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	xmaps "golang.org/x/exp/maps"
)

// Slot identifies a single storage slot of an account.
type Slot struct {
	Address Address
	Key     Key
}

func (s Slot) String() string {
	return fmt.Sprintf("%v/%v", s.Address, s.Key)
}

func (s Slot) Cmp(o Slot) int {
	if res := s.Address.Cmp(o.Address); res != 0 {
		return res
	}
	return s.Key.Cmp(o.Key)
}

// ChangeSet is a batch of differential updates describing the net effect of
// executing one or more transactions on a world state. The updates are
// applied by a RuntimeBackend in a fixed order: balances, codes, nonces,
// storage resets, storage writes, transient storage writes, and finally
// deletes.
//
// A zero ChangeSet is empty and ready to use.
type ChangeSet struct {
	Balances          map[Address]Value
	Codes             map[Address]Code
	Nonces            map[Address]Value
	StorageResets     map[Address]struct{}
	Storages          map[Slot]Word
	TransientStorages map[Slot]Word
	Deletes           map[Address]struct{}
}

func (c *ChangeSet) SetBalance(address Address, balance Value) {
	if c.Balances == nil {
		c.Balances = make(map[Address]Value)
	}
	c.Balances[address] = balance
}

func (c *ChangeSet) SetCode(address Address, code Code) {
	if c.Codes == nil {
		c.Codes = make(map[Address]Code)
	}
	c.Codes[address] = code
}

func (c *ChangeSet) SetNonce(address Address, nonce Value) {
	if c.Nonces == nil {
		c.Nonces = make(map[Address]Value)
	}
	c.Nonces[address] = nonce
}

func (c *ChangeSet) ResetStorage(address Address) {
	if c.StorageResets == nil {
		c.StorageResets = make(map[Address]struct{})
	}
	c.StorageResets[address] = struct{}{}
}

func (c *ChangeSet) SetStorage(address Address, key Key, value Word) {
	if c.Storages == nil {
		c.Storages = make(map[Slot]Word)
	}
	c.Storages[Slot{address, key}] = value
}

func (c *ChangeSet) SetTransientStorage(address Address, key Key, value Word) {
	if c.TransientStorages == nil {
		c.TransientStorages = make(map[Slot]Word)
	}
	c.TransientStorages[Slot{address, key}] = value
}

func (c *ChangeSet) Delete(address Address) {
	if c.Deletes == nil {
		c.Deletes = make(map[Address]struct{})
	}
	c.Deletes[address] = struct{}{}
}

// IsEmpty returns true if the change set contains no updates.
func (c *ChangeSet) IsEmpty() bool {
	return len(c.Balances) == 0 &&
		len(c.Codes) == 0 &&
		len(c.Nonces) == 0 &&
		len(c.StorageResets) == 0 &&
		len(c.Storages) == 0 &&
		len(c.TransientStorages) == 0 &&
		len(c.Deletes) == 0
}

// Clone creates an independent deep copy of the change set.
func (c *ChangeSet) Clone() ChangeSet {
	var codes map[Address]Code
	if c.Codes != nil {
		codes = make(map[Address]Code, len(c.Codes))
		for address, code := range c.Codes {
			codes[address] = slices.Clone(code)
		}
	}
	return ChangeSet{
		Balances:          maps.Clone(c.Balances),
		Codes:             codes,
		Nonces:            maps.Clone(c.Nonces),
		StorageResets:     maps.Clone(c.StorageResets),
		Storages:          maps.Clone(c.Storages),
		TransientStorages: maps.Clone(c.TransientStorages),
		Deletes:           maps.Clone(c.Deletes),
	}
}

// Addresses returns the sorted list of all addresses touched by this
// change set.
func (c *ChangeSet) Addresses() []Address {
	touched := map[Address]struct{}{}
	for address := range c.Balances {
		touched[address] = struct{}{}
	}
	for address := range c.Codes {
		touched[address] = struct{}{}
	}
	for address := range c.Nonces {
		touched[address] = struct{}{}
	}
	for address := range c.StorageResets {
		touched[address] = struct{}{}
	}
	for slot := range c.Storages {
		touched[slot.Address] = struct{}{}
	}
	for slot := range c.TransientStorages {
		touched[slot.Address] = struct{}{}
	}
	for address := range c.Deletes {
		touched[address] = struct{}{}
	}
	return sortedAddresses(touched)
}

func (c *ChangeSet) String() string {
	var builder strings.Builder
	builder.WriteString("ChangeSet{")
	for _, address := range sortedAddresses(c.Balances) {
		builder.WriteString(fmt.Sprintf("\n\tbalance %v = %v", address, c.Balances[address]))
	}
	for _, address := range sortedAddresses(c.Codes) {
		builder.WriteString(fmt.Sprintf("\n\tcode %v = 0x%x", address, []byte(c.Codes[address])))
	}
	for _, address := range sortedAddresses(c.Nonces) {
		builder.WriteString(fmt.Sprintf("\n\tnonce %v = %v", address, c.Nonces[address]))
	}
	for _, address := range sortedAddresses(c.StorageResets) {
		builder.WriteString(fmt.Sprintf("\n\treset %v", address))
	}
	for _, slot := range sortedSlots(c.Storages) {
		builder.WriteString(fmt.Sprintf("\n\tstorage %v = %v", slot, c.Storages[slot]))
	}
	for _, slot := range sortedSlots(c.TransientStorages) {
		builder.WriteString(fmt.Sprintf("\n\ttransient %v = %v", slot, c.TransientStorages[slot]))
	}
	for _, address := range sortedAddresses(c.Deletes) {
		builder.WriteString(fmt.Sprintf("\n\tdelete %v", address))
	}
	builder.WriteString("\n}")
	return builder.String()
}

// --- JSON encoding ---

type slotEntry struct {
	Address Address `json:"address"`
	Key     Key     `json:"key"`
	Value   Word    `json:"value"`
}

type changeSetJson struct {
	Balances          map[Address]Value `json:"balances,omitempty"`
	Codes             map[Address]Code  `json:"codes,omitempty"`
	Nonces            map[Address]Value `json:"nonces,omitempty"`
	StorageResets     []Address         `json:"storageResets,omitempty"`
	Storages          []slotEntry       `json:"storages,omitempty"`
	TransientStorages []slotEntry       `json:"transientStorages,omitempty"`
	Deletes           []Address         `json:"deletes,omitempty"`
}

func (c ChangeSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(changeSetJson{
		Balances:          c.Balances,
		Codes:             c.Codes,
		Nonces:            c.Nonces,
		StorageResets:     sortedAddresses(c.StorageResets),
		Storages:          toSlotEntries(c.Storages),
		TransientStorages: toSlotEntries(c.TransientStorages),
		Deletes:           sortedAddresses(c.Deletes),
	})
}

func (c *ChangeSet) UnmarshalJSON(data []byte) error {
	var decoded changeSetJson
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	res := ChangeSet{
		Balances: decoded.Balances,
		Codes:    decoded.Codes,
		Nonces:   decoded.Nonces,
	}
	for _, address := range decoded.StorageResets {
		res.ResetStorage(address)
	}
	for _, entry := range decoded.Storages {
		slot := Slot{entry.Address, entry.Key}
		if _, found := res.Storages[slot]; found {
			return fmt.Errorf("%w: storage %v", ErrDuplicateEntry, slot)
		}
		res.SetStorage(entry.Address, entry.Key, entry.Value)
	}
	for _, entry := range decoded.TransientStorages {
		slot := Slot{entry.Address, entry.Key}
		if _, found := res.TransientStorages[slot]; found {
			return fmt.Errorf("%w: transient storage %v", ErrDuplicateEntry, slot)
		}
		res.SetTransientStorage(entry.Address, entry.Key, entry.Value)
	}
	for _, address := range decoded.Deletes {
		res.Delete(address)
	}
	*c = res
	return nil
}

// ErrDuplicateEntry is reported when decoding a change set listing the same
// storage slot more than once.
const ErrDuplicateEntry = ConstError("duplicate change set entry")

func toSlotEntries(storage map[Slot]Word) []slotEntry {
	if len(storage) == 0 {
		return nil
	}
	res := make([]slotEntry, 0, len(storage))
	for _, slot := range sortedSlots(storage) {
		res = append(res, slotEntry{slot.Address, slot.Key, storage[slot]})
	}
	return res
}

func sortedAddresses[V any](m map[Address]V) []Address {
	if len(m) == 0 {
		return nil
	}
	res := xmaps.Keys(m)
	slices.SortFunc(res, Address.Cmp)
	return res
}

func sortedSlots(m map[Slot]Word) []Slot {
	res := xmaps.Keys(m)
	slices.SortFunc(res, Slot.Cmp)
	return res
}
