// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"slices"

	"github.com/Fantom-foundation/Tosca-state/go/tosca"
)

// ApplyChangeSet folds the given change set into the world state. Updates
// are applied in the following order:
//
//  1. balances
//  2. codes
//  3. nonces
//  4. storage resets
//  5. storage writes
//  6. transient storage writes
//  7. deletes
//
// Accounts targeted by phases 1-6 are created with default values if they do
// not exist. Zero-valued storage writes remove the affected slot. Deletes are
// applied last, so a deleted account is gone regardless of any other update
// listed for it. The operation never fails and applying the same change set
// twice has the same effect as applying it once.
func (s *WorldState) ApplyChangeSet(changes *tosca.ChangeSet) {
	if changes == nil {
		return
	}

	for address, balance := range changes.Balances {
		s.getOrCreate(address).Balance = balance
	}

	for address, code := range changes.Codes {
		s.getOrCreate(address).Code = slices.Clone(code)
		s.codeHashes.Remove(address)
	}

	for address, nonce := range changes.Nonces {
		s.getOrCreate(address).Nonce = nonce
	}

	// Resets must precede storage writes so that a reset followed by a write
	// in the same change set retains the written value.
	for address := range changes.StorageResets {
		s.getOrCreate(address).Storage = Storage{}
	}

	for slot, value := range changes.Storages {
		s.getOrCreate(slot.Address).Storage.Set(slot.Key, value)
	}

	for slot, value := range changes.TransientStorages {
		s.getOrCreate(slot.Address).TransientStorage.Set(slot.Key, value)
	}

	for address := range changes.Deletes {
		s.accounts.Delete(entry{address: address})
		s.codeHashes.Remove(address)
	}
}
