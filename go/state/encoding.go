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
	"encoding/json"

	"github.com/Fantom-foundation/Tosca-state/go/tosca"
	"github.com/ethereum/go-ethereum/core/types"
)

// MarshalJSON encodes the world state as a JSON object mapping addresses to
// accounts. Addresses are listed in ascending order.
func (s *WorldState) MarshalJSON() ([]byte, error) {
	accounts := make(map[tosca.Address]*Account, s.Len())
	s.ForEach(func(address tosca.Address, account *Account) bool {
		accounts[address] = account
		return true
	})
	return json.Marshal(accounts)
}

// UnmarshalJSON replaces the content of the world state by the accounts
// encoded in the given JSON object. Zero-valued storage entries are dropped.
func (s *WorldState) UnmarshalJSON(data []byte) error {
	var accounts map[tosca.Address]Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return err
	}
	changes := tosca.ChangeSet{}
	for address, account := range accounts {
		addAccount(&changes, address, account)
	}
	*s = *NewWorldState()
	s.ApplyChangeSet(&changes)
	return nil
}

// NewWorldStateFromAlloc creates a world state holding the accounts of the
// given genesis allocation.
func NewWorldStateFromAlloc(alloc types.GenesisAlloc) *WorldState {
	res := NewWorldState()
	changes := ChangeSetFromAlloc(alloc)
	res.ApplyChangeSet(&changes)
	return res
}

// ChangeSetFromAlloc converts a genesis allocation into a change set that
// installs all allocated accounts, replacing previous content of the
// affected accounts' storage.
func ChangeSetFromAlloc(alloc types.GenesisAlloc) tosca.ChangeSet {
	res := tosca.ChangeSet{}
	for address, account := range alloc {
		storage := make(Storage, len(account.Storage))
		for key, value := range account.Storage {
			storage[tosca.Key(key)] = tosca.Word(value)
		}
		addAccount(&res, tosca.Address(address), Account{
			Balance: tosca.ValueFromBig(account.Balance),
			Nonce:   tosca.NewValue(account.Nonce),
			Code:    account.Code,
			Storage: storage,
		})
	}
	return res
}

// addAccount records all properties of the given account in the change set.
func addAccount(changes *tosca.ChangeSet, address tosca.Address, account Account) {
	changes.SetBalance(address, account.Balance)
	changes.SetNonce(address, account.Nonce)
	changes.SetCode(address, account.Code)
	changes.ResetStorage(address)
	for key, value := range account.Storage {
		changes.SetStorage(address, key, value)
	}
	for key, value := range account.TransientStorage {
		changes.SetTransientStorage(address, key, value)
	}
}
