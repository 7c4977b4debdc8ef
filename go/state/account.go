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
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/Fantom-foundation/Tosca-state/go/tosca"
	xmaps "golang.org/x/exp/maps"
)

// ----------------------------------------------------------------------------
// Account
// ----------------------------------------------------------------------------

// Account is the record of a single account in the world state.
type Account struct {
	Balance          tosca.Value `json:"balance"`
	Nonce            tosca.Value `json:"nonce"`
	Code             tosca.Code  `json:"code,omitempty"`
	Storage          Storage     `json:"storage,omitempty"`
	TransientStorage Storage     `json:"transientStorage,omitempty"`
}

// emptyAccount is the record observed for any address without an account.
var emptyAccount = Account{}

func (a *Account) Equal(other *Account) bool {
	return a.Balance == other.Balance &&
		a.Nonce == other.Nonce &&
		bytes.Equal(a.Code, other.Code) &&
		a.Storage.Equal(other.Storage) &&
		a.TransientStorage.Equal(other.TransientStorage)
}

func (a *Account) Clone() Account {
	return Account{
		Balance:          a.Balance,
		Nonce:            a.Nonce,
		Code:             slices.Clone(a.Code),
		Storage:          a.Storage.Clone(),
		TransientStorage: a.TransientStorage.Clone(),
	}
}

func (a *Account) Diff(prefix string, other *Account) []string {
	var res []string
	if a.Balance != other.Balance {
		res = append(res, fmt.Sprintf("different balance: %v != %v", a.Balance, other.Balance))
	}
	if a.Nonce != other.Nonce {
		res = append(res, fmt.Sprintf("different nonce: %v != %v", a.Nonce, other.Nonce))
	}
	if !bytes.Equal(a.Code, other.Code) {
		res = append(res, fmt.Sprintf("different code: 0x%x != 0x%x", []byte(a.Code), []byte(other.Code)))
	}
	res = append(res, a.Storage.Diff("Storage/", other.Storage)...)
	res = append(res, a.TransientStorage.Diff("TransientStorage/", other.TransientStorage)...)
	for i, diff := range res {
		res[i] = prefix + diff
	}
	return res
}

// ----------------------------------------------------------------------------
// Storage
// ----------------------------------------------------------------------------

// Storage maps the keys of an account's storage to their values. Slots not
// present hold the zero word. Updates through Set never retain zero-valued
// entries.
type Storage map[tosca.Key]tosca.Word

func (s Storage) Get(key tosca.Key) tosca.Word {
	return s[key]
}

// Set updates the given slot, removing it if the new value is zero.
func (s *Storage) Set(key tosca.Key, value tosca.Word) {
	if value.IsZero() {
		delete(*s, key)
		return
	}
	if *s == nil {
		*s = make(Storage)
	}
	(*s)[key] = value
}

// Keys returns the keys of all non-zero slots in ascending order.
func (s Storage) Keys() []tosca.Key {
	keys := xmaps.Keys(s)
	slices.SortFunc(keys, tosca.Key.Cmp)
	return keys
}

func (s Storage) Equal(other Storage) bool {
	return equalMapsIgnoringZero(s, other, func(a, b tosca.Word) bool {
		return a == b
	})
}

func (s Storage) Clone() Storage {
	return maps.Clone(s)
}

func (s Storage) Diff(prefix string, other Storage) []string {
	return diffMaps(prefix, s, other, func(k tosca.Key, a, b tosca.Word) []string {
		if a == b {
			return nil
		}
		return []string{
			fmt.Sprintf("different value for key %v: %v != %v", k, a, b),
		}
	})
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

// equalMapsIgnoringZero compares two maps, ignoring zero-valued entries.
func equalMapsIgnoringZero[K comparable, V any](a, b map[K]V, equal func(V, V) bool) bool {
	for k, v := range a {
		if !equal(v, b[k]) {
			return false
		}
	}
	for k, v := range b {
		if !equal(v, a[k]) {
			return false
		}
	}
	return true
}

// diffMaps compares two maps and returns a list of differences.
func diffMaps[K comparable, V any](prefix string, a, b map[K]V, diff func(K, V, V) []string) []string {
	var diffs []string
	for k, v := range a {
		diffs = append(diffs, diff(k, v, b[k])...)
	}
	for k, v := range b {
		if _, overlap := a[k]; !overlap {
			diffs = append(diffs, diff(k, a[k], v)...)
		}
	}
	for i, diff := range diffs {
		diffs[i] = prefix + diff
	}
	return diffs
}
