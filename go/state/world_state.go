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
	"fmt"
	"slices"
	"strings"

	"github.com/Fantom-foundation/Tosca-state/go/tosca"
	"github.com/google/btree"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"
)

// WorldState is an in-memory world state intended to serve as a backend for
// testing EVM implementations. It maps addresses to accounts and is updated
// exclusively through change sets. Accounts are maintained in ascending
// address order.
//
// A WorldState is not safe for concurrent use. Callers sharing an instance
// among goroutines must guard all accesses with a single lock.
type WorldState struct {
	accounts   *btree.BTreeG[entry]
	codeHashes *lru.Cache[tosca.Address, tosca.Hash]
}

var _ tosca.RuntimeBackend = (*WorldState)(nil)

type entry struct {
	address tosca.Address
	account *Account
}

func entryLess(a, b entry) bool {
	return a.address.Cmp(b.address) < 0
}

const (
	btreeDegree       = 32
	codeHashCacheSize = 1 << 10
)

// NewWorldState creates an empty world state.
func NewWorldState() *WorldState {
	cache, _ := lru.New[tosca.Address, tosca.Hash](codeHashCacheSize) // can only fail for non-positive size
	return &WorldState{
		accounts:   btree.NewG(btreeDegree, entryLess),
		codeHashes: cache,
	}
}

// get returns the account stored for the given address or the shared empty
// account if there is none. The result must not be modified.
func (s *WorldState) get(address tosca.Address) *Account {
	if e, found := s.accounts.Get(entry{address: address}); found {
		return e.account
	}
	return &emptyAccount
}

// getOrCreate returns the account stored for the given address, inserting a
// default account first if there is none.
func (s *WorldState) getOrCreate(address tosca.Address) *Account {
	if e, found := s.accounts.Get(entry{address: address}); found {
		return e.account
	}
	account := &Account{}
	s.accounts.ReplaceOrInsert(entry{address: address, account: account})
	return account
}

// --- account accessors ---

func (s *WorldState) Balance(address tosca.Address) tosca.Value {
	return s.get(address).Balance
}

// Code returns a copy of the code of the given account.
func (s *WorldState) Code(address tosca.Address) tosca.Code {
	return slices.Clone(s.get(address).Code)
}

func (s *WorldState) CodeSize(address tosca.Address) int {
	return len(s.get(address).Code)
}

// CodeHash returns the keccak256 hash of the code of the given account, or
// the zero hash if the account does not exist.
func (s *WorldState) CodeHash(address tosca.Address) tosca.Hash {
	if !s.Exists(address) {
		return tosca.Hash{}
	}
	if hash, found := s.codeHashes.Get(address); found {
		return hash
	}
	hash := keccak(s.get(address).Code)
	s.codeHashes.Add(address, hash)
	return hash
}

func (s *WorldState) Exists(address tosca.Address) bool {
	return s.accounts.Has(entry{address: address})
}

func (s *WorldState) Storage(address tosca.Address, key tosca.Key) tosca.Word {
	return s.get(address).Storage.Get(key)
}

func (s *WorldState) TransientStorage(address tosca.Address, key tosca.Key) tosca.Word {
	return s.get(address).TransientStorage.Get(key)
}

func (s *WorldState) Nonce(address tosca.Address) tosca.Value {
	return s.get(address).Nonce
}

// --- environment accessors ---

// The world state models no chain history, so all block and chain
// properties are reported with their zero values.

func (s *WorldState) BlockHash(tosca.Word) tosca.Hash {
	return tosca.Hash{}
}

func (s *WorldState) BlockNumber() tosca.Word {
	return tosca.Word{}
}

func (s *WorldState) BlockCoinbase() tosca.Address {
	return tosca.Address{}
}

func (s *WorldState) BlockTimestamp() tosca.Word {
	return tosca.Word{}
}

func (s *WorldState) BlockDifficulty() tosca.Word {
	return tosca.Word{}
}

func (s *WorldState) BlockRandomness() (tosca.Hash, bool) {
	return tosca.Hash{}, false
}

func (s *WorldState) BlockGasLimit() tosca.Word {
	return tosca.Word{}
}

func (s *WorldState) BlockBaseFeePerGas() tosca.Word {
	return tosca.Word{}
}

func (s *WorldState) ChainId() tosca.Word {
	return tosca.Word{}
}

// --- enumeration and comparison ---

// Len returns the number of accounts in the world state.
func (s *WorldState) Len() int {
	return s.accounts.Len()
}

// Get returns a copy of the account stored for the given address and
// whether such an account exists.
func (s *WorldState) Get(address tosca.Address) (Account, bool) {
	e, found := s.accounts.Get(entry{address: address})
	if !found {
		return Account{}, false
	}
	return e.account.Clone(), true
}

// ForEach calls visit for every account in ascending address order until
// visit returns false. The visited accounts must not be modified.
func (s *WorldState) ForEach(visit func(tosca.Address, *Account) bool) {
	s.accounts.Ascend(func(e entry) bool {
		return visit(e.address, e.account)
	})
}

// Addresses returns the addresses of all accounts in ascending order.
func (s *WorldState) Addresses() []tosca.Address {
	res := make([]tosca.Address, 0, s.Len())
	s.ForEach(func(address tosca.Address, _ *Account) bool {
		res = append(res, address)
		return true
	})
	return res
}

// Clone creates an independent deep copy of the world state.
func (s *WorldState) Clone() *WorldState {
	res := NewWorldState()
	s.ForEach(func(address tosca.Address, account *Account) bool {
		clone := account.Clone()
		res.accounts.ReplaceOrInsert(entry{address: address, account: &clone})
		return true
	})
	return res
}

// Equal returns true if both world states contain the same set of accounts
// with equal content. Unlike for account content, an account holding only
// default values is not equal to a missing account.
func (s *WorldState) Equal(other *WorldState) bool {
	if s.Len() != other.Len() {
		return false
	}
	equal := true
	s.ForEach(func(address tosca.Address, account *Account) bool {
		e, found := other.accounts.Get(entry{address: address})
		equal = found && account.Equal(e.account)
		return equal
	})
	return equal
}

// Diff lists the differences between this and the other world state.
func (s *WorldState) Diff(other *WorldState) []string {
	var res []string
	s.ForEach(func(address tosca.Address, account *Account) bool {
		e, found := other.accounts.Get(entry{address: address})
		if !found {
			res = append(res, fmt.Sprintf("%v/missing account in second state", address))
		} else {
			res = append(res, account.Diff(fmt.Sprintf("%v/", address), e.account)...)
		}
		return true
	})
	other.ForEach(func(address tosca.Address, _ *Account) bool {
		if !s.Exists(address) {
			res = append(res, fmt.Sprintf("%v/missing account in first state", address))
		}
		return true
	})
	return res
}

func (s *WorldState) String() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("WorldState with %d accounts:", s.Len()))
	s.ForEach(func(address tosca.Address, account *Account) bool {
		builder.WriteString(fmt.Sprintf("\n\t%v: balance=%v, nonce=%v, code=0x%x",
			address, account.Balance, account.Nonce, []byte(account.Code)))
		for _, key := range account.Storage.Keys() {
			builder.WriteString(fmt.Sprintf("\n\t\tstorage[%v]=%v", key, account.Storage[key]))
		}
		for _, key := range account.TransientStorage.Keys() {
			builder.WriteString(fmt.Sprintf("\n\t\ttransient[%v]=%v", key, account.TransientStorage[key]))
		}
		return true
	})
	return builder.String()
}

func keccak(data []byte) tosca.Hash {
	res := tosca.Hash{}
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	hasher.Sum(res[0:0])
	return res
}
