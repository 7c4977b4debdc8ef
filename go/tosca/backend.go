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

//go:generate mockgen -source backend.go -destination backend_mock.go -package tosca

// RuntimeEnvironment provides the block and chain context an EVM execution
// engine may query during execution.
type RuntimeEnvironment interface {
	BlockHash(number Word) Hash
	BlockNumber() Word
	BlockCoinbase() Address
	BlockTimestamp() Word
	BlockDifficulty() Word
	// BlockRandomness returns the randomness of the current block, if any.
	// If the second result is false, randomness based operations should take
	// their fallback path.
	BlockRandomness() (Hash, bool)
	BlockGasLimit() Word
	BlockBaseFeePerGas() Word
	ChainId() Word
}

// RuntimeBaseBackend provides read access to the accounts of a world state.
// All accessors are total: unknown accounts and storage slots are reported
// with their default values.
type RuntimeBaseBackend interface {
	Balance(Address) Value
	Code(Address) Code
	// Exists reports whether an account record is present for the given
	// address, independently of whether its content is all default.
	Exists(Address) bool
	Storage(Address, Key) Word
	TransientStorage(Address, Key) Word
	Nonce(Address) Value
}

// RuntimeBackend is the full capability set an execution engine requires of
// a world state: read access to accounts and the environment, and the
// ability to fold the net effect of executed transactions into the state.
type RuntimeBackend interface {
	RuntimeEnvironment
	RuntimeBaseBackend

	// ApplyChangeSet folds the given changeset into the backend. Subsequent
	// reads observe the updated state.
	ApplyChangeSet(*ChangeSet)
}
