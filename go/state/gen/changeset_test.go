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
	"errors"
	"slices"
	"testing"

	"pgregory.net/rand"

	"github.com/Fantom-foundation/Tosca-state/go/tosca"
)

func TestChangeSetGenerator_SameSeedProducesSameChangeSet(t *testing.T) {
	generator := NewChangeSetGenerator()
	for seed := uint64(0); seed < 20; seed++ {
		a, err := generator.Generate(rand.New(seed))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := generator.Generate(rand.New(seed))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.String() != b.String() {
			t.Errorf("seed %d produced different change sets:\n%v\n%v", seed, a.String(), b.String())
		}
	}
}

func TestChangeSetGenerator_EntriesAreDrawnFromPools(t *testing.T) {
	generator := NewChangeSetGenerator()
	generator.NumAddresses = 3
	generator.NumKeys = 2
	addresses := generator.Addresses()
	keys := generator.Keys()

	rnd := rand.New(0)
	for i := 0; i < 100; i++ {
		changes, err := generator.Generate(rnd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, address := range changes.Addresses() {
			if !slices.Contains(addresses, address) {
				t.Fatalf("address %v not in pool %v", address, addresses)
			}
		}
		for slot := range changes.Storages {
			if !slices.Contains(keys, slot.Key) {
				t.Fatalf("key %v not in pool %v", slot.Key, keys)
			}
		}
		for address, code := range changes.Codes {
			if len(code) > generator.MaxCodeSize {
				t.Fatalf("code of %v exceeds maximum size: %d", address, len(code))
			}
		}
	}
}

func TestChangeSetGenerator_ProducesAllKindsOfUpdates(t *testing.T) {
	generator := NewChangeSetGenerator()
	rnd := rand.New(0)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		changes, err := generator.Generate(rnd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen["balance"] = seen["balance"] || len(changes.Balances) > 0
		seen["code"] = seen["code"] || len(changes.Codes) > 0
		seen["nonce"] = seen["nonce"] || len(changes.Nonces) > 0
		seen["reset"] = seen["reset"] || len(changes.StorageResets) > 0
		seen["storage"] = seen["storage"] || len(changes.Storages) > 0
		seen["transient"] = seen["transient"] || len(changes.TransientStorages) > 0
		seen["delete"] = seen["delete"] || len(changes.Deletes) > 0
		for _, value := range changes.Storages {
			seen["zero"] = seen["zero"] || value == (tosca.Word{})
		}
	}
	for _, kind := range []string{"balance", "code", "nonce", "reset", "storage", "transient", "delete", "zero"} {
		if !seen[kind] {
			t.Errorf("generator never produced %s updates", kind)
		}
	}
}

func TestChangeSetGenerator_ZeroEntriesProducesEmptyChangeSet(t *testing.T) {
	generator := NewChangeSetGenerator()
	generator.MaxEntries = 0
	changes, err := generator.Generate(rand.New(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changes.IsEmpty() {
		t.Errorf("expected empty change set, got %v", changes.String())
	}
}

func TestChangeSetGenerator_InvalidConfigurationsAreRejected(t *testing.T) {
	tests := map[string]struct {
		generator ChangeSetGenerator
		want      error
	}{
		"no_addresses":        {ChangeSetGenerator{NumKeys: 1}, ErrEmptyPool},
		"no_keys":             {ChangeSetGenerator{NumAddresses: 1}, ErrEmptyPool},
		"negative_entries":    {ChangeSetGenerator{NumAddresses: 1, NumKeys: 1, MaxEntries: -1}, ErrNegativeLimit},
		"negative_code_sizes": {ChangeSetGenerator{NumAddresses: 1, NumKeys: 1, MaxCodeSize: -1}, ErrNegativeLimit},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := test.generator.Generate(rand.New(0))
			if !errors.Is(err, test.want) {
				t.Errorf("unexpected error, wanted %v, got %v", test.want, err)
			}
		})
	}
}
