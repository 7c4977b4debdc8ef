// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package overlay

import (
	"bytes"
	"testing"

	"go.uber.org/mock/gomock"
	"pgregory.net/rand"

	"github.com/Fantom-foundation/Tosca-state/go/state"
	"github.com/Fantom-foundation/Tosca-state/go/state/gen"
	"github.com/Fantom-foundation/Tosca-state/go/tosca"
)

func TestBackend_ReadsFallThroughToBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := tosca.NewMockRuntimeBackend(ctrl)
	a, k := tosca.Address{1}, tosca.Key{2}

	base.EXPECT().Balance(a).Return(tosca.NewValue(10))
	base.EXPECT().Code(a).Return(tosca.Code{0x01})
	base.EXPECT().Nonce(a).Return(tosca.NewValue(3))
	base.EXPECT().Exists(a).Return(true)
	base.EXPECT().Storage(a, k).Return(tosca.Word{4})
	base.EXPECT().TransientStorage(a, k).Return(tosca.Word{5})

	backend := New(base)
	if want, got := tosca.NewValue(10), backend.Balance(a); want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
	if want, got := (tosca.Code{0x01}), backend.Code(a); !bytes.Equal(want, got) {
		t.Errorf("unexpected code, wanted %x, got %x", want, got)
	}
	if want, got := tosca.NewValue(3), backend.Nonce(a); want != got {
		t.Errorf("unexpected nonce, wanted %v, got %v", want, got)
	}
	if !backend.Exists(a) {
		t.Errorf("account should exist")
	}
	if want, got := (tosca.Word{4}), backend.Storage(a, k); want != got {
		t.Errorf("unexpected storage, wanted %v, got %v", want, got)
	}
	if want, got := (tosca.Word{5}), backend.TransientStorage(a, k); want != got {
		t.Errorf("unexpected transient storage, wanted %v, got %v", want, got)
	}
}

func TestBackend_EnvironmentIsServedByBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := tosca.NewMockRuntimeBackend(ctrl)

	base.EXPECT().BlockNumber().Return(tosca.NewWord(12))
	base.EXPECT().BlockRandomness().Return(tosca.Hash{1}, true)
	base.EXPECT().ChainId().Return(tosca.NewWord(250))

	backend := New(base)
	if want, got := tosca.NewWord(12), backend.BlockNumber(); want != got {
		t.Errorf("unexpected block number, wanted %v, got %v", want, got)
	}
	if randomness, found := backend.BlockRandomness(); !found || randomness != (tosca.Hash{1}) {
		t.Errorf("unexpected randomness: %v, %t", randomness, found)
	}
	if want, got := tosca.NewWord(250), backend.ChainId(); want != got {
		t.Errorf("unexpected chain id, wanted %v, got %v", want, got)
	}
}

func TestBackend_BufferedWritesShadowBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := tosca.NewMockRuntimeBackend(ctrl) // no calls expected
	a, k := tosca.Address{1}, tosca.Key{2}

	backend := New(base)
	backend.SetBalance(a, tosca.NewValue(1))
	backend.SetCode(a, tosca.Code{0x02})
	backend.SetNonce(a, tosca.NewValue(3))
	backend.SetStorage(a, k, tosca.Word{4})
	backend.SetTransientStorage(a, k, tosca.Word{5})

	if want, got := tosca.NewValue(1), backend.Balance(a); want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
	if want, got := (tosca.Code{0x02}), backend.Code(a); !bytes.Equal(want, got) {
		t.Errorf("unexpected code, wanted %x, got %x", want, got)
	}
	if want, got := tosca.NewValue(3), backend.Nonce(a); want != got {
		t.Errorf("unexpected nonce, wanted %v, got %v", want, got)
	}
	if !backend.Exists(a) {
		t.Errorf("written account should exist")
	}
	if want, got := (tosca.Word{4}), backend.Storage(a, k); want != got {
		t.Errorf("unexpected storage, wanted %v, got %v", want, got)
	}
	if want, got := (tosca.Word{5}), backend.TransientStorage(a, k); want != got {
		t.Errorf("unexpected transient storage, wanted %v, got %v", want, got)
	}
}

func TestBackend_DeletedAccountsDoNotConsultBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := tosca.NewMockRuntimeBackend(ctrl) // no calls expected
	a, k := tosca.Address{1}, tosca.Key{2}

	backend := New(base)
	backend.SetBalance(a, tosca.NewValue(1))
	backend.Delete(a)
	backend.SetStorage(a, k, tosca.Word{1})

	if backend.Exists(a) {
		t.Errorf("deleted account should not exist")
	}
	if got := backend.Balance(a); got != (tosca.Value{}) {
		t.Errorf("unexpected balance: %v", got)
	}
	if got := backend.Code(a); len(got) != 0 {
		t.Errorf("unexpected code: %x", got)
	}
	if got := backend.Nonce(a); got != (tosca.Value{}) {
		t.Errorf("unexpected nonce: %v", got)
	}
	if got := backend.Storage(a, k); got != (tosca.Word{}) {
		t.Errorf("unexpected storage: %v", got)
	}
	if got := backend.TransientStorage(a, k); got != (tosca.Word{}) {
		t.Errorf("unexpected transient storage: %v", got)
	}
}

func TestBackend_ResetStorageHidesBaseAndEarlierWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := tosca.NewMockRuntimeBackend(ctrl) // no calls expected
	a := tosca.Address{1}

	backend := New(base)
	backend.SetStorage(a, tosca.Key{1}, tosca.Word{1})
	backend.ResetStorage(a)
	backend.SetStorage(a, tosca.Key{2}, tosca.Word{2})

	if got := backend.Storage(a, tosca.Key{1}); got != (tosca.Word{}) {
		t.Errorf("write before reset should be dropped, got %v", got)
	}
	if got := backend.Storage(a, tosca.Key{3}); got != (tosca.Word{}) {
		t.Errorf("base storage should be hidden by reset, got %v", got)
	}
	if want, got := (tosca.Word{2}), backend.Storage(a, tosca.Key{2}); want != got {
		t.Errorf("write after reset should be visible, wanted %v, got %v", want, got)
	}

	changes := backend.ChangeSet()
	if _, found := changes.Storages[tosca.Slot{Address: a, Key: tosca.Key{1}}]; found {
		t.Errorf("write before reset should not be exported")
	}
}

func TestBackend_ClearTransientStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := tosca.NewMockRuntimeBackend(ctrl)
	a, k := tosca.Address{1}, tosca.Key{1}
	base.EXPECT().TransientStorage(a, k).Return(tosca.Word{})

	backend := New(base)
	backend.SetTransientStorage(a, k, tosca.Word{1})
	backend.ClearTransientStorage()

	if got := backend.TransientStorage(a, k); got != (tosca.Word{}) {
		t.Errorf("transient storage should be cleared, got %v", got)
	}
	if changes := backend.ChangeSet(); len(changes.TransientStorages) != 0 {
		t.Errorf("cleared transient storage should not be exported")
	}
}

func TestBackend_ClearTransientStorageKeepsBaseValues(t *testing.T) {
	base := state.NewWorldState()
	a, k := tosca.Address{1}, tosca.Key{1}
	persisted := tosca.ChangeSet{}
	persisted.SetTransientStorage(a, k, tosca.Word{7})
	base.ApplyChangeSet(&persisted)

	backend := New(base)
	backend.SetTransientStorage(a, k, tosca.Word{8})
	backend.ClearTransientStorage()

	if want, got := (tosca.Word{7}), backend.TransientStorage(a, k); want != got {
		t.Errorf("unexpected transient storage after clear, wanted %v, got %v", want, got)
	}

	changes := backend.ChangeSet()
	base.ApplyChangeSet(&changes)
	if want, got := (tosca.Word{7}), base.TransientStorage(a, k); want != got {
		t.Errorf("unexpected transient storage in base, wanted %v, got %v", want, got)
	}
}

func TestBackend_ChangeSetIsIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := tosca.NewMockRuntimeBackend(ctrl)
	a := tosca.Address{1}

	code := tosca.Code{0x01}
	backend := New(base)
	backend.SetCode(a, code)
	code[0] = 0xFF

	changes := backend.ChangeSet()
	changes.Codes[a][0] = 0xEE
	changes.SetBalance(a, tosca.NewValue(1))

	if got := backend.Code(a)[0]; got != 0x01 {
		t.Errorf("buffered code modified externally, got %x", got)
	}
	if _, found := backend.ChangeSet().Balances[a]; found {
		t.Errorf("buffered balances modified through exported change set")
	}
}

// TestBackend_ReadsMatchAppliedChangeSet checks that an overlay exposes the
// same state as its base after applying the exported change set.
func TestBackend_ReadsMatchAppliedChangeSet(t *testing.T) {
	generator := gen.NewChangeSetGenerator()
	addresses := generator.Addresses()
	keys := generator.Keys()

	rnd := rand.New(0)
	for i := 0; i < 200; i++ {
		initial, err := generator.Generate(rnd)
		if err != nil {
			t.Fatalf("failed to generate change set: %v", err)
		}
		base := state.NewWorldState()
		base.ApplyChangeSet(&initial)

		backend := New(base)
		for j := rnd.Intn(20); j > 0; j-- {
			address := addresses[rnd.Intn(len(addresses))]
			key := keys[rnd.Intn(len(keys))]
			value := tosca.NewWord(rnd.Uint64n(3))
			switch rnd.Intn(8) {
			case 0:
				backend.SetBalance(address, tosca.NewValue(rnd.Uint64()))
			case 1:
				backend.SetCode(address, tosca.Code{byte(rnd.Intn(256))})
			case 2:
				backend.SetNonce(address, tosca.NewValue(rnd.Uint64()))
			case 3:
				backend.ResetStorage(address)
			case 4:
				backend.SetStorage(address, key, value)
			case 5:
				backend.SetTransientStorage(address, key, value)
			case 6:
				backend.Delete(address)
			case 7:
				backend.ClearTransientStorage()
			}
		}

		expected := base.Clone()
		changes := backend.ChangeSet()
		expected.ApplyChangeSet(&changes)

		for _, address := range addresses {
			if want, got := expected.Exists(address), backend.Exists(address); want != got {
				t.Fatalf("unexpected existence of %v, wanted %t, got %t\n%v", address, want, got, changes.String())
			}
			if want, got := expected.Balance(address), backend.Balance(address); want != got {
				t.Fatalf("unexpected balance of %v, wanted %v, got %v", address, want, got)
			}
			if want, got := expected.Code(address), backend.Code(address); !bytes.Equal(want, got) {
				t.Fatalf("unexpected code of %v, wanted %x, got %x", address, want, got)
			}
			if want, got := expected.Nonce(address), backend.Nonce(address); want != got {
				t.Fatalf("unexpected nonce of %v, wanted %v, got %v", address, want, got)
			}
			for _, key := range keys {
				if want, got := expected.Storage(address, key), backend.Storage(address, key); want != got {
					t.Fatalf("unexpected storage of %v/%v, wanted %v, got %v", address, key, want, got)
				}
				if want, got := expected.TransientStorage(address, key), backend.TransientStorage(address, key); want != got {
					t.Fatalf("unexpected transient storage of %v/%v, wanted %v, got %v", address, key, want, got)
				}
			}
		}
	}
}
