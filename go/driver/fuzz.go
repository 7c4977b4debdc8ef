// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	cliUtils "github.com/Fantom-foundation/Tosca-state/go/driver/cli"
	"github.com/Fantom-foundation/Tosca-state/go/state"
	"github.com/Fantom-foundation/Tosca-state/go/state/gen"
	"github.com/Fantom-foundation/Tosca-state/go/tosca"
	"github.com/dsnet/golib/unitconv"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rand"
)

var FuzzCmd = cliUtils.AddCommonFlags(cli.Command{
	Action: doFuzz,
	Name:   "fuzz",
	Usage:  "Applies random change sets to world states and checks their effects",
	Flags: []cli.Flag{
		cliUtils.JobsFlag,
		cliUtils.SeedFlag,
		cliUtils.IterationsFlag,
	},
})

func doFuzz(context *cli.Context) error {
	jobCount := cliUtils.JobsFlag.Fetch(context)
	seed := cliUtils.SeedFlag.Fetch(context)
	iterations := cliUtils.IterationsFlag.Fetch(context)

	fmt.Printf("Fuzzing change sets with seed %d using %d jobs ...\n", seed, jobCount)

	var counter atomic.Int64
	stop := startProgressPrinter(&counter)
	err := fuzz(context.Context, seed, jobCount, iterations, &counter)
	stop()
	if err != nil {
		return err
	}
	fmt.Printf("Applied %d change sets, no issues found\n", counter.Load())
	return nil
}

// fuzz runs the given number of jobs, each applying random change sets to a
// world state it exclusively owns. The first detected issue aborts all jobs.
func fuzz(ctx context.Context, seed uint64, jobs, iterations int, counter *atomic.Int64) error {
	group, ctx := errgroup.WithContext(ctx)
	for job := 0; job < jobs; job++ {
		job := job
		group.Go(func() error {
			// Each job has its own reproducible random sequence.
			rnd := rand.New(seed, uint64(job))
			generator := gen.NewChangeSetGenerator()
			worldState := state.NewWorldState()
			for i := 0; i < iterations; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				changes, err := generator.Generate(rnd)
				if err != nil {
					return err
				}
				next, err := checkChangeSet(worldState, &changes)
				if err != nil {
					log.Error("Found issue", "seed", seed, "job", job, "iteration", i, "err", err)
					return fmt.Errorf("job %d, iteration %d: %w", job, i, err)
				}
				worldState = next
				counter.Add(1)
			}
			log.Debug("Job completed", "job", job, "accounts", worldState.Len())
			return nil
		})
	}
	return group.Wait()
}

func startProgressPrinter(counter *atomic.Int64) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()

		startTime := time.Now()
		lastTime := startTime
		lastCounter := int64(0)
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				current := counter.Load()
				rate := float64(current-lastCounter) / now.Sub(lastTime).Seconds()
				relativeTime := now.Sub(startTime)
				fmt.Printf(
					"[t=%4d:%02d] - Processing ~%s change sets per second, total %d\n",
					int(relativeTime.Seconds())/60, int(relativeTime.Seconds())%60,
					unitconv.FormatPrefix(rate, unitconv.SI, 0), current,
				)
				lastTime = now
				lastCounter = current
			}
		}
	}()
	return func() {
		close(done)
		<-finished
	}
}

// ErrViolation is reported for change sets whose effects on the world state
// deviate from the expected ones.
const ErrViolation = tosca.ConstError("change set application violates expectations")

// checkChangeSet applies the given change set to a copy of the given world
// state and checks the result. The original world state is not modified.
func checkChangeSet(before *state.WorldState, changes *tosca.ChangeSet) (*state.WorldState, error) {
	after := before.Clone()
	after.ApplyChangeSet(changes)

	var issues []string
	issue := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	again := after.Clone()
	again.ApplyChangeSet(changes)
	if !after.Equal(again) {
		issue("not idempotent: %v", after.Diff(again))
	}

	touched := map[tosca.Address]bool{}
	for _, address := range changes.Addresses() {
		touched[address] = true
		_, deleted := changes.Deletes[address]
		if deleted == after.Exists(address) {
			issue("unexpected existence of %v: %t", address, after.Exists(address))
		}
	}

	for slot, value := range changes.Storages {
		if _, deleted := changes.Deletes[slot.Address]; deleted {
			continue
		}
		if got := after.Storage(slot.Address, slot.Key); got != value {
			issue("unexpected storage value for %v: %v, wanted %v", slot, got, value)
		}
	}

	for slot, value := range changes.TransientStorages {
		if _, deleted := changes.Deletes[slot.Address]; deleted {
			continue
		}
		if got := after.TransientStorage(slot.Address, slot.Key); got != value {
			issue("unexpected transient storage value for %v: %v, wanted %v", slot, got, value)
		}
	}

	after.ForEach(func(address tosca.Address, account *state.Account) bool {
		for key, value := range account.Storage {
			if value.IsZero() {
				issue("zero value stored for %v/%v", address, key)
			}
		}
		if _, reset := changes.StorageResets[address]; reset {
			for key := range account.Storage {
				if _, written := changes.Storages[tosca.Slot{Address: address, Key: key}]; !written {
					issue("storage key %v of %v survived reset", key, address)
				}
			}
		}
		return true
	})

	before.ForEach(func(address tosca.Address, account *state.Account) bool {
		if touched[address] {
			return true
		}
		if got, found := after.Get(address); !found || !got.Equal(account) {
			issue("untouched account %v was modified", address)
		}
		return true
	})

	if len(issues) > 0 {
		return nil, fmt.Errorf("%w:\n\t%s\nchange set: %v", ErrViolation, strings.Join(issues, "\n\t"), changes)
	}
	return after, nil
}
