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
	"encoding/json"
	"fmt"
	"io"
	"os"

	cliUtils "github.com/Fantom-foundation/Tosca-state/go/driver/cli"
	"github.com/Fantom-foundation/Tosca-state/go/state"
	"github.com/Fantom-foundation/Tosca-state/go/tosca"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var ApplyCmd = cliUtils.AddCommonFlags(cli.Command{
	Action:    doApply,
	Name:      "apply",
	Usage:     "Applies a sequence of change sets to a world state and prints the result",
	ArgsUsage: "<changeset.json>...",
	Flags: []cli.Flag{
		cliUtils.GenesisFlag,
		cliUtils.PrestateFlag,
		cliUtils.OutputFlag,
	},
})

const errConflictingInitialState = tosca.ConstError("genesis and prestate are mutually exclusive")

func doApply(context *cli.Context) error {
	genesis := cliUtils.GenesisFlag.Fetch(context)
	prestate := cliUtils.PrestateFlag.Fetch(context)
	if genesis != "" && prestate != "" {
		return errConflictingInitialState
	}

	worldState, err := loadInitialState(genesis, prestate)
	if err != nil {
		return err
	}
	log.Info("Loaded initial world state", "accounts", worldState.Len())

	for _, filename := range context.Args().Slice() {
		changes, err := loadChangeSet(filename)
		if err != nil {
			return err
		}
		worldState.ApplyChangeSet(&changes)
		log.Info("Applied change set", "file", filename,
			"touched", len(changes.Addresses()), "deleted", len(changes.Deletes),
			"accounts", worldState.Len())
	}

	if filename := cliUtils.OutputFlag.Fetch(context); filename != "" {
		return writeWorldStateFile(filename, worldState)
	}
	return writeWorldState(os.Stdout, worldState)
}

// loadInitialState creates the world state to apply change sets to. At most
// one of the given file names may be non-empty.
func loadInitialState(genesis, prestate string) (*state.WorldState, error) {
	switch {
	case genesis != "":
		var alloc types.GenesisAlloc
		if err := readJson(genesis, &alloc); err != nil {
			return nil, fmt.Errorf("failed to load genesis allocation: %w", err)
		}
		return state.NewWorldStateFromAlloc(alloc), nil
	case prestate != "":
		res := state.NewWorldState()
		if err := readJson(prestate, res); err != nil {
			return nil, fmt.Errorf("failed to load prestate: %w", err)
		}
		return res, nil
	}
	return state.NewWorldState(), nil
}

func loadChangeSet(filename string) (tosca.ChangeSet, error) {
	var changes tosca.ChangeSet
	if err := readJson(filename, &changes); err != nil {
		return tosca.ChangeSet{}, fmt.Errorf("failed to load change set: %w", err)
	}
	return changes, nil
}

func readJson(filename string, target any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("invalid content in %s: %w", filename, err)
	}
	return nil
}

// writeWorldStateFile writes the JSON dump of the given world state to the
// named file. Errors closing the file are reported.
func writeWorldStateFile(filename string, worldState *state.WorldState) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()
	return writeWorldState(file, worldState)
}

func writeWorldState(out io.Writer, worldState *state.WorldState) error {
	data, err := json.MarshalIndent(worldState, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode world state: %w", err)
	}
	if _, err := fmt.Fprintf(out, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write world state: %w", err)
	}
	return nil
}
