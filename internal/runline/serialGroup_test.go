// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeCmd struct {
	label    string
	exitCode int
	err      error
	onRun    func()
}

func (f *fakeCmd) Run(_ context.Context) Results {
	if f.onRun != nil {
		f.onRun()
	}

	return Results{&Result{Label: f.label, ExitCode: f.exitCode, Error: f.err}}
}

func (f *fakeCmd) GetLabel() string {
	return f.label
}

func TestSerialGroupRunsInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	var order []string

	group := &SerialGroup{
		Label: "seq",
		Commands: []Runnable{
			&fakeCmd{label: "first", onRun: func() { order = append(order, "first") }},
			&fakeCmd{label: "second", onRun: func() { order = append(order, "second") }},
			&fakeCmd{label: "third", onRun: func() { order = append(order, "third") }},
		},
	}

	results := group.Run(context.Background())
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Error)
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Len(t, results[0].Children, 3)
}

func TestSerialGroupFailureDoesNotAbortRemaining(t *testing.T) {
	defer goleak.VerifyNone(t)

	ran := false

	group := &SerialGroup{
		Commands: []Runnable{
			&fakeCmd{label: "bad", exitCode: 1, err: os.ErrNotExist},
			&fakeCmd{label: "good", onRun: func() { ran = true }},
		},
	}

	results := group.Run(context.Background())
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Error, ErrGroupHasFailures)
	assert.Equal(t, -1, results[0].ExitCode)
	assert.True(t, ran, "commands after a failure must still run")
}

// A sequential chain must serialize against the filesystem: a clause that
// reads a file written by the previous clause observes it deterministically.
func TestSerialGroupWriteThenReadIsDeterministic(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "handoff.txt")

	var got []byte

	group := &SerialGroup{
		Commands: []Runnable{
			&FuncCommand{Label: "write", Fn: func(context.Context) error {
				return os.WriteFile(path, []byte("payload"), 0o644)
			}},
			&FuncCommand{Label: "read", Fn: func(context.Context) error {
				var err error
				got, err = os.ReadFile(path)

				return err
			}},
		},
	}

	results := group.Run(context.Background())
	require.NoError(t, results[0].Error)
	assert.Equal(t, "payload", string(got))
}

func TestSerialGroupStopsOnCancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())

	ran := 0

	group := &SerialGroup{
		Commands: []Runnable{
			&fakeCmd{label: "first", onRun: func() { ran++; cancel() }},
			&fakeCmd{label: "second", onRun: func() { ran++ }},
		},
	}

	_ = group.Run(ctx)
	assert.Equal(t, 1, ran)
}

func TestFuncCommandNilFn(t *testing.T) {
	cmd := &FuncCommand{Label: "nothing"}

	results := cmd.Run(context.Background())
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].ExitCode)
	assert.NoError(t, results[0].Error)
}
