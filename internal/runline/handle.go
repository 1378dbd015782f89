// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runline

import (
	"context"
	"errors"
	"os"
	"syscall"

	"github.com/mshell-dev/msh/internal/ctxlog"
)

var (
	// ErrHandleAlreadyWaited is returned when Wait is called twice on
	// the same handle.
	ErrHandleAlreadyWaited = errors.New("process handle already waited on")
	// ErrWaitFailed is returned when the OS wait itself failed.
	ErrWaitFailed = errors.New("failed to wait for process")
)

// Handle owns one spawned child process. Its only operation is Wait,
// which consumes it; a handle must never be waited on twice and there is
// no kill or timeout path. Wait unblocks when the child terminates or
// stops, so a Ctrl-Z'd foreground child returns control to the session.
type Handle struct {
	label  string
	proc   *os.Process
	waited bool
}

// Pid returns the OS process identifier of the child.
func (h *Handle) Pid() int {
	return h.proc.Pid
}

// Wait blocks until the child terminates or stops and returns its
// result, consuming the handle. A stopped child stays alive; the shell
// forgets about it and returns to the prompt.
func (h *Handle) Wait(ctx context.Context) *Result {
	res := &Result{Label: h.label}

	if h.waited {
		res.ExitCode = -1
		res.Error = ErrHandleAlreadyWaited

		return res
	}

	h.waited = true

	// os.Process.Wait only returns on termination; WUNTRACED also
	// unblocks on a job-control stop.
	var ws syscall.WaitStatus

	_, err := syscall.Wait4(h.proc.Pid, &ws, syscall.WUNTRACED, nil)
	for errors.Is(err, syscall.EINTR) {
		_, err = syscall.Wait4(h.proc.Pid, &ws, syscall.WUNTRACED, nil)
	}

	if err != nil {
		res.ExitCode = -1
		res.Error = errors.Join(ErrWaitFailed, err)

		return res
	}

	switch {
	case ws.Stopped():
		res.Stopped = true
		ctxlog.Debug(ctx, "child stopped", "label", h.label, "pid", h.proc.Pid, "signal", ws.StopSignal())
	case ws.Signaled():
		res.ExitCode = -1
		ctxlog.Debug(ctx, "child killed", "label", h.label, "pid", h.proc.Pid, "signal", ws.Signal())
	default:
		res.ExitCode = ws.ExitStatus()
		ctxlog.Debug(ctx, "child terminated", "label", h.label, "pid", h.proc.Pid, "exitCode", res.ExitCode)
	}

	return res
}

// Pool is an ordered collection of process handles for one parallel
// group. Handles are drained strictly in the order they were added.
type Pool struct {
	handles []*Handle
}

// NewPool creates a pool sized for the given number of clauses.
func NewPool(capacity int) *Pool {
	return &Pool{handles: make([]*Handle, 0, capacity)}
}

// Add appends a handle to the pool. Nil handles (nothing was launched)
// are ignored.
func (p *Pool) Add(h *Handle) {
	if h == nil {
		return
	}

	p.handles = append(p.handles, h)
}

// Len returns the number of live handles in the pool.
func (p *Pool) Len() int {
	return len(p.handles)
}

// Drain waits for every handle in emission order and returns their
// results. The pool is empty afterwards.
func (p *Pool) Drain(ctx context.Context) Results {
	results := make(Results, 0, len(p.handles))

	for _, h := range p.handles {
		results = append(results, h.Wait(ctx))
	}

	p.handles = p.handles[:0]

	return results
}
