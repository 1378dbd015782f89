// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sigpolicy implements the session-wide signal disposition of the
// shell. The interactive session must survive the job-control keystrokes
// (Ctrl-C, Ctrl-Z) that are meant for whichever foreground child is
// running, so it traps SIGINT and SIGTSTP for its own process. Children do
// not inherit the trap: dispositions taken over by signal.Notify revert to
// the OS default across exec, which is exactly the behaviour a foreground
// command needs.
//
// The policy has two lifecycle points only: Install at session start and
// Close at session end. There is no other signal state in the program.
package sigpolicy

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mshell-dev/msh/internal/ctxlog"
)

var jobControlSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTSTP,
}

// Policy represents an installed signal policy. Its zero value is not
// usable; obtain one via Install.
type Policy struct {
	ch   chan os.Signal
	done chan struct{}
}

// Install traps the job-control signals for the calling process and starts
// draining them. The returned Policy must be closed when the session ends.
func Install(ctx context.Context) *Policy {
	p := &Policy{
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}

	ctxlog.Debug(ctx, "installing signal policy", "signals", jobControlSignals)
	signal.Notify(p.ch, jobControlSignals...)

	go p.drain(ctx)

	return p
}

// drain consumes trapped signals so the session never stops or dies on
// them. The foreground child, if any, receives the same terminal signal
// directly from the OS and handles it with the default disposition.
func (p *Policy) drain(ctx context.Context) {
	defer close(p.done)

	for sig := range p.ch {
		ctxlog.Debug(ctx, "trapped job-control signal", "signal", sig.String())
	}
}

// Close restores the default dispositions and stops the drain goroutine.
func (p *Policy) Close() {
	signal.Stop(p.ch)
	close(p.ch)
	<-p.done
}
