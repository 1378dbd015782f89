// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runline executes the commands of one parsed input line as OS
// child processes. A single command becomes an ExecCommand, a redirected
// command a RedirectCommand, and compound lines become a SerialGroup or a
// ParallelGroup of commands. The parent session stays single-threaded: a
// parallel group launches every child first and then drains the process
// pool in dispatch order, while a serial group starts and waits one
// command at a time.
package runline
