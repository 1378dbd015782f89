// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// ErrInterrupted is returned by a LineReader when the user aborted the
// current line (Ctrl-C); the session shows a fresh prompt.
var ErrInterrupted = errors.New("line read interrupted")

// LineReader supplies one line of input per prompt cycle. io.EOF means
// the input is exhausted and the session should say goodbye.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// NewReader selects the input implementation: line editing with history
// when stdin is a terminal, plain buffered reads otherwise (pipes,
// heredocs, tests).
func NewReader(fsys afero.Fs, historyFile string) LineReader {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return newLinerReader(fsys, historyFile)
	}

	return NewScannerReader(os.Stdin, os.Stdout)
}

type linerReader struct {
	state       *liner.State
	fsys        afero.Fs
	historyFile string
}

func newLinerReader(fsys afero.Fs, historyFile string) *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	r := &linerReader{state: state, fsys: fsys, historyFile: historyFile}
	r.loadHistory()

	return r
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupted
	}

	return line, err
}

func (r *linerReader) AppendHistory(line string) {
	r.state.AppendHistory(line)
}

// Close persists history and restores the terminal mode.
func (r *linerReader) Close() error {
	r.saveHistory()

	return r.state.Close()
}

func (r *linerReader) loadHistory() {
	if r.historyFile == "" {
		return
	}

	f, err := r.fsys.Open(r.historyFile)
	if err != nil {
		return
	}
	defer f.Close() //nolint:errcheck

	_, _ = r.state.ReadHistory(f)
}

func (r *linerReader) saveHistory() {
	if r.historyFile == "" {
		return
	}

	f, err := r.fsys.OpenFile(r.historyFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close() //nolint:errcheck

	_, _ = r.state.WriteHistory(f)
}

type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScannerReader reads lines from in without terminal handling, echoing
// the prompt to out before each read.
func NewScannerReader(in io.Reader, out io.Writer) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *scannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return r.scanner.Text(), nil
}

func (r *scannerReader) AppendHistory(string) {}

func (r *scannerReader) Close() error { return nil }
