// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package parse turns one raw input line into the shell's line model: an
// operator kind plus the trimmed clauses it joins. Operators are literal
// substrings recognised with a fixed precedence: "&&" (parallel fan-out),
// then "##" (sequential chain), then ">" (stdout redirection). A line
// mixing different operator kinds, or carrying more than one redirection
// target, is rejected outright rather than silently interpreted.
package parse

import (
	"errors"
	"strings"
)

// Line operators, recognised as literal substrings.
const (
	MarkerParallel   = "&&"
	MarkerSequential = "##"
	MarkerRedirect   = ">"
)

var (
	// ErrTooManyClauses is returned when a parallel group exceeds the
	// configured clause limit.
	ErrTooManyClauses = errors.New("too many clauses in parallel group")
	// ErrUnsupportedCombination is returned when a line mixes operator
	// kinds or repeats the redirection marker.
	ErrUnsupportedCombination = errors.New("unsupported combination of operators")
	// ErrRedirectSyntax is returned when a redirection is missing its
	// command or its target filename.
	ErrRedirectSyntax = errors.New("redirection requires a command and a target")
)

// Kind identifies which operator, if any, a line uses.
type Kind int

const (
	// KindSingle is a line with no operator: one command.
	KindSingle Kind = iota
	// KindParallel is a "&&" line: clauses launched concurrently.
	KindParallel
	// KindSequential is a "##" line: clauses run one after another.
	KindSequential
	// KindRedirect is a ">" line: one command with stdout sent to a file.
	KindRedirect
)

// String returns a short name for the kind, used in debug logs.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindParallel:
		return "parallel"
	case KindSequential:
		return "sequential"
	case KindRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Line is the parsed model of one input line.
type Line struct {
	Kind    Kind
	Clauses []string // trimmed, non-empty command substrings
	Target  string   // redirection target filename, KindRedirect only
}

// Limits bounds the shape of a parsed line. Zero values mean unbounded.
type Limits struct {
	MaxArgs    int // tokens per command, enforced by Tokenize
	MaxClauses int // clauses per parallel group
}

// Detect reports which operator a line uses, first match wins in
// precedence order.
func Detect(line string) Kind {
	switch {
	case strings.Contains(line, MarkerParallel):
		return KindParallel
	case strings.Contains(line, MarkerSequential):
		return KindSequential
	case strings.Contains(line, MarkerRedirect):
		return KindRedirect
	default:
		return KindSingle
	}
}

// Parse splits a raw line into its operator kind and trimmed clauses.
// Empty clauses produced by consecutive markers are discarded. The input
// line is expected to be non-empty after trimming; a blank line yields a
// KindSingle result with no clauses, which callers treat as a no-op.
func Parse(line string, limits Limits) (*Line, error) {
	if err := checkCombination(line); err != nil {
		return nil, err
	}

	switch Detect(line) {
	case KindParallel:
		clauses := splitClauses(line, MarkerParallel)
		if limits.MaxClauses > 0 && len(clauses) > limits.MaxClauses {
			return nil, ErrTooManyClauses
		}

		return &Line{Kind: KindParallel, Clauses: clauses}, nil

	case KindSequential:
		return &Line{Kind: KindSequential, Clauses: splitClauses(line, MarkerSequential)}, nil

	case KindRedirect:
		command, target, _ := strings.Cut(line, MarkerRedirect)

		command = Trim(command)
		target = Trim(target)

		if command == "" || target == "" {
			return nil, ErrRedirectSyntax
		}

		return &Line{Kind: KindRedirect, Clauses: []string{command}, Target: target}, nil

	default:
		clauses := []string{}
		if trimmed := Trim(line); trimmed != "" {
			clauses = append(clauses, trimmed)
		}

		return &Line{Kind: KindSingle, Clauses: clauses}, nil
	}
}

// checkCombination rejects lines that mix operator kinds or repeat the
// redirection marker. The precedence-first dispatch would otherwise pick
// one interpretation silently and run something the user did not write.
func checkCombination(line string) error {
	kinds := 0

	if strings.Contains(line, MarkerParallel) {
		kinds++
	}

	if strings.Contains(line, MarkerSequential) {
		kinds++
	}

	redirects := strings.Count(line, MarkerRedirect)
	if redirects > 0 {
		kinds++
	}

	if kinds > 1 || redirects > 1 {
		return ErrUnsupportedCombination
	}

	return nil
}

func splitClauses(line, marker string) []string {
	parts := strings.Split(line, marker)
	clauses := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := Trim(part); trimmed != "" {
			clauses = append(clauses, trimmed)
		}
	}

	return clauses
}
