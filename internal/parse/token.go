// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parse

import (
	"errors"
	"strings"
)

// ErrTooManyArgs is returned when a command carries more tokens than the
// configured maximum.
var ErrTooManyArgs = errors.New("too many arguments in command")

// Tokenize splits a single command into its argument vector on Unicode
// whitespace. Empty tokens are dropped and order is preserved; the first
// token, if any, names the executable or builtin. The input is not
// mutated and the returned tokens are owned by the caller.
//
// max bounds the number of tokens; zero or negative means unbounded.
// Exceeding the bound is an explicit ErrTooManyArgs, never a silent
// truncation.
func Tokenize(command string, max int) ([]string, error) {
	tokens := strings.Fields(command)

	if max > 0 && len(tokens) > max {
		return nil, ErrTooManyArgs
	}

	return tokens, nil
}

// Trim returns command without leading or trailing whitespace (space, tab,
// newline and friends). An all-whitespace or empty input yields "".
// The result shares the input's backing storage; nothing is copied.
func Trim(command string) string {
	return strings.TrimSpace(command)
}
