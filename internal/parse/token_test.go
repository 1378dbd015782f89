// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeEmptyLine(t *testing.T) {
	tokens, err := Tokenize("", 10)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenizeAllWhitespace(t *testing.T) {
	tokens, err := Tokenize(" \t\n  ", 10)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenizeSimpleCommand(t *testing.T) {
	tokens, err := Tokenize("ls -la", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"ls", "-la"}, tokens)
}

func TestTokenizeCollapsesRuns(t *testing.T) {
	tokens, err := Tokenize("  echo \t hello   world  ", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "hello", "world"}, tokens)
}

func TestTokenizeOverflowIsExplicit(t *testing.T) {
	_, err := Tokenize("a b c d", 3)
	require.ErrorIs(t, err, ErrTooManyArgs)
}

func TestTokenizeUnbounded(t *testing.T) {
	tokens, err := Tokenize("a b c d e f g h i j k l", 0)
	require.NoError(t, err)
	assert.Len(t, tokens, 12)
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "both sides", in: "  cd /tmp  ", want: "cd /tmp"},
		{name: "tabs and newlines", in: "\t ls \n", want: "ls"},
		{name: "already trimmed", in: "pwd", want: "pwd"},
		{name: "all whitespace", in: " \t ", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Trim(tc.in))
		})
	}
}
