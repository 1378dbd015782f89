// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runline

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// ErrGroupHasFailures is set on a group result when any of its children
// failed.
var ErrGroupHasFailures = errors.New("group has failed commands")

// Result represents the outcome of running one command or group.
type Result struct {
	Label    string  // Label of the command or group
	ExitCode int     // Exit code; -1 when the command never ran cleanly
	Stopped  bool    // Child was stopped by a job-control signal, not terminated
	Error    error   // Error, if any
	Children Results // Nested results for groups
}

// Results is an ordered collection of results.
type Results []*Result

// HasError reports whether any result in the tree failed.
func (r Results) HasError() bool {
	for _, v := range r {
		if v.Error != nil || v.ExitCode != 0 {
			return true
		}

		if v.Children.HasError() {
			return true
		}
	}

	return false
}

// Err flattens every error in the tree into a single aggregate error, or
// nil when everything succeeded.
func (r Results) Err() error {
	var merr *multierror.Error

	for _, v := range r {
		if v.Error != nil {
			merr = multierror.Append(merr, v.Error)
		}

		if err := v.Children.Err(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}
