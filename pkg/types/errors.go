// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// ErrMissingInput is returned when a run's input file or directory does not
// exist. It aborts the run before any output is written.
var ErrMissingInput = errors.New("input not found")
