//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package media

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTopologyChanged indicates that the kernel topology kept changing
// while it was being retrieved and the retry budget was exhausted.
// Callers may retry the whole query at their own pace.
var ErrTopologyChanged = errors.New("media topology changed during retrieval")

// IsTopologyChanged returns true if the error indicates concurrent
// topology modification.
func IsTopologyChanged(err error) bool {
	return errors.Cause(err) == ErrTopologyChanged
}

type errInvalidTopology struct {
	reason string
}

func (e *errInvalidTopology) Error() string {
	return fmt.Sprintf("invalid media topology: %s", e.reason)
}

// ErrInvalidTopology returns an error indicating that the kernel
// reported a topology that failed referential validation. This points
// at an ABI mismatch or a corrupted read and is never repaired locally.
func ErrInvalidTopology(format string, args ...interface{}) error {
	return &errInvalidTopology{reason: fmt.Sprintf(format, args...)}
}

// IsInvalidTopology returns true if the error indicates a topology
// that failed validation.
func IsInvalidTopology(err error) bool {
	_, ok := errors.Cause(err).(*errInvalidTopology)
	return ok
}
