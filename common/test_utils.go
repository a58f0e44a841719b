//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package common

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertTrue asserts b is true.
func AssertTrue(t *testing.T, b bool, message string) {
	t.Helper()

	if !b {
		t.Fatal(message)
	}
}

// AssertFalse asserts b is false.
func AssertFalse(t *testing.T, b bool, message string) {
	t.Helper()

	if b {
		t.Fatal(message)
	}
}

// AssertEqual asserts b is equal to a and fails with a
// go-cmp diff otherwise.
func AssertEqual(t *testing.T, a, b interface{}, message string) {
	t.Helper()

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("%s (-want, +got):\n%s", message, diff)
	}
}

// CmpErr compares two errors for equality. Two errors are considered
// equal if they are both nil, or if the actual error message contains
// the expected error message.
func CmpErr(t *testing.T, want, got error) {
	t.Helper()

	if want == got {
		return
	}

	if want == nil {
		t.Fatalf("unexpected error: %v", got)
	}

	if got == nil {
		t.Fatalf("expected error %q, got nil", want)
	}

	if !strings.Contains(got.Error(), want.Error()) {
		t.Fatalf("unexpected error\n(wanted: %v, got: %v)", want, got)
	}
}

// ShowBufferOnFailure displays the contents of the log buffer
// if the test has failed.
func ShowBufferOnFailure(t *testing.T, buf interface{ String() string }) {
	t.Helper()

	if t.Failed() {
		t.Logf("captured log output:\n%s", buf.String())
	}
}

// CreateTestDir creates a temporary test directory and returns
// its path along with a cleanup function.
func CreateTestDir(t *testing.T) (string, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", strings.ReplaceAll(t.Name(), "/", "-"))
	if err != nil {
		t.Fatalf("failed to create test dir: %s", err)
	}

	return dir, func() {
		os.RemoveAll(dir)
	}
}
