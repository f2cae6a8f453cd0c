// Package testutil provides shared test assertion helpers.
package testutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
func AssertEqual(t *testing.T, got, want interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless err matches the wanted sentinel.
func AssertErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Errorf("got error %v, want %v", err, want)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, format string, args ...interface{}) {
	t.Helper()
	if !condition {
		t.Errorf(format, args...)
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, format string, args ...interface{}) {
	t.Helper()
	if condition {
		t.Errorf(format, args...)
	}
}
