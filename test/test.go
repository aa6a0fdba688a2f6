// This file is part of Gossim.
//
// Gossim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gossim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gossim.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains the helper functions used by the unit tests
// throughout the project. The Expect* functions report a test error through
// the passed testing.T and also return whether the expectation held, for the
// rare occasions a test wants to bail out early.
package test

import (
	"reflect"
	"testing"

	"github.com/gossim/gossim/curated"
)

// ExpectSuccess is used to test for a positive result. the supported types
// are bool (success is true) and error (success is a nil error). an untyped
// nil is also a success, for the common case of a nil error held in an
// interface.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}
	case error:
		if v != nil {
			t.Errorf("expected success (error: %v)", v)
			return false
		}
	case nil:
	default:
		t.Fatalf("unsupported type (%T) for ExpectSuccess()", v)
		return false
	}
	return true
}

// ExpectFailure is used to test for a negative result. the supported types
// are bool (failure is false) and error (failure is a non-nil error). an
// untyped nil fails the expectation.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}
	case error:
		if v == nil {
			t.Errorf("expected failure (error)")
			return false
		}
	case nil:
		t.Errorf("expected failure (nil)")
		return false
	default:
		t.Fatalf("unsupported type (%T) for ExpectFailure()", v)
		return false
	}
	return true
}

// ExpectEquality compares a value against an expected value.
func ExpectEquality(t *testing.T, value interface{}, expect interface{}) bool {
	t.Helper()

	if !reflect.DeepEqual(value, expect) {
		t.Errorf("equality test of type %T failed: %v does not equal %v", value, value, expect)
		return false
	}
	return true
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality(t *testing.T, value interface{}, expect interface{}) bool {
	t.Helper()

	if reflect.DeepEqual(value, expect) {
		t.Errorf("inequality test of type %T failed: %v equals %v", value, value, expect)
		return false
	}
	return true
}

// ExpectPanic runs the supplied function and checks that it panics with a
// curated error matching the given pattern. the construction functions in
// this project panic on circuit description defects, so tests of those
// defects come through here.
func ExpectPanic(t *testing.T, pattern string, f func()) (held bool) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("expected a panic matching %q", pattern)
			return
		}
		err, ok := r.(error)
		if !ok || !curated.Has(err, pattern) {
			t.Errorf("panic value %v does not match %q", r, pattern)
			return
		}
		held = true
	}()

	f()
	return false
}

// ExpectCuratedError checks that err is a curated error matching the given
// pattern somewhere in its chain.
func ExpectCuratedError(t *testing.T, err error, pattern string) bool {
	t.Helper()

	if err == nil {
		t.Errorf("expected an error matching %q", pattern)
		return false
	}
	if !curated.Has(err, pattern) {
		t.Errorf("error %v does not match %q", err, pattern)
		return false
	}
	return true
}
