// This file is part of NTSC-CRT.
//
// NTSC-CRT is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// NTSC-CRT is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with NTSC-CRT.  If not, see <https://www.gnu.org/licenses/>.

package test

import "testing"

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Currently supported types:
//
//		bool -> bool == false
//		error -> error != nil
//
// If type is nil then the test will fail.
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
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Currently supported types:
//
//		bool -> bool == true
//		error -> error == nil
//
// If type is nil then the test will succeed.
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
		return true

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectEquality tests that v and expectedValue are equal, for any
// comparable type.
func ExpectEquality[T comparable](t *testing.T, v, expectedValue T) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("equality test of type %T failed: %v does not equal %v", v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality tests that v and unexpectedValue are not equal, for any
// comparable type.
func ExpectInequality[T comparable](t *testing.T, v, unexpectedValue T) bool {
	t.Helper()
	if v == unexpectedValue {
		t.Errorf("inequality test of type %T failed: %v equals %v", v, v, unexpectedValue)
		return false
	}
	return true
}

// ExpectApproximate tests that v is within tolerance of expectedValue.
func ExpectApproximate(t *testing.T, v, expectedValue, tolerance float64) bool {
	t.Helper()
	d := v - expectedValue
	if d < 0 {
		d = -d
	}
	if d > tolerance {
		t.Errorf("approximate equality test failed: %v is not within %v of %v", v, tolerance, expectedValue)
		return false
	}
	return true
}
