// This file is part of culebra-rt - https://github.com/cnexans/culebra-rt
//
// Copyright 2024 The culebra-rt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rt

import "strconv"

// Conversion primitives. All of these are pure functions: the stream bindings
// of a Runtime play no part, and the caller owns every returned string.

// Len returns the length of s in bytes. The C runtime counted bytes up to the
// terminating NUL; Go strings carry their length, so this is exact for
// strings containing NUL bytes too.
func Len(s string) int64 {
	return int64(len(s))
}

// Chr returns a one-character string whose single byte is code truncated to
// its low 8 bits.
func Chr(code int64) string {
	return string([]byte{byte(code)})
}

// Ord returns the value of the first byte of s, or 0 if s is empty. Bytes are
// not decoded: a multi-byte character yields the value of its leading byte,
// in the 0..255 range.
func Ord(s string) int64 {
	if s == "" {
		return 0
	}
	return int64(s[0])
}

// Concat returns a followed by b.
func Concat(a, b string) string {
	return a + b
}

// FormatInt returns the decimal representation of v. The full int64 range is
// supported without truncation.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat returns v formatted like printf %g: up to 6 significant digits,
// trailing zeros removed, switching to exponent notation for very large or
// very small magnitudes.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatBool returns the literal "true" or "false".
func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
