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

package rt_test

import (
	"strconv"
	"testing"

	"github.com/cnexans/culebra-rt/rt"
)

func TestLen(t *testing.T) {
	tests := [...]struct {
		s    string
		want int64
	}{
		{"", 0},
		{"a", 1},
		{"hello", 5},
		{"héllo", 6},      // byte length, not rune count
		{"a\x00b", 3},     // embedded NUL counts
		{"çülébra", 10},
	}
	for _, test := range tests {
		if got := rt.Len(test.s); got != test.want {
			t.Errorf("Len(%q) = %d, want %d", test.s, got, test.want)
		}
	}
}

func TestChrOrd(t *testing.T) {
	if got := rt.Chr(65); got != "A" {
		t.Errorf(`Chr(65) = %q, want "A"`, got)
	}
	if got := rt.Ord("A"); got != 65 {
		t.Errorf(`Ord("A") = %d, want 65`, got)
	}
	if got := rt.Ord(""); got != 0 {
		t.Errorf(`Ord("") = %d, want 0`, got)
	}
	if got := rt.Ord("ABC"); got != 65 {
		t.Errorf(`Ord("ABC") = %d, want 65`, got)
	}
	// Chr truncates to the low 8 bits
	if got := rt.Chr(0x141); got != "A" {
		t.Errorf("Chr(0x141) = %q, want \"A\"", got)
	}
	if got := rt.Chr(0); got != "\x00" {
		t.Errorf("Chr(0) = %q, want NUL", got)
	}
	// Ord operates on raw bytes, no decoding
	if got := rt.Ord("é"); got != 0xc3 {
		t.Errorf(`Ord("é") = %#x, want 0xc3`, got)
	}
	// round trip over the full byte range
	for c := int64(0); c < 256; c++ {
		if got := rt.Ord(rt.Chr(c)); got != c {
			t.Fatalf("Ord(Chr(%d)) = %d", c, got)
		}
	}
}

func TestConcat(t *testing.T) {
	tests := [...]struct {
		a, b, want string
	}{
		{"", "", ""},
		{"foo", "", "foo"},
		{"", "bar", "bar"},
		{"foo", "bar", "foobar"},
	}
	for _, test := range tests {
		got := rt.Concat(test.a, test.b)
		if got != test.want {
			t.Errorf("Concat(%q, %q) = %q", test.a, test.b, got)
		}
		if rt.Len(got) != rt.Len(test.a)+rt.Len(test.b) {
			t.Errorf("Len(Concat(%q, %q)) = %d, want %d", test.a, test.b, rt.Len(got), rt.Len(test.a)+rt.Len(test.b))
		}
	}
}

func TestFormatInt(t *testing.T) {
	// must round trip over the full int64 range, no fixed size buffer to
	// overflow here
	for _, v := range []int64{0, -1, 1, 9223372036854775807, -9223372036854775808} {
		s := rt.FormatInt(v)
		back, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			t.Fatalf("FormatInt(%d) = %q: %v", v, s, err)
		}
		if back != v {
			t.Errorf("FormatInt(%d) round trips to %d", v, back)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := [...]struct {
		v    float64
		want string
	}{
		{0, "0"},
		{2, "2"},
		{-1.5, "-1.5"},
		{3.1415926, "3.14159"}, // 6 significant digits
		{1234567, "1.23457e+06"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1e20, "1e+20"},
	}
	for _, test := range tests {
		if got := rt.FormatFloat(test.v); got != test.want {
			t.Errorf("FormatFloat(%g) = %q, want %q", test.v, got, test.want)
		}
	}
}

func TestFormatBool(t *testing.T) {
	if got := rt.FormatBool(true); got != "true" {
		t.Errorf(`FormatBool(true) = %q`, got)
	}
	if got := rt.FormatBool(false); got != "false" {
		t.Errorf(`FormatBool(false) = %q`, got)
	}
}
