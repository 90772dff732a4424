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
	"bytes"
	"strings"
	"testing"

	"github.com/cnexans/culebra-rt/rt"
	"github.com/pkg/errors"
)

func newTestRuntime(t *testing.T, input string, opts ...rt.Option) (*rt.Runtime, *bytes.Buffer) {
	t.Helper()
	out := new(bytes.Buffer)
	opts = append([]rt.Option{rt.Input(strings.NewReader(input)), rt.Output(out)}, opts...)
	r, err := rt.New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return r, out
}

func TestPrint(t *testing.T) {
	r, out := newTestRuntime(t, "")

	r.PrintInt(42)
	r.PrintInt(-9223372036854775808)
	r.PrintFloat(2.5)
	r.PrintStr("hello")
	r.PrintStr("")
	r.PrintBool(true)
	r.PrintBool(false)
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "42\n-9223372036854775808\n2.5\nhello\n\ntrue\nfalse\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrintMulti(t *testing.T) {
	tests := [...]struct {
		name   string
		values []string
		want   string
	}{
		{"three", []string{"a", "b", "c"}, "a b c\n"},
		{"one", []string{"x"}, "x\n"},
		{"none", nil, "\n"},
		{"empty entry", []string{"a", "", "c"}, "a  c\n"},
	}
	for _, test := range tests {
		r, out := newTestRuntime(t, "")
		r.Print(test.values)
		// Print flushes on its own, no Flush here on purpose
		if got := out.String(); got != test.want {
			t.Errorf("%s: output = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestReadLine(t *testing.T) {
	tests := [...]struct {
		name   string
		input  string
		prompt string
		want   string
		out    string
	}{
		{"line", "hello\n", "", "hello", ""},
		{"prompt", "hi\n", "> ", "hi", "> "},
		{"no newline", "partial", "", "partial", ""},
		{"empty stream", "", "", "", ""},
		{"empty line", "\nrest\n", "", "", ""},
		{"keeps cr", "dos\r\n", "", "dos\r", ""},
	}
	for _, test := range tests {
		r, out := newTestRuntime(t, test.input)
		if got := r.ReadLine(test.prompt); got != test.want {
			t.Errorf("%s: ReadLine = %q, want %q", test.name, got, test.want)
		}
		// the prompt must have been flushed before reading
		if got := out.String(); got != test.out {
			t.Errorf("%s: output = %q, want %q", test.name, got, test.out)
		}
	}
}

func TestReadLineSequence(t *testing.T) {
	r, _ := newTestRuntime(t, "one\ntwo\n")
	for _, want := range []string{"one", "two", "", ""} {
		if got := r.ReadLine(""); got != want {
			t.Errorf("ReadLine = %q, want %q", got, want)
		}
	}
}

func TestOnFault(t *testing.T) {
	var faults []error
	r, _ := newTestRuntime(t, "", rt.OnFault(func(_ *rt.Runtime, err error) {
		faults = append(faults, err)
	}))

	a, err := rt.NewArray(2, 8)
	if err != nil {
		t.Fatal(err)
	}
	r.ArraySet(a, 0, 7)
	if got := r.ArrayGet(a, 0); got != 7 {
		t.Errorf("ArrayGet(0) = %d, want 7", got)
	}
	if len(faults) != 0 {
		t.Fatalf("unexpected faults: %v", faults)
	}

	if got := r.ArrayGet(a, 5); got != 0 {
		t.Errorf("faulted ArrayGet = %d, want 0", got)
	}
	r.ArraySet(a, -1, 1)
	if len(faults) != 2 {
		t.Fatalf("fault count = %d, want 2", len(faults))
	}
	if got, want := faults[0].Error(), "Array index out of bounds: 5"; got != want {
		t.Errorf("fault = %q, want %q", got, want)
	}
	if got, want := faults[1].Error(), "Array index out of bounds: -1"; got != want {
		t.Errorf("fault = %q, want %q", got, want)
	}
	// the dropped store did not land anywhere
	for i := int64(0); i < a.Len(); i++ {
		if v, _ := a.Get(i); i != 0 && v != 0 {
			t.Errorf("element %d = %d after dropped store", i, v)
		}
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestStickyWriteError(t *testing.T) {
	r, err := rt.New(rt.Input(strings.NewReader("")), rt.Output(failWriter{}))
	if err != nil {
		t.Fatal(err)
	}
	if r.Err() != nil {
		t.Fatalf("fresh runtime reports %v", r.Err())
	}
	// print primitives stay silent even when the stream is broken
	r.Print([]string{"a", "b"})
	if r.Err() == nil {
		t.Fatal("Err() = nil after write to broken stream")
	}
	first := r.Err()
	r.Print([]string{"c"})
	if r.Err() != first {
		t.Errorf("Err() changed after first failure: %v", r.Err())
	}
}

func TestOptionErrors(t *testing.T) {
	for _, opt := range []rt.Option{rt.Input(nil), rt.Output(nil), rt.ErrOutput(nil), rt.OnFault(nil)} {
		if _, err := rt.New(opt); err == nil {
			t.Error("expected option error, got none")
		}
	}
}
