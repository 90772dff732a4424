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

import (
	"strconv"
	"strings"
)

// PrintInt writes the decimal representation of v followed by a newline.
func (r *Runtime) PrintInt(v int64) {
	r.out.WriteString(strconv.FormatInt(v, 10))
	r.out.WriteByte('\n')
}

// PrintFloat writes v in printf %g form (up to 6 significant digits, fixed or
// exponent notation as appropriate) followed by a newline.
func (r *Runtime) PrintFloat(v float64) {
	r.out.WriteString(FormatFloat(v))
	r.out.WriteByte('\n')
}

// PrintStr writes s verbatim followed by a newline.
//
// The C runtime had undefined behavior for a NULL argument; with Go strings
// that case cannot arise, and the empty string prints as a bare newline.
func (r *Runtime) PrintStr(s string) {
	r.out.WriteString(s)
	r.out.WriteByte('\n')
}

// PrintBool writes the literal "true" or "false" followed by a newline.
func (r *Runtime) PrintBool(v bool) {
	r.out.WriteString(FormatBool(v))
	r.out.WriteByte('\n')
}

// Print writes the given values separated by single spaces and terminated by
// a newline, then flushes the output stream.
//
// This replaces the C runtime's variadic print_multi: the caller passes a
// slice of already-stringified values instead of a count plus native varargs,
// so there is no NULL-entry case and no calling convention to agree on.
func (r *Runtime) Print(values []string) {
	for i, v := range values {
		if i > 0 {
			r.out.WriteByte(' ')
		}
		r.out.WriteString(v)
	}
	r.out.WriteByte('\n')
	r.out.Flush()
}

// ReadLine reads one line from the input stream and returns it without the
// trailing newline. If prompt is non-empty it is written to the output stream
// first, without a newline, and the stream is flushed.
//
// At end of input ReadLine returns the empty string; like the C runtime's
// input primitive, callers cannot distinguish an empty line from an exhausted
// stream.
func (r *Runtime) ReadLine(prompt string) string {
	if prompt != "" {
		r.out.WriteString(prompt)
		r.out.Flush()
	}
	// Any read error behaves like end of stream: whatever was read is the
	// final line.
	line, _ := r.in.ReadString('\n')
	return strings.TrimSuffix(line, "\n")
}
