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

// Package script parses and runs runtime call traces.
//
// A trace is a line-oriented text format naming one runtime entry point per
// line, using the same entry point vocabulary as the C runtime (without the
// culebra_ prefix). It exists so the Go and C implementations can be driven
// with identical inputs and their observable output diffed, and it backs the
// crt command's script and interactive modes.
//
//	// store then load one element
//	a = create_array 3 8
//	array_set a 0 -7
//	x = array_get a 0
//	print_int x
//	print_multi "a" "b" "c"
//	free_array a
//
// Arguments are signed integers, floats, true/false, quoted strings, or the
// name of a variable bound by an earlier `name = op ...` line. Comments run
// from // to end of line.
package script
