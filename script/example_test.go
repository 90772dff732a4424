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

package script_test

import (
	"strings"

	"github.com/cnexans/culebra-rt/rt"
	"github.com/cnexans/culebra-rt/script"
)

// Shows a trace exercising arrays and conversions end to end.
func ExampleTrace_Run() {
	const src = `
// squares of 0..3
a = create_array 4 8
array_set a 0 0
array_set a 1 1
array_set a 2 4
array_set a 3 9
x = array_get a 3
s = int_to_str x
m = concat "last square: " s
print_string m
free_array a
`
	r, err := rt.New(rt.Input(strings.NewReader("")))
	if err != nil {
		panic(err)
	}
	t, err := script.Parse("squares", strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	if err = t.Run(r); err != nil {
		panic(err)
	}
	r.Flush()

	// Output:
	// last square: 9
}
