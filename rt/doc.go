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

// Package rt implements the Culebra runtime library.
//
// Compiled Culebra programs call a small set of native entry points for the
// operations the compiler does not inline: console I/O, string conversion and
// concatenation, and dynamically sized arrays. This package is the Go
// rendition of that contract. The reference implementation is the C runtime
// shipped with the Culebra compiler; where the two differ on purpose (typed
// argument lists instead of native variadics, recoverable bounds faults,
// idempotent Free), the difference is called out on the relevant identifier.
//
// A Runtime value binds the input, output and error streams and the fault
// policy. Everything else is stateless: conversion primitives are plain
// functions, and two goroutines may use the same Runtime concurrently as long
// as they do not share an Array.
//
// Array access is bounds checked. By default a violation matches the C
// runtime bit for bit: the diagnostic
//
//	Array index out of bounds: <index>
//
// is written to the error stream and the process exits with code 1. Embedders
// that want a catchable fault instead install their own handler with OnFault.
package rt
