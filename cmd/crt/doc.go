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

// crt drives the Culebra runtime library from the command line.
//
// Usage:
//
//	crt [-e statements] [file ...]
//	crt -i
//
// Trace files (see the script package for the format) run in order against a
// runtime bound to the standard streams, -e statements first. With -i, crt
// reads one trace statement per line at an editable prompt and echoes bound
// results. Array bounds violations keep the reference runtime semantics: the
// diagnostic goes to stderr and the process exits with code 1.
package main
