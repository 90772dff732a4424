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

// Package cri - small helpers shared by the culebra-rt packages.
package cri

import (
	"io"

	"github.com/pkg/errors"
)

// Writer sinks runtime output and latches the first write error. After a
// failure, Write stops touching the underlying writer and keeps returning
// the latched error. The print primitives do not report write failures to
// generated code, so the runtime routes its output through a Writer and the
// host inspects Err instead.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer sinking into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	if err != nil {
		w.err = errors.Wrap(err, "runtime output")
		return n, w.err
	}
	return n, nil
}

// Err returns the latched write error, or nil if every write succeeded so
// far.
func (w *Writer) Err() error {
	return w.err
}
