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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cnexans/culebra-rt/internal/cri"
	"github.com/pkg/errors"
)

// ErrInvalidArgument is the base error reported for arguments the reference
// runtime silently trusted, such as a negative array length. Callers test for
// it with errors.Cause or errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// FaultHandler is the function prototype for bounds-fault handlers. The error
// passed is always a *IndexError.
type FaultHandler func(r *Runtime, err error)

// Runtime binds the standard streams and the fault policy for one compiled
// program. The zero value is not usable; call New.
type Runtime struct {
	in    *bufio.Reader
	out   *bufio.Writer
	ew    *cri.Writer
	errW  io.Writer
	fault FaultHandler
	exit  func(code int)
}

// Option interface
type Option func(*Runtime) error

// Input sets the reader line input is taken from. The default is os.Stdin.
func Input(r io.Reader) Option {
	return func(rt *Runtime) error {
		if r == nil {
			return errors.New("nil input reader")
		}
		rt.in = bufio.NewReader(r)
		return nil
	}
}

// Output sets the writer the print primitives write to. The default is
// os.Stdout. Output is buffered; Print flushes after every call and hosts can
// call Flush at any point.
func Output(w io.Writer) Option {
	return func(rt *Runtime) error {
		if w == nil {
			return errors.New("nil output writer")
		}
		rt.ew = cri.NewWriter(w)
		rt.out = bufio.NewWriter(rt.ew)
		return nil
	}
}

// ErrOutput sets the writer fault diagnostics are written to. The default is
// os.Stderr.
func ErrOutput(w io.Writer) Option {
	return func(rt *Runtime) error {
		if w == nil {
			return errors.New("nil error writer")
		}
		rt.errW = w
		return nil
	}
}

// OnFault installs a custom handler for array bounds violations raised by
// ArrayGet and ArraySet.
//
// The default handler keeps the C runtime semantics: it flushes pending
// output, writes the diagnostic to the error stream and exits the process
// with code 1. An embedding compiler that wants catchable faults instead
// installs a handler that panics or records the error; if the handler
// returns, the faulting ArrayGet yields 0 and ArraySet is a no-op.
func OnFault(h FaultHandler) Option {
	return func(rt *Runtime) error {
		if h == nil {
			return errors.New("nil fault handler")
		}
		rt.fault = h
		return nil
	}
}

// SetOptions sets the provided options.
func (r *Runtime) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return err
		}
	}
	return nil
}

// New creates a Runtime bound to the standard streams, then applies the given
// options.
func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{
		errW: os.Stderr,
		exit: os.Exit,
	}
	r.ew = cri.NewWriter(os.Stdout)
	r.out = bufio.NewWriter(r.ew)
	r.in = bufio.NewReader(os.Stdin)
	r.fault = defaultFault
	if err := r.SetOptions(opts...); err != nil {
		return nil, err
	}
	return r, nil
}

func defaultFault(r *Runtime, err error) {
	r.out.Flush()
	fmt.Fprintf(r.errW, "%v\n", err)
	r.exit(1)
}

// Flush writes any buffered output to the underlying writer.
func (r *Runtime) Flush() error {
	if err := r.out.Flush(); err != nil {
		return err
	}
	return r.ew.Err()
}

// Err returns the first write error encountered by the print primitives, or
// nil. Print calls themselves never report write failures, matching console
// output semantics; hosts that care check Err after the program ran.
func (r *Runtime) Err() error {
	return r.ew.Err()
}
