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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ElemSize is the element stride in bytes. The C runtime accepted an
// arbitrary element size at creation but always indexed with an 8 byte
// stride; here the stride is the only accepted element size, so creation and
// access cannot disagree.
const ElemSize = 8

// Array is the descriptor for a dynamically sized array of 8 byte elements.
// Field order matches the layout generated code consumes directly: a signed
// 64 bit length followed by the buffer reference.
type Array struct {
	Length int64
	Data   []byte
}

// IndexError reports an array access outside [0, Length). Its Error string is
// exactly the diagnostic the C runtime printed before aborting.
type IndexError struct {
	Index int64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("Array index out of bounds: %d", e.Index)
}

// NewArray allocates an array of length zero-initialized elements.
//
// The C runtime trusted both arguments; here a negative length, a length
// whose buffer size would overflow int64, or an element size other than
// ElemSize is rejected with an error wrapping ErrInvalidArgument. The Culebra compiler only ever emits element size 8, so
// conforming generated code cannot hit either case. A zero length is valid
// and yields an empty array.
func NewArray(length, elemSize int64) (*Array, error) {
	if elemSize != ElemSize {
		return nil, errors.Wrapf(ErrInvalidArgument, "element size %d (only %d byte elements are supported)", elemSize, ElemSize)
	}
	if length < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "negative array length %d", length)
	}
	if length > math.MaxInt64/ElemSize {
		return nil, errors.Wrapf(ErrInvalidArgument, "array length %d overflows the buffer size", length)
	}
	return &Array{
		Length: length,
		Data:   make([]byte, length*ElemSize),
	}, nil
}

// Len returns the array length in elements. A nil or freed array has length
// 0.
func (a *Array) Len() int64 {
	if a == nil {
		return 0
	}
	return a.Length
}

// check returns a non-nil *IndexError unless index is valid for a. A nil
// receiver fails every index, like the C runtime did for a NULL array.
func (a *Array) check(index int64) *IndexError {
	if a == nil || index < 0 || index >= a.Length {
		return &IndexError{Index: index}
	}
	return nil
}

// Get returns the element at index, or a *IndexError if index is outside
// [0, Len).
func (a *Array) Get(index int64) (int64, error) {
	if err := a.check(index); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(a.Data[index*ElemSize:])), nil
}

// Set stores v at index, or returns a *IndexError if index is outside
// [0, Len).
func (a *Array) Set(index, v int64) error {
	if err := a.check(index); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(a.Data[index*ElemSize:], uint64(v))
	return nil
}

// Elem returns the raw ElemSize byte window of the element at index. Writes
// through the returned slice are visible to Get. The C runtime's array_get
// returned this element pointer rather than the loaded value.
func (a *Array) Elem(index int64) ([]byte, error) {
	if err := a.check(index); err != nil {
		return nil, err
	}
	off := index * ElemSize
	return a.Data[off : off+ElemSize : off+ElemSize], nil
}

// Free releases the buffer and zeroes the descriptor. Free on a nil array is
// a no-op, and freeing twice is harmless: the second call finds an already
// empty descriptor. Any access after Free reports an index fault, since the
// length is 0.
func (a *Array) Free() {
	if a == nil {
		return
	}
	a.Length = 0
	a.Data = nil
}

// ArrayGet is the generated-code entry point for element loads. Out of range
// indices invoke the fault policy; by default that terminates the process
// with the reference diagnostic and exit code 1. If a custom fault handler
// returns, ArrayGet yields 0.
func (r *Runtime) ArrayGet(a *Array, index int64) int64 {
	v, err := a.Get(index)
	if err != nil {
		r.fault(r, err)
		return 0
	}
	return v
}

// ArraySet is the generated-code entry point for element stores. Out of range
// indices invoke the fault policy, as for ArrayGet; if a custom fault handler
// returns, the store is dropped.
func (r *Runtime) ArraySet(a *Array, index, v int64) {
	if err := a.Set(index, v); err != nil {
		r.fault(r, err)
	}
}
