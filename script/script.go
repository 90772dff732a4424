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

package script

import (
	"github.com/cnexans/culebra-rt/rt"
	"github.com/pkg/errors"
)

// value is a trace variable at run time. Unlike parsed Values it can hold an
// array handle.
type value struct {
	Value
	arr *rt.Array
}

type env map[string]value

// Run executes the trace against r, in order. Execution stops at the first
// error; errors are prefixed with the position of the failing statement.
// Array bounds violations are not errors here, they go through r's fault
// policy like any generated-code access.
func (t Trace) Run(r *rt.Runtime) error {
	vars := make(env)
	for _, st := range t {
		if _, err := st.exec(r, vars); err != nil {
			return errors.Wrapf(err, "%s", st.Pos)
		}
	}
	return nil
}

// Env holds variable bindings across statements, for callers that feed
// statements one at a time (the interactive front end). Run is the batch
// equivalent with a throwaway Env.
type Env struct {
	vars env
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(env)}
}

// Run executes a single statement against r. If the statement binds a
// result, Run returns it with ok true. Array handles stay live in the
// environment; the Value returned for one only reports KindArray.
func (e *Env) Run(r *rt.Runtime, st Stmt) (v Value, ok bool, err error) {
	res, err := st.exec(r, e.vars)
	if err != nil {
		return Value{}, false, errors.Wrapf(err, "%s", st.Pos)
	}
	if st.Dest == "" {
		return Value{}, false, nil
	}
	return res.Value, true, nil
}

func (st Stmt) exec(r *rt.Runtime, vars env) (value, error) {
	var res value
	var hasRes bool

	switch st.Op {
	case "print_int":
		v, err := st.argInt(vars, 0)
		if err != nil {
			return res, err
		}
		r.PrintInt(v)
	case "print_float":
		v, err := st.argFloat(vars, 0)
		if err != nil {
			return res, err
		}
		r.PrintFloat(v)
	case "print_string":
		s, err := st.argStr(vars, 0)
		if err != nil {
			return res, err
		}
		r.PrintStr(s)
	case "print_bool":
		b, err := st.argBool(vars, 0)
		if err != nil {
			return res, err
		}
		r.PrintBool(b)
	case "print_multi":
		vs := make([]string, len(st.Args))
		for i := range st.Args {
			s, err := st.argStr(vars, i)
			if err != nil {
				return res, err
			}
			vs[i] = s
		}
		r.Print(vs)
	case "read_line":
		prompt := ""
		if len(st.Args) > 0 {
			s, err := st.argStr(vars, 0)
			if err != nil {
				return res, err
			}
			prompt = s
		}
		res = strValue(r.ReadLine(prompt))
		hasRes = true
	case "len":
		s, err := st.argStr(vars, 0)
		if err != nil {
			return res, err
		}
		res = intValue(rt.Len(s))
		hasRes = true
	case "len_array":
		a, err := st.argArray(vars, 0)
		if err != nil {
			return res, err
		}
		res = intValue(a.Len())
		hasRes = true
	case "chr":
		v, err := st.argInt(vars, 0)
		if err != nil {
			return res, err
		}
		res = strValue(rt.Chr(v))
		hasRes = true
	case "ord":
		s, err := st.argStr(vars, 0)
		if err != nil {
			return res, err
		}
		res = intValue(rt.Ord(s))
		hasRes = true
	case "concat":
		a, err := st.argStr(vars, 0)
		if err != nil {
			return res, err
		}
		b, err := st.argStr(vars, 1)
		if err != nil {
			return res, err
		}
		res = strValue(rt.Concat(a, b))
		hasRes = true
	case "int_to_str":
		v, err := st.argInt(vars, 0)
		if err != nil {
			return res, err
		}
		res = strValue(rt.FormatInt(v))
		hasRes = true
	case "float_to_str":
		v, err := st.argFloat(vars, 0)
		if err != nil {
			return res, err
		}
		res = strValue(rt.FormatFloat(v))
		hasRes = true
	case "bool_to_str":
		b, err := st.argBool(vars, 0)
		if err != nil {
			return res, err
		}
		res = strValue(rt.FormatBool(b))
		hasRes = true
	case "create_array":
		length, err := st.argInt(vars, 0)
		if err != nil {
			return res, err
		}
		elemSize, err := st.argInt(vars, 1)
		if err != nil {
			return res, err
		}
		a, err := rt.NewArray(length, elemSize)
		if err != nil {
			return res, err
		}
		res = value{Value: Value{Kind: KindArray}, arr: a}
		hasRes = true
	case "free_array":
		a, err := st.argArray(vars, 0)
		if err != nil {
			return res, err
		}
		a.Free()
	case "array_get":
		a, err := st.argArray(vars, 0)
		if err != nil {
			return res, err
		}
		index, err := st.argInt(vars, 1)
		if err != nil {
			return res, err
		}
		res = intValue(r.ArrayGet(a, index))
		hasRes = true
	case "array_set":
		a, err := st.argArray(vars, 0)
		if err != nil {
			return res, err
		}
		index, err := st.argInt(vars, 1)
		if err != nil {
			return res, err
		}
		v, err := st.argInt(vars, 2)
		if err != nil {
			return res, err
		}
		r.ArraySet(a, index, v)
	default:
		return res, errors.Errorf("unknown entry point %q", st.Op)
	}

	if st.Dest != "" {
		if !hasRes {
			return res, errors.Errorf("%s returns no value", st.Op)
		}
		vars[st.Dest] = res
	}
	return res, nil
}

func intValue(v int64) value  { return value{Value: Value{Kind: KindInt, Int: v}} }
func strValue(s string) value { return value{Value: Value{Kind: KindStr, Str: s}} }

// arg resolves argument i, following a variable reference if needed.
func (st Stmt) arg(vars env, i int) (value, error) {
	if i >= len(st.Args) {
		return value{}, errors.Errorf("%s: missing argument %d", st.Op, i+1)
	}
	a := st.Args[i]
	if a.Kind != KindRef {
		return value{Value: a}, nil
	}
	v, ok := vars[a.Str]
	if !ok {
		return value{}, errors.Errorf("%s: undefined variable %q", st.Op, a.Str)
	}
	return v, nil
}

func (st Stmt) argInt(vars env, i int) (int64, error) {
	v, err := st.arg(vars, i)
	if err != nil {
		return 0, err
	}
	if v.Kind != KindInt {
		return 0, errors.Errorf("%s: argument %d: expected int, got %s", st.Op, i+1, v.Kind)
	}
	return v.Int, nil
}

func (st Stmt) argFloat(vars env, i int) (float64, error) {
	v, err := st.arg(vars, i)
	if err != nil {
		return 0, err
	}
	switch v.Kind {
	case KindFloat:
		return v.Float, nil
	case KindInt: // integer literals are fine where a float is expected
		return float64(v.Int), nil
	}
	return 0, errors.Errorf("%s: argument %d: expected float, got %s", st.Op, i+1, v.Kind)
}

func (st Stmt) argBool(vars env, i int) (bool, error) {
	v, err := st.arg(vars, i)
	if err != nil {
		return false, err
	}
	if v.Kind != KindBool {
		return false, errors.Errorf("%s: argument %d: expected bool, got %s", st.Op, i+1, v.Kind)
	}
	return v.Bool, nil
}

func (st Stmt) argStr(vars env, i int) (string, error) {
	v, err := st.arg(vars, i)
	if err != nil {
		return "", err
	}
	if v.Kind != KindStr {
		return "", errors.Errorf("%s: argument %d: expected string, got %s", st.Op, i+1, v.Kind)
	}
	return v.Str, nil
}

func (st Stmt) argArray(vars env, i int) (*rt.Array, error) {
	v, err := st.arg(vars, i)
	if err != nil {
		return nil, err
	}
	if v.Kind != KindArray {
		return nil, errors.Errorf("%s: argument %d: expected array, got %s", st.Op, i+1, v.Kind)
	}
	return v.arr, nil
}
