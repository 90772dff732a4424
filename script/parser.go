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
	"io"
	"strconv"
	"text/scanner"

	"github.com/pkg/errors"
)

// ValueKind discriminates the variants of a Value.
type ValueKind int

// Value kinds. KindArray never appears in parsed traces; it is the kind of a
// variable bound to a create_array result.
const (
	KindInt ValueKind = iota
	KindFloat
	KindBool
	KindStr
	KindRef
	KindArray
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStr:
		return "string"
	case KindRef:
		return "reference"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Value is one argument in a trace statement.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Bool  bool
	Str   string // literal for KindStr, variable name for KindRef
}

// Stmt is one trace line: an entry point call with an optional result
// binding.
type Stmt struct {
	Pos  scanner.Position
	Dest string // result variable, "" if unbound
	Op   string
	Args []Value
}

// Trace is a parsed sequence of statements.
type Trace []Stmt

type parser struct {
	s   scanner.Scanner
	err error
}

func scanError(s *scanner.Scanner, msg string) error {
	pos := s.Position
	if !pos.IsValid() {
		pos = s.Pos()
	}
	return errors.Errorf("%s: %s", pos, msg)
}

// Parse reads a trace from r. The name parameter is used in error positions
// only; if r is a file, name should be the file name.
func Parse(name string, r io.Reader) (Trace, error) {
	p := new(parser)
	p.s.Init(r)
	p.s.Filename = name
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	// newlines terminate statements, so keep them out of the whitespace set
	p.s.Whitespace = 1<<'\t' | 1<<'\r' | 1<<' '
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = scanError(s, msg)
		}
	}

	var t Trace
	for tok := p.s.Scan(); p.err == nil && tok != scanner.EOF; tok = p.s.Scan() {
		if tok == '\n' {
			continue
		}
		st, ok := p.statement(tok)
		if !ok {
			break
		}
		t = append(t, st)
	}
	if p.err != nil {
		return nil, p.err
	}
	return t, nil
}

// statement parses one line. The current token is the first token of the
// line.
func (p *parser) statement(tok rune) (Stmt, bool) {
	var st Stmt
	st.Pos = p.s.Position

	if tok != scanner.Ident {
		p.err = scanError(&p.s, "expected entry point name, got "+p.s.TokenText())
		return st, false
	}
	name := p.s.TokenText()

	tok = p.s.Scan()
	if tok == '=' {
		st.Dest = name
		if tok = p.s.Scan(); tok != scanner.Ident {
			p.err = scanError(&p.s, "expected entry point name after =, got "+p.s.TokenText())
			return st, false
		}
		st.Op = p.s.TokenText()
		tok = p.s.Scan()
	} else {
		st.Op = name
	}

	for p.err == nil && tok != '\n' && tok != scanner.EOF {
		v, ok := p.argument(tok)
		if !ok {
			return st, false
		}
		st.Args = append(st.Args, v)
		tok = p.s.Scan()
	}
	return st, p.err == nil
}

func (p *parser) argument(tok rune) (Value, bool) {
	neg := false
	if tok == '-' {
		neg = true
		tok = p.s.Scan()
	}
	text := p.s.TokenText()

	switch tok {
	case scanner.Int:
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			// out of range positive literal; MinInt64 still parses below
			if !neg {
				p.err = scanError(&p.s, err.Error())
				return Value{}, false
			}
			n, err = strconv.ParseInt("-"+text, 0, 64)
			if err != nil {
				p.err = scanError(&p.s, err.Error())
				return Value{}, false
			}
			return Value{Kind: KindInt, Int: n}, true
		}
		if neg {
			n = -n
		}
		return Value{Kind: KindInt, Int: n}, true
	case scanner.Float:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.err = scanError(&p.s, err.Error())
			return Value{}, false
		}
		if neg {
			f = -f
		}
		return Value{Kind: KindFloat, Float: f}, true
	case scanner.String:
		if neg {
			p.err = scanError(&p.s, "unexpected - before string literal")
			return Value{}, false
		}
		s, err := strconv.Unquote(text)
		if err != nil {
			p.err = scanError(&p.s, err.Error())
			return Value{}, false
		}
		return Value{Kind: KindStr, Str: s}, true
	case scanner.Ident:
		if neg {
			p.err = scanError(&p.s, "unexpected - before identifier "+text)
			return Value{}, false
		}
		switch text {
		case "true":
			return Value{Kind: KindBool, Bool: true}, true
		case "false":
			return Value{Kind: KindBool, Bool: false}, true
		}
		return Value{Kind: KindRef, Str: text}, true
	}
	p.err = scanError(&p.s, "unexpected token "+strconv.QuoteRune(tok))
	return Value{}, false
}
