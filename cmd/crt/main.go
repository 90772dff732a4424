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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/cnexans/culebra-rt/rt"
	"github.com/cnexans/culebra-rt/script"
)

const (
	historyFile = ".crt_history"
	prompt      = "crt> "
)

var interactive = flag.Bool("i", false, "start an interactive prompt")
var expr = flag.String("e", "", "run trace `statements` before any files")

func atExit(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}

func runTrace(r *rt.Runtime, name string, in io.Reader) error {
	t, err := script.Parse(name, in)
	if err != nil {
		return err
	}
	return t.Run(r)
}

func runFile(r *rt.Runtime, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return runTrace(r, name, f)
}

// run executes the -e statements and the trace files, in order, stopping at
// the first error. Output is flushed even on failure: traces that ran before
// the failing one must not lose their output, same as the C runtime's stdio
// flushing at exit(1).
func run(r *rt.Runtime, expr string, files []string) error {
	defer r.Flush()
	if expr != "" {
		if err := runTrace(r, "-e", strings.NewReader(expr)); err != nil {
			return err
		}
	}
	for _, name := range files {
		if err := runFile(r, name); err != nil {
			return err
		}
	}
	return nil
}

func formatValue(v script.Value) string {
	switch v.Kind {
	case script.KindInt:
		return strconv.FormatInt(v.Int, 10)
	case script.KindFloat:
		return rt.FormatFloat(v.Float)
	case script.KindBool:
		return rt.FormatBool(v.Bool)
	case script.KindStr:
		return strconv.Quote(v.Str)
	case script.KindArray:
		return "array"
	}
	return "?"
}

func repl(r *rt.Runtime) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	vars := script.NewEnv()
	for {
		line, err := ln.Prompt(prompt)
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		t, err := script.Parse("repl", strings.NewReader(line))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		for _, st := range t {
			v, ok, err := vars.Run(r, st)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				break
			}
			r.Flush()
			if ok {
				fmt.Printf("%s = %s\n", st.Dest, formatValue(v))
			}
		}
	}
}

func main() {
	flag.Parse()

	r, err := rt.New()
	atExit(err)

	atExit(run(r, *expr, flag.Args()))
	if *interactive {
		atExit(repl(r))
	}
	r.Flush()
}
