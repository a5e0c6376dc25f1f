//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// Env is one frame in the lexical environment chain: a mapping from
// symbol name to value, plus an optional parent frame to fall back on.
// Frames are shared by reference across closures; def mutates the
// topmost frame in place, the way the teacher's scm.go env.vars does.
type Env struct {
	vars  map[Sym]Value
	outer *Env
}

// NewEnv returns an empty, parentless frame.
func NewEnv() *Env {
	return &Env{vars: make(map[Sym]Value)}
}

// Extend returns a new child frame parented to e.
func (e *Env) Extend() *Env {
	return &Env{vars: make(map[Sym]Value), outer: e}
}

// Set inserts or overwrites name in the topmost frame.
func (e *Env) Set(name Sym, v Value) {
	e.vars[name] = v
}

// Get searches this frame, then each ancestor in turn (shallow-to-deep),
// returning the first binding found.
func (e *Env) Get(name Sym) (Value, bool) {
	for f := e; f != nil; f = f.outer {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}
