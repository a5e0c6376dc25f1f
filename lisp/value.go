//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package lisp implements the reader, value model and evaluator for a
// small Lisp-family language: integers, symbols, pairs, closures and
// macros over a lexically scoped environment.
package lisp

import "fmt"

// Value is the heterogeneous runtime type. The concrete dynamic type of
// a Value is one of Nil, Int, Sym, *Pair, or *Fn; dispatch throughout the
// package is by type switch rather than by inheritance.
type Value interface {
	isValue()
}

// Nil is the empty list and the canonical false value.
type Nil struct{}

func (Nil) isValue() {}

// Int is a 32-bit signed integer, the only numeric type the language
// supports.
type Int int32

func (Int) isValue() {}

// Sym is an identifier. Two symbols are equal exactly when their
// underlying strings are equal; there is no interning.
type Sym string

func (Sym) isValue() {}

// Pair is an immutable cons cell. A proper list is Nil or a Pair whose
// Cdr is a proper list; any other Cdr makes the pair dotted.
type Pair struct {
	Car Value
	Cdr Value
}

func (*Pair) isValue() {}

// Closure is a user-defined function: a parameter pattern, a body of one
// or more forms, and the environment frame chain captured at the point
// the closure was constructed.
type Closure struct {
	Params Value
	Body   Value // proper list of at least one form
	Env    *Env
}

// PrimitiveFunc implements a built-in operator. args is always a proper
// list of already-evaluated argument values.
type PrimitiveFunc func(args Value) (Value, error)

// Primitive wraps a built-in operator with the name used in error
// messages and the printed form.
type Primitive struct {
	Name string
	Fn   PrimitiveFunc
}

// Fn is an applicable value: either a user-defined Closure or a builtin
// Primitive, with an immutable flag marking it as a macro. Macros are
// called with their arguments unevaluated; the macro flag never changes
// after construction.
type Fn struct {
	IsMacro   bool
	Closure   *Closure
	Primitive *Primitive
}

func (*Fn) isValue() {}

// NewClosure constructs a non-macro function value around a closure.
func NewClosure(params, body Value, env *Env) *Fn {
	return &Fn{Closure: &Closure{Params: params, Body: body, Env: env}}
}

// NewMacro constructs a macro-flagged function value around a closure.
func NewMacro(params, body Value, env *Env) *Fn {
	return &Fn{IsMacro: true, Closure: &Closure{Params: params, Body: body, Env: env}}
}

// NewPrimitive constructs a non-macro function value around a builtin.
func NewPrimitive(name string, fn PrimitiveFunc) *Fn {
	return &Fn{Primitive: &Primitive{Name: name, Fn: fn}}
}

// IsNil reports whether v is the Nil value.
func IsNil(v Value) bool {
	_, ok := v.(Nil)
	return ok
}

// Truthy reports whether v counts as true in a conditional: everything
// except Nil is truthy.
func Truthy(v Value) bool {
	return !IsNil(v)
}

// Cons constructs a new pair. It never mutates its arguments.
func Cons(car, cdr Value) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

// List builds a proper list out of the given values, in order.
func List(vs ...Value) Value {
	var result Value = Nil{}
	for i := len(vs) - 1; i >= 0; i-- {
		result = Cons(vs[i], result)
	}
	return result
}

// TypeName returns a short, human-readable name for v's dynamic type,
// used in cast error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Nil:
		return "nil"
	case Int:
		return "int"
	case Sym:
		return "symbol"
	case *Pair:
		return "pair"
	case *Fn:
		return "function"
	default:
		return fmt.Sprintf("%T", v)
	}
}
