//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// AsInt returns v's payload if v is an Int, else a Cast error.
func AsInt(v Value) (Int, error) {
	i, ok := v.(Int)
	if !ok {
		return 0, ErrCast(v, "an int")
	}
	return i, nil
}

// AsSym returns v's payload if v is a Sym, else a Cast error.
func AsSym(v Value) (Sym, error) {
	s, ok := v.(Sym)
	if !ok {
		return "", ErrCast(v, "a symbol")
	}
	return s, nil
}

// AsPair returns v itself, typed as *Pair, if v is a Pair, else a Cast
// error.
func AsPair(v Value) (*Pair, error) {
	p, ok := v.(*Pair)
	if !ok {
		return nil, ErrCast(v, "a pair")
	}
	return p, nil
}

// AsFn returns v's payload if v is an applicable Fn, else a Cast error.
func AsFn(v Value) (*Fn, error) {
	f, ok := v.(*Fn)
	if !ok {
		return nil, ErrCast(v, "a function")
	}
	return f, nil
}

// Car composes AsPair with Car field selection.
func Car(v Value) (Value, error) {
	p, err := AsPair(v)
	if err != nil {
		return nil, err
	}
	return p.Car, nil
}

// Cdr composes AsPair with Cdr field selection.
func Cdr(v Value) (Value, error) {
	p, err := AsPair(v)
	if err != nil {
		return nil, err
	}
	return p.Cdr, nil
}

// Cadr is (car (cdr v)).
func Cadr(v Value) (Value, error) {
	rest, err := Cdr(v)
	if err != nil {
		return nil, err
	}
	return Car(rest)
}

// Cddr is (cdr (cdr v)).
func Cddr(v Value) (Value, error) {
	rest, err := Cdr(v)
	if err != nil {
		return nil, err
	}
	return Cdr(rest)
}

// CarOr returns Car(v) if v is a pair, or fallback (typically Nil)
// otherwise, without raising an error. Used where a short argument list
// is a valid call shape rather than a type error (spec.md §4.7).
func CarOr(v Value, fallback Value) Value {
	if p, ok := v.(*Pair); ok {
		return p.Car
	}
	return fallback
}

// CdrOr is the Cdr analogue of CarOr.
func CdrOr(v Value, fallback Value) Value {
	if p, ok := v.(*Pair); ok {
		return p.Cdr
	}
	return fallback
}

// Arg1 extracts the sole argument from a proper argument list, failing
// with TooManyArgs if more than one is present. An empty list yields Nil
// without an error. Mirrors the Rust
// prototype's args::get_1 helper (SPEC_FULL.md §4).
func Arg1(args Value) (Value, error) {
	switch t := args.(type) {
	case Nil:
		return Nil{}, nil
	case *Pair:
		if !IsNil(t.Cdr) {
			return nil, ErrTooManyArgs(1)
		}
		return t.Car, nil
	default:
		return nil, ErrCast(args, "a proper list")
	}
}

// Arg2 extracts the first two arguments from a proper argument list,
// failing with TooManyArgs if more than two are present. A missing
// argument is returned as Nil without an error. Mirrors the Rust
// prototype's args::get_2 helper.
func Arg2(args Value) (Value, Value, error) {
	p, ok := args.(*Pair)
	if !ok {
		return Nil{}, Nil{}, nil
	}
	second, err := Arg1(p.Cdr)
	if err != nil {
		return nil, nil, ErrTooManyArgs(2)
	}
	return p.Car, second, nil
}
