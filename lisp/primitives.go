//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// Prelude builds the root environment, binding the primitive operators
// (spec.md §4.3, §4.9) to their Fn values. The bound-name set is the
// external contract: cons, car, cdr, concat, +, -, *, /, =.
func Prelude() *Env {
	env := NewEnv()
	for _, p := range []struct {
		name string
		fn   PrimitiveFunc
	}{
		{"cons", primCons},
		{"car", primCar},
		{"cdr", primCdr},
		{"concat", primConcat},
		{"+", primAdd},
		{"-", primSub},
		{"*", primMul},
		{"/", primDiv},
		{"=", primEq},
	} {
		env.Set(Sym(p.name), NewPrimitive(p.name, p.fn))
	}
	return env
}

func primCons(args Value) (Value, error) {
	x, y, err := Arg2(args)
	if err != nil {
		return nil, err
	}
	return Cons(x, y), nil
}

func primCar(args Value) (Value, error) {
	x, err := Arg1(args)
	if err != nil {
		return nil, err
	}
	return Car(x)
}

func primCdr(args Value) (Value, error) {
	x, err := Arg1(args)
	if err != nil {
		return nil, err
	}
	return Cdr(x)
}

// primConcat implements the `concat` primitive quasiquote's
// splice-unquote expansion relies on (spec.md §4.8): it prepends the
// elements of its first (list) argument onto its second.
func primConcat(args Value) (Value, error) {
	list, tail, err := Arg2(args)
	if err != nil {
		return nil, err
	}
	return Append(list, tail)
}

func twoInts(args Value) (Int, Int, error) {
	xv, yv, err := Arg2(args)
	if err != nil {
		return 0, 0, err
	}
	x, err := AsInt(xv)
	if err != nil {
		return 0, 0, err
	}
	y, err := AsInt(yv)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func primAdd(args Value) (Value, error) {
	x, y, err := twoInts(args)
	if err != nil {
		return nil, err
	}
	return x + y, nil
}

func primSub(args Value) (Value, error) {
	x, y, err := twoInts(args)
	if err != nil {
		return nil, err
	}
	return x - y, nil
}

func primMul(args Value) (Value, error) {
	x, y, err := twoInts(args)
	if err != nil {
		return nil, err
	}
	return x * y, nil
}

// primDiv implements integer division truncating toward zero (Go's `/`
// on signed integers already truncates toward zero); division by zero
// is an error rather than a panic.
func primDiv(args Value) (Value, error) {
	x, y, err := twoInts(args)
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, ErrCast(y, "a nonzero divisor")
	}
	return x / y, nil
}

// primEq implements `=`: structural equality over two values, returning
// the first argument (a truthy marker) when equal, Nil otherwise — the
// same convention the Rust prototype's primitives::eq was moving toward.
func primEq(args Value) (Value, error) {
	x, y, err := Arg2(args)
	if err != nil {
		return nil, err
	}
	if Equal(x, y) {
		return x, nil
	}
	return Nil{}, nil
}
