//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// quasiquote rewrites x into a value that, when evaluated, reconstructs
// x with local substitutions spliced in, per spec.md §4.8. It is pure
// source-to-source rewriting: the result is ordinary `cons`/`concat`/
// `quote` application forms, with no special runtime support.
func quasiquote(x Value) (Value, error) {
	switch t := x.(type) {
	case Sym:
		return List(Sym("quote"), t), nil
	case *Pair:
		if headSym, ok := t.Car.(Sym); ok && headSym == "unquote" {
			return Arg1(t.Cdr)
		}
		if innerPair, ok := t.Car.(*Pair); ok {
			if headSym, ok := innerPair.Car.(Sym); ok && headSym == "splice-unquote" {
				spliced, err := Arg1(innerPair.Cdr)
				if err != nil {
					return nil, err
				}
				restQ, err := quasiquote(t.Cdr)
				if err != nil {
					return nil, err
				}
				return List(Sym("concat"), spliced, restQ), nil
			}
		}
		headQ, err := quasiquote(t.Car)
		if err != nil {
			return nil, err
		}
		tailQ, err := quasiquote(t.Cdr)
		if err != nil {
			return nil, err
		}
		return List(Sym("cons"), headQ, tailQ), nil
	default:
		// Nil, Int, *Fn: atoms other than symbols are returned as-is.
		return x, nil
	}
}
