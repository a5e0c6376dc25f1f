//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// Eval reduces value against env, following spec.md §4.5: atoms
// self-evaluate, symbols look themselves up, and pairs dispatch to a
// special form, a macro expansion, or ordinary application, in that
// order.
func Eval(value Value, env *Env) (Value, error) {
	switch t := value.(type) {
	case Sym:
		v, ok := env.Get(t)
		if !ok {
			return nil, ErrUnknownSym(t)
		}
		return v, nil
	case *Pair:
		return evalPair(t, env)
	default:
		// Nil, Int, *Fn: atoms other than symbols evaluate to themselves.
		return value, nil
	}
}

func evalPair(pair *Pair, env *Env) (Value, error) {
	if sym, ok := pair.Car.(Sym); ok {
		if handler, ok := specialForms[sym]; ok {
			return handler(pair.Cdr, env)
		}
	}

	expanded, changed, err := macroExpand1(pair, env)
	if err != nil {
		return nil, err
	}
	if changed {
		return Eval(expanded, env)
	}

	fn, err := Eval(pair.Car, env)
	if err != nil {
		return nil, err
	}
	args, err := evalList(pair.Cdr, env)
	if err != nil {
		return nil, err
	}
	result, err := Apply(fn, args)
	if err != nil {
		return nil, ErrFunction(pair.Car).WithCause(err)
	}
	return result, nil
}

// evalList evaluates a proper list element-wise, in order, returning a
// fresh proper list of the results.
func evalList(value Value, env *Env) (Value, error) {
	switch t := value.(type) {
	case Nil:
		return Nil{}, nil
	case *Pair:
		car, err := Eval(t.Car, env)
		if err != nil {
			return nil, err
		}
		cdr, err := evalList(t.Cdr, env)
		if err != nil {
			return nil, err
		}
		return Cons(car, cdr), nil
	default:
		return Eval(value, env)
	}
}

// Apply invokes fn (which must be a *Fn) on an already-evaluated proper
// argument list.
func Apply(fn Value, args Value) (Value, error) {
	f, ok := fn.(*Fn)
	if !ok {
		return nil, ErrCast(fn, "a function")
	}
	if f.Primitive != nil {
		return f.Primitive.Fn(args)
	}
	return applyClosure(f.Closure, args)
}

func applyClosure(c *Closure, args Value) (Value, error) {
	frame := c.Env.Extend()
	if err := bindParams(c.Params, args, frame); err != nil {
		return nil, ErrBind(c.Params).WithCause(err)
	}
	body := c.Body
	var result Value = Nil{}
	for {
		p, ok := body.(*Pair)
		if !ok {
			return result, nil
		}
		var err error
		result, err = Eval(p.Car, frame)
		if err != nil {
			return nil, err
		}
		body = p.Cdr
	}
}

// bindParams implements spec.md §4.7's recursive argument-binding rule:
// Nil requires Nil, a symbol binds the whole (remaining) argument list,
// and a pair destructures one argument at a time.
func bindParams(params, args Value, frame *Env) error {
	switch p := params.(type) {
	case Nil:
		if !IsNil(args) {
			return ErrTooManyArgs(0)
		}
		return nil
	case Sym:
		frame.Set(p, args)
		return nil
	case *Pair:
		a, ok := args.(*Pair)
		if !ok {
			return ErrTooFewArgs(1)
		}
		if err := bindParams(p.Car, a.Car, frame); err != nil {
			return err
		}
		return bindParams(p.Cdr, a.Cdr, frame)
	default:
		return ErrCast(params, "a parameter pattern")
	}
}
