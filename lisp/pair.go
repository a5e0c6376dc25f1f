//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// ListLen returns the number of elements at the top level of a proper
// list, stopping at the first non-pair. A dotted tail does not count as
// an additional element, mirroring the teacher's Pair.Len which walks
// only the Rest chain.
func ListLen(v Value) int {
	n := 0
	for {
		p, ok := v.(*Pair)
		if !ok {
			return n
		}
		n++
		v = p.Cdr
	}
}

// IsProperList reports whether v is Nil or a chain of Pairs terminated
// by Nil.
func IsProperList(v Value) bool {
	for {
		switch t := v.(type) {
		case Nil:
			return true
		case *Pair:
			v = t.Cdr
		default:
			return false
		}
	}
}

// ToSlice flattens a proper list into a Go slice, in order. Returns
// false if v is not a proper list.
func ToSlice(v Value) ([]Value, bool) {
	var out []Value
	for {
		switch t := v.(type) {
		case Nil:
			return out, true
		case *Pair:
			out = append(out, t.Car)
			v = t.Cdr
		default:
			return nil, false
		}
	}
}

// FromSlice is the inverse of ToSlice.
func FromSlice(vs []Value) Value {
	return List(vs...)
}

// Append prepends the elements of list (a proper list) onto tail,
// leaving tail unchanged and building fresh pairs. This backs the
// `concat` primitive used by quasiquote's splice-unquote expansion.
func Append(list, tail Value) (Value, error) {
	elems, ok := ToSlice(list)
	if !ok {
		return nil, ErrCast(list, "a list")
	}
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result, nil
}

// Equal reports whether two values are structurally equal: same type
// and, for pairs, recursively equal Car/Cdr.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Sym:
		bv, ok := b.(Sym)
		return ok && av == bv
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && Equal(av.Car, bv.Car) && Equal(av.Cdr, bv.Cdr)
	case *Fn:
		bv, ok := b.(*Fn)
		return ok && av == bv
	default:
		return false
	}
}
