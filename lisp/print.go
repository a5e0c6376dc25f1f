//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"strconv"
	"strings"
)

// Print renders v in the bit-exact printed form described in spec.md §6:
// nil, decimal integers, bare symbol text, parenthesized lists (with a
// " . tail" suffix for a dotted tail), and "<closure>"/"<primitive: NAME>"
// for functions. This mirrors the teacher's stringifyBuffer, generalized
// to our Pair-based (rather than slice-based) list representation.
func Print(v Value) string {
	var b strings.Builder
	printBuffer(&b, v)
	return b.String()
}

func printBuffer(b *strings.Builder, v Value) {
	switch t := v.(type) {
	case Nil:
		b.WriteString("nil")
	case Int:
		b.WriteString(strconv.Itoa(int(t)))
	case Sym:
		b.WriteString(string(t))
	case *Pair:
		b.WriteByte('(')
		printBuffer(b, t.Car)
		rest := t.Cdr
		for {
			switch r := rest.(type) {
			case Nil:
				b.WriteByte(')')
				return
			case *Pair:
				b.WriteByte(' ')
				printBuffer(b, r.Car)
				rest = r.Cdr
			default:
				b.WriteString(" . ")
				printBuffer(b, rest)
				b.WriteByte(')')
				return
			}
		}
	case *Fn:
		if t.Closure != nil {
			b.WriteString("<closure>")
		} else {
			b.WriteString("<primitive: ")
			b.WriteString(t.Primitive.Name)
			b.WriteByte('>')
		}
	default:
		b.WriteString("<unknown>")
	}
}
