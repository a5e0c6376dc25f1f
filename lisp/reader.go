//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// Reader turns one channel of tokens into a lazy sequence of Values, one
// per top-level form, the way the teacher's parserRead consumes a
// channel produced by lex. Unlike the teacher's slice-based lists, lists
// here are built as Pair chains so dotted pairs (spec.md §4.2) fall out
// naturally.
type Reader struct {
	tokens chan token
	peeked *token
}

// NewReader starts lexing source and returns a Reader over it.
func NewReader(source string) *Reader {
	return &Reader{tokens: lex(source)}
}

func (r *Reader) nextToken() token {
	if r.peeked != nil {
		t := *r.peeked
		r.peeked = nil
		return t
	}
	t, ok := <-r.tokens
	if !ok {
		return token{typ: tokenEOF}
	}
	return t
}

func (r *Reader) peekToken() token {
	if r.peeked == nil {
		t := r.nextToken()
		r.peeked = &t
	}
	return *r.peeked
}

// Read parses and returns the next top-level value, or io.EOF-shaped
// tokenEOF signalled via the returned bool. After any error the Reader's
// position inside the current form is not guaranteed consistent; the
// callers in this module (ReadAll, the REPL) stop reading from it and
// start a new Reader for new input.
func (r *Reader) Read() (Value, bool, error) {
	t := r.nextToken()
	if t.typ == tokenEOF {
		return nil, false, nil
	}
	v, err := r.readValue(t)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (r *Reader) readValue(t token) (Value, error) {
	switch t.typ {
	case tokenError:
		return nil, t.err
	case tokenEOF:
		return nil, ErrUnexpectedEof()
	case tokenInt:
		return Int(t.val), nil
	case tokenSym:
		if t.text == "nil" {
			return Nil{}, nil
		}
		return Sym(t.text), nil
	case tokenLParen:
		return r.readList()
	case tokenRParen:
		return nil, ErrUnexpectedChar(')').WithLine(t.line)
	case tokenDot:
		return nil, ErrUnexpectedChar('.').WithLine(t.line)
	case tokenQuote:
		return r.readMacro("quote", t.line)
	case tokenQuasiquote:
		return r.readMacro("quasiquote", t.line)
	case tokenUnquote:
		return r.readMacro("unquote", t.line)
	case tokenSpliceUnquote:
		return r.readMacro("splice-unquote", t.line)
	default:
		return nil, ErrUnexpectedChar(0).WithLine(t.line)
	}
}

// readMacro reads the single value following a reader-macro character
// and wraps it as (name value), per spec.md §4.2.
func (r *Reader) readMacro(name string, line int) (Value, error) {
	t := r.nextToken()
	if t.typ == tokenEOF {
		return nil, ErrUnexpectedEof().WithLine(line)
	}
	v, err := r.readValue(t)
	if err != nil {
		return nil, err
	}
	return List(Sym(name), v), nil
}

// readList reads a list body after the opening '(' has been consumed.
func (r *Reader) readList() (Value, error) {
	t := r.nextToken()
	switch t.typ {
	case tokenRParen:
		return Nil{}, nil
	case tokenDot:
		tail, err := r.readOne()
		if err != nil {
			return nil, err
		}
		if err := r.expect(tokenRParen); err != nil {
			return nil, err
		}
		return tail, nil
	case tokenEOF:
		return nil, ErrUnexpectedEof()
	default:
		head, err := r.readValue(t)
		if err != nil {
			return nil, err
		}
		rest, err := r.readList()
		if err != nil {
			return nil, err
		}
		return Cons(head, rest), nil
	}
}

// readOne reads exactly one value, erroring on EOF. Used after a dot,
// where a following value is mandatory.
func (r *Reader) readOne() (Value, error) {
	t := r.nextToken()
	if t.typ == tokenEOF {
		return nil, ErrUnexpectedEof()
	}
	return r.readValue(t)
}

func (r *Reader) expect(typ tokenType) error {
	t := r.nextToken()
	if t.typ == tokenEOF {
		return ErrUnexpectedEof()
	}
	if t.typ != typ {
		return ErrUnexpectedChar(0).WithLine(t.line)
	}
	return nil
}

// ReadAll parses every top-level form in source with a single Reader,
// stopping at the first error and returning it together with the forms
// read before it (spec.md §4.2, §7).
func ReadAll(source string) ([]Value, error) {
	r := NewReader(source)
	var out []Value
	for {
		v, ok, err := r.Read()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}
