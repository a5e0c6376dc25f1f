//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "testing"

// evalSource reads and evaluates every top-level form in src against a
// fresh prelude environment, returning the printed form of each result in
// order, the way the driver does for file mode.
func evalSource(t *testing.T, src string) []string {
	t.Helper()
	forms, err := ReadAll(src)
	if err != nil {
		t.Fatalf("failed to read %q: %v", src, err)
	}
	env := Prelude()
	var out []string
	for _, f := range forms {
		v, err := Eval(f, env)
		if err != nil {
			t.Fatalf("failed to eval %q: %v", src, err)
		}
		out = append(out, Print(v))
	}
	return out
}

func evalSourceExpectErr(t *testing.T, src string) error {
	t.Helper()
	forms, err := ReadAll(src)
	if err != nil {
		return err
	}
	env := Prelude()
	var last error
	for _, f := range forms {
		_, last = Eval(f, env)
		if last != nil {
			return last
		}
	}
	return nil
}

// TestEndToEndScenarios checks every concrete scenario listed in spec.md
// §8 verbatim.
func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		{"(+ 1 2)", []string{"3"}},
		{"(car (cons 1 (cons 2 nil)))", []string{"1"}},
		{"((fn (x) (+ x x)) 21)", []string{"42"}},
		{"(def inc (fn (x) (+ x 1))) (inc 41)", []string{"nil", "42"}},
		{"`(1 ~(+ 1 1) 3)", []string{"(1 2 3)"}},
		{"(if nil 1 nil 2 3)", []string{"3"}},
	}
	for _, c := range cases {
		got := evalSource(t, c.src)
		if len(got) != len(c.want) {
			t.Fatalf("%s: expected %v, got %v", c.src, c.want, got)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("%s: element %d: expected %s, got %s", c.src, i, c.want[i], got[i])
			}
		}
	}
}

func TestCarNilIsCastError(t *testing.T) {
	err := evalSourceExpectErr(t, "(car nil)")
	le, ok := err.(*Error)
	if !ok || le.Kind != ECast {
		t.Fatalf("expected a Cast error, got %v", err)
	}
}

func TestConsCarCdrLaws(t *testing.T) {
	if got := evalSource(t, "(car (cons 1 2))"); got[0] != "1" {
		t.Errorf("expected 1, got %s", got[0])
	}
	if got := evalSource(t, "(cdr (cons 1 2))"); got[0] != "2" {
		t.Errorf("expected 2, got %s", got[0])
	}
}

func TestQuoteDoesNotEvaluate(t *testing.T) {
	if got := evalSource(t, "(quote (a b))"); got[0] != "(a b)" {
		t.Errorf("expected (a b), got %s", got[0])
	}
}

// TestIfDoesNotEvaluateUntakenBranch exercises spec.md §8 property 5: the
// untaken branch, here an unbound symbol lookup, must never be evaluated.
func TestIfDoesNotEvaluateUntakenBranch(t *testing.T) {
	if got := evalSource(t, "(if nil totally-unbound 1)"); got[0] != "1" {
		t.Errorf("expected 1, got %s", got[0])
	}
}

func TestLexicalCapture(t *testing.T) {
	src := `
(def make-adder (fn (n) (fn (x) (+ x n))))
(def add5 (make-adder 5))
(add5 10)
`
	got := evalSource(t, src)
	if got[len(got)-1] != "15" {
		t.Errorf("expected 15, got %s", got[len(got)-1])
	}
}

// TestLexicalCaptureSeesLaterDefInSameFrame checks that a closure sees
// mutations to frames that were already its ancestors at construction
// time, the second half of spec.md §8 property 4.
func TestLexicalCaptureSeesLaterDefInSameFrame(t *testing.T) {
	src := `
(def make-counter (fn () (fn () x)))
(def reader (make-counter))
(def x 99)
(reader)
`
	got := evalSource(t, src)
	if got[len(got)-1] != "99" {
		t.Errorf("expected 99, got %s", got[len(got)-1])
	}
}

func TestRecursiveClosure(t *testing.T) {
	src := `
(def fact (fn (n) (if (= n 0) 1 (* n (fact (- n 1))))))
(fact 5)
`
	got := evalSource(t, src)
	if got[len(got)-1] != "120" {
		t.Errorf("expected 120, got %s", got[len(got)-1])
	}
}

func TestVariadicBinding(t *testing.T) {
	src := `
(def first-of (fn (x . rest) x))
(first-of 1 2 3)
`
	got := evalSource(t, src)
	if got[len(got)-1] != "1" {
		t.Errorf("expected 1, got %s", got[len(got)-1])
	}
}

func TestAllArgsBinding(t *testing.T) {
	src := `
(def all (fn args args))
(all 1 2 3)
`
	got := evalSource(t, src)
	if got[len(got)-1] != "(1 2 3)" {
		t.Errorf("expected (1 2 3), got %s", got[len(got)-1])
	}
}

func TestUnknownSymbolIsError(t *testing.T) {
	err := evalSourceExpectErr(t, "totally-unbound")
	le, ok := err.(*Error)
	if !ok || le.Kind != EUnknownSym {
		t.Fatalf("expected an UnknownSym error, got %v", err)
	}
}

func TestApplyNonFunctionIsError(t *testing.T) {
	err := evalSourceExpectErr(t, "(1 2 3)")
	le, ok := err.(*Error)
	if !ok || le.Kind != EFunction {
		t.Fatalf("expected a Function error, got %v", err)
	}
}
