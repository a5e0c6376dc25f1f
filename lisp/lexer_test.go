//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "testing"

func collectTokens(input string) []token {
	var out []token
	for tok := range lex(input) {
		out = append(out, tok)
	}
	return out
}

func TestLexEmpty(t *testing.T) {
	toks := collectTokens("")
	if len(toks) != 1 || toks[0].typ != tokenEOF {
		t.Fatalf("expected a single EOF token, got %v", toks)
	}
}

func TestLexParens(t *testing.T) {
	toks := collectTokens("()")
	if len(toks) != 3 || toks[0].typ != tokenLParen || toks[1].typ != tokenRParen {
		t.Fatalf("expected LParen, RParen, EOF, got %v", toks)
	}
}

func TestLexInt(t *testing.T) {
	toks := collectTokens("42")
	if toks[0].typ != tokenInt || toks[0].val != 42 {
		t.Fatalf("expected int token 42, got %v", toks[0])
	}
}

func TestLexSignedInt(t *testing.T) {
	toks := collectTokens("-7")
	if toks[0].typ != tokenInt || toks[0].val != -7 {
		t.Fatalf("expected int token -7, got %v", toks[0])
	}
}

func TestLexSymbolWithLeadingMinus(t *testing.T) {
	// '-' not followed by a digit starts a symbol, not an int.
	toks := collectTokens("-foo")
	if toks[0].typ != tokenSym || toks[0].text != "-foo" {
		t.Fatalf("expected symbol -foo, got %v", toks[0])
	}
}

func TestLexQuoteForms(t *testing.T) {
	toks := collectTokens("'`~~@")
	want := []tokenType{tokenQuote, tokenQuasiquote, tokenUnquote, tokenSpliceUnquote, tokenEOF}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i].typ != w {
			t.Errorf("token %d: expected type %d, got %d", i, w, toks[i].typ)
		}
	}
}

func TestLexComment(t *testing.T) {
	toks := collectTokens("; a comment\n42")
	if toks[0].typ != tokenInt || toks[0].val != 42 {
		t.Fatalf("expected comment to be skipped, got %v", toks)
	}
}

func TestLexUnexpectedChar(t *testing.T) {
	toks := collectTokens("#")
	if toks[0].typ != tokenError {
		t.Fatalf("expected a tokenError, got %v", toks[0])
	}
	if toks[0].err.Kind != EUnexpectedChar {
		t.Errorf("expected EUnexpectedChar, got %v", toks[0].err.Kind)
	}
}

func TestLexTracksLineNumbers(t *testing.T) {
	toks := collectTokens("1\n2\n3")
	lines := []int{}
	for _, tok := range toks {
		if tok.typ == tokenInt {
			lines = append(lines, tok.line)
		}
	}
	if len(lines) != 3 || lines[0] != 1 || lines[1] != 2 || lines[2] != 3 {
		t.Errorf("expected lines [1 2 3], got %v", lines)
	}
}
