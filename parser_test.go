// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cexpr

import (
	"fmt"
	"testing"
)

// render turns a Node back into a fully-parenthesized string so tests can
// assert on shape without hand-building trees.
func render(n Node) string {
	switch v := n.(type) {
	case Leaf:
		switch v.Kind {
		case CtorCall, FuncArg:
			return v.Text
		default:
			return v.Text
		}
	case UnaryNode:
		if v.Op == PostfixInc || v.Op == PostfixDec {
			return fmt.Sprintf("(%s%s)", render(v.Child), v.Op)
		}
		return fmt.Sprintf("(%s%s)", v.Op, render(v.Child))
	case BinaryNode:
		if v.Op == Call {
			return fmt.Sprintf("%s(%s)", render(v.Left), render(v.Right))
		}
		return fmt.Sprintf("(%s%s%s)", render(v.Left), v.Op, render(v.Right))
	case TernaryCondition:
		return fmt.Sprintf("(%s?%s:%s)", render(v.Condition), render(v.Ways.Then), render(v.Ways.Else))
	default:
		return "?"
	}
}

func checkParse(t *testing.T, expr string, expected string) {
	t.Helper()
	n, err := Parse(expr)
	if err != nil {
		t.Errorf("Parse(%q): unexpected error: %v", expr, err)
		return
	}
	if got := render(n); got != expected {
		t.Errorf("Parse(%q) = %s, want %s", expr, got, expected)
	}
}

func checkParseError(t *testing.T, expr string, code Code) {
	t.Helper()
	_, err := Parse(expr)
	if err == nil {
		t.Errorf("Parse(%q): expected error %s, got none", expr, code)
		return
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Errorf("Parse(%q): error %v isn't a *ParseError", expr, err)
		return
	}
	if pe.Code != code {
		t.Errorf("Parse(%q): error code = %s, want %s", expr, pe.Code, code)
	}
}

func TestParsePrecedence(t *testing.T) {
	checkParse(t, "1+2*3", "(1+(2*3))")
	checkParse(t, "1*2+3", "((1*2)+3)")
	checkParse(t, "1+2+3", "((1+2)+3)")
	checkParse(t, "2<<1+1", "(2<<(1+1))")
	checkParse(t, "a==b&&c==d", "((a==b)&&(c==d))")
	checkParse(t, "a|b&c", "(a|(b&c))")
}

func TestParseParentheses(t *testing.T) {
	checkParse(t, "(1+2)*3", "((1+2)*3)")
	checkParse(t, "((a))", "a")
}

func TestParseRightAssociativity(t *testing.T) {
	checkParse(t, "a=b=c", "(a=(b=c))")
	checkParse(t, "a?b:c?d:e", "(a?b:(c?d:e))")
}

func TestParseUnaryPrefix(t *testing.T) {
	checkParse(t, "-a+b", "((-a)+b)")
	checkParse(t, "!a&&!b", "((!a)&&(!b))")
	checkParse(t, "*p+1", "((*p)+1)")
	checkParse(t, "&x==&y", "((&x)==(&y))")
}

func TestParsePostfix(t *testing.T) {
	checkParse(t, "a++ + b", "((a++)+b)")
	checkParse(t, "a-- * 2", "((a--)*2)")
}

func TestParseContextualRebinding(t *testing.T) {
	// + - & * && default to unary; once an operand precedes, they rebind
	// to their binary twin.
	checkParse(t, "a+-b", "(a+(-b))")
	checkParse(t, "a*-b", "(a*(-b))")
	checkParse(t, "a&&b", "(a&&b)")
	checkParse(t, "a && &&b", "(a&&(&&b))")
}

func TestParseFunctionCall(t *testing.T) {
	n, err := Parse("foo(a,b)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bin, ok := n.(BinaryNode)
	if !ok || bin.Op != Call {
		t.Fatalf("expected a Call node, got %#v", n)
	}
	callee, ok := bin.Left.(Leaf)
	if !ok || callee.Kind != Var || callee.Text != "foo" {
		t.Fatalf("callee = %#v, want Leaf{Var,\"foo\"}", bin.Left)
	}
	args, ok := bin.Right.(Leaf)
	if !ok || args.Kind != FuncArg || args.Text != "a,b" {
		t.Fatalf("args = %#v, want Leaf{FuncArg,\"a,b\"}", bin.Right)
	}
}

func TestParseFunctionCallArgsExcludeParens(t *testing.T) {
	n, err := Parse("f(x, y+1)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bin, ok := n.(BinaryNode)
	if !ok || bin.Op != Call {
		t.Fatalf("expected a Call node, got %#v", n)
	}
	args, ok := bin.Right.(Leaf)
	if !ok || args.Kind != FuncArg || args.Text != "x, y+1" {
		t.Fatalf("args = %#v, want Leaf{FuncArg,\"x, y+1\"}", bin.Right)
	}
}

func TestParseChainedCall(t *testing.T) {
	n, err := Parse("f(x)(y)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	outer, ok := n.(BinaryNode)
	if !ok || outer.Op != Call {
		t.Fatalf("expected outer Call, got %#v", n)
	}
	inner, ok := outer.Left.(BinaryNode)
	if !ok || inner.Op != Call {
		t.Fatalf("expected inner Call, got %#v", outer.Left)
	}
}

func TestParseConstructorCall(t *testing.T) {
	n, err := Parse("Point{1,2}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf, ok := n.(Leaf)
	if !ok || leaf.Kind != CtorCall || leaf.Text != "Point{1,2}" {
		t.Fatalf("got %#v, want CtorCall leaf \"Point{1,2}\"", n)
	}
}

func TestParseConstructorCallRequiresVar(t *testing.T) {
	checkParseError(t, "{2}", IncorrectChar)
	checkParseError(t, "1{2}", SemanticsInconsistency)
}

func TestParseStringAndNumLiterals(t *testing.T) {
	checkParse(t, `"hi"`, `"hi"`)
	checkParse(t, "0x1F", "0x1F")
	checkParse(t, "42", "42")
}

func TestParseStringLiteralOtherQuoteIsContent(t *testing.T) {
	checkParse(t, `"it's"`, `"it's"`)
	checkParse(t, `'she said "hi"'`, `'she said "hi"'`)
}

func TestParseTernary(t *testing.T) {
	n, err := Parse("a?b:c")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cond, ok := n.(TernaryCondition)
	if !ok {
		t.Fatalf("expected TernaryCondition, got %#v", n)
	}
	if render(cond.Condition) != "a" || render(cond.Ways.Then) != "b" || render(cond.Ways.Else) != "c" {
		t.Fatalf("unexpected ternary shape: %#v", cond)
	}
}

func TestParseBareTernaryWaysIsAnError(t *testing.T) {
	checkParseError(t, "a:b", PieceOfTernaryOpr)
	checkParseError(t, "1+(a:b)", PieceOfTernaryOpr)
}

func TestParseNestedTernaryWaysIsAnError(t *testing.T) {
	// A parenthesized "c:d" folds to a bare TernaryWays; neither side of
	// an outer "?:" may accept one, since TernaryWays must only ever
	// appear directly beneath the TernaryCondition that completes it.
	checkParseError(t, "a ? b : (c : d)", PieceOfTernaryOpr)
	checkParseError(t, "a ? (c : d) : b", PieceOfTernaryOpr)
	checkParseError(t, "(a : b) ? c : d", PieceOfTernaryOpr)
}

func TestParseTrailingSemicolons(t *testing.T) {
	checkParse(t, "a+b;", "(a+b)")
	checkParse(t, "a+b;;\n;", "(a+b)")
	checkParse(t, "a+b ;", "(a+b)")
}

func TestParseSemicolonFollowedByMoreTextIsError(t *testing.T) {
	checkParseError(t, "a+b; c", TextIsntExpr)
	checkParseError(t, ";", TextIsntExpr)
}

func TestParseEmptyTextIsError(t *testing.T) {
	checkParseError(t, "", TextIsntExpr)
	checkParseError(t, "   ", TextIsntExpr)
}

func TestParseMismatchedBraces(t *testing.T) {
	checkParseError(t, "(a+b", CouldntFindCloseBrace)
	checkParseError(t, "a+b)", CouldntFindOpenBrace)
	checkParseError(t, "]", CouldntFindOpenBrace)
}

func TestParseBareBracketWithNoCallee(t *testing.T) {
	checkParseError(t, "[a]", CouldntFindFuncPtr)
}

func TestParseMissingOperand(t *testing.T) {
	checkParseError(t, "1+", CouldntFindOperand)
	checkParseError(t, "*", CouldntFindOperand)
}

func TestParseMissingOperator(t *testing.T) {
	checkParseError(t, "1 2", CouldntFindOperator)
}

func TestParseUnterminatedString(t *testing.T) {
	checkParseError(t, `"abc`, CouldntReadStringLiteral)
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("1+")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Pos != 2 {
		t.Fatalf("Pos = %d, want 2", pe.Pos)
	}
	if pe.MessageAt() != "couldnt find operand for operator in 2" {
		t.Fatalf("MessageAt() = %q", pe.MessageAt())
	}
}

func TestParseErrorMessageAtPrepositions(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"(1+2", "couldnt find close brace after 4"},
		{"1 2", "couldnt find operator for operand in 2"},
		{"1+", "couldnt find operand for operator in 2"},
	}
	for _, c := range cases {
		_, err := Parse(c.expr)
		pe, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("Parse(%q): expected *ParseError, got %v", c.expr, err)
		}
		if pe.MessageAt() != c.want {
			t.Fatalf("Parse(%q).MessageAt() = %q, want %q", c.expr, pe.MessageAt(), c.want)
		}
	}
}
