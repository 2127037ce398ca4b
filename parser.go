// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cexpr

import (
	"strings"

	"github.com/beevik/cexpr/scan"
)

// Parse parses a single expression held entirely in memory.
func Parse(text string) (Node, error) {
	src, err := scan.NewReaderSource(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	buf, err := scan.NewBuffer(src, true)
	if err != nil {
		return nil, err
	}
	return ParseScanner(scan.NewScanner(buf))
}

// ParseScanner parses a single expression from sc, starting at its
// current position, using Dijkstra's shunting-yard algorithm. The
// expression runs to the end of the stream or to the first ';' the
// tokenizer meets; after that ';' only further ';' and line breaks may
// follow through the end of the stream, and anything else is a
// TextIsntExpr error.
func ParseScanner(sc *scan.Scanner) (Node, error) {
	p := &parser{sc: sc}
	return p.parse()
}

// oprEntryKind tags what an operator-stack entry holds.
type oprEntryKind byte

const (
	entryUnary oprEntryKind = iota
	entryBinary
	entryTernaryWays       // ':'
	entryTernaryCondition  // '?'
	entryOpenBrace         // '(' sentinel for a parenthesized group
)

type oprEntry struct {
	kind    oprEntryKind
	unary   UnaryOp
	binary  BinaryOp
	ternary TernaryOp
}

func (e oprEntry) priority() int {
	switch e.kind {
	case entryUnary:
		return unaryOps[e.unary].priority
	case entryBinary:
		return binaryOps[e.binary].priority
	case entryTernaryWays, entryTernaryCondition:
		return ternaryOps[e.ternary].priority
	default:
		return -1
	}
}

func (e oprEntry) assoc() assoc {
	switch e.kind {
	case entryUnary:
		return unaryOps[e.unary].assoc
	case entryBinary:
		return binaryOps[e.binary].assoc
	case entryTernaryWays, entryTernaryCondition:
		return ternaryOps[e.ternary].assoc
	default:
		return assocNone
	}
}

// collapses reports whether the incoming operator e should cause the
// operator currently on top of the stack to fold before e is pushed.
func (e oprEntry) collapses(top oprEntry) bool {
	if top.kind == entryOpenBrace {
		return false
	}
	if e.assoc() == assocLTR {
		return top.priority() <= e.priority()
	}
	return top.priority() < e.priority()
}

type parser struct {
	sc        *scan.Scanner
	operands  stack[Node]
	operators stack[oprEntry]
	isNode    bool // true once the most recently consumed token was an operand
}

func (p *parser) fail(code Code) error {
	return newParseError(code, p.sc.Pos())
}

// checkTrailingSemicolons is called once the tokenizer finds a ';'. A
// ';' inside a call's or constructor's braces never gets here, since it
// is consumed along with the argument text; one inside a parenthesized
// group does. A run of ';' and line breaks through the
// end of the stream is a harmless statement terminator the parser
// simply stops in front of; anything else after it means the text
// wasn't a single expression to begin with.
func (p *parser) checkTrailingSemicolons() error {
	end, _ := p.sc.ApplyIfOk(scan.WhileTrue(func(c byte) bool {
		return isSemicolon(c) || isLinebreak(c)
	}))
	if end != p.sc.Size() {
		return p.fail(TextIsntExpr)
	}
	return nil
}

// rejectBareWays reports an error if n is a bare TernaryWays: that shape
// is only ever valid directly beneath the '?' that completes it, never
// as an operand to an unrelated operator.
func rejectBareWays(n Node) error {
	if _, bare := n.(TernaryWays); bare {
		return ErrParse
	}
	return nil
}

// parse runs the full tokenize/shunt/fold loop over the scanner.
func (p *parser) parse() (Node, error) {
	tokens := 0
	for {
		p.sc.Apply(scan.Spaces())
		if p.sc.Exhausted() {
			break
		}
		if b, _ := p.sc.At(p.sc.Pos()); isSemicolon(b) {
			if err := p.checkTrailingSemicolons(); err != nil {
				return nil, err
			}
			break
		}
		if err := p.step(); err != nil {
			return nil, err
		}
		tokens++
	}
	if tokens == 0 {
		return nil, p.fail(TextIsntExpr)
	}

	for !p.operators.empty() {
		top := p.operators.pop()
		if top.kind == entryOpenBrace {
			return nil, p.fail(CouldntFindCloseBrace)
		}
		if err := p.foldOne(top); err != nil {
			return nil, err
		}
	}

	if p.operands.len() != 1 {
		return nil, p.fail(SemanticsInconsistency)
	}
	result := p.operands.pop()
	if _, bare := result.(TernaryWays); bare {
		return nil, p.fail(PieceOfTernaryOpr)
	}
	return result, nil
}

// step consumes exactly one token and applies its effect to the parser
// state.
func (p *parser) step() error {
	b, _ := p.sc.At(p.sc.Pos())

	switch {
	case isDigit(b):
		return p.readNumLiteral()

	case isQuote(b):
		return p.readStringLiteral()

	case isAlpha(b) || b == '_':
		return p.readVar()

	case isOpenBrace(b):
		return p.readOpenBrace(b)

	case isSpecialOpenBrace(b):
		return p.readCtorCall()

	case b == ')':
		return p.readCloseParen()

	case b == ']':
		return p.fail(CouldntFindOpenBrace)

	case isSpecialCloseBrace(b):
		return p.fail(CouldntFindOpenBrace)

	default:
		return p.readOperatorOrFail()
	}
}

func (p *parser) readNumLiteral() error {
	if p.isNode {
		return p.fail(CouldntFindOperator)
	}
	p.sc.ExtractNext()
	if !p.sc.Apply(numLiteral) {
		return p.fail(CouldntReadNumLiteral)
	}
	p.operands.push(Leaf{Kind: NumLiteral, Text: p.sc.PopExtracted()})
	p.isNode = true
	return nil
}

func (p *parser) readStringLiteral() error {
	if p.isNode {
		return p.fail(CouldntFindOperator)
	}
	p.sc.ExtractNext()
	if !p.sc.Apply(stringLiteral) {
		return p.fail(CouldntReadStringLiteral)
	}
	p.operands.push(Leaf{Kind: StrLiteral, Text: p.sc.PopExtracted()})
	p.isNode = true
	return nil
}

func (p *parser) readVar() error {
	if p.isNode {
		return p.fail(CouldntFindOperator)
	}
	p.sc.ExtractNext()
	if !p.sc.Apply(token) {
		return p.fail(CouldntFindToken)
	}
	p.operands.push(Leaf{Kind: Var, Text: p.sc.PopExtracted()})
	p.isNode = true
	return nil
}

// readOpenBrace handles '(' and '['. When an operand already precedes
// it, the delimiter opens a call's argument list; the leading '(' or
// '[' is consumed separately from the argument text so the FuncArg leaf
// holds only the inner slice, not the delimiters themselves. Otherwise
// '(' opens a grouped sub-expression; a bare '[' with no preceding
// operand names no function to call.
func (p *parser) readOpenBrace(open byte) error {
	if p.isNode {
		callee := p.operands.pop()
		closeByte := closingFor(open)
		p.sc.Apply(scan.Char(open))
		p.sc.ExtractNext()
		if !p.sc.Apply(scan.UntilBalance(open, closeByte, 1)) {
			return p.fail(CouldntFindCloseBrace)
		}
		inner := p.sc.PopExtracted()
		args := inner[:len(inner)-1]
		p.operands.push(BinaryNode{Op: Call, Left: callee, Right: Leaf{Kind: FuncArg, Text: args}})
		p.isNode = true
		return nil
	}
	if open == '[' {
		return p.fail(CouldntFindFuncPtr)
	}
	p.sc.Apply(scan.Char('('))
	p.operators.push(oprEntry{kind: entryOpenBrace})
	p.isNode = false
	return nil
}

// readCtorCall handles '{'. It requires a preceding bare variable leaf
// (the type name) and folds the whole "Name{...}" span into a single
// CtorCall leaf without recursively parsing the argument list.
func (p *parser) readCtorCall() error {
	if !p.isNode {
		return p.fail(IncorrectChar)
	}
	top := p.operands.peek()
	name, ok := top.(Leaf)
	if !ok || name.Kind != Var {
		return p.fail(SemanticsInconsistency)
	}
	p.operands.pop()
	p.sc.ExtractNext()
	if !p.sc.Apply(scan.UntilBalance('{', '}', 0)) {
		return p.fail(CouldntFindCloseBrace)
	}
	body := p.sc.PopExtracted()
	p.operands.push(Leaf{Kind: CtorCall, Text: name.Text + body})
	p.isNode = true
	return nil
}

func (p *parser) readCloseParen() error {
	p.sc.Apply(scan.Char(')'))
	for {
		if p.operators.empty() {
			return p.fail(CouldntFindOpenBrace)
		}
		top := p.operators.pop()
		if top.kind == entryOpenBrace {
			break
		}
		if err := p.foldOne(top); err != nil {
			return err
		}
	}
	p.isNode = true
	return nil
}

func (p *parser) readOperatorOrFail() error {
	start := p.sc.Pos()
	next, ok := p.sc.Invoke(operatorGlyph)
	if !ok {
		return p.fail(IncorrectChar)
	}
	glyph, err := p.sc.Substr(start, next-start)
	if err != nil {
		return p.fail(IncorrectChar)
	}
	entry, ok := resolveOperator(glyph, p.isNode)
	if !ok {
		return p.fail(CouldntFindOperator)
	}

	if entry.kind == entryTernaryWays && !p.isNode {
		return p.fail(PieceOfTernaryOpr)
	}
	if entry.kind == entryTernaryCondition && !p.isNode {
		return p.fail(PieceOfTernaryOpr)
	}

	for !p.operators.empty() && entry.collapses(p.operators.peek()) {
		if err := p.foldOne(p.operators.pop()); err != nil {
			return err
		}
	}
	p.operators.push(entry)
	p.sc.Apply(scan.Chars(glyph))

	switch entry.kind {
	case entryUnary:
		p.isNode = entry.unary == PostfixInc || entry.unary == PostfixDec
	default:
		p.isNode = false
	}
	return nil
}

// resolveOperator maps a scanned glyph to the operator it names in the
// current context. The unary table is always probed first (matching
// the reference lookup order), so +, -, &, *, and && default to their
// unary reading and are rebound to the corresponding binary operator
// once an operand already precedes them. ++ and -- default to postfix
// and are rebound to prefix when an operand is instead expected.
func resolveOperator(glyph string, isNode bool) (oprEntry, bool) {
	if u, ok := lookupUnary(glyph); ok {
		if isNode {
			if b, rebind := rebindToBinary[u]; rebind {
				return oprEntry{kind: entryBinary, binary: b}, true
			}
			if u == PostfixInc || u == PostfixDec {
				return oprEntry{kind: entryUnary, unary: u}, true
			}
			return oprEntry{}, false
		}
		switch u {
		case PostfixInc:
			return oprEntry{kind: entryUnary, unary: PrefixInc}, true
		case PostfixDec:
			return oprEntry{kind: entryUnary, unary: PrefixDec}, true
		default:
			return oprEntry{kind: entryUnary, unary: u}, true
		}
	}
	if b, ok := lookupBinary(glyph); ok {
		if !isNode {
			return oprEntry{}, false
		}
		return oprEntry{kind: entryBinary, binary: b}, true
	}
	if t, ok := lookupTernary(glyph); ok {
		kind := entryTernaryWays
		if t == Condition {
			kind = entryTernaryCondition
		}
		return oprEntry{kind: kind, ternary: t}, true
	}
	return oprEntry{}, false
}

// foldOne pops zero operands for an open-brace sentinel (never passed
// here), one for a unary operator, two for a binary operator or a ':',
// and a condition plus a TernaryWays for a '?'.
func (p *parser) foldOne(e oprEntry) error {
	switch e.kind {
	case entryUnary:
		if p.operands.empty() {
			return p.fail(CouldntFindOperand)
		}
		child := p.operands.pop()
		if err := rejectBareWays(child); err != nil {
			return p.fail(PieceOfTernaryOpr)
		}
		p.operands.push(UnaryNode{Op: e.unary, Child: child})
		return nil

	case entryBinary:
		if p.operands.len() < 2 {
			return p.fail(CouldntFindOperand)
		}
		right := p.operands.pop()
		left := p.operands.pop()
		if err := rejectBareWays(right); err != nil {
			return p.fail(PieceOfTernaryOpr)
		}
		if err := rejectBareWays(left); err != nil {
			return p.fail(PieceOfTernaryOpr)
		}
		p.operands.push(BinaryNode{Op: e.binary, Left: left, Right: right})
		return nil

	case entryTernaryWays:
		if p.operands.len() < 2 {
			return p.fail(PieceOfTernaryOpr)
		}
		elseNode := p.operands.pop()
		if err := rejectBareWays(elseNode); err != nil {
			return p.fail(PieceOfTernaryOpr)
		}
		thenNode := p.operands.pop()
		if err := rejectBareWays(thenNode); err != nil {
			return p.fail(PieceOfTernaryOpr)
		}
		p.operands.push(TernaryWays{Then: thenNode, Else: elseNode})
		return nil

	case entryTernaryCondition:
		if p.operands.empty() {
			return p.fail(PieceOfTernaryOpr)
		}
		ways, ok := p.operands.pop().(TernaryWays)
		if !ok {
			return p.fail(PieceOfTernaryOpr)
		}
		if p.operands.empty() {
			return p.fail(PieceOfTernaryOpr)
		}
		if err := rejectBareWays(p.operands.peek()); err != nil {
			return p.fail(PieceOfTernaryOpr)
		}
		cond := p.operands.pop()
		p.operands.push(TernaryCondition{Condition: cond, Ways: ways})
		return nil

	default:
		return p.fail(SemanticsInconsistency)
	}
}
