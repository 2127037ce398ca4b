// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cexpr

import (
	"errors"
	"fmt"
)

// Code is a wire-visible parse-error classification. Callers that parse
// expressions out of a larger file format can switch on Code without
// depending on the English message text.
type Code byte

const (
	CouldntFindOperator Code = iota
	CouldntFindOperand
	CouldntFindOpenBrace
	CouldntFindCloseBrace
	CouldntReadNumLiteral
	CouldntReadStringLiteral
	CouldntFindToken
	CouldntFindFuncPtr
	PieceOfTernaryOpr
	SemanticsInconsistency
	IncorrectChar
	TextIsntExpr
	numCodes
)

var codeText = [numCodes]string{
	CouldntFindOperator:     "couldnt find operator",
	CouldntFindOperand:      "couldnt find operand",
	CouldntFindOpenBrace:    "couldnt find open brace",
	CouldntFindCloseBrace:   "couldnt find close brace",
	CouldntReadNumLiteral:   "couldnt read num literal",
	CouldntReadStringLiteral: "couldnt read string literal",
	CouldntFindToken:        "couldnt find token",
	CouldntFindFuncPtr:      "couldnt find func ptr",
	PieceOfTernaryOpr:       "piece of ternary opr",
	SemanticsInconsistency:  "semantics inconsistency",
	IncorrectChar:           "incorrect char",
	TextIsntExpr:            "text isnt expr",
}

func (c Code) String() string {
	if c < numCodes {
		return codeText[c]
	}
	return "unknown error"
}

// ErrParse is the sentinel every *ParseError wraps, so a caller that
// only wants to know "did this fail to parse" can use errors.Is(err,
// cexpr.ErrParse) instead of a type switch.
var ErrParse = errors.New("cexpr: parse error")

// ParseError reports a single parse failure: a Code plus the byte
// offset in the source at which it was detected.
type ParseError struct {
	Code Code
	Pos  uint64
}

func newParseError(code Code, pos uint64) *ParseError {
	return &ParseError{Code: code, Pos: pos}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.MessageAt()
}

// Unwrap lets errors.Is(err, ErrParse) succeed for any ParseError.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Message renders the error without a position, for contexts that
// report the offset separately (e.g. alongside a source-line excerpt).
func (e *ParseError) Message() string {
	return e.Code.String()
}

// MessageAt renders the error together with its byte offset. The
// preposition before the offset depends on Code, matching the original
// get_error_message(code, pos) overload: a missing brace or token is
// reported "before" the position that should have held it, a missing
// close brace "after" the span it should have closed, a missing
// operator/operand "for operand/operator in" the position, and
// everything else simply "in" the position.
func (e *ParseError) MessageAt() string {
	return fmt.Sprintf("%s %s", e.Code.String(), e.locationPhrase())
}

func (e *ParseError) locationPhrase() string {
	switch e.Code {
	case CouldntFindOpenBrace, CouldntFindToken, CouldntFindFuncPtr:
		return fmt.Sprintf("before %d", e.Pos)
	case CouldntFindCloseBrace:
		return fmt.Sprintf("after %d", e.Pos)
	case CouldntFindOperator:
		return fmt.Sprintf("for operand in %d", e.Pos)
	case CouldntFindOperand:
		return fmt.Sprintf("for operator in %d", e.Pos)
	default:
		return fmt.Sprintf("in %d", e.Pos)
	}
}
