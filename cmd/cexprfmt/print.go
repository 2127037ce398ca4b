// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/beevik/cexpr"
)

// printTree prints n as an indented outline, one node per line. It is
// the cexprfmt demo's only consumer of the cexpr tree shapes, and
// exists purely to make a parse result legible on a terminal; cexpr
// itself never formats its own trees.
func (a *app) printTree(n cexpr.Node, depth int) {
	indent := strings.Repeat("    ", depth)
	switch v := n.(type) {
	case cexpr.Leaf:
		a.printf("%s%s %s\n", indent, v.Kind, a.leafText(v))

	case cexpr.UnaryNode:
		a.printf("%sunary %s\n", indent, v.Op)
		a.printTree(v.Child, depth+1)

	case cexpr.BinaryNode:
		if v.Op == cexpr.Call {
			a.printf("%scall\n", indent)
		} else {
			a.printf("%sbinary %s\n", indent, v.Op)
		}
		a.printTree(v.Left, depth+1)
		a.printTree(v.Right, depth+1)

	case cexpr.TernaryWays:
		a.printf("%sways\n", indent)
		a.printTree(v.Then, depth+1)
		a.printTree(v.Else, depth+1)

	case cexpr.TernaryCondition:
		a.printf("%scondition\n", indent)
		a.printTree(v.Condition, depth+1)
		a.printTree(v.Ways, depth+1)

	default:
		a.printf("%s?\n", indent)
	}
}

func (a *app) leafText(l cexpr.Leaf) string {
	if !a.settings.ShowSlices {
		return fmt.Sprintf("%q", l.Text)
	}
	return fmt.Sprintf("%q (%d bytes)", l.Text, len(l.Text))
}

// renderCompact renders n as a single-line, fully-parenthesized
// expression, for "set compactmode true" output.
func renderCompact(n cexpr.Node) string {
	switch v := n.(type) {
	case cexpr.Leaf:
		return v.Text
	case cexpr.UnaryNode:
		if v.Op == cexpr.PostfixInc || v.Op == cexpr.PostfixDec {
			return fmt.Sprintf("(%s%s)", renderCompact(v.Child), v.Op)
		}
		return fmt.Sprintf("(%s%s)", v.Op, renderCompact(v.Child))
	case cexpr.BinaryNode:
		if v.Op == cexpr.Call {
			return fmt.Sprintf("%s(%s)", renderCompact(v.Left), renderCompact(v.Right))
		}
		return fmt.Sprintf("(%s%s%s)", renderCompact(v.Left), v.Op, renderCompact(v.Right))
	case cexpr.TernaryCondition:
		return fmt.Sprintf("(%s?%s:%s)", renderCompact(v.Condition), renderCompact(v.Ways.Then), renderCompact(v.Ways.Else))
	default:
		return "?"
	}
}
