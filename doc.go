// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cexpr parses a single C-like expression into a tree of
// operator and operand nodes using Dijkstra's shunting-yard algorithm.
// It understands the full C operator-precedence ladder, including
// prefix/postfix increment and decrement, function- and
// constructor-call syntax, and the ternary conditional operator.
package cexpr
