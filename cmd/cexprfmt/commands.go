// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree("cexprfmt")
	root.AddCommand(cmd.Command{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*app).cmdHelp,
	})
	root.AddCommand(cmd.Command{
		Name:  "parse",
		Brief: "Parse an expression and print its tree",
		Description: "Parse the given C-like expression and print the" +
			" resulting operator tree. On failure, print the parse error" +
			" and the byte offset at which it was detected.",
		Usage: "parse <expression>",
		Data:  (*app).cmdParse,
	})
	root.AddCommand(cmd.Command{
		Name:  "set",
		Brief: "Display or set a configuration variable",
		Description: "Set the value of a configuration variable. To see" +
			" the current values of all configuration variables, type set" +
			" without any arguments.",
		Usage: "set [<var> <value>]",
		Data:  (*app).cmdSet,
	})
	root.AddCommand(cmd.Command{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*app).cmdQuit,
	})

	root.AddShortcut("p", "parse")
	root.AddShortcut("q", "quit")
	root.AddShortcut("?", "help")

	cmds = root
}
