// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cexprfmt is a small REPL around the cexpr parser: it reads
// "parse"/"set"/"help"/"quit" commands from stdin or a script file and,
// for "parse", prints the resulting operator tree, modeled on go6502/host's
// command dispatch and settings machinery.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/cexpr"
	"github.com/beevik/cmd"
)

// app is the cexprfmt REPL state: an input/output pair, the last
// command selected (so a blank line repeats it, matching go6502's
// host), and the settings the "set" command edits.
type app struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Selection
	settings    *settings
}

func newApp() *app {
	return &app{settings: newSettings()}
}

// run reads commands from r and writes results to w until r is
// exhausted or a "quit" command is processed. When interactive is true
// a prompt is printed before each line is read.
func (a *app) run(r io.Reader, w io.Writer, interactive bool) {
	a.input = bufio.NewScanner(r)
	a.output = bufio.NewWriter(w)
	a.interactive = interactive

	for {
		a.prompt()

		line, err := a.getLine()
		if err != nil {
			break
		}

		if err := a.processCommand(line); err != nil {
			break
		}
	}
}

func (a *app) processCommand(line string) error {
	var c cmd.Selection
	if line != "" {
		var err error
		c, err = cmds.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			a.println("Command not found.")
			return nil
		case err == cmd.ErrAmbiguous:
			a.println("Command is ambiguous.")
			return nil
		case err != nil:
			a.printf("ERROR: %v.\n", err)
			return nil
		}
	} else if a.lastCmd != nil {
		c = *a.lastCmd
	}

	if c.Command == nil {
		return nil
	}

	a.lastCmd = &c

	handler := c.Command.Data.(func(*app, cmd.Selection) error)
	return handler(a, c)
}

func (a *app) getLine() (string, error) {
	if a.input.Scan() {
		return a.input.Text(), nil
	}
	if a.input.Err() != nil {
		return "", a.input.Err()
	}
	return "", io.EOF
}

func (a *app) prompt() {
	if a.interactive {
		a.printf("cexpr> ")
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.output, format, args...)
	a.output.Flush()
}

func (a *app) println(args ...any) {
	fmt.Fprintln(a.output, args...)
	a.output.Flush()
}

func (a *app) cmdHelp(c cmd.Selection) error {
	switch {
	case len(c.Args) == 0:
		a.printf("%s commands:\n", cmds.Title)
		for _, cc := range cmds.Commands {
			if cc.Brief != "" {
				a.printf("    %-10s  %s\n", cc.Name, cc.Brief)
			}
		}
	default:
		s, err := cmds.Lookup(strings.Join(c.Args, " "))
		if err != nil {
			a.printf("%v\n", err)
			return nil
		}
		if s.Command.Usage != "" {
			a.printf("Usage: %s\n", s.Command.Usage)
		}
		if s.Command.Description != "" {
			a.printf("%s\n", s.Command.Description)
		}
	}
	return nil
}

func (a *app) cmdParse(c cmd.Selection) error {
	if len(c.Args) < 1 {
		a.printf("Usage: %s\n", c.Command.Usage)
		return nil
	}

	expr := strings.Join(c.Args, " ")

	if a.settings.Verbose {
		a.printf("parse: input=%q\n", expr)
	}

	n, err := cexpr.Parse(expr)
	if err != nil {
		if pe, ok := err.(*cexpr.ParseError); ok {
			a.printf("error: %s\n", pe.MessageAt())
		} else {
			a.printf("error: %v\n", err)
		}
		return nil
	}

	if a.settings.Verbose {
		a.println("parse: ok")
	}

	if a.settings.CompactMode {
		a.println(renderCompact(n))
	} else {
		a.printTree(n, 0)
	}
	return nil
}

func (a *app) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		a.println("Variables:")
		a.settings.Display(a.output)

	case 1:
		a.printf("Usage: %s\n", c.Command.Usage)

	default:
		key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")

		v, err := stringToBool(value)
		if err != nil {
			a.printf("%v\n", err)
			return nil
		}
		if err := a.settings.Set(key, v); err != nil {
			a.printf("%v\n", err)
			return nil
		}
		a.println("Setting updated.")
	}
	return nil
}

// errQuit is returned by cmdQuit to unwind app.run's loop; it isn't
// reported as an error to the user.
var errQuit = fmt.Errorf("cexprfmt: quit")

func (a *app) cmdQuit(c cmd.Selection) error {
	return errQuit
}
