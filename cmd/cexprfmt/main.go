// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/beevik/term"
)

var (
	verbose bool
	script  string
)

func init() {
	flag.BoolVar(&verbose, "v", false, "trace each parse")
	flag.StringVar(&script, "f", "", "run commands from a script file instead of stdin")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: cexprfmt [-v] [-f <script>]\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	a := newApp()
	if verbose {
		a.settings.Verbose = true
	}

	if script != "" {
		file, err := os.Open(script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		a.run(file, os.Stdout, false)
		return
	}

	// An interactive terminal gets a prompt before every line; a piped
	// script being fed to stdin does not.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	a.run(os.Stdin, os.Stdout, interactive)
}
