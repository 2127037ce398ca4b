// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// settings holds the cexprfmt demo's tunables. It is built the same way
// go6502's host package builds its own settings: a plain struct with
// "doc" tags, reflected once at init time into a prefixtree keyed by
// lower-cased field name so "set" can look fields up by any unambiguous
// prefix.
type settings struct {
	Verbose     bool `doc:"trace each parse phase to the output writer"`
	ShowSlices  bool `doc:"annotate each printed leaf with its length in bytes"`
	CompactMode bool `doc:"print the tree on a single line instead of indented"`
}

func newSettings() *settings {
	return &settings{
		Verbose:     false,
		ShowSlices:  false,
		CompactMode: false,
	}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	typ   reflect.Type
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	settingsType := reflect.TypeOf(settings{})
	settingsFields = make([]settingsField, settingsType.NumField())
	for i := 0; i < len(settingsFields); i++ {
		f := settingsType.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			typ:   f.Type,
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

func (s *settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		fmt.Fprintf(w, "    %-12s %-5v (%s)\n", f.name, v, f.doc)
	}
}

func (s *settings) Kind(key string) reflect.Kind {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return reflect.Invalid
	}
	return f.kind
}

func (s *settings) Set(key string, value bool) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return err
	}
	if f.kind != reflect.Bool {
		return errors.New("setting is not a boolean")
	}
	reflect.ValueOf(s).Elem().Field(f.index).SetBool(value)
	return nil
}

func stringToBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "on", "1", "yes":
		return true, nil
	case "false", "off", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", s)
	}
}
