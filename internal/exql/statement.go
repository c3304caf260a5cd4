// Copyright (c) 2012-present The upper.io/db authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package exql

import (
	"errors"
	"reflect"
	"strings"
)

var errUnknownTemplateType = errors.New("unknown template type")

// Statement represents different kinds of SQL statements.
type Statement struct {
	Type
	Table     Fragment
	Columns   Fragment
	Values    Fragment
	Returning Fragment

	SQL string
}

type statementT struct {
	Table     string
	Columns   string
	Values    string
	Returning string
}

func (layout *Template) doCompile(c Fragment) (string, error) {
	if c != nil && !reflect.ValueOf(c).IsNil() {
		return c.Compile(layout)
	}
	return "", nil
}

// Compile transforms the Statement into an equivalent SQL query.
func (s *Statement) Compile(layout *Template) (compiled string, err error) {
	if s.Type == SQL {
		// No need to hit the cache.
		return s.SQL, nil
	}

	var data statementT

	data.Table, err = layout.doCompile(s.Table)
	if err != nil {
		return "", err
	}

	data.Columns, err = layout.doCompile(s.Columns)
	if err != nil {
		return "", err
	}

	data.Values, err = layout.doCompile(s.Values)
	if err != nil {
		return "", err
	}

	data.Returning, err = layout.doCompile(s.Returning)
	if err != nil {
		return "", err
	}

	switch s.Type {
	case Insert:
		compiled = mustParse(layout.InsertLayout, data)
	case InsertReturning:
		compiled = mustParse(layout.InsertReturningLayout, data)
	default:
		return "", errUnknownTemplateType
	}

	return strings.TrimSpace(compiled), nil
}

// RawSQL represents a raw SQL statement.
func RawSQL(s string) *Statement {
	return &Statement{
		Type: SQL,
		SQL:  s,
	}
}
