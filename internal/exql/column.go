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
	"fmt"
)

type columnT struct {
	Name  string
	Alias string
}

// Column represents a SQL column, optionally aliased.
type Column struct {
	Name  interface{}
	Alias string
}

var _ = Fragment(&Column{})

// ColumnWithName creates and returns a Column with the given name.
func ColumnWithName(name string) *Column {
	return &Column{Name: name}
}

// ColumnWithAlias creates and returns a Column that is renamed to alias.
func ColumnWithAlias(name interface{}, alias string) *Column {
	return &Column{Name: name, Alias: alias}
}

// Hash returns a unique identifier for the struct.
func (c *Column) Hash() uint64 {
	if c == nil {
		return uint64(FragmentType_Nil)
	}
	return quickHash(FragmentType_Column, c.Name, c.Alias)
}

// Compile transforms the ColumnValue into an equivalent SQL representation.
func (c *Column) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(c); ok {
		return z, nil
	}

	var name string
	switch value := c.Name.(type) {
	case string:
		name = layout.QuoteIdentifier(value)
	case compilable:
		name, err = value.Compile(layout)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unexpected column name type %T", c.Name)
	}

	if c.Alias == "" {
		compiled = name
	} else {
		compiled = mustParse(layout.ColumnAliasLayout, columnT{
			Name:  name,
			Alias: layout.QuoteIdentifier(c.Alias),
		})
	}

	layout.Write(c, compiled)
	return
}
