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

// Table struct represents a SQL table, optionally qualified by a schema.
type Table struct {
	Name   string
	Schema string
}

var _ = Fragment(&Table{})

// TableWithName creates a new Table with the given name.
func TableWithName(name string) *Table {
	return &Table{Name: name}
}

// TableWithSchema creates a new Table within the given schema.
func TableWithSchema(schema, name string) *Table {
	return &Table{Name: name, Schema: schema}
}

// Hash returns a unique identifier for the struct.
func (t *Table) Hash() uint64 {
	return quickHash(FragmentType_Table, t.Schema, t.Name)
}

// Compile transforms a table struct into a SQL chunk.
func (t *Table) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(t); ok {
		return z, nil
	}

	if t.Name == "" {
		return "", nil
	}

	compiled = layout.QuoteIdentifier(t.Name)
	if t.Schema != "" {
		compiled = layout.QuoteIdentifier(t.Schema) + layout.ColumnSeparator + compiled
	}

	layout.Write(t, compiled)
	return
}
