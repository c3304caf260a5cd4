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

package sqlbuilder

import (
	"fmt"

	"github.com/devpreview/dbext/internal/exql"
)

// TableIdentifier names a table, optionally within a schema.
type TableIdentifier struct {
	Table  string
	Schema string
}

// NewTableIdentifier creates a TableIdentifier.
func NewTableIdentifier(table, schema string) TableIdentifier {
	return TableIdentifier{Table: table, Schema: schema}
}

// TableAndSchema returns both parts of the identifier.
func (t TableIdentifier) TableAndSchema() (string, string) {
	return t.Table, t.Schema
}

func (t TableIdentifier) String() string {
	if t.Schema == "" {
		return t.Table
	}
	return t.Schema + "." + t.Table
}

func (t TableIdentifier) fragment() *exql.Table {
	return exql.TableWithSchema(t.Schema, t.Table)
}

func toTableIdentifier(table interface{}) (TableIdentifier, error) {
	switch t := table.(type) {
	case string:
		return TableIdentifier{Table: t}, nil
	case TableIdentifier:
		return t, nil
	case *TableIdentifier:
		if t == nil {
			return TableIdentifier{}, nil
		}
		return *t, nil
	}
	return TableIdentifier{}, fmt.Errorf("unsupported table type %T", table)
}
