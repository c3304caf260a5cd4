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
	"sort"

	"github.com/devpreview/dbext"
	"github.com/devpreview/dbext/internal/exql"
)

// ReturningColumn is an entry of a RETURNING clause. Column is either a
// column name or a dbext.RawValue. An empty Alias renders the bare column.
type ReturningColumn struct {
	Alias  string
	Column interface{}
}

// ReturningColumns is an ordered RETURNING specification.
type ReturningColumns []ReturningColumn

// Returning creates a specification of bare columns.
func Returning(columns ...interface{}) ReturningColumns {
	spec := make(ReturningColumns, 0, len(columns))
	for i := range columns {
		spec = append(spec, ReturningColumn{Column: columns[i]})
	}
	return spec
}

// ReturningAs creates a specification with a single column renamed to alias.
func ReturningAs(alias string, column interface{}) ReturningColumns {
	return ReturningColumns{{Alias: alias, Column: column}}
}

// ReturningMap creates a specification from an alias -> column map. Entries
// are sorted by alias, entries with an empty alias render bare.
func ReturningMap(m map[string]interface{}) ReturningColumns {
	aliases := make([]string, 0, len(m))
	for alias := range m {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	spec := make(ReturningColumns, 0, len(m))
	for _, alias := range aliases {
		spec = append(spec, ReturningColumn{Alias: alias, Column: m[alias]})
	}
	return spec
}

// And returns a new specification with the entries of more appended.
func (rc ReturningColumns) And(more ReturningColumns) ReturningColumns {
	spec := make(ReturningColumns, 0, len(rc)+len(more))
	spec = append(spec, rc...)
	return append(spec, more...)
}

func (rc ReturningColumns) fragment(ep *expressionProcessor, params *ParameterContainer) (*exql.Returning, error) {
	columns := make([]exql.Fragment, 0, len(rc))
	for _, entry := range rc {
		switch c := entry.Column.(type) {
		case string:
			columns = append(columns, exql.ColumnWithAlias(c, entry.Alias))
		case dbext.RawValue:
			sql, exprParams, err := ep.process(c, params.Len())
			if err != nil {
				return nil, err
			}
			if params != nil {
				params.Merge(exprParams)
			}
			columns = append(columns, exql.ColumnWithAlias(exql.RawValue(sql), entry.Alias))
		default:
			return nil, fmt.Errorf("%w: got %T", dbext.ErrInvalidReturningColumn, entry.Column)
		}
	}
	return exql.ReturningColumns(columns...), nil
}

// InsertReturning builds INSERT statements with a RETURNING clause. With no
// returning columns the clause is RETURNING NULL.
type InsertReturning struct {
	insert    *Insert
	returning ReturningColumns
}

// NewInsertReturning creates an INSERT ... RETURNING builder for the given
// table, which can be a string or a TableIdentifier.
func NewInsertReturning(table interface{}) *InsertReturning {
	return &InsertReturning{insert: NewInsert(table)}
}

// Into sets the target table.
func (ir *InsertReturning) Into(table interface{}) *InsertReturning {
	ir.insert.Into(table)
	return ir
}

// Columns sets the columns to insert into.
func (ir *InsertReturning) Columns(columns ...string) *InsertReturning {
	ir.insert.Columns(columns...)
	return ir
}

// Values sets the values to insert, in column order.
func (ir *InsertReturning) Values(values ...interface{}) *InsertReturning {
	ir.insert.Values(values...)
	return ir
}

// Set replaces columns and values with the contents of set.
func (ir *InsertReturning) Set(set map[string]interface{}) *InsertReturning {
	ir.insert.Set(set)
	return ir
}

// SetColumnValues is like Set, without chaining.
func (ir *InsertReturning) SetColumnValues(set map[string]interface{}) {
	ir.insert.Set(set)
}

// Table returns the target table.
func (ir *InsertReturning) Table() TableIdentifier {
	return ir.insert.Table()
}

// ReturningColumns replaces the returning specification.
func (ir *InsertReturning) ReturningColumns(columns ReturningColumns) *InsertReturning {
	ir.returning = columns
	return ir
}

// SetReturningColumns is like ReturningColumns, without chaining.
func (ir *InsertReturning) SetReturningColumns(columns ReturningColumns) {
	ir.returning = columns
}

// GetReturningColumns returns the returning specification.
func (ir *InsertReturning) GetReturningColumns() ReturningColumns {
	return ir.returning
}

func (ir *InsertReturning) build(p Platform, d Driver, params *ParameterContainer) (*exql.Statement, error) {
	stmt, err := ir.insert.statement(exql.InsertReturning, p, d, params)
	if err != nil {
		return nil, err
	}

	ep := &expressionProcessor{
		platform: p,
		driver:   d,
		params:   params,
		reserved: make(map[string]struct{}),
	}
	for _, column := range ir.insert.columns {
		ep.reserved[column] = struct{}{}
	}

	stmt.Returning, err = ir.returning.fragment(ep, params)
	if err != nil {
		return nil, err
	}

	return stmt, nil
}

// PrepareStatement renders the statement for the given adapter into stmt.
func (ir *InsertReturning) PrepareStatement(a Adapter, stmt *Statement) error {
	return prepare(stmt, a, ir.build)
}

// Prepare renders the statement into a new Statement.
func (ir *InsertReturning) Prepare(a Adapter) (*Statement, error) {
	stmt := NewStatement()
	if err := ir.PrepareStatement(a, stmt); err != nil {
		return nil, err
	}
	return stmt, nil
}

// SQLString renders the statement with quoted values.
func (ir *InsertReturning) SQLString(p Platform) (string, error) {
	return sqlString(p, ir.build)
}

// String satisfies fmt.Stringer, it renders SQL92 literal SQL.
func (ir *InsertReturning) String() string {
	s, err := ir.SQLString(nil)
	if err != nil {
		return ""
	}
	return s
}
