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

// Insert builds plain INSERT statements.
type Insert struct {
	table   TableIdentifier
	columns []string
	values  []interface{}
	err     error
}

// NewInsert creates an INSERT builder for the given table, which can be a
// string or a TableIdentifier.
func NewInsert(table interface{}) *Insert {
	return (&Insert{}).Into(table)
}

// Into sets the target table.
func (ins *Insert) Into(table interface{}) *Insert {
	ins.table, ins.err = toTableIdentifier(table)
	return ins
}

// Table returns the target table.
func (ins *Insert) Table() TableIdentifier {
	return ins.table
}

// Columns sets the columns to insert into.
func (ins *Insert) Columns(columns ...string) *Insert {
	ins.columns = columns
	return ins
}

// Values sets the values to insert, in column order. Columns without a value
// are inserted as NULL. Values can be dbext.RawValue expressions.
func (ins *Insert) Values(values ...interface{}) *Insert {
	ins.values = values
	return ins
}

// Set replaces columns and values with the contents of set. Columns are
// sorted by name.
func (ins *Insert) Set(set map[string]interface{}) *Insert {
	columns := make([]string, 0, len(set))
	for k := range set {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	values := make([]interface{}, len(columns))
	for i := range columns {
		values[i] = set[columns[i]]
	}

	ins.columns, ins.values = columns, values
	return ins
}

// SetColumnValues is like Set, without chaining.
func (ins *Insert) SetColumnValues(set map[string]interface{}) {
	ins.Set(set)
}

// GetColumns returns the columns of the statement.
func (ins *Insert) GetColumns() []string {
	return ins.columns
}

// GetValues returns the values of the statement.
func (ins *Insert) GetValues() []interface{} {
	return ins.values
}

func (ins *Insert) validate() error {
	if ins.err != nil {
		return ins.err
	}
	if ins.table.Table == "" {
		return dbext.ErrMissingTable
	}
	if len(ins.columns) == 0 {
		return dbext.ErrMissingColumns
	}
	if len(ins.values) > len(ins.columns) {
		return fmt.Errorf("%w: %d columns, %d values", dbext.ErrMismatchedColumnValues, len(ins.columns), len(ins.values))
	}
	return nil
}

func (ins *Insert) value(i int) interface{} {
	if i < len(ins.values) {
		return ins.values[i]
	}
	return nil
}

// statement builds the exql statement. When d is nil values are quoted into
// the SQL text, otherwise they're bound into params.
func (ins *Insert) statement(t exql.Type, p Platform, d Driver, params *ParameterContainer) (*exql.Statement, error) {
	if err := ins.validate(); err != nil {
		return nil, err
	}

	ep := &expressionProcessor{
		platform: p,
		driver:   d,
		params:   params,
		reserved: make(map[string]struct{}, len(ins.columns)),
	}
	for _, column := range ins.columns {
		ep.reserved[column] = struct{}{}
	}

	columns := make([]exql.Fragment, len(ins.columns))
	values := make([]exql.Fragment, len(ins.columns))

	for i, column := range ins.columns {
		columns[i] = exql.ColumnWithName(column)

		value := ins.value(i)
		if expr, ok := value.(dbext.RawValue); ok {
			sql, exprParams, err := ep.process(expr, params.Len())
			if err != nil {
				return nil, err
			}
			if params != nil {
				params.Merge(exprParams)
			}
			values[i] = exql.RawValue(sql)
			continue
		}

		if d == nil {
			values[i] = exql.NewValue(value)
			continue
		}

		position := params.Set(column, value)
		values[i] = exql.RawValue(d.FormatParameterName(column, position))
	}

	return &exql.Statement{
		Type:    t,
		Table:   ins.table.fragment(),
		Columns: exql.JoinColumns(columns...),
		Values:  exql.NewValueGroup(values...),
	}, nil
}

func prepare(stmt *Statement, a Adapter, build func(Platform, Driver, *ParameterContainer) (*exql.Statement, error)) error {
	params := stmt.ParameterContainer()

	es, err := build(a.Platform(), a.Driver(), params)
	if err != nil {
		return err
	}

	sql, err := es.Compile(a.Platform().Template())
	if err != nil {
		return err
	}

	stmt.SQL = sql
	return nil
}

func sqlString(p Platform, build func(Platform, Driver, *ParameterContainer) (*exql.Statement, error)) (string, error) {
	if p == nil {
		p = SQL92
	}

	es, err := build(p, nil, nil)
	if err != nil {
		return "", err
	}

	return es.Compile(p.Template())
}

func (ins *Insert) build(p Platform, d Driver, params *ParameterContainer) (*exql.Statement, error) {
	return ins.statement(exql.Insert, p, d, params)
}

// PrepareStatement renders the statement for the given adapter into stmt.
func (ins *Insert) PrepareStatement(a Adapter, stmt *Statement) error {
	return prepare(stmt, a, ins.build)
}

// Prepare renders the statement into a new Statement.
func (ins *Insert) Prepare(a Adapter) (*Statement, error) {
	stmt := NewStatement()
	if err := ins.PrepareStatement(a, stmt); err != nil {
		return nil, err
	}
	return stmt, nil
}

// SQLString renders the statement with quoted values.
func (ins *Insert) SQLString(p Platform) (string, error) {
	return sqlString(p, ins.build)
}

// String satisfies fmt.Stringer, it renders SQL92 literal SQL.
func (ins *Insert) String() string {
	s, err := ins.SQLString(nil)
	if err != nil {
		return ""
	}
	return s
}
