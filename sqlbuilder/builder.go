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

// Builder is a statement that can be rendered either for prepared execution or
// as literal SQL.
type Builder interface {
	// PrepareStatement renders the statement for the given adapter, sets the
	// SQL text on stmt and binds its parameters into stmt's parameter
	// container.
	PrepareStatement(a Adapter, stmt *Statement) error
	// SQLString renders the statement with its values quoted into the SQL
	// text. A nil platform falls back to SQL92.
	SQLString(p Platform) (string, error)
}

// InsertBuilder is a Builder for INSERT statements.
type InsertBuilder interface {
	Builder

	// Table returns the target table.
	Table() TableIdentifier
	// SetColumnValues replaces the columns and values of the statement.
	SetColumnValues(set map[string]interface{})
}

// Returner is implemented by builders whose statement returns rows.
type Returner interface {
	InsertBuilder

	GetReturningColumns() ReturningColumns
	SetReturningColumns(columns ReturningColumns)
}

// InsertFactory creates insert builders for a table.
type InsertFactory func(table TableIdentifier) InsertBuilder

// NewInsertFactory returns a factory of plain INSERT builders.
func NewInsertFactory() InsertFactory {
	return func(table TableIdentifier) InsertBuilder {
		return NewInsert(table)
	}
}

// NewInsertReturningFactory returns a factory of INSERT ... RETURNING builders
// that start with the given returning columns.
func NewInsertReturningFactory(columns ...ReturningColumns) InsertFactory {
	var spec ReturningColumns
	for i := range columns {
		spec = spec.And(columns[i])
	}
	return func(table TableIdentifier) InsertBuilder {
		return NewInsertReturning(table).ReturningColumns(spec)
	}
}

var (
	_ = InsertBuilder(&Insert{})
	_ = Returner(&InsertReturning{})
)
