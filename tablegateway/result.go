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

package tablegateway

import (
	"database/sql"

	"github.com/devpreview/dbext"
)

// ResultSet is a cursor over the rows returned by a statement.
type ResultSet interface {
	// Columns returns the column names of the result.
	Columns() ([]string, error)
	// Next advances the cursor, it returns false when there are no more rows
	// or an error happened.
	Next() bool
	// Current returns the row under the cursor. If the cursor was never
	// advanced it's moved to the first row. It returns nil when there is no
	// row.
	Current() dbext.Row
	// Err returns the error, if any, that was encountered while iterating.
	Err() error
	// Close releases the cursor.
	Close() error
}

// RowsScanner is the subset of *sql.Rows used by NewResultSet.
type RowsScanner interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
	Close() error
}

type resultSet struct {
	rows    RowsScanner
	columns []string
	current dbext.Row
	started bool
	err     error
}

// NewResultSet wraps *sql.Rows.
func NewResultSet(rows RowsScanner) ResultSet {
	return &resultSet{rows: rows}
}

var _ RowsScanner = &sql.Rows{}

func (r *resultSet) Columns() ([]string, error) {
	if r.columns != nil {
		return r.columns, nil
	}
	columns, err := r.rows.Columns()
	if err != nil {
		return nil, err
	}
	r.columns = columns
	return columns, nil
}

func (r *resultSet) Next() bool {
	r.started = true
	r.current = nil

	if r.err != nil {
		return false
	}

	if !r.rows.Next() {
		r.err = r.rows.Err()
		return false
	}

	columns, err := r.Columns()
	if err != nil {
		r.err = err
		return false
	}

	values := make([]interface{}, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	if err := r.rows.Scan(dest...); err != nil {
		r.err = err
		return false
	}

	row := make(dbext.Row, len(columns))
	for i, column := range columns {
		row[column] = values[i]
	}
	r.current = row
	return true
}

func (r *resultSet) Current() dbext.Row {
	if !r.started {
		r.Next()
	}
	return r.current
}

func (r *resultSet) Err() error {
	return r.err
}

func (r *resultSet) Close() error {
	return r.rows.Close()
}

type emptyResultSet struct{}

// NewEmptyResultSet returns a ResultSet without rows, it's handed to features
// after statements that return nothing.
func NewEmptyResultSet() ResultSet {
	return emptyResultSet{}
}

func (emptyResultSet) Columns() ([]string, error) { return nil, nil }
func (emptyResultSet) Next() bool                 { return false }
func (emptyResultSet) Current() dbext.Row         { return nil }
func (emptyResultSet) Err() error                 { return nil }
func (emptyResultSet) Close() error               { return nil }
