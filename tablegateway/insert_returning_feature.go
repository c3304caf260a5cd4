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
	"context"
	"sync"

	"github.com/devpreview/dbext"
	"github.com/devpreview/dbext/sqlbuilder"
)

// InsertReturningFeature captures the first row returned by an
// INSERT ... RETURNING statement.
type InsertReturningFeature struct {
	columns sqlbuilder.ReturningColumns

	mu  sync.RWMutex
	row dbext.Row
}

var (
	_ PreInserter  = &InsertReturningFeature{}
	_ PostInserter = &InsertReturningFeature{}
)

// NewInsertReturningFeature creates the feature. When columns are given they
// are set on inserts that return rows but carry no returning columns yet.
func NewInsertReturningFeature(columns ...sqlbuilder.ReturningColumns) *InsertReturningFeature {
	f := &InsertReturningFeature{}
	for i := range columns {
		f.columns = f.columns.And(columns[i])
	}
	return f
}

// Name implements Feature.
func (f *InsertReturningFeature) Name() string {
	return "InsertReturningFeature"
}

// PreInsert implements PreInserter.
func (f *InsertReturningFeature) PreInsert(_ context.Context, b sqlbuilder.InsertBuilder) error {
	if len(f.columns) == 0 {
		return nil
	}
	if r, ok := b.(sqlbuilder.Returner); ok && len(r.GetReturningColumns()) == 0 {
		r.SetReturningColumns(f.columns)
	}
	return nil
}

// PostInsert implements PostInserter. It keeps the current row of the result,
// the remaining rows are left to the caller.
func (f *InsertReturningFeature) PostInsert(_ context.Context, _ *sqlbuilder.Statement, result ResultSet) error {
	row := result.Current()

	f.mu.Lock()
	f.row = row
	f.mu.Unlock()

	return result.Err()
}

// Returning returns the row captured by the last insert. The boolean is false
// before the first insert and when the last insert returned no rows.
func (f *InsertReturningFeature) Returning() (dbext.Row, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.row == nil {
		return nil, false
	}
	return f.row, true
}

// Reset forgets the captured row.
func (f *InsertReturningFeature) Reset() {
	f.mu.Lock()
	f.row = nil
	f.mu.Unlock()
}
