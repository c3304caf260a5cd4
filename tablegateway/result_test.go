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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devpreview/dbext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryRows(t *testing.T, rows *sqlmock.Rows) ResultSet {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	res, err := db.Query("SELECT 1")
	require.NoError(t, err)

	return NewResultSet(res)
}

func TestResultSetCurrentAdvancesToFirstRow(t *testing.T) {
	res := queryRows(t, sqlmock.NewRows([]string{"id", "name"}).
		AddRow(int64(1), "Alice").
		AddRow(int64(2), "Bob"))
	defer res.Close()

	assert.Equal(t, dbext.Row{"id": int64(1), "name": "Alice"}, res.Current())
	assert.Equal(t, dbext.Row{"id": int64(1), "name": "Alice"}, res.Current())

	require.True(t, res.Next())
	assert.Equal(t, dbext.Row{"id": int64(2), "name": "Bob"}, res.Current())

	assert.False(t, res.Next())
	assert.Nil(t, res.Current())
	assert.NoError(t, res.Err())

	columns, err := res.Columns()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, columns)
}

func TestResultSetNext(t *testing.T) {
	res := queryRows(t, sqlmock.NewRows([]string{"id"}).AddRow(int64(1)).AddRow(int64(2)))
	defer res.Close()

	var ids []interface{}
	for res.Next() {
		ids = append(ids, res.Current()["id"])
	}
	assert.NoError(t, res.Err())
	assert.Equal(t, []interface{}{int64(1), int64(2)}, ids)
}

func TestResultSetEmpty(t *testing.T) {
	res := queryRows(t, sqlmock.NewRows([]string{"id"}))
	defer res.Close()

	assert.Nil(t, res.Current())
	assert.False(t, res.Next())
	assert.NoError(t, res.Err())
}

func TestEmptyResultSet(t *testing.T) {
	res := NewEmptyResultSet()

	assert.Nil(t, res.Current())
	assert.False(t, res.Next())
	assert.NoError(t, res.Err())
	assert.NoError(t, res.Close())

	columns, err := res.Columns()
	assert.NoError(t, err)
	assert.Empty(t, columns)
}
