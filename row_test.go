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

package dbext

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRow(t *testing.T) {
	created := time.Date(2013, 5, 1, 10, 30, 0, 0, time.UTC)
	row := Row{
		"id":         int64(42),
		"name":       []byte("Alice"),
		"score":      "9.5",
		"active":     "t",
		"created_at": created,
		"updated_at": "2013-05-01 10:30:00",
		"deleted":    nil,
	}

	assert.True(t, row.Has("id"))
	assert.False(t, row.Has("missing"))

	assert.Equal(t, int64(42), row.GetInt("id"))
	assert.Equal(t, "42", row.GetString("id"))
	assert.Equal(t, "Alice", row.GetString("name"))
	assert.Equal(t, 9.5, row.GetFloat("score"))
	assert.True(t, row.GetBool("active"))
	assert.False(t, row.GetBool("deleted"))
	assert.Equal(t, "", row.GetString("deleted"))
	assert.Equal(t, created, row.GetTime("created_at"))
	assert.Equal(t, created, row.GetTime("updated_at"))
	assert.True(t, row.GetTime("missing").IsZero())

	columns := row.Columns()
	sort.Strings(columns)
	assert.Equal(t, []string{"active", "created_at", "deleted", "id", "name", "score", "updated_at"}, columns)
}

func TestRaw(t *testing.T) {
	r := Raw("lower(?)", "Alice")
	assert.Equal(t, "lower(?)", r.Raw())
	assert.Equal(t, "lower(?)", r.String())
	assert.Equal(t, []interface{}{"Alice"}, r.Arguments())

	assert.Nil(t, Raw("NOW()").Arguments())
}
