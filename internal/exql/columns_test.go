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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumns(t *testing.T) {
	columns := JoinColumns(
		&Column{Name: "id"},
		&Column{Name: "customer"},
		&Column{Name: "service_id"},
		&Column{Name: "role.name"},
		&Column{Name: "role.id"},
	)

	s, err := columns.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `"id", "customer", "service_id", "role.name", "role.id"`, s)
}

func TestColumnsEmpty(t *testing.T) {
	columns := JoinColumns()
	assert.True(t, columns.IsEmpty())

	s, err := columns.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, "", s)

	var nilColumns *Columns
	assert.True(t, nilColumns.IsEmpty())
}

func TestColumnsAppend(t *testing.T) {
	columns := JoinColumns(&Column{Name: "a"})
	columns.Append(JoinColumns(&Column{Name: "b"}))

	s, err := columns.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `"a", "b"`, s)
}

func BenchmarkJoinColumns(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = JoinColumns(
			&Column{Name: "a"},
			&Column{Name: "b"},
			&Column{Name: "c"},
		)
	}
}
