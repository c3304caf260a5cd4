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

func TestTableSimple(t *testing.T) {
	table := TableWithName("artist")
	s, err := table.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `"artist"`, s)
}

func TestTableWithSchema(t *testing.T) {
	table := TableWithSchema("music", "artist")
	s, err := table.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `"music"."artist"`, s)
}

func TestTableCustomSeparator(t *testing.T) {
	layout := NewTemplate()
	layout.ColumnSeparator = ":"

	s, err := TableWithSchema("music", "artist").Compile(layout)
	assert.NoError(t, err)
	assert.Equal(t, `"music":"artist"`, s)
}

func TestTableEmpty(t *testing.T) {
	table := TableWithName("")
	s, err := table.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestTableHash(t *testing.T) {
	assert.NotEqual(t, TableWithName("artist").Hash(), TableWithSchema("music", "artist").Hash())
}

func TestTableCacheAdjacentStrings(t *testing.T) {
	layout := NewTemplate()

	s, err := TableWithName("publicusers").Compile(layout)
	assert.NoError(t, err)
	assert.Equal(t, `"publicusers"`, s)

	s, err = TableWithSchema("public", "users").Compile(layout)
	assert.NoError(t, err)
	assert.Equal(t, `"public"."users"`, s)

	s, err = TableWithSchema("publ", "icusers").Compile(layout)
	assert.NoError(t, err)
	assert.Equal(t, `"publ"."icusers"`, s)

	assert.NotEqual(t, TableWithName("publicusers").Hash(), TableWithSchema("public", "users").Hash())
}

func BenchmarkTableWithName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = TableWithName("foo")
	}
}

func BenchmarkTableCompile(b *testing.B) {
	table := TableWithSchema("music", "artist")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = table.Compile(defaultTemplate)
	}
}
