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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL92(t *testing.T) {
	assert.Equal(t, "SQL92", SQL92.Name())
	assert.Equal(t, `"users"`, SQL92.QuoteIdentifier("users"))
	assert.Equal(t, `"a""b"`, SQL92.QuoteIdentifier(`a"b`))
	assert.Equal(t, ".", SQL92.IdentifierSeparator())

	s, err := SQL92.QuoteValue("it's")
	require.NoError(t, err)
	assert.Equal(t, `'it''s'`, s)

	id := uuid.MustParse("52356d08-6a16-4839-9224-75f0a547e13c")
	s, err = SQL92.QuoteValue(id)
	require.NoError(t, err)
	assert.Equal(t, `'52356d08-6a16-4839-9224-75f0a547e13c'`, s)
}

func TestTableIdentifier(t *testing.T) {
	table, schema := NewTableIdentifier("users", "app").TableAndSchema()
	assert.Equal(t, "users", table)
	assert.Equal(t, "app", schema)

	assert.Equal(t, "app.users", NewTableIdentifier("users", "app").String())
	assert.Equal(t, "users", NewTableIdentifier("users", "").String())

	ti, err := toTableIdentifier(&TableIdentifier{Table: "users"})
	require.NoError(t, err)
	assert.Equal(t, "users", ti.Table)

	_, err = toTableIdentifier(1)
	assert.Error(t, err)
}
