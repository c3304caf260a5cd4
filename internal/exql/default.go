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
	"strings"

	"github.com/devpreview/dbext/internal/cache"
)

const (
	defaultColumnSeparator     = `.`
	defaultIdentifierSeparator = `, `
	defaultIdentifierQuote     = `"{{.Value}}"`
	defaultValueSeparator      = `, `
	defaultValueQuote          = `'{{.Value}}'`
	defaultNullKeyword         = `NULL`
	defaultTrueKeyword         = `TRUE`
	defaultFalseKeyword        = `FALSE`
	defaultColumnAliasLayout   = `{{.Name}}{{if .Alias}} AS {{.Alias}}{{end}}`

	defaultInsertLayout = `INSERT INTO {{.Table}} ({{.Columns}}) VALUES ({{.Values}})`

	defaultInsertReturningLayout = `INSERT INTO {{.Table}} ({{.Columns}}) VALUES ({{.Values}}) RETURNING {{if .Returning}}{{.Returning}}{{else}}NULL{{end}}`
)

// NewTemplate returns a copy of the SQL-92 template with its own cache, it
// can be customized by dialects.
func NewTemplate() *Template {
	return &Template{
		ColumnAliasLayout:     defaultColumnAliasLayout,
		ColumnSeparator:       defaultColumnSeparator,
		IdentifierQuote:       defaultIdentifierQuote,
		IdentifierSeparator:   defaultIdentifierSeparator,
		InsertLayout:          defaultInsertLayout,
		InsertReturningLayout: defaultInsertReturningLayout,
		NullKeyword:           defaultNullKeyword,
		TrueKeyword:           defaultTrueKeyword,
		FalseKeyword:          defaultFalseKeyword,
		ValueQuote:            defaultValueQuote,
		ValueSeparator:        defaultValueSeparator,
		IdentifierEscaper:     strings.NewReplacer(`"`, `""`),
		ValueEscaper:          strings.NewReplacer(`'`, `''`),
		Cache:                 cache.NewCache(),
	}
}

var defaultTemplate = NewTemplate()
