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
	"bytes"
	"strings"
	"sync"
	"text/template"

	"github.com/devpreview/dbext/internal/cache"
)

// Type is the type of SQL query the statement represents.
type Type uint8

// Values for Type.
const (
	NoOp Type = iota

	Insert
	InsertReturning

	SQL
)

var (
	templateCache = templateMap{M: make(map[string]*template.Template)}
)

// Template is an SQL template.
type Template struct {
	ColumnAliasLayout     string
	ColumnSeparator       string
	IdentifierQuote       string
	IdentifierSeparator   string
	InsertLayout          string
	InsertReturningLayout string
	NullKeyword           string
	TrueKeyword           string
	FalseKeyword          string
	ValueQuote            string
	ValueSeparator        string

	// IdentifierEscaper is applied to identifiers before they're passed to
	// IdentifierQuote.
	IdentifierEscaper *strings.Replacer
	// ValueEscaper is applied to string literals before they're passed to
	// ValueQuote.
	ValueEscaper *strings.Replacer

	// IdentifierQuoter replaces IdentifierQuote when set.
	IdentifierQuoter func(string) string
	// ValueQuoter replaces the built-in literal quoting when set.
	ValueQuoter func(*Template, interface{}) (string, error)

	*cache.Cache
}

// QuoteIdentifier quotes the given name as a single SQL identifier.
func (layout *Template) QuoteIdentifier(name string) string {
	if layout.IdentifierQuoter != nil {
		return layout.IdentifierQuoter(name)
	}
	if layout.IdentifierEscaper != nil {
		name = layout.IdentifierEscaper.Replace(name)
	}
	return mustParse(layout.IdentifierQuote, Raw{Value: name})
}

// QuoteString wraps the given string with the template's value quotes.
func (layout *Template) QuoteString(s string) string {
	if layout.ValueEscaper != nil {
		s = layout.ValueEscaper.Replace(s)
	}
	return mustParse(layout.ValueQuote, Raw{Value: s})
}

// QuoteValue turns a Go value into an SQL literal.
func (layout *Template) QuoteValue(v interface{}) (string, error) {
	if layout.ValueQuoter != nil {
		return layout.ValueQuoter(layout, v)
	}
	return QuoteLiteral(layout, v)
}

func mustParse(text string, data interface{}) string {
	var b bytes.Buffer

	v, ok := templateCache.Get(text)
	if !ok {
		v = template.Must(template.New("").Parse(text))
		templateCache.Set(text, v)
	}

	if err := v.Execute(&b, data); err != nil {
		panic("There was an error compiling the following template:\n" + text + "\nError was: " + err.Error())
	}

	return b.String()
}

type templateMap struct {
	sync.RWMutex
	M map[string]*template.Template
}

func (m *templateMap) Get(k string) (*template.Template, bool) {
	m.RLock()
	defer m.RUnlock()
	v, ok := m.M[k]
	return v, ok
}

func (m *templateMap) Set(k string, v *template.Template) {
	m.Lock()
	defer m.Unlock()
	m.M[k] = v
}
