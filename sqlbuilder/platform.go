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
	"github.com/devpreview/dbext/internal/exql"
)

// Platform quotes identifiers and values for a specific database.
type Platform interface {
	// Name returns the name of the platform.
	Name() string
	// QuoteIdentifier quotes a single identifier (table, schema, column or
	// alias name).
	QuoteIdentifier(name string) string
	// QuoteValue turns a Go value into an SQL literal.
	QuoteValue(v interface{}) (string, error)
	// IdentifierSeparator joins the parts of a qualified identifier, like
	// schema and table.
	IdentifierSeparator() string
	// Template returns the layouts used to compile statements.
	Template() *exql.Template
}

// TemplatePlatform is a Platform backed by an SQL template.
type TemplatePlatform struct {
	name string
	t    *exql.Template
}

var _ = Platform(&TemplatePlatform{})

// NewPlatform creates a Platform with the given name that quotes using t.
func NewPlatform(name string, t *exql.Template) *TemplatePlatform {
	return &TemplatePlatform{name: name, t: t}
}

// Name returns the name of the platform.
func (p *TemplatePlatform) Name() string {
	return p.name
}

// QuoteIdentifier quotes the given name.
func (p *TemplatePlatform) QuoteIdentifier(name string) string {
	return p.t.QuoteIdentifier(name)
}

// QuoteValue returns v as an SQL literal.
func (p *TemplatePlatform) QuoteValue(v interface{}) (string, error) {
	return p.t.QuoteValue(v)
}

// IdentifierSeparator returns the separator used between schema and table.
func (p *TemplatePlatform) IdentifierSeparator() string {
	return p.t.ColumnSeparator
}

// Template returns the underlying template.
func (p *TemplatePlatform) Template() *exql.Template {
	return p.t
}

// SQL92 is the generic platform, used when rendering literal SQL without a
// specific platform.
var SQL92 Platform = NewPlatform("SQL92", exql.NewTemplate())
