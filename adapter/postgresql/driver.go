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

package postgresql

import (
	"github.com/devpreview/dbext/sqlbuilder"
	"github.com/jackc/pgx/v5"
)

type positionalDriver struct{}

// PositionalDriver uses `$n` placeholders like sqlbuilder.PositionalDriver,
// and converts maps, structs and slices into JSONB and array values, so they
// can be bound through database/sql.
var PositionalDriver sqlbuilder.Driver = positionalDriver{}

func (positionalDriver) Name() string {
	return "postgresql"
}

func (positionalDriver) FormatParameterName(name string, position int) string {
	return sqlbuilder.PositionalDriver.FormatParameterName(name, position)
}

func (positionalDriver) Arguments(params *sqlbuilder.ParameterContainer) []interface{} {
	args := sqlbuilder.PositionalDriver.Arguments(params)
	for i := range args {
		args[i] = wrapValue(args[i])
	}
	return args
}

type namedArgsDriver struct{}

// NamedArgsDriver uses `@name` placeholders and passes a single pgx.NamedArgs
// argument, it's meant for native pgx connections.
var NamedArgsDriver sqlbuilder.Driver = namedArgsDriver{}

func (namedArgsDriver) Name() string {
	return "pgx"
}

func (namedArgsDriver) FormatParameterName(name string, _ int) string {
	return "@" + name
}

func (namedArgsDriver) Arguments(params *sqlbuilder.ParameterContainer) []interface{} {
	if params.Len() == 0 {
		return nil
	}
	return []interface{}{pgx.NamedArgs(params.Map())}
}
