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
	"database/sql"
	"strconv"
)

// Driver formats parameter placeholders and turns a parameter container into
// the arguments expected by the underlying database driver.
type Driver interface {
	// Name returns the name of the driver.
	Name() string
	// FormatParameterName returns the placeholder for the parameter with the
	// given name, position is the 1-based position of the parameter in its
	// container.
	FormatParameterName(name string, position int) string
	// Arguments converts the container into query arguments.
	Arguments(params *ParameterContainer) []interface{}
}

type colonDriver struct{}

// ColonDriver uses `:name` placeholders and passes sql.NamedArg arguments, as
// understood by SQLite drivers.
var ColonDriver Driver = colonDriver{}

func (colonDriver) Name() string {
	return "colon"
}

func (colonDriver) FormatParameterName(name string, _ int) string {
	return ":" + name
}

func (colonDriver) Arguments(params *ParameterContainer) []interface{} {
	if params == nil || params.Len() == 0 {
		return nil
	}
	args := make([]interface{}, 0, params.Len())
	for _, name := range params.Names() {
		v, _ := params.Get(name)
		args = append(args, sql.Named(name, v))
	}
	return args
}

type positionalDriver struct{}

// PositionalDriver uses `$n` placeholders and passes arguments in order, as
// understood by lib/pq and the pgx database/sql driver.
var PositionalDriver Driver = positionalDriver{}

func (positionalDriver) Name() string {
	return "positional"
}

func (positionalDriver) FormatParameterName(_ string, position int) string {
	return "$" + strconv.Itoa(position)
}

func (positionalDriver) Arguments(params *ParameterContainer) []interface{} {
	if params == nil || params.Len() == 0 {
		return nil
	}
	return params.Values()
}
