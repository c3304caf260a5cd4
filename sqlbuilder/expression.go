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
	"fmt"
	"strconv"
	"strings"

	"github.com/devpreview/dbext"
)

const expressionParameterPrefix = "expr"

// expressionProcessor renders raw expressions. With a driver, the arguments of
// an expression are bound as parameters, without one they are quoted into the
// SQL text.
type expressionProcessor struct {
	platform Platform
	driver   Driver
	params   *ParameterContainer
	reserved map[string]struct{}
	counter  int
}

func (ep *expressionProcessor) nextName() string {
	for {
		ep.counter++
		name := expressionParameterPrefix + strconv.Itoa(ep.counter)
		if _, ok := ep.reserved[name]; ok {
			continue
		}
		if ep.params != nil && ep.params.Has(name) {
			continue
		}
		return name
	}
}

// process returns the SQL for expr and a new container with the parameters
// the expression binds, offset is the number of parameters already allocated
// before this expression. Callers merge the returned container.
//
// Every `?` outside single-quoted literals and double-quoted identifiers is a
// placeholder, so PostgreSQL's jsonb `?`, `?|` and `?&` operators can't be
// used in expressions; use jsonb_exists, jsonb_exists_any and
// jsonb_exists_all instead.
func (ep *expressionProcessor) process(expr dbext.RawValue, offset int) (string, *ParameterContainer, error) {
	raw, args := expr.Raw(), expr.Arguments()
	local := NewParameterContainer()

	var (
		buf   strings.Builder
		argn  int
		quote byte
	)

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case quote == 0 && (c == '\'' || c == '"'):
			quote = c
		case c == quote:
			quote = 0
		}
		if c != '?' || quote != 0 {
			buf.WriteByte(c)
			continue
		}

		if argn >= len(args) {
			return "", nil, fmt.Errorf("%w: %q", dbext.ErrExpressionArguments, raw)
		}
		arg := args[argn]
		argn++

		if nested, ok := arg.(dbext.RawValue); ok {
			sql, nestedParams, err := ep.process(nested, offset+local.Len())
			if err != nil {
				return "", nil, err
			}
			buf.WriteString(sql)
			local.Merge(nestedParams)
			continue
		}

		if ep.driver == nil {
			quoted, err := ep.platform.QuoteValue(arg)
			if err != nil {
				return "", nil, err
			}
			buf.WriteString(quoted)
			continue
		}

		name := ep.nextName()
		position := offset + local.Set(name, arg)
		buf.WriteString(ep.driver.FormatParameterName(name, position))
	}

	if argn != len(args) {
		return "", nil, fmt.Errorf("%w: %q", dbext.ErrExpressionArguments, raw)
	}

	return buf.String(), local, nil
}
