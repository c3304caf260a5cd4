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
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/devpreview/dbext/internal/exql"
	"github.com/devpreview/dbext/sqlbuilder"
	"github.com/lib/pq"
)

// Name is the name of the PostgreSQL platform.
const Name = `PostgreSQL`

func newTemplate() *exql.Template {
	t := exql.NewTemplate()
	t.IdentifierQuoter = pq.QuoteIdentifier
	t.ValueQuoter = quoteValue
	return t
}

// wrapValue turns Go values PostgreSQL can't take as they are into the
// Valuers of this package: maps and structs become JSONB, string and int64
// slices become StringArray and Int64Array, other slices go through Array.
// Everything else is returned untouched.
func wrapValue(v interface{}) interface{} {
	switch w := v.(type) {
	case nil, driver.Valuer, []byte, time.Time, fmt.Stringer:
		return v
	case map[string]interface{}:
		return JSONBMap(w)
	case []string:
		return StringArray(w)
	case []int64:
		return Int64Array(w)
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Struct:
		return JSONB{V: v}
	case reflect.Slice:
		return Array(v)
	}
	return v
}

func quoteLiteral(s string) string {
	// pq prefixes E'' literals with a space.
	return strings.TrimSpace(pq.QuoteLiteral(s))
}

// quoteValue renders v as a PostgreSQL literal. Strings go through
// pq.QuoteLiteral and byte slices become bytea hex literals.
func quoteValue(t *exql.Template, v interface{}) (string, error) {
	switch w := v.(type) {
	case string:
		return quoteLiteral(w), nil
	case []byte:
		if w == nil {
			return t.NullKeyword, nil
		}
		return `'\x` + hex.EncodeToString(w) + `'`, nil
	case time.Time:
		return quoteLiteral(w.Format(time.RFC3339Nano)), nil
	}
	return exql.QuoteLiteral(t, wrapValue(v))
}

// Platform quotes identifiers and values the way PostgreSQL expects them.
var Platform sqlbuilder.Platform = sqlbuilder.NewPlatform(Name, newTemplate())
