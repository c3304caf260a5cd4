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
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.999999999Z07:00"

// QuoteLiteral renders v as an SQL-92 literal using the keywords and quotes of
// the given layout. Values implementing driver.Valuer are converted first.
func QuoteLiteral(layout *Template, v interface{}) (string, error) {
	switch t := v.(type) {
	case nil:
		return layout.NullKeyword, nil
	case driver.Valuer:
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return layout.NullKeyword, nil
		}
		dv, err := t.Value()
		if err != nil {
			return "", fmt.Errorf("could not convert %T to a driver value: %w", v, err)
		}
		if _, ok := dv.(driver.Valuer); ok {
			return "", fmt.Errorf("%T returned another driver.Valuer", v)
		}
		return layout.QuoteValue(dv)
	case string:
		return layout.QuoteString(t), nil
	case []byte:
		if t == nil {
			return layout.NullKeyword, nil
		}
		return "X" + layout.QuoteString(hex.EncodeToString(t)), nil
	case bool:
		if t {
			return layout.TrueKeyword, nil
		}
		return layout.FalseKeyword, nil
	case int:
		return strconv.FormatInt(int64(t), 10), nil
	case int8:
		return strconv.FormatInt(int64(t), 10), nil
	case int16:
		return strconv.FormatInt(int64(t), 10), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case time.Time:
		return layout.QuoteString(t.Format(timestampFormat)), nil
	case fmt.Stringer:
		return layout.QuoteString(t.String()), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return layout.NullKeyword, nil
		}
		return layout.QuoteValue(rv.Elem().Interface())
	}

	return layout.QuoteString(fmt.Sprintf("%v", v)), nil
}
