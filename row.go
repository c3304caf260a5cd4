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

package dbext

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row represents a single row returned by the database, keyed by column name.
type Row map[string]interface{}

// Has returns true if the row has a column with the given name.
func (r Row) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Columns returns the column names of the row in no particular order.
func (r Row) Columns() []string {
	names := make([]string, 0, len(r))
	for k := range r {
		names = append(names, k)
	}
	return names
}

// GetString returns the value as a string.
func (r Row) GetString(name string) string {
	switch v := r[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprintf("%v", r[name])
}

// GetInt returns the value as an integer.
func (r Row) GetInt(name string) int64 {
	switch v := r[name].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	}
	i, _ := strconv.ParseInt(r.GetString(name), 10, 64)
	return i
}

// GetFloat returns the value as a floating point number.
func (r Row) GetFloat(name string) float64 {
	if v, ok := r[name].(float64); ok {
		return v
	}
	f, _ := strconv.ParseFloat(r.GetString(name), 64)
	return f
}

// GetBool returns the value as a boolean.
func (r Row) GetBool(name string) bool {
	if v, ok := r[name].(bool); ok {
		return v
	}
	switch strings.ToLower(r.GetString(name)) {
	case "", "0", "f", "false":
		return false
	}
	return true
}

// GetTime returns the value as a Go time.
func (r Row) GetTime(name string) time.Time {
	switch v := r[name].(type) {
	case time.Time:
		return v
	case string, []byte:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999Z07:00", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, r.GetString(name)); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
