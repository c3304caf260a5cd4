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
)

// RawValue represents a chunk of SQL that is passed to the database without
// escaping. Its arguments, if any, are bound to the `?` placeholders of the
// chunk in order.
type RawValue interface {
	fmt.Stringer

	Raw() string
	Arguments() []interface{}
}

// RawExpr is the default RawValue implementation.
type RawExpr struct {
	value string
	args  []interface{}
}

// Raw creates a RawValue. The developer is responsible for providing a
// sanitized instruction to the database.
//
// Example:
//
//	// SQL: NOW() + INTERVAL '1 day'
//	dbext.Raw("NOW() + INTERVAL '1 day'")
//
//	// SQL: lower(?) with "Alice" bound to the placeholder
//	dbext.Raw("lower(?)", "Alice")
func Raw(value string, args ...interface{}) *RawExpr {
	return &RawExpr{value: value, args: args}
}

// Raw returns the SQL chunk.
func (r *RawExpr) Raw() string {
	return r.value
}

// Arguments returns the arguments bound to the placeholders of the chunk.
func (r *RawExpr) Arguments() []interface{} {
	return r.args
}

func (r *RawExpr) String() string {
	return r.value
}

var _ = RawValue(&RawExpr{})
