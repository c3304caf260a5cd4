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
	"errors"
)

// Error messages
var (
	ErrExpressionArguments    = errors.New(`mismatched number of placeholders and arguments in expression`)
	ErrInvalidReturningColumn = errors.New(`returning column must be a string or a raw expression`)
	ErrMissingColumns         = errors.New(`missing columns`)
	ErrMissingTable           = errors.New(`missing table name`)
	ErrMissingConnURL         = errors.New(`missing DSN`)
	ErrMismatchedColumnValues = errors.New(`mismatched number of columns and values`)
	ErrNotConnected           = errors.New(`not connected to a database`)
)
