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

// Returning represents a RETURNING clause.
type Returning struct {
	*Columns
}

var _ = Fragment(&Returning{})

// Hash returns a unique identifier for the struct.
func (r *Returning) Hash() uint64 {
	if r == nil {
		return uint64(FragmentType_Nil)
	}
	return quickHash(FragmentType_Returning, r.Columns)
}

// ReturningColumns creates and returns an array of Column.
func ReturningColumns(columns ...Fragment) *Returning {
	return &Returning{Columns: &Columns{Columns: columns}}
}

// Compile transforms the clause into its equivalent SQL representation. An
// empty clause compiles into an empty string, layouts decide what to put in
// its place.
func (r *Returning) Compile(layout *Template) (compiled string, err error) {
	if r.Columns.IsEmpty() {
		return "", nil
	}

	if z, ok := layout.Read(r); ok {
		return z, nil
	}

	compiled, err = r.Columns.Compile(layout)
	if err != nil {
		return "", err
	}

	layout.Write(r, compiled)
	return
}
