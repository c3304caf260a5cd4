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
	"fmt"
	"strings"

	"github.com/segmentio/fasthash/fnv1a"
)

// Value represents a literal SQL value, it's quoted by the template when
// compiled.
type Value struct {
	V interface{}
}

var _ = Fragment(&Value{})

// NewValue creates and returns a Value.
func NewValue(v interface{}) *Value {
	return &Value{V: v}
}

// Hash returns a unique identifier for the struct.
func (v *Value) Hash() uint64 {
	return fnv1a.AddString64(quickHash(FragmentType_Value), fmt.Sprintf("%T:%v", v.V, v.V))
}

// Compile transforms the Value into an equivalent SQL representation. Values
// are not cached, as they're rarely repeated.
func (v *Value) Compile(layout *Template) (string, error) {
	switch t := v.V.(type) {
	case *Raw:
		return t.Compile(layout)
	case Fragment:
		return t.Compile(layout)
	}
	return layout.QuoteValue(v.V)
}

// Values represents an array of value fragments.
type Values struct {
	Values []Fragment
}

var _ = Fragment(&Values{})

// NewValueGroup creates and returns an array of values.
func NewValueGroup(v ...Fragment) *Values {
	return &Values{Values: v}
}

// Hash returns a unique identifier for the struct.
func (vs *Values) Hash() uint64 {
	if vs == nil {
		return uint64(FragmentType_Nil)
	}
	h := quickHash(FragmentType_Values)
	for i := range vs.Values {
		h = addToHash(h, vs.Values[i])
	}
	return h
}

// Compile transforms the Values into an equivalent SQL representation.
func (vs *Values) Compile(layout *Template) (compiled string, err error) {
	l := len(vs.Values)
	if l > 0 {
		chunks := make([]string, 0, l)
		for i := 0; i < l; i++ {
			chunk, err := vs.Values[i].Compile(layout)
			if err != nil {
				return "", err
			}
			chunks = append(chunks, chunk)
		}
		compiled = strings.Join(chunks, layout.ValueSeparator)
	}
	return
}
