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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	val := NewValue(1)

	s, err := val.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `1`, s)

	val = NewValue(&Raw{Value: "NOW()"})

	s, err = val.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `NOW()`, s)
}

func TestValues(t *testing.T) {
	val := NewValueGroup(
		&Value{V: &Raw{Value: "1"}},
		&Value{V: &Raw{Value: "2"}},
		&Value{V: "3"},
		&Value{V: nil},
	)

	s, err := val.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `1, 2, '3', NULL`, s)
}

func TestValueHash(t *testing.T) {
	assert.Equal(t, NewValue(1).Hash(), NewValue(1).Hash())
	assert.NotEqual(t, NewValue(1).Hash(), NewValue("1").Hash())
}

func BenchmarkValue(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewValue("a")
	}
}

func BenchmarkValueCompile(b *testing.B) {
	val := NewValue("hello world!")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = val.Compile(defaultTemplate)
	}
}
