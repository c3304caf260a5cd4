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

package cache

import (
	"fmt"
	"testing"

	"github.com/segmentio/fasthash/fnv1a"
	"github.com/stretchr/testify/assert"
)

type cacheableT struct {
	Name string
}

func (ct *cacheableT) Hash() uint64 {
	return fnv1a.HashString64(ct.Name)
}

func TestCache(t *testing.T) {
	var c *Cache

	var (
		key   = cacheableT{"foo"}
		value = "bar"
	)

	t.Run("New", func(t *testing.T) {
		c = NewCache()
		assert.NotNil(t, c)
	})

	t.Run("ReadNonExistentValue", func(t *testing.T) {
		_, ok := c.Read(&key)
		assert.False(t, ok)
	})

	t.Run("Write", func(t *testing.T) {
		c.Write(&key, value)
		c.Write(&key, value)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("ReadExistentValue", func(t *testing.T) {
		v, ok := c.Read(&key)
		assert.True(t, ok)
		assert.Equal(t, value, v)
	})

	t.Run("ReadNonStringValue", func(t *testing.T) {
		other := cacheableT{"baz"}
		c.Write(&other, 42)

		_, ok := c.Read(&other)
		assert.False(t, ok)

		v, ok := c.ReadRaw(&other)
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("Clear", func(t *testing.T) {
		c.Clear()
		assert.Equal(t, 0, c.Len())
		_, ok := c.Read(&key)
		assert.False(t, ok)
	})
}

func TestCacheCapacity(t *testing.T) {
	_, err := NewCacheWithCapacity(0)
	assert.ErrorIs(t, err, ErrCapacityTooSmall)

	c, err := NewCacheWithCapacity(2)
	assert.NoError(t, err)

	a, b, d := cacheableT{"a"}, cacheableT{"b"}, cacheableT{"d"}
	c.Write(&a, "a")
	c.Write(&b, "b")
	c.Write(&a, "a") // a is now the most recently used key
	c.Write(&d, "d")

	assert.Equal(t, 2, c.Len())

	_, ok := c.Read(&b)
	assert.False(t, ok, "least recently used key must be evicted")

	v, ok := c.Read(&a)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func BenchmarkNewCache(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewCache()
	}
}

func BenchmarkReadNonExistentValue(b *testing.B) {
	key := cacheableT{"foo"}

	z := NewCache()
	for i := 0; i < b.N; i++ {
		z.Read(&key)
	}
}

func BenchmarkWriteNewValue(b *testing.B) {
	value := "bar"

	z := NewCache()
	for i := 0; i < b.N; i++ {
		key := cacheableT{fmt.Sprintf("item-%d", i)}
		z.Write(&key, value)
	}
}

func BenchmarkReadExistentValue(b *testing.B) {
	key := cacheableT{"foo"}
	value := "bar"

	z := NewCache()
	z.Write(&key, value)
	for i := 0; i < b.N; i++ {
		z.Read(&key)
	}
}
