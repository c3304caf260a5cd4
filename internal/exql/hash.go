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

	"github.com/devpreview/dbext/internal/cache"
	"github.com/segmentio/fasthash/fnv1a"
)

// Kinds of hashed values. Every value is prefixed by its kind, and strings
// also by their length, so adjacent values can't run into each other.
const (
	hashKindNil uint64 = iota
	hashKindString
	hashKindInt
	hashKindBool
	hashKindUint
	hashKindFragment
)

func addToHash(h uint64, value interface{}) uint64 {
	switch v := value.(type) {
	case string:
		h = fnv1a.AddUint64(h, hashKindString)
		h = fnv1a.AddUint64(h, uint64(len(v)))
		h = fnv1a.AddString64(h, v)
	case int:
		h = fnv1a.AddUint64(h, hashKindInt)
		h = fnv1a.AddUint64(h, uint64(v))
	case bool:
		h = fnv1a.AddUint64(h, hashKindBool)
		if v {
			h = fnv1a.AddUint64(h, 1)
		} else {
			h = fnv1a.AddUint64(h, 2)
		}
	case uint32:
		h = fnv1a.AddUint64(h, hashKindUint)
		h = fnv1a.AddUint64(h, uint64(v))
	case uint64:
		h = fnv1a.AddUint64(h, hashKindUint)
		h = fnv1a.AddUint64(h, v)
	case nil:
		h = fnv1a.AddUint64(h, hashKindNil)
	case cache.Hashable:
		// *Raw lands here, its hash carries FragmentType_Raw.
		h = fnv1a.AddUint64(h, hashKindFragment)
		h = fnv1a.AddUint64(h, v.Hash())
	default:
		panic(fmt.Sprintf("hash: unexpected type %T", value))
	}
	return h
}

func quickHash(t FragmentType, values ...interface{}) uint64 {
	h := fnv1a.AddUint64(fnv1a.Init64, uint64(t))
	for i := range values {
		h = addToHash(h, values[i])
	}
	return h
}
