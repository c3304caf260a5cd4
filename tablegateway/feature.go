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

package tablegateway

import (
	"context"

	"github.com/devpreview/dbext/sqlbuilder"
)

// Feature extends a TableGateway. A feature hooks into inserts by
// implementing PreInserter, PostInserter or both.
type Feature interface {
	Name() string
}

// PreInserter is called before the insert builder is prepared.
type PreInserter interface {
	PreInsert(ctx context.Context, b sqlbuilder.InsertBuilder) error
}

// PostInserter is called after the insert was executed, with the rows it
// returned.
type PostInserter interface {
	PostInsert(ctx context.Context, stmt *sqlbuilder.Statement, result ResultSet) error
}

// FeatureSet is an ordered collection of features.
type FeatureSet struct {
	features []Feature
}

// NewFeatureSet creates a FeatureSet with the given features.
func NewFeatureSet(features ...Feature) *FeatureSet {
	fs := &FeatureSet{}
	fs.Add(features...)
	return fs
}

// Add appends features to the set, nil features are ignored.
func (fs *FeatureSet) Add(features ...Feature) *FeatureSet {
	for _, f := range features {
		if f != nil {
			fs.features = append(fs.features, f)
		}
	}
	return fs
}

// Get returns the first feature with the given name.
func (fs *FeatureSet) Get(name string) (Feature, bool) {
	for _, f := range fs.features {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Features returns the features in the order they were added.
func (fs *FeatureSet) Features() []Feature {
	features := make([]Feature, len(fs.features))
	copy(features, fs.features)
	return features
}

// Len returns the number of features in the set.
func (fs *FeatureSet) Len() int {
	return len(fs.features)
}

func (fs *FeatureSet) preInsert(ctx context.Context, b sqlbuilder.InsertBuilder) error {
	for _, f := range fs.features {
		if h, ok := f.(PreInserter); ok {
			if err := h.PreInsert(ctx, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (fs *FeatureSet) postInsert(ctx context.Context, stmt *sqlbuilder.Statement, result ResultSet) error {
	for _, f := range fs.features {
		if h, ok := f.(PostInserter); ok {
			if err := h.PostInsert(ctx, stmt, result); err != nil {
				return err
			}
		}
	}
	return nil
}
