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

// Package tablegateway runs insert builders against a table and hands the
// returned rows to features.
package tablegateway

import (
	"context"

	"github.com/devpreview/dbext/sqlbuilder"
)

// TableGateway runs statements against a single table.
type TableGateway struct {
	table     sqlbuilder.TableIdentifier
	sess      Session
	features  *FeatureSet
	newInsert sqlbuilder.InsertFactory
}

// Option configures a TableGateway.
type Option func(*TableGateway)

// WithSchema sets the schema of the table.
func WithSchema(schema string) Option {
	return func(gw *TableGateway) {
		gw.table.Schema = schema
	}
}

// WithInsertFactory replaces the factory used by Insert to create builders.
func WithInsertFactory(factory sqlbuilder.InsertFactory) Option {
	return func(gw *TableGateway) {
		if factory != nil {
			gw.newInsert = factory
		}
	}
}

// WithFeatures adds features to the gateway.
func WithFeatures(features ...Feature) Option {
	return func(gw *TableGateway) {
		gw.features.Add(features...)
	}
}

// New creates a TableGateway for the given table.
func New(table string, sess Session, opts ...Option) *TableGateway {
	gw := &TableGateway{
		table:     sqlbuilder.NewTableIdentifier(table, ""),
		sess:      sess,
		features:  NewFeatureSet(),
		newInsert: sqlbuilder.NewInsertFactory(),
	}
	for _, opt := range opts {
		opt(gw)
	}
	return gw
}

// Table returns the table the gateway writes to.
func (gw *TableGateway) Table() sqlbuilder.TableIdentifier {
	return gw.table
}

// Session returns the session statements are executed on.
func (gw *TableGateway) Session() Session {
	return gw.sess
}

// Features returns the feature set of the gateway.
func (gw *TableGateway) Features() *FeatureSet {
	return gw.features
}

// NewInsert returns a fresh insert builder for the gateway's table.
func (gw *TableGateway) NewInsert() sqlbuilder.InsertBuilder {
	return gw.newInsert(gw.table)
}

// Insert inserts a row built from set and returns the number of affected
// rows.
func (gw *TableGateway) Insert(ctx context.Context, set map[string]interface{}) (int64, error) {
	b := gw.NewInsert()
	b.SetColumnValues(set)
	return gw.InsertWith(ctx, b)
}

// InsertWith executes the given insert builder. Builders that implement
// sqlbuilder.Returner are queried and their rows handed to the features,
// others are executed.
func (gw *TableGateway) InsertWith(ctx context.Context, b sqlbuilder.InsertBuilder) (int64, error) {
	if err := gw.features.preInsert(ctx, b); err != nil {
		return 0, err
	}

	stmt := sqlbuilder.NewStatement()
	if err := b.PrepareStatement(gw.sess.Adapter(), stmt); err != nil {
		return 0, err
	}

	if _, ok := b.(sqlbuilder.Returner); !ok {
		affected, err := gw.sess.Exec(ctx, stmt)
		if err != nil {
			return 0, err
		}
		if err := gw.features.postInsert(ctx, stmt, NewEmptyResultSet()); err != nil {
			return 0, err
		}
		return affected, nil
	}

	result, err := gw.sess.Query(ctx, stmt)
	if err != nil {
		return 0, err
	}
	defer result.Close()

	if err := gw.features.postInsert(ctx, stmt, result); err != nil {
		return 0, err
	}

	var affected int64
	if result.Current() != nil {
		affected++
	}
	for result.Next() {
		affected++
	}
	if err := result.Err(); err != nil {
		return 0, err
	}
	return affected, nil
}
