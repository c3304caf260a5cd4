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

// Package dbext extends a template-driven SQL toolkit with PostgreSQL's
// INSERT ... RETURNING clause.
//
// The sqlbuilder package renders INSERT statements in bound and literal form,
// adapter/postgresql provides the PostgreSQL platform and sessions, and the
// tablegateway package runs inserts and hands the returned rows to features
// such as InsertReturningFeature.
//
// Example:
//
//	gw := tablegateway.New("users", sess,
//		tablegateway.WithInsertFactory(sqlbuilder.NewInsertReturningFactory(sqlbuilder.ReturningAs("user_id", "id"))),
//		tablegateway.WithFeatures(feature),
//	)
//
//	if _, err := gw.Insert(ctx, map[string]interface{}{"name": "Alice"}); err != nil {
//		...
//	}
//
//	row, ok := feature.Returning()
package dbext
