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

// Package postgresql provides the PostgreSQL platform, parameter drivers and
// sessions for dbext.
package postgresql

import (
	"context"
	"database/sql"

	"github.com/devpreview/dbext"
	"github.com/devpreview/dbext/sqlbuilder"
	"github.com/devpreview/dbext/tablegateway"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

var (
	// Adapter prepares statements for database/sql connections, with `$n`
	// placeholders.
	Adapter = sqlbuilder.NewAdapter(Platform, PositionalDriver)

	// PgxAdapter prepares statements for native pgx connections, with
	// `@name` placeholders.
	PgxAdapter = sqlbuilder.NewAdapter(Platform, NamedArgsDriver)
)

// OpenDB opens a database/sql handle backed by the pgx driver.
func OpenDB(connURL ConnectionURL) (*sql.DB, error) {
	dsn := connURL.String()
	if dsn == "" {
		return nil, dbext.ErrMissingConnURL
	}
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	return stdlib.OpenDB(*cfg), nil
}

// NewSession creates a tablegateway.Session on top of a database/sql handle
// connected to PostgreSQL.
func NewSession(db tablegateway.SQLExecutor) tablegateway.Session {
	return tablegateway.NewSession(db, Adapter)
}

// Open creates a connection pool and returns a session that uses it. The
// pool is released by Close.
func Open(ctx context.Context, connURL ConnectionURL) (*PgxSession, error) {
	dsn := connURL.String()
	if dsn == "" {
		return nil, dbext.ErrMissingConnURL
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	sess := NewPgxSession(pool)
	sess.pool = pool
	return sess, nil
}
