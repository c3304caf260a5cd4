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
	"database/sql"
	"time"

	"github.com/devpreview/dbext"
	"github.com/devpreview/dbext/sqlbuilder"
)

// Session executes prepared statements.
type Session interface {
	// Adapter returns the adapter statements must be prepared with.
	Adapter() sqlbuilder.Adapter
	// Query executes a statement that returns rows.
	Query(ctx context.Context, stmt *sqlbuilder.Statement) (ResultSet, error)
	// Exec executes a statement without returning rows, it returns the number
	// of affected rows.
	Exec(ctx context.Context, stmt *sqlbuilder.Statement) (int64, error)
}

// SQLExecutor is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type SQLExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type session struct {
	db      SQLExecutor
	adapter sqlbuilder.Adapter
}

// NewSession creates a Session on top of database/sql.
func NewSession(db SQLExecutor, adapter sqlbuilder.Adapter) Session {
	return &session{db: db, adapter: adapter}
}

var (
	_ SQLExecutor = &sql.DB{}
	_ SQLExecutor = &sql.Tx{}
	_ SQLExecutor = &sql.Conn{}
)

func (s *session) Adapter() sqlbuilder.Adapter {
	return s.adapter
}

func (s *session) Query(ctx context.Context, stmt *sqlbuilder.Statement) (ResultSet, error) {
	if s.db == nil {
		return nil, dbext.ErrNotConnected
	}

	args := stmt.Arguments(s.adapter.Driver())
	status := &dbext.QueryStatus{Query: stmt.SQL, Args: args, Start: time.Now()}

	rows, err := s.db.QueryContext(ctx, stmt.SQL, args...)

	status.End, status.Err = time.Now(), err
	dbext.Log(status)

	if err != nil {
		return nil, err
	}
	return NewResultSet(rows), nil
}

func (s *session) Exec(ctx context.Context, stmt *sqlbuilder.Statement) (int64, error) {
	if s.db == nil {
		return 0, dbext.ErrNotConnected
	}

	args := stmt.Arguments(s.adapter.Driver())
	status := &dbext.QueryStatus{Query: stmt.SQL, Args: args, Start: time.Now()}

	defer func() {
		status.End = time.Now()
		dbext.Log(status)
	}()

	res, err := s.db.ExecContext(ctx, stmt.SQL, args...)
	if err != nil {
		status.Err = err
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		status.Err = err
		return 0, err
	}

	status.RowsAffected = &affected
	return affected, nil
}
