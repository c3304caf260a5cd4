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

package postgresql

import (
	"context"
	"time"

	"github.com/devpreview/dbext"
	"github.com/devpreview/dbext/sqlbuilder"
	"github.com/devpreview/dbext/tablegateway"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

var (
	_ Querier = &pgxpool.Pool{}
	_ Querier = &pgx.Conn{}
	_ Querier = pgx.Tx(nil)
)

// PgxSession is a tablegateway.Session on top of a native pgx connection.
type PgxSession struct {
	conn    Querier
	adapter sqlbuilder.Adapter
	pool    *pgxpool.Pool
}

var _ tablegateway.Session = &PgxSession{}

// NewPgxSession creates a session that executes statements on conn using
// PgxAdapter.
func NewPgxSession(conn Querier) *PgxSession {
	return &PgxSession{conn: conn, adapter: PgxAdapter}
}

// Adapter implements tablegateway.Session.
func (s *PgxSession) Adapter() sqlbuilder.Adapter {
	return s.adapter
}

// Query implements tablegateway.Session.
func (s *PgxSession) Query(ctx context.Context, stmt *sqlbuilder.Statement) (tablegateway.ResultSet, error) {
	if s.conn == nil {
		return nil, dbext.ErrNotConnected
	}

	args := stmt.Arguments(s.adapter.Driver())
	status := &dbext.QueryStatus{Query: stmt.SQL, Args: args, Start: time.Now()}

	rows, err := s.conn.Query(ctx, stmt.SQL, args...)

	status.End, status.Err = time.Now(), err
	dbext.Log(status)

	if err != nil {
		return nil, err
	}
	return &resultSet{rows: rows}, nil
}

// Exec implements tablegateway.Session.
func (s *PgxSession) Exec(ctx context.Context, stmt *sqlbuilder.Statement) (int64, error) {
	if s.conn == nil {
		return 0, dbext.ErrNotConnected
	}

	args := stmt.Arguments(s.adapter.Driver())
	status := &dbext.QueryStatus{Query: stmt.SQL, Args: args, Start: time.Now()}

	tag, err := s.conn.Exec(ctx, stmt.SQL, args...)

	status.End, status.Err = time.Now(), err
	if err == nil {
		affected := tag.RowsAffected()
		status.RowsAffected = &affected
	}
	dbext.Log(status)

	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Close releases the pool created by Open. Sessions created with
// NewPgxSession leave their connection open.
func (s *PgxSession) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

type resultSet struct {
	rows    pgx.Rows
	current dbext.Row
	started bool
	err     error
}

func (r *resultSet) Columns() ([]string, error) {
	fields := r.rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i := range fields {
		columns[i] = fields[i].Name
	}
	return columns, nil
}

func (r *resultSet) Next() bool {
	r.started = true
	r.current = nil

	if r.err != nil {
		return false
	}

	if !r.rows.Next() {
		r.err = r.rows.Err()
		return false
	}

	values, err := r.rows.Values()
	if err != nil {
		r.err = err
		return false
	}

	columns, _ := r.Columns()
	row := make(dbext.Row, len(columns))
	for i, column := range columns {
		row[column] = values[i]
	}
	r.current = row
	return true
}

func (r *resultSet) Current() dbext.Row {
	if !r.started {
		r.Next()
	}
	return r.current
}

func (r *resultSet) Err() error {
	return r.err
}

func (r *resultSet) Close() error {
	r.rows.Close()
	if r.err != nil {
		return r.err
	}
	return r.rows.Err()
}
