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
	"database/sql"
	"os"
	"testing"

	"github.com/devpreview/dbext"
	"github.com/devpreview/dbext/sqlbuilder"
	"github.com/devpreview/dbext/tablegateway"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// EnvPostgresURL points the integration tests at a PostgreSQL server.
const EnvPostgresURL = `DBEXT_POSTGRES_URL`

const testSchema = `
	DROP TABLE IF EXISTS dbext_accounts;

	CREATE TABLE dbext_accounts (
		id SERIAL PRIMARY KEY,
		token UUID NOT NULL UNIQUE,
		name TEXT NOT NULL,
		roles TEXT[],
		settings JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

type PostgreSQLTestSuite struct {
	suite.Suite

	connURL ConnectionURL
	pgx     *PgxSession
	db      *sql.DB
}

func (s *PostgreSQLTestSuite) SetupSuite() {
	connURL, err := ParseURL(os.Getenv(EnvPostgresURL))
	s.Require().NoError(err)
	s.connURL = connURL

	s.pgx, err = Open(context.Background(), connURL)
	s.Require().NoError(err)

	s.db, err = OpenDB(connURL)
	s.Require().NoError(err)
}

func (s *PostgreSQLTestSuite) TearDownSuite() {
	if s.pgx != nil {
		s.pgx.Close()
	}
	if s.db != nil {
		s.NoError(s.db.Close())
	}
}

func (s *PostgreSQLTestSuite) SetupTest() {
	_, err := s.db.Exec(testSchema)
	s.Require().NoError(err)
}

func (s *PostgreSQLTestSuite) sessions() map[string]tablegateway.Session {
	return map[string]tablegateway.Session{
		"pgx":          s.pgx,
		"database/sql": NewSession(s.db),
	}
}

func (s *PostgreSQLTestSuite) TestInsertReturning() {
	ctx := context.Background()

	for name, sess := range s.sessions() {
		feature := tablegateway.NewInsertReturningFeature()
		gw := tablegateway.New("dbext_accounts", sess,
			tablegateway.WithInsertFactory(sqlbuilder.NewInsertReturningFactory(
				sqlbuilder.ReturningAs("account_id", "id"),
				sqlbuilder.Returning("created_at"),
			)),
			tablegateway.WithFeatures(feature),
		)

		affected, err := gw.Insert(ctx, map[string]interface{}{
			"token":    uuid.New(),
			"name":     "Alice",
			"roles":    StringArray{"admin", "staff"},
			"settings": JSONBMap{"theme": "dark"},
		})
		s.Require().NoError(err, name)
		s.Equal(int64(1), affected, name)

		row, ok := feature.Returning()
		s.Require().True(ok, name)
		s.Positive(row.GetInt("account_id"), name)
		s.False(row.GetTime("created_at").IsZero(), name)
	}
}

func (s *PostgreSQLTestSuite) TestInsertReturningExpression() {
	ctx := context.Background()

	for name, sess := range s.sessions() {
		feature := tablegateway.NewInsertReturningFeature()
		gw := tablegateway.New("dbext_accounts", sess,
			tablegateway.WithSchema("public"),
			tablegateway.WithFeatures(feature),
		)

		b := sqlbuilder.NewInsertReturning(gw.Table()).
			Set(map[string]interface{}{
				"token": uuid.New(),
				"name":  dbext.Raw("upper(?)", "bob"),
			}).
			ReturningColumns(sqlbuilder.ReturningMap(map[string]interface{}{
				"name":   "name",
				"length": dbext.Raw("length(name)"),
			}))

		_, err := gw.InsertWith(ctx, b)
		s.Require().NoError(err, name)

		row, ok := feature.Returning()
		s.Require().True(ok, name)
		s.Equal("BOB", row.GetString("name"), name)
		s.Equal(int64(3), row.GetInt("length"), name)
	}
}

func (s *PostgreSQLTestSuite) TestUniqueViolation() {
	ctx := context.Background()

	for name, sess := range s.sessions() {
		gw := tablegateway.New("dbext_accounts", sess,
			tablegateway.WithInsertFactory(sqlbuilder.NewInsertReturningFactory(sqlbuilder.Returning("id"))),
		)

		token := uuid.New()

		_, err := gw.Insert(ctx, map[string]interface{}{"token": token, "name": "Carol"})
		s.Require().NoError(err, name)

		_, err = gw.Insert(ctx, map[string]interface{}{"token": token, "name": "Carol"})
		s.Error(err, name)
	}
}

func TestPostgreSQL(t *testing.T) {
	if os.Getenv(EnvPostgresURL) == "" {
		t.Skipf("%s is not set", EnvPostgresURL)
	}
	suite.Run(t, &PostgreSQLTestSuite{})
}

func TestOpenMissingURL(t *testing.T) {
	_, err := Open(context.Background(), ConnectionURL{})
	assert.ErrorIs(t, err, dbext.ErrMissingConnURL)

	_, err = OpenDB(ConnectionURL{})
	assert.ErrorIs(t, err, dbext.ErrMissingConnURL)
}
