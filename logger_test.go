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

package dbext

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	statuses []*QueryStatus
}

func (c *collector) Log(m *QueryStatus) {
	c.statuses = append(c.statuses, m)
}

func withConfig(t *testing.T, logging bool, lg Logger) {
	prevLogging, prevLogger := Config.LoggingEnabled(), Config.Logger()
	t.Cleanup(func() {
		Config.SetLogging(prevLogging)
		Config.SetLogger(prevLogger)
	})
	Config.SetLogging(logging)
	Config.SetLogger(lg)
}

func TestQueryStatusString(t *testing.T) {
	rows := int64(1)
	start := time.Date(2013, 5, 1, 0, 0, 0, 0, time.UTC)
	m := &QueryStatus{
		Query:        "INSERT INTO \"users\"\n\t(\"name\")   VALUES ($1)",
		Args:         []interface{}{"Alice"},
		RowsAffected: &rows,
		Err:          errors.New("fake"),
		Start:        start,
		End:          start.Add(1500 * time.Millisecond),
	}

	assert.Equal(t, `INSERT INTO "users" ("name") VALUES ($1)`, m.CompactQuery())
	assert.Equal(t, 1500*time.Millisecond, m.Duration())
	assert.Equal(t,
		"Query: INSERT INTO \"users\" (\"name\") VALUES ($1)\n"+
			"Arguments: []interface {}{\"Alice\"}\n"+
			"Rows affected: 1\n"+
			"Error: fake\n"+
			"Time taken: 1.50000s",
		m.String(),
	)
}

func TestLogDisabled(t *testing.T) {
	c := &collector{}
	withConfig(t, false, c)

	Log(&QueryStatus{Query: "SELECT 1"})
	assert.Empty(t, c.statuses)
}

func TestLogEnabled(t *testing.T) {
	c := &collector{}
	withConfig(t, true, c)

	Log(&QueryStatus{Query: "SELECT 1"})
	require.Len(t, c.statuses, 1)
	assert.Equal(t, "SELECT 1", c.statuses[0].Query)
}

func TestLogrusLogger(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	lg := NewLogger(base)

	now := time.Now()

	lg.Log(&QueryStatus{Query: "SELECT 1", Start: now, End: now})
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Equal(t, "SELECT 1", hook.LastEntry().Data["query"])

	lg.Log(&QueryStatus{Query: "SELECT 2", Err: errors.New("fake"), Start: now, End: now})
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "query failed", hook.LastEntry().Message)

	lg.Log(&QueryStatus{Query: "SELECT pg_sleep(1)", Start: now, End: now.Add(Config.SlowQueryThreshold() + time.Second)})
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "slow query", hook.LastEntry().Message)

	assert.Len(t, hook.AllEntries(), 3)
}

func TestSlowQueryThreshold(t *testing.T) {
	prev := Config.SlowQueryThreshold()
	defer Config.SetSlowQueryThreshold(prev)

	Config.SetSlowQueryThreshold(time.Second)
	assert.Equal(t, time.Second, Config.SlowQueryThreshold())
}

func TestEnvEnabled(t *testing.T) {
	t.Setenv("DBEXT_TEST_FLAG", "1")
	assert.True(t, envEnabled("DBEXT_TEST_FLAG"))

	t.Setenv("DBEXT_TEST_FLAG", "no")
	assert.False(t, envEnabled("DBEXT_TEST_FLAG"))
}
