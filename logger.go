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
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// EnvEnableDebug can be used by adapters to determine if the user has enabled
// debugging.
//
// If the user sets the `DBEXT_DEBUG` environment variable to a non-empty
// value, all generated statements will be logged at runtime using the default
// logger.
//
// Example:
//
//	DBEXT_DEBUG=1 go test
//
//	DBEXT_DEBUG=1 ./go-program
const (
	EnvEnableDebug = `DBEXT_DEBUG`
)

func init() {
	if envEnabled(EnvEnableDebug) {
		Config.SetLogger(NewLogger(logrus.StandardLogger()))
		Config.SetLogging(true)
	}
}

// QueryStatus represents a query after being executed.
type QueryStatus struct {
	Query string
	Args  []interface{}

	RowsAffected *int64

	Err error

	Start time.Time
	End   time.Time
}

var reInvisibleChars = regexp.MustCompile(`[\s\r\n\t]+`)

// Duration returns how long the query took.
func (q *QueryStatus) Duration() time.Duration {
	return q.End.Sub(q.Start)
}

// CompactQuery returns the query with all its blank runs collapsed.
func (q *QueryStatus) CompactQuery() string {
	return strings.TrimSpace(reInvisibleChars.ReplaceAllString(q.Query, ` `))
}

func (q *QueryStatus) String() string {
	s := make([]string, 0, 5)

	if query := q.CompactQuery(); query != "" {
		s = append(s, fmt.Sprintf(`Query: %s`, query))
	}

	if len(q.Args) > 0 {
		s = append(s, fmt.Sprintf(`Arguments: %#v`, q.Args))
	}

	if q.RowsAffected != nil {
		s = append(s, fmt.Sprintf(`Rows affected: %d`, *q.RowsAffected))
	}

	if q.Err != nil {
		s = append(s, fmt.Sprintf(`Error: %v`, q.Err))
	}

	s = append(s, fmt.Sprintf(`Time taken: %0.5fs`, q.Duration().Seconds()))

	return strings.Join(s, "\n")
}

// Logger represents a logging collector. You can pass a logging collector to
// dbext.Config.SetLogger(myCollector) to make it collect dbext.QueryStatus
// messages after executing a query.
type Logger interface {
	Log(*QueryStatus)
}

// Log sends a query status report to the configured logger. Nothing is logged
// unless logging is enabled.
func Log(m *QueryStatus) {
	if !Config.LoggingEnabled() {
		return
	}
	if lg := Config.Logger(); lg != nil {
		lg.Log(m)
		return
	}
	defaultLogger.Log(m)
}

type logrusLogger struct {
	log logrus.FieldLogger
}

// NewLogger creates a Logger that writes query reports to the given logrus
// logger. Failed queries are logged at error level and slow queries at warn
// level.
func NewLogger(log logrus.FieldLogger) Logger {
	return &logrusLogger{log: log}
}

func (lg *logrusLogger) Log(m *QueryStatus) {
	fields := logrus.Fields{
		"query":    m.CompactQuery(),
		"duration": m.Duration().String(),
	}
	if len(m.Args) > 0 {
		fields["args"] = fmt.Sprintf("%#v", m.Args)
	}
	if m.RowsAffected != nil {
		fields["rows_affected"] = *m.RowsAffected
	}

	entry := lg.log.WithFields(fields)

	switch {
	case m.Err != nil:
		entry.WithError(m.Err).Error("query failed")
	case m.Duration() > Config.SlowQueryThreshold():
		entry.Warn("slow query")
	default:
		entry.Debug("query")
	}
}

var defaultLogger = NewLogger(logrus.StandardLogger())
