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
	"sync"
	"time"
)

const defaultSlowQueryThreshold = time.Millisecond * 200

// Settings defines methods to get or set configuration values.
type Settings interface {
	// SetLogging enables or disables logging.
	SetLogging(bool)
	// LoggingEnabled returns true if logging is enabled, false otherwise.
	LoggingEnabled() bool

	// SetLogger defines which logger to use.
	SetLogger(Logger)
	// Returns the currently configured logger.
	Logger() Logger

	// SetSlowQueryThreshold sets the duration after which a query is reported
	// as slow.
	SetSlowQueryThreshold(time.Duration)
	// SlowQueryThreshold returns the slow query threshold.
	SlowQueryThreshold() time.Duration
}

type settings struct {
	sync.RWMutex

	loggingEnabled     bool
	queryLogger        Logger
	slowQueryThreshold time.Duration
}

func (c *settings) Logger() Logger {
	c.RLock()
	defer c.RUnlock()
	return c.queryLogger
}

func (c *settings) SetLogger(lg Logger) {
	c.Lock()
	defer c.Unlock()
	c.queryLogger = lg
}

func (c *settings) SetLogging(value bool) {
	c.Lock()
	defer c.Unlock()
	c.loggingEnabled = value
}

func (c *settings) LoggingEnabled() bool {
	c.RLock()
	defer c.RUnlock()
	return c.loggingEnabled
}

func (c *settings) SetSlowQueryThreshold(d time.Duration) {
	c.Lock()
	defer c.Unlock()
	c.slowQueryThreshold = d
}

func (c *settings) SlowQueryThreshold() time.Duration {
	c.RLock()
	defer c.RUnlock()
	return c.slowQueryThreshold
}

// Config provides global configuration values.
var Config Settings = &settings{
	slowQueryThreshold: defaultSlowQueryThreshold,
}
