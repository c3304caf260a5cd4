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

package sqlbuilder

// Statement holds a prepared SQL text together with its parameters.
type Statement struct {
	SQL    string
	Params *ParameterContainer
}

// NewStatement creates an empty statement with an empty parameter container.
func NewStatement() *Statement {
	return &Statement{Params: NewParameterContainer()}
}

// ParameterContainer returns the statement's parameters, creating the
// container if the statement has none.
func (s *Statement) ParameterContainer() *ParameterContainer {
	if s.Params == nil {
		s.Params = NewParameterContainer()
	}
	return s.Params
}

// Arguments returns the statement's parameters in the form expected by the
// given driver.
func (s *Statement) Arguments(d Driver) []interface{} {
	return d.Arguments(s.Params)
}

func (s *Statement) String() string {
	return s.SQL
}
