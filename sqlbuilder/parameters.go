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

// ParameterContainer is an ordered set of named parameters. The position of a
// parameter is fixed when its name is first set.
type ParameterContainer struct {
	names  []string
	values map[string]interface{}
}

// NewParameterContainer creates an empty container.
func NewParameterContainer() *ParameterContainer {
	return &ParameterContainer{
		values: make(map[string]interface{}),
	}
}

// Set binds value to name and returns the 1-based position of the parameter.
// Setting an existing name overwrites its value and keeps its position.
func (p *ParameterContainer) Set(name string, value interface{}) int {
	if p.values == nil {
		p.values = make(map[string]interface{})
	}
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
	return p.Position(name)
}

// Get returns the value bound to name.
func (p *ParameterContainer) Get(name string) (interface{}, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Has returns true if name is bound.
func (p *ParameterContainer) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Position returns the 1-based position of name, or zero if name is not
// bound.
func (p *ParameterContainer) Position(name string) int {
	for i := range p.names {
		if p.names[i] == name {
			return i + 1
		}
	}
	return 0
}

// Len returns the number of parameters.
func (p *ParameterContainer) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Names returns parameter names in order.
func (p *ParameterContainer) Names() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Values returns parameter values in order.
func (p *ParameterContainer) Values() []interface{} {
	values := make([]interface{}, 0, len(p.names))
	for _, name := range p.names {
		values = append(values, p.values[name])
	}
	return values
}

// Map returns a copy of the parameters keyed by name.
func (p *ParameterContainer) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(p.values))
	for k, v := range p.values {
		m[k] = v
	}
	return m
}

// Merge copies all parameters from other, in order, into p.
func (p *ParameterContainer) Merge(other *ParameterContainer) *ParameterContainer {
	if other == nil {
		return p
	}
	for _, name := range other.names {
		p.Set(name, other.values[name])
	}
	return p
}
