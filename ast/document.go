// Copyright 2024 The xCDN Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import "strings"

// Directive is a $name: value prolog entry. Name omits the leading '$'. A
// directive's value carries no decorations.
type Directive struct {
	Name  string
	Value Value
}

// Document is the root of an xCDN document: an ordered prolog of
// directives followed by an ordered value stream.
type Document struct {
	prolog []Directive
	values []*Node
}

// NewDocument returns an empty Document: no prolog, no values.
func NewDocument() *Document {
	return &Document{}
}

// PushDirective appends directive to the prolog.
func (d *Document) PushDirective(directive Directive) {
	d.prolog = append(d.prolog, directive)
}

// DirectiveCount returns the number of prolog directives.
func (d *Document) DirectiveCount() int { return len(d.prolog) }

// DirectiveAt returns the prolog directive at index i.
func (d *Document) DirectiveAt(i int) (Directive, bool) {
	if i < 0 || i >= len(d.prolog) {
		return Directive{}, false
	}
	return d.prolog[i], true
}

// PushValue appends node to the top-level value stream.
func (d *Document) PushValue(node *Node) {
	d.values = append(d.values, node)
}

// Len returns the number of top-level values.
func (d *Document) Len() int { return len(d.values) }

// Get returns the top-level value at index i.
func (d *Document) Get(i int) (*Node, bool) {
	if i < 0 || i >= len(d.values) {
		return nil, false
	}
	return d.values[i], true
}

// GetKey is shorthand for looking up key in the first top-level value, if
// it is an Object.
func (d *Document) GetKey(key string) (*Node, bool) {
	if d.Len() == 0 {
		return nil, false
	}
	obj := d.values[0].Value().AsObject()
	if obj == nil {
		return nil, false
	}
	return obj.Get(key)
}

// HasKey reports whether GetKey(key) would succeed.
func (d *Document) HasKey(key string) bool {
	_, ok := d.GetKey(key)
	return ok
}

// GetPath walks dotted segments of path through nested Objects, starting
// from the first top-level value. It returns the Node at the end of the
// path, or false if any segment is missing or any non-final segment's
// value is not an Object.
func (d *Document) GetPath(path string) (*Node, bool) {
	if d.Len() == 0 {
		return nil, false
	}

	segments := strings.Split(path, ".")
	obj := d.values[0].Value().AsObject()
	if obj == nil {
		return nil, false
	}

	for i, seg := range segments {
		node, ok := obj.Get(seg)
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return node, true
		}
		obj = node.Value().AsObject()
		if obj == nil {
			return nil, false
		}
	}
	return nil, false
}
