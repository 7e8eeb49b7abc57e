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

// Node is a Value decorated with its ordered tags and annotations. The
// zero Node is a Null value with no decorations and is ready to use.
type Node struct {
	value       Value
	tags        []string
	annotations []*Annotation
}

// NewNode wraps value with no decorations.
func NewNode(value Value) *Node {
	return &Node{value: value}
}

// Value returns the Node's Value.
func (n *Node) Value() Value { return n.value }

// SetValue replaces the Node's Value, leaving decorations untouched.
func (n *Node) SetValue(value Value) { n.value = value }

// AddTag appends name to the Node's ordered tag list. Repeated names are
// allowed and are not de-duplicated.
func (n *Node) AddTag(name string) {
	n.tags = append(n.tags, name)
}

// TagCount returns the number of tags on this Node.
func (n *Node) TagCount() int { return len(n.tags) }

// TagAt returns the tag name at index i, or "" if i is out of range.
func (n *Node) TagAt(i int) string {
	if i < 0 || i >= len(n.tags) {
		return ""
	}
	return n.tags[i]
}

// HasTag reports whether name appears anywhere in the tag list.
func (n *Node) HasTag(name string) bool {
	for _, t := range n.tags {
		if t == name {
			return true
		}
	}
	return false
}

// AddAnnotation appends a new, argument-less annotation named name and
// returns it so the caller can push arguments onto it with
// Annotation.PushArg. The returned pointer stays valid for the lifetime of
// the Node: annotations are held by pointer, so later AddAnnotation calls
// never invalidate it.
func (n *Node) AddAnnotation(name string) *Annotation {
	a := &Annotation{name: name}
	n.annotations = append(n.annotations, a)
	return a
}

// AnnotationCount returns the number of annotations on this Node.
func (n *Node) AnnotationCount() int { return len(n.annotations) }

// AnnotationAt returns the annotation at index i, or nil if i is out of
// range.
func (n *Node) AnnotationAt(i int) *Annotation {
	if i < 0 || i >= len(n.annotations) {
		return nil
	}
	return n.annotations[i]
}

// FindAnnotation returns the first annotation named name, if any.
func (n *Node) FindAnnotation(name string) (*Annotation, bool) {
	for _, a := range n.annotations {
		if a.name == name {
			return a, true
		}
	}
	return nil, false
}

// HasAnnotation reports whether any annotation named name is present.
func (n *Node) HasAnnotation(name string) bool {
	_, ok := n.FindAnnotation(name)
	return ok
}

// Annotation is a named decoration carrying an ordered list of Value
// arguments. Arguments are Values, not Nodes: annotations cannot themselves
// be tagged or annotated.
type Annotation struct {
	name string
	args []Value
}

// Name returns the annotation's name, without the leading '@'.
func (a *Annotation) Name() string { return a.name }

// PushArg appends v to the annotation's argument list.
func (a *Annotation) PushArg(v Value) {
	a.args = append(a.args, v)
}

// ArgCount returns the number of arguments.
func (a *Annotation) ArgCount() int { return len(a.args) }

// Arg returns the argument at index i. The second return is false if i is
// out of range, in which case the Value is the zero (Null) Value.
func (a *Annotation) Arg(i int) (Value, bool) {
	if i < 0 || i >= len(a.args) {
		return Value{}, false
	}
	return a.args[i], true
}
