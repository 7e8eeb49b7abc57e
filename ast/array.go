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

import "iter"

// Array is an order-preserving sequence of Nodes.
type Array struct {
	nodes []*Node
}

// NewEmptyArray returns an empty Array.
func NewEmptyArray() *Array {
	return &Array{}
}

// Push appends node to the end of the array.
func (a *Array) Push(node *Node) {
	a.nodes = append(a.nodes, node)
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.nodes) }

// Get returns the element at index i, or nil, false if i is out of range.
func (a *Array) Get(i int) (*Node, bool) {
	if i < 0 || i >= len(a.nodes) {
		return nil, false
	}
	return a.nodes[i], true
}

// All iterates the array's elements in order.
func (a *Array) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, n := range a.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}
