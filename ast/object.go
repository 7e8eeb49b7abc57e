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

import (
	"iter"

	"github.com/tidwall/btree"
)

// Object is an ordered mapping from key text to Node: key uniqueness is
// enforced (Set on an existing key replaces its Node and keeps its original
// position), comparison is byte-exact, and iteration order is insertion
// order.
//
// The backing store pairs an insertion-sequence-keyed btree with a side
// index from key text to sequence number, so ascending scan order is always
// insertion order while point lookups stay O(log n).
type Object struct {
	nextSeq uint64
	index   map[string]uint64
	entries btree.Map[uint64, *objEntry]
}

type objEntry struct {
	key  string
	node *Node
}

// NewEmptyObject returns an empty Object.
func NewEmptyObject() *Object {
	return &Object{index: make(map[string]uint64)}
}

// Len returns the number of entries.
func (o *Object) Len() int { return len(o.index) }

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Get returns the Node stored under key.
func (o *Object) Get(key string) (*Node, bool) {
	seq, ok := o.index[key]
	if !ok {
		return nil, false
	}
	e, ok := o.entries.Get(seq)
	if !ok {
		return nil, false
	}
	return e.node, true
}

// Set installs node under key. If key already exists, its previous Node is
// replaced and returned, and the entry keeps its original position in
// iteration order. If key is new, it is appended after the current last
// entry.
func (o *Object) Set(key string, node *Node) (previous *Node) {
	if seq, ok := o.index[key]; ok {
		if e, ok := o.entries.Get(seq); ok {
			previous = e.node
		}
		o.entries.Set(seq, &objEntry{key: key, node: node})
		return previous
	}

	seq := o.nextSeq
	o.nextSeq++
	o.index[key] = seq
	o.entries.Set(seq, &objEntry{key: key, node: node})
	return nil
}

// KeyAt returns the key at position i in insertion order.
func (o *Object) KeyAt(i int) (string, bool) {
	e, ok := o.entryAt(i)
	if !ok {
		return "", false
	}
	return e.key, true
}

// NodeAt returns the Node at position i in insertion order.
func (o *Object) NodeAt(i int) (*Node, bool) {
	e, ok := o.entryAt(i)
	if !ok {
		return nil, false
	}
	return e.node, true
}

func (o *Object) entryAt(i int) (*objEntry, bool) {
	if i < 0 || i >= o.entries.Len() {
		return nil, false
	}
	var (
		found *objEntry
		idx   int
	)
	o.entries.Scan(func(_ uint64, e *objEntry) bool {
		if idx == i {
			found = e
			return false
		}
		idx++
		return true
	})
	return found, found != nil
}

// All iterates entries in insertion order.
func (o *Object) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		o.entries.Scan(func(_ uint64, e *objEntry) bool {
			return yield(e.key, e.node)
		})
	}
}
