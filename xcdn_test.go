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

package xcdn_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcdn-go/xcdn"
	"github.com/xcdn-go/xcdn/ast"
	"github.com/xcdn-go/xcdn/diag"
)

// flatten reduces a Document to a comparable plain-Go shape so cmp.Diff can
// report structural equality without reaching into unexported btree/slice
// internals: a round-trip through parse/serialize/parse is checked for
// equivalence, not identical representation.
type flatDoc struct {
	Prolog []flatDirective
	Values []flatNode
}

type flatDirective struct {
	Name  string
	Value flatValue
}

type flatNode struct {
	Tags        []string
	Annotations []flatAnnotation
	Value       flatValue
}

type flatAnnotation struct {
	Name string
	Args []flatValue
}

type flatValue struct {
	Kind   ast.Kind
	Bool   bool
	Int    int64
	Float  float64
	Text   string
	Bytes  []byte
	Array  []flatNode
	Object map[string]flatNode
	// Keys preserves object iteration order since map comparison alone
	// would lose it.
	Keys []string
}

func flattenValue(v ast.Value) flatValue {
	fv := flatValue{Kind: v.Kind()}
	switch v.Kind() {
	case ast.KindBool:
		fv.Bool = v.AsBool()
	case ast.KindInt:
		fv.Int = v.AsInt()
	case ast.KindFloat:
		fv.Float = v.AsFloat()
	case ast.KindString, ast.KindDecimal, ast.KindDateTime, ast.KindDuration, ast.KindUUID:
		fv.Text = v.AsString()
	case ast.KindBytes:
		fv.Bytes = v.AsBytes()
	case ast.KindArray:
		arr := v.AsArray()
		for _, n := range arr.All() {
			fv.Array = append(fv.Array, flattenNode(n))
		}
	case ast.KindObject:
		obj := v.AsObject()
		fv.Object = make(map[string]flatNode, obj.Len())
		for k, n := range obj.All() {
			fv.Object[k] = flattenNode(n)
			fv.Keys = append(fv.Keys, k)
		}
	}
	return fv
}

func flattenNode(n *ast.Node) flatNode {
	fn := flatNode{Value: flattenValue(n.Value())}
	for i := 0; i < n.TagCount(); i++ {
		fn.Tags = append(fn.Tags, n.TagAt(i))
	}
	for i := 0; i < n.AnnotationCount(); i++ {
		a := n.AnnotationAt(i)
		fa := flatAnnotation{Name: a.Name()}
		for j := 0; j < a.ArgCount(); j++ {
			arg, _ := a.Arg(j)
			fa.Args = append(fa.Args, flattenValue(arg))
		}
		fn.Annotations = append(fn.Annotations, fa)
	}
	return fn
}

func flatten(doc *xcdn.Document) flatDoc {
	fd := flatDoc{}
	for i := 0; i < doc.DirectiveCount(); i++ {
		d, _ := doc.DirectiveAt(i)
		fd.Prolog = append(fd.Prolog, flatDirective{Name: d.Name, Value: flattenValue(d.Value)})
	}
	for i := 0; i < doc.Len(); i++ {
		n, _ := doc.Get(i)
		fd.Values = append(fd.Values, flattenNode(n))
	}
	return fd
}

const kitchenSink = `$schema: "https://example.com/schema", $version: 3,

name: "xcdn-sample",
nested: {
  flag: true,
  count: -12,
  ratio: 3.5,
},
tagged: #important @source("cli", 2) [1, 2, 3,],
typed: {
  price: d"19.99",
  id: u"550e8400-e29b-41d4-a716-446655440000",
  created: t"2025-01-15T10:30:00Z",
  ttl: r"PT30S",
  blob: b"aGVsbG8=",
},
`

func TestRoundTripPretty(t *testing.T) {
	doc1, err := xcdn.Parse(kitchenSink)
	require.NoError(t, err)

	text2 := xcdn.Serialize(doc1, xcdn.DefaultFormat())
	doc2, err := xcdn.Parse(text2)
	require.NoError(t, err)

	diff := cmp.Diff(flatten(doc1), flatten(doc2), cmpopts.EquateEmpty())
	assert.Empty(t, diff)
}

func TestRoundTripCompact(t *testing.T) {
	doc1, err := xcdn.Parse(kitchenSink)
	require.NoError(t, err)

	text2 := xcdn.Serialize(doc1, xcdn.CompactFormat())
	doc2, err := xcdn.Parse(text2)
	require.NoError(t, err)

	diff := cmp.Diff(flatten(doc1), flatten(doc2), cmpopts.EquateEmpty())
	assert.Empty(t, diff)
}

func TestRoundTripBytesExact(t *testing.T) {
	doc1, err := xcdn.Parse(`b"aGVsbG8h"`)
	require.NoError(t, err)
	node, _ := doc1.Get(0)
	original := node.Value().AsBytes()

	text := xcdn.Serialize(doc1, xcdn.CompactFormat())
	doc2, err := xcdn.Parse(text)
	require.NoError(t, err)
	node2, _ := doc2.Get(0)

	assert.Equal(t, original, node2.Value().AsBytes())
}

func TestParseErrorCarriesSpan(t *testing.T) {
	_, err := xcdn.Parse(`{ a 1 }`)
	require.Error(t, err)
	derr, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.Span{Offset: 4, Line: 1, Column: 5}, derr.Span)
}

func TestOrderingPreservedThroughParseAndSerialize(t *testing.T) {
	doc, err := xcdn.Parse(`{ z: 1, a: 2, m: 3 }`)
	require.NoError(t, err)
	root, _ := doc.Get(0)
	obj := root.Value().AsObject()

	var keys []string
	for k := range obj.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)

	assert.Equal(t, `{z: 1, a: 2, m: 3}`, xcdn.Serialize(doc, xcdn.CompactFormat()))
}
