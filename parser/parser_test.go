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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcdn-go/xcdn/ast"
	"github.com/xcdn-go/xcdn/diag"
)

func TestParseEmptyInput(t *testing.T) {
	doc, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0, doc.DirectiveCount())
	assert.Equal(t, 0, doc.Len())
}

func TestParseWhitespaceAndCommentsOnly(t *testing.T) {
	doc, err := Parse("  \n// a comment\n/* block */  ")
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestParseEmptyObjectAndArray(t *testing.T) {
	doc, err := Parse(`{}`)
	require.NoError(t, err)
	require.Equal(t, 1, doc.Len())
	node, _ := doc.Get(0)
	obj := node.Value().AsObject()
	require.NotNil(t, obj)
	assert.Equal(t, 0, obj.Len())

	doc, err = Parse(`[]`)
	require.NoError(t, err)
	node, _ = doc.Get(0)
	arr := node.Value().AsArray()
	require.NotNil(t, arr)
	assert.Equal(t, 0, arr.Len())
}

// Two prolog directives followed by a single explicit braced object.
func TestPrologAndExplicitObject(t *testing.T) {
	doc, err := Parse(`$schema: "https://ex/s", $version: 2, { answer: 42 }`)
	require.NoError(t, err)

	require.Equal(t, 2, doc.DirectiveCount())
	d0, _ := doc.DirectiveAt(0)
	assert.Equal(t, "schema", d0.Name)
	assert.Equal(t, "https://ex/s", d0.Value.AsString())
	d1, _ := doc.DirectiveAt(1)
	assert.Equal(t, "version", d1.Name)
	assert.EqualValues(t, 2, d1.Value.AsInt())

	require.Equal(t, 1, doc.Len())
	root, _ := doc.Get(0)
	obj := root.Value().AsObject()
	require.NotNil(t, obj)
	answer, ok := obj.Get("answer")
	require.True(t, ok)
	assert.EqualValues(t, 42, answer.Value().AsInt())
}

// Bare "key: node" pairs at the document root, with no enclosing braces.
func TestImplicitObject(t *testing.T) {
	doc, err := Parse("name: \"xcdn\",\nnested: { flag: true },")
	require.NoError(t, err)
	require.Equal(t, 1, doc.Len())

	root, _ := doc.Get(0)
	obj := root.Value().AsObject()
	require.NotNil(t, obj)

	name, ok := obj.Get("name")
	require.True(t, ok)
	assert.Equal(t, "xcdn", name.Value().AsString())

	nested, ok := obj.Get("nested")
	require.True(t, ok)
	nestedObj := nested.Value().AsObject()
	require.NotNil(t, nestedObj)
	flag, ok := nestedObj.Get("flag")
	require.True(t, ok)
	assert.True(t, flag.Value().AsBool())
}

// An annotation and a tag decorating a byte-string value.
func TestDecorationsAndBytes(t *testing.T) {
	doc, err := Parse(`@mime("image/png") #thumbnail b"aGVsbG8="`)
	require.NoError(t, err)
	require.Equal(t, 1, doc.Len())

	node, _ := doc.Get(0)
	require.Equal(t, 1, node.AnnotationCount())
	ann := node.AnnotationAt(0)
	assert.Equal(t, "mime", ann.Name())
	require.Equal(t, 1, ann.ArgCount())
	arg, _ := ann.Arg(0)
	assert.Equal(t, "image/png", arg.AsString())

	require.Equal(t, 1, node.TagCount())
	assert.Equal(t, "thumbnail", node.TagAt(0))

	assert.Equal(t, "hello", string(node.Value().AsBytes()))
}

// Multiple undecorated root values in sequence, with no prolog.
func TestValueStream(t *testing.T) {
	doc, err := Parse("{ a: 1 }\n42\n")
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())

	first, _ := doc.Get(0)
	obj := first.Value().AsObject()
	require.NotNil(t, obj)
	a, ok := obj.Get("a")
	require.True(t, ok)
	assert.EqualValues(t, 1, a.Value().AsInt())

	second, _ := doc.Get(1)
	assert.EqualValues(t, 42, second.Value().AsInt())
}

// A key with no colon before its value fails with Expected.
func TestMissingColonError(t *testing.T) {
	_, err := Parse(`{ a 1 }`)
	require.Error(t, err)
	derr, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.Expected, derr.Kind)
}

// Every typed scalar kind parses with the right Kind and stored value.
func TestAllTypedScalars(t *testing.T) {
	src := `n: null, b: true, i: 42, f: 3.14, s: "hello", d: d"19.99", ` +
		`bytes: b"aGVsbG8=", dt: t"2025-01-15T10:30:00Z", dur: r"PT30S", ` +
		`uuid: u"550e8400-e29b-41d4-a716-446655440000", arr: [1, 2], obj: { a: 1 }`
	doc, err := Parse(src)
	require.NoError(t, err)
	root, _ := doc.Get(0)
	obj := root.Value().AsObject()
	require.NotNil(t, obj)

	get := func(key string) ast.Value {
		node, ok := obj.Get(key)
		require.True(t, ok, "missing key %q", key)
		return node.Value()
	}

	assert.Equal(t, ast.KindNull, get("n").Kind())
	assert.True(t, get("b").AsBool())
	assert.EqualValues(t, 42, get("i").AsInt())
	assert.InDelta(t, 3.14, get("f").AsFloat(), 1e-9)
	assert.Equal(t, "hello", get("s").AsString())
	assert.Equal(t, ast.KindDecimal, get("d").Kind())
	assert.Equal(t, "19.99", get("d").AsString())
	assert.Equal(t, "hello", string(get("bytes").AsBytes()))
	assert.Equal(t, ast.KindDateTime, get("dt").Kind())
	assert.Equal(t, "2025-01-15T10:30:00Z", get("dt").AsString())
	assert.Equal(t, ast.KindDuration, get("dur").Kind())
	assert.Equal(t, "PT30S", get("dur").AsString())
	assert.Equal(t, ast.KindUUID, get("uuid").Kind())
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", get("uuid").AsString())
	assert.Equal(t, 2, get("arr").AsArray().Len())
	assert.Equal(t, 1, get("obj").AsObject().Len())
}

func TestInvalidUUIDFails(t *testing.T) {
	_, err := Parse(`u"not-a-uuid"`)
	require.Error(t, err)
	derr, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.InvalidUUID, derr.Kind)
}

func TestInvalidBase64Fails(t *testing.T) {
	_, err := Parse(`b"***"`)
	require.Error(t, err)
	derr, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.InvalidBase64, derr.Kind)
}

func TestDuplicateKeyLastWins(t *testing.T) {
	doc, err := Parse(`{ a: 1, a: 2 }`)
	require.NoError(t, err)
	root, _ := doc.Get(0)
	obj := root.Value().AsObject()
	require.Equal(t, 1, obj.Len())
	a, ok := obj.Get("a")
	require.True(t, ok)
	assert.EqualValues(t, 2, a.Value().AsInt())
}

func TestCommaOptionalBetweenEntries(t *testing.T) {
	doc, err := Parse(`{a:1 b:2}`)
	require.NoError(t, err)
	root, _ := doc.Get(0)
	obj := root.Value().AsObject()
	require.Equal(t, 2, obj.Len())
}

func TestTrailingCommaAccepted(t *testing.T) {
	doc, err := Parse(`[1, 2, 3,]`)
	require.NoError(t, err)
	root, _ := doc.Get(0)
	assert.Equal(t, 3, root.Value().AsArray().Len())
}

func TestBareIdentifierIsExpectedError(t *testing.T) {
	_, err := Parse(`foo`)
	require.Error(t, err)
	derr, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.Expected, derr.Kind)
}

func TestDirectiveDecorationsDiscarded(t *testing.T) {
	doc, err := Parse(`$version: #tagged 1, { a: 1 }`)
	require.NoError(t, err)
	d, ok := doc.DirectiveAt(0)
	require.True(t, ok)
	assert.EqualValues(t, 1, d.Value.AsInt())
}

func TestIntegerBoundary(t *testing.T) {
	doc, err := Parse(`9223372036854775807`)
	require.NoError(t, err)
	node, _ := doc.Get(0)
	assert.EqualValues(t, 9223372036854775807, node.Value().AsInt())

	_, err = Parse(`9223372036854775808`)
	require.Error(t, err)
	derr, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.InvalidNumber, derr.Kind)
}

func TestAnnotationEmptyArgList(t *testing.T) {
	doc, err := Parse(`@foo() 1`)
	require.NoError(t, err)
	node, _ := doc.Get(0)
	require.Equal(t, 1, node.AnnotationCount())
	assert.Equal(t, 0, node.AnnotationAt(0).ArgCount())
}

func TestRepeatedTagNamesNotDeduplicated(t *testing.T) {
	doc, err := Parse(`#a #a 1`)
	require.NoError(t, err)
	node, _ := doc.Get(0)
	require.Equal(t, 2, node.TagCount())
	assert.Equal(t, "a", node.TagAt(0))
	assert.Equal(t, "a", node.TagAt(1))
}

func TestQuotedKey(t *testing.T) {
	doc, err := Parse(`{ "has space": 1 }`)
	require.NoError(t, err)
	root, _ := doc.Get(0)
	obj := root.Value().AsObject()
	v, ok := obj.Get("has space")
	require.True(t, ok)
	assert.EqualValues(t, 1, v.Value().AsInt())
}
