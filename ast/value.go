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

// Package ast is the xCDN in-memory document model: the typed Value tree,
// the ordered-map Object, decorated Nodes, and the Document that holds a
// prolog plus a value stream.
package ast

import "fmt"

// Kind discriminates the variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindDecimal
	KindString
	KindBytes
	KindDateTime
	KindDuration
	KindUUID
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindDateTime:
		return "datetime"
	case KindDuration:
		return "duration"
	case KindUUID:
		return "uuid"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a tagged sum: exactly one of its fields is meaningful, selected
// by Kind. Values are built with the New* constructors below rather than
// composite literals, so the invariant "exactly one payload per Kind"
// can't be violated by construction.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	text  string // String, Decimal, DateTime, Duration, UUID
	bytes []byte
	arr   *Array
	obj   *Object
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// NewNull returns the Null value.
func NewNull() Value { return Value{kind: KindNull} }

// NewBool returns a Bool value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewInt returns an Int value.
func NewInt(i int64) Value { return Value{kind: KindInt, i: i} }

// NewFloat returns a Float value.
func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }

// NewDecimal returns a Decimal value. text is stored verbatim; xCDN treats
// decimal bodies as opaque arbitrary-precision text and never parses them.
func NewDecimal(text string) Value { return Value{kind: KindDecimal, text: text} }

// NewString returns a String value. text has already had its escapes
// decoded the way the lexer's string scanner decodes them (see the doc of
// lexer.Token).
func NewString(text string) Value { return Value{kind: KindString, text: text} }

// NewBytes returns a Bytes value. The caller is responsible for having
// already base64-decoded the content (the parser does this for b"..."
// literals).
func NewBytes(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

// NewDateTime returns a DateTime value holding text verbatim.
func NewDateTime(text string) Value { return Value{kind: KindDateTime, text: text} }

// NewDuration returns a Duration value holding text verbatim.
func NewDuration(text string) Value { return Value{kind: KindDuration, text: text} }

// NewUUID returns a UUID value holding text verbatim. Callers that build
// Values directly (rather than via the parser) are responsible for
// validating the UUID shape themselves if they want the same guarantee the
// parser provides.
func NewUUID(text string) Value { return Value{kind: KindUUID, text: text} }

// NewArray returns an Array value wrapping arr. A nil arr is normalized to
// an empty Array so accessors never see a nil pointer here.
func NewArray(arr *Array) Value {
	if arr == nil {
		arr = NewEmptyArray()
	}
	return Value{kind: KindArray, arr: arr}
}

// NewObject returns an Object value wrapping obj. A nil obj is normalized
// to an empty Object, for the same reason as NewArray.
func NewObject(obj *Object) Value {
	if obj == nil {
		obj = NewEmptyObject()
	}
	return Value{kind: KindObject, obj: obj}
}

// AsBool returns the boolean payload, or false for any other Kind.
func (v Value) AsBool() bool {
	if v.kind == KindBool {
		return v.b
	}
	return false
}

// AsInt returns the int payload, or 0 for any other Kind.
func (v Value) AsInt() int64 {
	if v.kind == KindInt {
		return v.i
	}
	return 0
}

// AsFloat returns the float payload, or 0 for any other Kind.
func (v Value) AsFloat() float64 {
	if v.kind == KindFloat {
		return v.f
	}
	return 0
}

// AsString returns the stored text for any text-shaped Kind (String,
// Decimal, DateTime, Duration, UUID), unifying them behind one accessor, or
// "" for any other Kind.
func (v Value) AsString() string {
	switch v.kind {
	case KindString, KindDecimal, KindDateTime, KindDuration, KindUUID:
		return v.text
	default:
		return ""
	}
}

// AsBytes returns the byte payload, or nil for any other Kind.
func (v Value) AsBytes() []byte {
	if v.kind == KindBytes {
		return v.bytes
	}
	return nil
}

// AsArray returns the Array payload, or nil for any other Kind.
func (v Value) AsArray() *Array {
	if v.kind == KindArray {
		return v.arr
	}
	return nil
}

// AsObject returns the Object payload, or nil for any other Kind.
func (v Value) AsObject() *Object {
	if v.kind == KindObject {
		return v.obj
	}
	return nil
}
