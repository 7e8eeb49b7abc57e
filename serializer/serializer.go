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

package serializer

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/xcdn-go/xcdn/ast"
)

// Serialize renders doc as xCDN source text under format.
func Serialize(doc *ast.Document, format Format) string {
	var b strings.Builder
	s := &serializer{format: format}

	for i := 0; i < doc.DirectiveCount(); i++ {
		d, _ := doc.DirectiveAt(i)
		b.WriteString("$")
		b.WriteString(d.Name)
		b.WriteString(": ")
		b.WriteString(s.value(d.Value, 0))
		if format.TrailingCommas {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	for i := 0; i < doc.Len(); i++ {
		node, _ := doc.Get(i)
		if i > 0 {
			if format.Pretty {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(s.node(node, 0))
	}

	return b.String()
}

type serializer struct {
	format Format
}

// node renders a Node's decorations followed by its value.
func (s *serializer) node(n *ast.Node, depth int) string {
	var b strings.Builder
	for i := 0; i < n.TagCount(); i++ {
		b.WriteString("#")
		b.WriteString(n.TagAt(i))
		b.WriteString(" ")
	}
	for i := 0; i < n.AnnotationCount(); i++ {
		ann := n.AnnotationAt(i)
		b.WriteString("@")
		b.WriteString(ann.Name())
		if ann.ArgCount() > 0 {
			b.WriteString("(")
			b.WriteString(s.args(ann))
			b.WriteString(")")
		}
		b.WriteString(" ")
	}
	b.WriteString(s.value(n.Value(), depth))
	return b.String()
}

// args renders an annotation's argument list. Arguments always serialize
// in compact form regardless of the outer format.
func (s *serializer) args(ann *ast.Annotation) string {
	compact := &serializer{format: Compact()}
	parts := make([]string, 0, ann.ArgCount())
	for i := 0; i < ann.ArgCount(); i++ {
		v, _ := ann.Arg(i)
		parts = append(parts, compact.value(v, 0))
	}
	return strings.Join(parts, ", ")
}

func (s *serializer) value(v ast.Value, depth int) string {
	switch v.Kind() {
	case ast.KindNull:
		return "null"
	case ast.KindBool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case ast.KindInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case ast.KindFloat:
		return formatFloat(v.AsFloat())
	case ast.KindDecimal:
		return `d"` + v.AsString() + `"`
	case ast.KindString:
		return `"` + escapeString(v.AsString()) + `"`
	case ast.KindBytes:
		return `b"` + base64.StdEncoding.EncodeToString(v.AsBytes()) + `"`
	case ast.KindDateTime:
		return `t"` + v.AsString() + `"`
	case ast.KindDuration:
		return `r"` + v.AsString() + `"`
	case ast.KindUUID:
		return `u"` + v.AsString() + `"`
	case ast.KindArray:
		return s.array(v.AsArray(), depth)
	case ast.KindObject:
		return s.object(v.AsObject(), depth)
	default:
		return "null"
	}
}

func (s *serializer) array(arr *ast.Array, depth int) string {
	entries := make([]string, 0, arr.Len())
	for _, n := range arr.All() {
		entries = append(entries, s.node(n, depth+1))
	}
	return s.wrap(entries, "[", "]", depth)
}

func (s *serializer) object(obj *ast.Object, depth int) string {
	entries := make([]string, 0, obj.Len())
	for key, n := range obj.All() {
		entries = append(entries, formatKey(key)+": "+s.node(n, depth+1))
	}
	return s.wrap(entries, "{", "}", depth)
}

// wrap lays entries out between open and close per the format's
// pretty/indent/trailing-comma rules.
func (s *serializer) wrap(entries []string, open, close string, depth int) string {
	if len(entries) == 0 {
		return open + close
	}

	var b strings.Builder
	if s.format.Pretty {
		indent := strings.Repeat(" ", s.format.Indent*(depth+1))
		b.WriteString(open)
		b.WriteString("\n")
		for i, e := range entries {
			b.WriteString(indent)
			b.WriteString(e)
			if i < len(entries)-1 || s.format.TrailingCommas {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(" ", s.format.Indent*depth))
		b.WriteString(close)
		return b.String()
	}

	b.WriteString(open)
	for i, e := range entries {
		b.WriteString(e)
		if i < len(entries)-1 {
			b.WriteString(", ")
		} else if s.format.TrailingCommas {
			b.WriteString(",")
		}
	}
	b.WriteString(close)
	return b.String()
}
