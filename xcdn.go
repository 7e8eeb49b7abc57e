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

// Package xcdn parses and serializes xCDN documents: a configuration and
// data notation with a JSON-like value model extended with typed scalars,
// tags, and annotations.
//
// Parse a document, then read it back with the usual accessors:
//
//	doc, err := xcdn.Parse(src)
//	if err != nil {
//		// err is a *diag.Error carrying a Kind and a Span.
//	}
//	node, ok := doc.GetPath("service.port")
//
// Serialize renders a Document back to text under a Format:
//
//	text := xcdn.Serialize(doc, xcdn.DefaultFormat())
package xcdn

import (
	"github.com/xcdn-go/xcdn/ast"
	"github.com/xcdn-go/xcdn/parser"
	"github.com/xcdn-go/xcdn/serializer"
)

// Document is the parsed in-memory form of an xCDN document.
type Document = ast.Document

// Format configures Serialize's layout.
type Format = serializer.Format

// Parse parses text into a Document. Parsing is fail-fast: the first error
// encountered is returned and no partial Document is produced.
func Parse(text string) (*Document, error) {
	return parser.Parse(text)
}

// Serialize renders doc as xCDN source text under format.
func Serialize(doc *Document, format Format) string {
	return serializer.Serialize(doc, format)
}

// DefaultFormat returns the default pretty-printing format: two space
// indent, trailing commas.
func DefaultFormat() Format {
	return serializer.Default()
}

// CompactFormat returns the single-line compact format.
func CompactFormat() Format {
	return serializer.Compact()
}
