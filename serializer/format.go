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

// Package serializer renders an *ast.Document back to xCDN source text,
// honoring a Format.
package serializer

// Format configures how Serialize lays text out. The zero value is the same
// as Compact; use Default or Compact, or set fields explicitly.
type Format struct {
	// Pretty lays object/array entries one per indented line and puts a
	// newline between top-level value-stream nodes. When false, entries
	// are comma-space separated on one line.
	Pretty bool
	// Indent is the number of spaces per nesting depth, used only when
	// Pretty is true.
	Indent int
	// TrailingCommas adds a trailing comma after the last entry of an
	// object, array, or prolog directive.
	TrailingCommas bool
}

// Default returns the spec's default format: {pretty: true, indent: 2,
// trailing_commas: true}.
func Default() Format {
	return Format{Pretty: true, Indent: 2, TrailingCommas: true}
}

// Compact returns the spec's compact preset: {pretty: false, indent: 0,
// trailing_commas: false}.
func Compact() Format {
	return Format{Pretty: false, Indent: 0, TrailingCommas: false}
}
