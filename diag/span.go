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

// Package diag holds the source positions and error kinds shared by the
// lexer and parser.
package diag

import "fmt"

// Span identifies a single byte position in source text: a 0-based byte
// offset plus the 1-based line and column that offset corresponds to.
//
// Column advances by one per byte consumed, except on '\n', which resets
// column to 1 and advances line. This is deliberately byte-granular, not
// rune- or grapheme-granular: multi-byte UTF-8 sequences are not given
// special column-width treatment.
type Span struct {
	Offset int
	Line   int
	Column int
}

// String renders the span as "line:column", the form used inside error
// messages.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Less reports whether s sorts strictly before other by offset. Spans
// produced by a single lexer pass over one input are always non-decreasing
// in offset, so this also totally orders them for that case.
func (s Span) Less(other Span) bool {
	return s.Offset < other.Offset
}
