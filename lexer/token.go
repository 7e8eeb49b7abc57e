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

// Package lexer turns xCDN source text into a stream of Tokens.
package lexer

import (
	"fmt"

	"github.com/xcdn-go/xcdn/diag"
)

// Kind identifies what a Token is.
type Kind int

const (
	EOF Kind = iota

	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
	LParen   // (
	RParen   // )
	Colon    // :
	Comma    // ,
	Dollar   // $
	Hash     // #
	At       // @

	True
	False
	Null

	Ident

	Int
	Float

	String       // "..."
	TripleString // """..."""

	Decimal  // d"..."
	Bytes    // b"..."
	UUID     // u"..."
	DateTime // t"..."
	Duration // r"..."
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Colon:
		return ":"
	case Comma:
		return ","
	case Dollar:
		return "$"
	case Hash:
		return "#"
	case At:
		return "@"
	case True:
		return "true"
	case False:
		return "false"
	case Null:
		return "null"
	case Ident:
		return "identifier"
	case Int:
		return "integer literal"
	case Float:
		return "float literal"
	case String:
		return "string literal"
	case TripleString:
		return "triple-quoted string literal"
	case Decimal:
		return "decimal literal"
	case Bytes:
		return "bytes literal"
	case UUID:
		return "UUID literal"
	case DateTime:
		return "datetime literal"
	case Duration:
		return "duration literal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single lexical element, with its source span and, for literal
// kinds, its decoded payload.
//
// Text holds the raw source slice for punctuation, keywords, identifiers
// and numbers; for the string-shaped kinds it holds the same content as
// Str, without the quotes or type prefix (useful for error messages and for
// key text upstream). Str holds the per-kind payload:
//   - Ident: the identifier text (same as Text).
//   - String: the content with only \" and \\ reduced; every other escape
//     sequence is preserved verbatim as source text (see the lexer's string
//     scanner for why).
//   - TripleString: the raw body between the """ delimiters, unprocessed.
//   - Decimal, Bytes, UUID, DateTime, Duration: the raw quoted body, with
//     escapes preserved as-is (no decoding at all).
//
// Int and Float hold the parsed numeric value for Kind Int and Float
// respectively.
type Token struct {
	Kind  Kind
	Span  diag.Span
	Text  string
	Str   string
	Int   int64
	Float float64
}
