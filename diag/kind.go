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

package diag

import "fmt"

// Kind is the closed set of machine-discriminable error categories a lexer
// or parser failure can fall into. Kind is the primary field callers should
// switch on; Error's message is for humans.
type Kind int

const (
	// UnexpectedEOF covers unterminated strings, escapes, objects, arrays
	// and annotation argument lists. An unterminated block comment at end
	// of input is not reported at all (see the lexer's leniency there).
	UnexpectedEOF Kind = iota + 1
	// InvalidToken is raised for a byte the lexer cannot start any token
	// with.
	InvalidToken
	// Expected marks a syntactic mismatch: the parser wanted one thing
	// and found another.
	Expected
	// InvalidEscape marks a malformed backslash escape inside a quoted
	// string.
	InvalidEscape
	// InvalidNumber marks a numeric literal that is malformed or out of
	// range for its target type.
	InvalidNumber
	// InvalidDecimal is reserved for future structural checks on decimal
	// literals; the current lexer accepts any decimal body verbatim, so
	// this kind is never produced today.
	InvalidDecimal
	// InvalidDateTime is reserved for future structural checks on
	// datetime literals; never produced today, for the same reason as
	// InvalidDecimal.
	InvalidDateTime
	// InvalidDuration is reserved for future structural checks on
	// duration literals; never produced today, for the same reason as
	// InvalidDecimal.
	InvalidDuration
	// InvalidUUID marks a u"..." literal that fails the canonical UUID
	// shape check.
	InvalidUUID
	// InvalidBase64 marks a b"..." literal containing a byte outside the
	// accepted alphabet.
	InvalidBase64
	// Message is a generic catch-all for errors that do not fit any of
	// the above kinds.
	Message
	// OutOfMemory is reserved for allocation failure; Go's runtime
	// reports this by panicking rather than returning an error, so this
	// kind exists for interface completeness with the spec's closed set
	// and is never constructed by this package.
	OutOfMemory
)

func (k Kind) String() string {
	switch k {
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case InvalidToken:
		return "InvalidToken"
	case Expected:
		return "Expected"
	case InvalidEscape:
		return "InvalidEscape"
	case InvalidNumber:
		return "InvalidNumber"
	case InvalidDecimal:
		return "InvalidDecimal"
	case InvalidDateTime:
		return "InvalidDateTime"
	case InvalidDuration:
		return "InvalidDuration"
	case InvalidUUID:
		return "InvalidUUID"
	case InvalidBase64:
		return "InvalidBase64"
	case Message:
		return "Message"
	case OutOfMemory:
		return "OutOfMemory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
