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

// Error is a lexer or parser failure carrying the information a caller
// needs both to react programmatically (Kind) and to show a human
// (Error's message, which embeds Span).
//
// Error is fail-fast: a parse that produces one never produces a second.
type Error struct {
	Kind Kind
	Span Span
	msg  string
}

// New builds an Error with a formatted message.
func New(kind Kind, span Span, format string, args ...any) *Error {
	return &Error{Kind: kind, Span: span, msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Span, e.Kind, e.msg)
}

// Message returns the human-readable detail, without the kind or span
// prefix Error() adds.
func (e *Error) Message() string {
	return e.msg
}
