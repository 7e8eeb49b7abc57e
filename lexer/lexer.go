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

package lexer

import (
	"strconv"
	"strings"

	"github.com/xcdn-go/xcdn/diag"
)

// typePrefixes maps a typed-quoted-literal lead byte to its token kind.
var typePrefixes = map[byte]Kind{
	'd': Decimal,
	'b': Bytes,
	'u': UUID,
	't': DateTime,
	'r': Duration,
}

// Lexer turns a borrowed view of xCDN source text into a lazy stream of
// Tokens. It performs no I/O and holds only a cursor plus the small amount
// of state needed to recognize multi-character literals; Next can be
// called until it returns an EOF token.
type Lexer struct {
	text string
	pos  int
	line int
	col  int
}

// New creates a Lexer over text. The cursor starts at offset 0, line 1,
// column 1.
func New(text string) *Lexer {
	return &Lexer{text: text, line: 1, col: 1}
}

func (l *Lexer) rest() string {
	return l.text[l.pos:]
}

func (l *Lexer) at(i int) (byte, bool) {
	if l.pos+i >= len(l.text) {
		return 0, false
	}
	return l.text[l.pos+i], true
}

// advance moves the cursor forward n bytes, updating line and column.
// Column resets to 1 and line increments on every '\n' consumed.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.text[l.pos+i] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	l.pos += n
}

func (l *Lexer) span() diag.Span {
	return diag.Span{Offset: l.pos, Line: l.line, Column: l.col}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '-'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// skipTrivia consumes whitespace and comments ahead of the cursor. It never
// fails: an unterminated block comment at EOF is tolerated silently rather
// than raising an error.
func (l *Lexer) skipTrivia() {
	for {
		switch {
		case l.pos >= len(l.text):
			return
		case isSpace(l.text[l.pos]):
			n := 0
			for l.pos+n < len(l.text) && isSpace(l.text[l.pos+n]) {
				n++
			}
			l.advance(n)
		case strings.HasPrefix(l.rest(), "//"):
			if idx := strings.IndexByte(l.rest(), '\n'); idx >= 0 {
				l.advance(idx) // stop before the newline; it's whitespace
			} else {
				l.advance(len(l.rest()))
			}
		case strings.HasPrefix(l.rest(), "/*"):
			if idx := strings.Index(l.rest(), "*/"); idx >= 0 {
				l.advance(idx + 2)
			} else {
				l.advance(len(l.rest())) // unterminated: tolerated, see doc comment
			}
		default:
			return
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Next lexes and returns the next token, or a diagnostic error if the input
// at the cursor cannot start any valid token. Once an error is returned,
// the Lexer should not be used again; callers (the parser) fail fast.
func (l *Lexer) Next() (Token, *diag.Error) {
	l.skipTrivia()

	start := l.span()
	if l.pos >= len(l.text) {
		return Token{Kind: EOF, Span: start}, nil
	}

	c := l.text[l.pos]

	switch c {
	case '{':
		l.advance(1)
		return Token{Kind: LBrace, Span: start, Text: "{"}, nil
	case '}':
		l.advance(1)
		return Token{Kind: RBrace, Span: start, Text: "}"}, nil
	case '[':
		l.advance(1)
		return Token{Kind: LBracket, Span: start, Text: "["}, nil
	case ']':
		l.advance(1)
		return Token{Kind: RBracket, Span: start, Text: "]"}, nil
	case '(':
		l.advance(1)
		return Token{Kind: LParen, Span: start, Text: "("}, nil
	case ')':
		l.advance(1)
		return Token{Kind: RParen, Span: start, Text: ")"}, nil
	case ':':
		l.advance(1)
		return Token{Kind: Colon, Span: start, Text: ":"}, nil
	case ',':
		l.advance(1)
		return Token{Kind: Comma, Span: start, Text: ","}, nil
	case '$':
		l.advance(1)
		return Token{Kind: Dollar, Span: start, Text: "$"}, nil
	case '#':
		l.advance(1)
		return Token{Kind: Hash, Span: start, Text: "#"}, nil
	case '@':
		l.advance(1)
		return Token{Kind: At, Span: start, Text: "@"}, nil
	}

	// Typed-quoted literals: a single lead byte followed immediately by an
	// opening '"'. This must be checked before generic identifier
	// recognition; a one-byte lookahead past the lead byte suffices.
	if kind, ok := typePrefixes[c]; ok {
		if next, ok := l.at(1); ok && next == '"' {
			return l.lexTypedQuoted(start, kind)
		}
	}

	if strings.HasPrefix(l.rest(), `"""`) {
		return l.lexTripleString(start)
	}
	if c == '"' {
		return l.lexString(start)
	}

	if isDigit(c) || ((c == '+' || c == '-') && func() bool { n, ok := l.at(1); return ok && isDigit(n) }()) {
		return l.lexNumber(start)
	}

	if isIdentStart(c) {
		return l.lexIdent(start)
	}

	l.advance(1)
	return Token{}, diag.New(diag.InvalidToken, start, "unexpected byte %q", c)
}

func (l *Lexer) lexIdent(start diag.Span) (Token, *diag.Error) {
	n := 0
	for l.pos+n < len(l.text) && isIdentCont(l.text[l.pos+n]) {
		n++
	}
	text := l.text[l.pos : l.pos+n]
	l.advance(n)

	switch text {
	case "true":
		return Token{Kind: True, Span: start, Text: text}, nil
	case "false":
		return Token{Kind: False, Span: start, Text: text}, nil
	case "null":
		return Token{Kind: Null, Span: start, Text: text}, nil
	default:
		return Token{Kind: Ident, Span: start, Text: text, Str: text}, nil
	}
}

func (l *Lexer) lexNumber(start diag.Span) (Token, *diag.Error) {
	n := 0
	if l.text[l.pos+n] == '+' || l.text[l.pos+n] == '-' {
		n++
	}
	// Next() only dispatches here when the byte at n is a digit (either
	// directly, or after a sign it already checked), so at least one
	// digit is guaranteed.
	for l.pos+n < len(l.text) && isDigit(l.text[l.pos+n]) {
		n++
	}

	isFloat := false
	if l.pos+n < len(l.text) && l.text[l.pos+n] == '.' {
		isFloat = true
		n++
		for l.pos+n < len(l.text) && isDigit(l.text[l.pos+n]) {
			n++
		}
	}

	if l.pos+n < len(l.text) && (l.text[l.pos+n] == 'e' || l.text[l.pos+n] == 'E') {
		expStart := n
		n++
		if l.pos+n < len(l.text) && (l.text[l.pos+n] == '+' || l.text[l.pos+n] == '-') {
			n++
		}
		expDigits := n
		for l.pos+n < len(l.text) && isDigit(l.text[l.pos+n]) {
			n++
		}
		if n == expDigits {
			// No exponent digits: this isn't a valid exponent after all;
			// back off to just before 'e'/'E' and treat the rest as a
			// separate token.
			n = expStart
		} else {
			isFloat = true
		}
	}

	text := l.text[l.pos : l.pos+n]
	l.advance(n)

	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, diag.New(diag.InvalidNumber, start, "invalid float literal %q: %s", text, err)
		}
		return Token{Kind: Float, Span: start, Text: text, Float: v}, nil
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, diag.New(diag.InvalidNumber, start, "invalid integer literal %q: %s", text, err)
	}
	return Token{Kind: Int, Span: start, Text: text, Int: v}, nil
}

// decodeEscape appends the decoded (or, for non-\" \\ escapes, the
// verbatim) content of a single backslash escape starting at the current
// cursor (which must be positioned just past the backslash) to buf. It
// reports how many bytes of source it consumed, not counting the
// backslash itself.
func (l *Lexer) decodeEscape(buf *strings.Builder, escStart diag.Span) (int, *diag.Error) {
	c, ok := l.at(0)
	if !ok {
		return 0, diag.New(diag.UnexpectedEOF, escStart, "unterminated escape sequence")
	}

	switch c {
	case '"':
		buf.WriteByte('"')
		return 1, nil
	case '\\':
		buf.WriteByte('\\')
		return 1, nil
	case '/', 'b', 'f', 'n', 'r', 't':
		// Not decoded: re-emit the two-byte escape sequence verbatim.
		// Only \" and \\ are reduced to their literal characters; every
		// other recognized escape round-trips as source text instead of
		// being interpreted.
		buf.WriteByte('\\')
		buf.WriteByte(c)
		return 1, nil
	case 'u':
		for i := 1; i <= 4; i++ {
			d, ok := l.at(i)
			if !ok || !isHex(d) {
				return 0, diag.New(diag.InvalidEscape, escStart, `\u escape requires exactly four hex digits`)
			}
		}
		buf.WriteByte('\\')
		buf.WriteByte('u')
		for i := 1; i <= 4; i++ {
			d, _ := l.at(i)
			buf.WriteByte(d)
		}
		return 5, nil
	default:
		return 0, diag.New(diag.InvalidEscape, escStart, "invalid escape sequence \\%c", c)
	}
}

func (l *Lexer) lexString(start diag.Span) (Token, *diag.Error) {
	l.advance(1) // opening quote

	var buf strings.Builder
	for {
		c, ok := l.at(0)
		if !ok {
			return Token{}, diag.New(diag.UnexpectedEOF, start, "unterminated string literal")
		}
		if c == '"' {
			l.advance(1)
			break
		}
		if c == '\\' {
			escStart := l.span()
			l.advance(1)
			n, err := l.decodeEscape(&buf, escStart)
			if err != nil {
				return Token{}, err
			}
			l.advance(n)
			continue
		}
		buf.WriteByte(c)
		l.advance(1)
	}

	return Token{Kind: String, Span: start, Text: buf.String(), Str: buf.String()}, nil
}

func (l *Lexer) lexTripleString(start diag.Span) (Token, *diag.Error) {
	l.advance(3) // opening """
	bodyStart := l.pos

	idx := strings.Index(l.rest(), `"""`)
	if idx < 0 {
		return Token{}, diag.New(diag.UnexpectedEOF, start, "unterminated triple-quoted string literal")
	}
	body := l.text[bodyStart : bodyStart+idx]
	l.advance(idx + 3)

	return Token{Kind: TripleString, Span: start, Text: body, Str: body}, nil
}

// lexTypedQuoted lexes X"..." where X has already been identified as a
// typed-literal prefix and the following byte is known to be '"'. The body
// is collected with escapes left untouched (no decoding whatsoever), but
// backslash still protects the next byte from prematurely closing the
// literal.
func (l *Lexer) lexTypedQuoted(start diag.Span, kind Kind) (Token, *diag.Error) {
	l.advance(2) // lead byte + opening quote

	var buf strings.Builder
	for {
		c, ok := l.at(0)
		if !ok {
			return Token{}, diag.New(diag.UnexpectedEOF, start, "unterminated %s", kind)
		}
		if c == '"' {
			l.advance(1)
			break
		}
		if c == '\\' {
			if next, ok := l.at(1); ok {
				buf.WriteByte(c)
				buf.WriteByte(next)
				l.advance(2)
				continue
			}
			return Token{}, diag.New(diag.UnexpectedEOF, start, "unterminated escape sequence")
		}
		buf.WriteByte(c)
		l.advance(1)
	}

	return Token{Kind: kind, Span: start, Text: buf.String(), Str: buf.String()}, nil
}
