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
	"fmt"
	"strconv"
	"strings"
)

// escapeString renders s as a quoted xCDN string literal body (without the
// surrounding quotes): backslash and double-quote are escaped, newline/CR/
// tab get their short escapes, any other control byte gets \uXXXX, and
// everything else (including multi-byte UTF-8) passes through verbatim.
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '"':
			b.WriteString(`\"`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20:
			fmt.Fprintf(&b, `\u%04X`, c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '-'
}

// isIdentifier reports whether key matches the identifier production
// (leading letter/underscore, then letters/digits/underscore/hyphen) and
// isn't one of the reserved keywords, i.e., whether it is safe to emit
// unquoted as an object key.
func isIdentifier(key string) bool {
	if key == "" || !isIdentStart(key[0]) {
		return false
	}
	for i := 1; i < len(key); i++ {
		if !isIdentCont(key[i]) {
			return false
		}
	}
	switch key {
	case "true", "false", "null":
		return false
	}
	return true
}

// formatKey renders key unquoted when it's identifier-shaped, or as a
// quoted string literal otherwise.
func formatKey(key string) string {
	if isIdentifier(key) {
		return key
	}
	return `"` + escapeString(key) + `"`
}

// formatFloat renders f the way the lexer's number grammar can read back:
// the shortest round-trippable decimal form, forced to contain a '.' or
// exponent so it re-lexes as FLOAT rather than INT. Non-finite values are
// not required to round-trip and are rendered via strconv's default form.
func formatFloat(f float64) string {
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eEnN") { // nN catches Inf/NaN, left as-is
		text += ".0"
	}
	return text
}
