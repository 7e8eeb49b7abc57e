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

package parser

// validateUUID checks the canonical UUID shape: length 36, hyphens at
// positions 8, 13, 18, 23, hex digits everywhere else. There is no
// version/variant check.
func validateUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return false
			}
		default:
			if !isHexDigit(s[i]) {
				return false
			}
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// base64Value maps a base64 alphabet byte (standard or URL-safe) to its
// 6-bit value, or -1 if the byte is not part of the alphabet.
func base64Value(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 26
	case c >= '0' && c <= '9':
		return int(c-'0') + 52
	case c == '+' || c == '-':
		return 62
	case c == '/' || c == '_':
		return 63
	default:
		return -1
	}
}

// decodeBase64 decodes s leniently: the standard alphabet plus the
// URL-safe '-' and '_' variants are accepted simultaneously, '=' padding is
// consumed and ignored wherever it appears (missing padding is tolerated,
// internal '=' is not an error), and ' ', '\n', '\r' are skipped. Any other
// byte fails.
func decodeBase64(s string) ([]byte, bool) {
	var (
		out  []byte
		bits uint32
		n    int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\n', '\r', '=':
			continue
		}
		v := base64Value(c)
		if v < 0 {
			return nil, false
		}
		bits = bits<<6 | uint32(v)
		n++
		if n == 4 {
			out = append(out, byte(bits>>16), byte(bits>>8), byte(bits))
			bits, n = 0, 0
		}
	}

	switch n {
	case 0:
		// Nothing left over.
	case 2:
		bits <<= 12
		out = append(out, byte(bits>>16))
	case 3:
		bits <<= 6
		out = append(out, byte(bits>>16), byte(bits>>8))
	case 1:
		// A single leftover sextet can't decode to a whole byte.
		return nil, false
	}

	return out, true
}
