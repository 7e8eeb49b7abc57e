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

// Package parser is a recursive-descent parser over the lexer's token
// stream, building an *ast.Document.
package parser

import (
	"github.com/xcdn-go/xcdn/ast"
	"github.com/xcdn-go/xcdn/diag"
	"github.com/xcdn-go/xcdn/lexer"
)

// Parse parses text into a Document, or returns the first error
// encountered. Parsing is fail-fast: on error, no partial Document is
// returned.
func Parse(text string) (*ast.Document, error) {
	p := &parser{lex: lexer.New(text)}
	p.advance()

	doc := ast.NewDocument()
	if err := p.parseProlog(doc); err != nil {
		return nil, err
	}
	if err := p.parseBody(doc); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.cur.Kind != lexer.EOF {
		return nil, diag.New(diag.Expected, p.cur.Span, "expected end of input, found %s", p.cur.Kind)
	}
	return doc, nil
}

// parser holds one token of lookahead (p.cur) plus a sticky first error.
// Every method that can fail returns it immediately; advance becomes a
// no-op once p.err is set, so callers never need to check it after every
// single call, only before trusting p.cur.
type parser struct {
	lex *lexer.Lexer
	cur lexer.Token
	err *diag.Error
}

func (p *parser) advance() {
	if p.err != nil {
		return
	}
	tok, err := p.lex.Next()
	if err != nil {
		p.err = err
		return
	}
	p.cur = tok
}

// errOrNil returns p.err as a plain error, converting a nil *diag.Error to
// a true nil error value (a bare `p.err` would instead produce a non-nil
// error interface wrapping a nil pointer).
func (p *parser) errOrNil() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

func (p *parser) expected(what string) *diag.Error {
	return diag.New(diag.Expected, p.cur.Span, "expected %s, found %s", what, describe(p.cur))
}

func describe(tok lexer.Token) string {
	if tok.Text != "" {
		return tok.Kind.String() + " " + quote(tok.Text)
	}
	return tok.Kind.String()
}

func quote(s string) string {
	return "\"" + s + "\""
}

// parseProlog consumes the leading ('$' IDENT ':' node ','?)* sequence,
// pushing each directive onto doc. Decorations on a directive's value are
// discarded: a directive stores only the parsed Value.
func (p *parser) parseProlog(doc *ast.Document) error {
	for p.cur.Kind == lexer.Dollar {
		p.advance()
		if p.err != nil {
			return p.err
		}
		if p.cur.Kind != lexer.Ident {
			return p.expected("directive name")
		}
		name := p.cur.Text
		p.advance()

		if p.cur.Kind != lexer.Colon {
			return p.expected("':'")
		}
		p.advance()

		node, err := p.parseNode()
		if err != nil {
			return err
		}
		doc.PushDirective(ast.Directive{Name: name, Value: node.Value()})

		if p.cur.Kind == lexer.Comma {
			p.advance()
		}
		if p.err != nil {
			return p.err
		}
	}
	return nil
}

// parseBody disambiguates the document root between an implicit object
// (bare "key: node" pairs with no enclosing braces) and a stream of
// decorated values, distinguished with one token of buffered lookahead
// past the first token.
func (p *parser) parseBody(doc *ast.Document) error {
	if p.cur.Kind == lexer.EOF {
		return nil
	}

	if p.cur.Kind == lexer.Ident || p.cur.Kind == lexer.String {
		first := p.cur
		p.advance()
		if p.err != nil {
			return p.err
		}

		if p.cur.Kind == lexer.Colon {
			return p.parseImplicitObject(doc, first)
		}

		if first.Kind == lexer.Ident {
			return diag.New(diag.Expected, first.Span, "bare identifier %q cannot be a value; only true/false/null are bare keywords", first.Text)
		}

		// first was a bare string not followed by ':': it is the first
		// element of a value stream.
		node := ast.NewNode(ast.NewString(first.Str))
		doc.PushValue(node)
		return p.parseRemainingStream(doc)
	}

	return p.parseRemainingStream(doc)
}

func (p *parser) parseImplicitObject(doc *ast.Document, firstKey lexer.Token) error {
	obj := ast.NewEmptyObject()

	if p.cur.Kind != lexer.Colon {
		return p.expected("':'")
	}
	p.advance()

	var key string
	if firstKey.Kind == lexer.Ident {
		key = firstKey.Text
	} else {
		key = firstKey.Str
	}

	node, err := p.parseNode()
	if err != nil {
		return err
	}
	obj.Set(key, node)

	if p.cur.Kind == lexer.Comma {
		p.advance()
	}

	for p.cur.Kind != lexer.EOF {
		if p.err != nil {
			return p.err
		}
		key, err := p.parseKey()
		if err != nil {
			return err
		}
		if p.cur.Kind != lexer.Colon {
			return p.expected("':'")
		}
		p.advance()
		node, err := p.parseNode()
		if err != nil {
			return err
		}
		obj.Set(key, node)
		if p.cur.Kind == lexer.Comma {
			p.advance()
		}
	}

	doc.PushValue(ast.NewNode(ast.NewObject(obj)))
	return p.errOrNil()
}

func (p *parser) parseRemainingStream(doc *ast.Document) error {
	for p.cur.Kind != lexer.EOF {
		if p.err != nil {
			return p.err
		}
		node, err := p.parseNode()
		if err != nil {
			return err
		}
		doc.PushValue(node)
	}
	return p.errOrNil()
}

func (p *parser) parseKey() (string, error) {
	switch p.cur.Kind {
	case lexer.Ident:
		key := p.cur.Text
		p.advance()
		return key, p.errOrNil()
	case lexer.String:
		key := p.cur.Str
		p.advance()
		return key, p.errOrNil()
	default:
		return "", p.expected("key")
	}
}

// pendingAnnotation accumulates an annotation's name and arguments while
// the surrounding Node doesn't exist yet.
type pendingAnnotation struct {
	name string
	args []ast.Value
}

// parseNode parses a value preceded by zero or more decorations (tags and
// annotations).
func (p *parser) parseNode() (*ast.Node, error) {
	var tags []string
	var pending []pendingAnnotation

	for {
		switch p.cur.Kind {
		case lexer.Hash:
			p.advance()
			if p.cur.Kind != lexer.Ident {
				return nil, p.expected("tag name")
			}
			tags = append(tags, p.cur.Text)
			p.advance()

		case lexer.At:
			p.advance()
			if p.cur.Kind != lexer.Ident {
				return nil, p.expected("annotation name")
			}
			name := p.cur.Text
			p.advance()

			var args []ast.Value
			if p.cur.Kind == lexer.LParen {
				p.advance()
				for p.cur.Kind != lexer.RParen {
					if p.cur.Kind == lexer.EOF {
						return nil, diag.New(diag.UnexpectedEOF, p.cur.Span, "unterminated annotation argument list")
					}
					v, err := p.parseValue()
					if err != nil {
						return nil, err
					}
					args = append(args, v)
					if p.cur.Kind == lexer.Comma {
						p.advance()
					}
				}
				p.advance() // consume ')'
			}
			pending = append(pending, pendingAnnotation{name: name, args: args})

		default:
			if p.err != nil {
				return nil, p.err
			}

			value, err := p.parseValue()
			if err != nil {
				return nil, err
			}

			node := ast.NewNode(value)
			for _, t := range tags {
				node.AddTag(t)
			}
			for _, pa := range pending {
				ann := node.AddAnnotation(pa.name)
				for _, a := range pa.args {
					ann.PushArg(a)
				}
			}
			return node, nil
		}
	}
}

// parseValue parses a scalar, array, or object, with no decorations of its
// own (those are handled one level up, by parseNode).
func (p *parser) parseValue() (ast.Value, error) {
	tok := p.cur
	switch tok.Kind {
	case lexer.LBrace:
		obj, err := p.parseObject()
		if err != nil {
			return ast.Value{}, err
		}
		return ast.NewObject(obj), nil

	case lexer.LBracket:
		arr, err := p.parseArray()
		if err != nil {
			return ast.Value{}, err
		}
		return ast.NewArray(arr), nil

	case lexer.String, lexer.TripleString:
		p.advance()
		return ast.NewString(tok.Str), p.errOrNil()

	case lexer.Int:
		p.advance()
		return ast.NewInt(tok.Int), p.errOrNil()

	case lexer.Float:
		p.advance()
		return ast.NewFloat(tok.Float), p.errOrNil()

	case lexer.True:
		p.advance()
		return ast.NewBool(true), p.errOrNil()

	case lexer.False:
		p.advance()
		return ast.NewBool(false), p.errOrNil()

	case lexer.Null:
		p.advance()
		return ast.NewNull(), p.errOrNil()

	case lexer.Decimal:
		p.advance()
		return ast.NewDecimal(tok.Str), p.errOrNil()

	case lexer.DateTime:
		p.advance()
		return ast.NewDateTime(tok.Str), p.errOrNil()

	case lexer.Duration:
		p.advance()
		return ast.NewDuration(tok.Str), p.errOrNil()

	case lexer.UUID:
		if !validateUUID(tok.Str) {
			return ast.Value{}, diag.New(diag.InvalidUUID, tok.Span, "invalid UUID literal %q", tok.Str)
		}
		p.advance()
		return ast.NewUUID(tok.Str), p.errOrNil()

	case lexer.Bytes:
		decoded, ok := decodeBase64(tok.Str)
		if !ok {
			return ast.Value{}, diag.New(diag.InvalidBase64, tok.Span, "invalid base64 literal %q", tok.Str)
		}
		p.advance()
		return ast.NewBytes(decoded), p.errOrNil()

	default:
		return ast.Value{}, p.expected("value")
	}
}

func (p *parser) parseObject() (*ast.Object, error) {
	obj := ast.NewEmptyObject()
	p.advance() // consume '{'

	for {
		if p.err != nil {
			return nil, p.err
		}
		if p.cur.Kind == lexer.RBrace {
			p.advance()
			return obj, p.errOrNil()
		}
		if p.cur.Kind == lexer.EOF {
			return nil, diag.New(diag.UnexpectedEOF, p.cur.Span, "unterminated object")
		}

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != lexer.Colon {
			return nil, p.expected("':'")
		}
		p.advance()

		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		obj.Set(key, node)

		if p.cur.Kind == lexer.Comma {
			p.advance()
		}
	}
}

func (p *parser) parseArray() (*ast.Array, error) {
	arr := ast.NewEmptyArray()
	p.advance() // consume '['

	for {
		if p.err != nil {
			return nil, p.err
		}
		if p.cur.Kind == lexer.RBracket {
			p.advance()
			return arr, p.errOrNil()
		}
		if p.cur.Kind == lexer.EOF {
			return nil, diag.New(diag.UnexpectedEOF, p.cur.Span, "unterminated array")
		}

		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		arr.Push(node)

		if p.cur.Kind == lexer.Comma {
			p.advance()
		}
	}
}
