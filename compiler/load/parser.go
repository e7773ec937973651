package load

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// SyntaxError reports malformed schema text with its line number.
type SyntaxError struct {
	Line    int
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("esdlgen: syntax error at line %d: %s", e.Line, e.Message)
}

// IsSyntaxError reports whether the error is a SyntaxError.
func IsSyntaxError(err error) bool {
	var serr *SyntaxError
	return errors.As(err, &serr)
}

// Parse parses schema text into a Schema. Declaration order of enums,
// models, fields and enum values is preserved.
func Parse(src []byte) (*Schema, error) {
	p := &parser{src: []rune(string(src)), line: 1}
	return p.schema()
}

type parser struct {
	src  []rune
	pos  int
	line int
}

func (p *parser) errf(format string, args ...any) error {
	return &SyntaxError{Line: p.line, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) next() rune {
	r := p.src[p.pos]
	p.pos++
	if r == '\n' {
		p.line++
	}
	return r
}

// skipSpace consumes whitespace and // comments.
func (p *parser) skipSpace() {
	for !p.eof() {
		switch r := p.peek(); {
		case unicode.IsSpace(r):
			p.next()
		case r == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/':
			for !p.eof() && p.peek() != '\n' {
				p.next()
			}
		default:
			return
		}
	}
}

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isIdent(r rune) bool      { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }

func (p *parser) ident() (string, error) {
	p.skipSpace()
	if p.eof() || !isIdentStart(p.peek()) {
		return "", p.errf("expected identifier")
	}
	start := p.pos
	for !p.eof() && isIdent(p.peek()) {
		p.next()
	}
	return string(p.src[start:p.pos]), nil
}

func (p *parser) expect(r rune) error {
	p.skipSpace()
	if p.eof() || p.peek() != r {
		return p.errf("expected %q", string(r))
	}
	p.next()
	return nil
}

func (p *parser) accept(r rune) bool {
	p.skipSpace()
	if !p.eof() && p.peek() == r {
		p.next()
		return true
	}
	return false
}

func (p *parser) schema() (*Schema, error) {
	s := &Schema{}
	for {
		p.skipSpace()
		if p.eof() {
			return s, nil
		}
		kw, err := p.ident()
		if err != nil {
			return nil, err
		}
		switch kw {
		case "enum":
			e, err := p.enumDecl()
			if err != nil {
				return nil, err
			}
			s.Enums = append(s.Enums, e)
		case "model":
			m, err := p.modelDecl()
			if err != nil {
				return nil, err
			}
			s.Models = append(s.Models, m)
		default:
			return nil, p.errf("unexpected %q, expected enum or model", kw)
		}
	}
}

func (p *parser) enumDecl() (*Enum, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	e := &Enum{Name: name, Line: p.line}
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	for !p.accept('}') {
		if p.eof() {
			return nil, p.errf("unterminated enum %q", name)
		}
		v, err := p.ident()
		if err != nil {
			return nil, err
		}
		e.Values = append(e.Values, v)
	}
	return e, nil
}

func (p *parser) modelDecl() (*Model, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	m := &Model{Name: name, Line: p.line}
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	for !p.accept('}') {
		if p.eof() {
			return nil, p.errf("unterminated model %q", name)
		}
		p.skipSpace()
		if p.peek() == '@' {
			// Block-level @@attribute.
			p.next()
			if p.peek() != '@' {
				return nil, p.errf("unexpected @ outside a field in model %q", name)
			}
			p.next()
			at, err := p.attribute()
			if err != nil {
				return nil, err
			}
			m.Attrs = append(m.Attrs, at)
			continue
		}
		f, err := p.fieldDecl()
		if err != nil {
			return nil, err
		}
		m.Fields = append(m.Fields, f)
	}
	return m, nil
}

func (p *parser) fieldDecl() (*Field, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	f := &Field{Name: name, Line: p.line}
	if f.Type, err = p.typeExpr(); err != nil {
		return nil, err
	}
	if p.accept('[') {
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		f.List = true
	}
	if p.accept('?') {
		f.Optional = true
	}
	for {
		p.skipSpace()
		if p.eof() || p.peek() != '@' {
			return f, nil
		}
		if p.pos+1 < len(p.src) && p.src[p.pos+1] == '@' {
			// Block-level @@attribute; the model parser owns it.
			return f, nil
		}
		p.next()
		at, err := p.attribute()
		if err != nil {
			return nil, err
		}
		f.Attrs = append(f.Attrs, at)
	}
}

func (p *parser) typeExpr() (*TypeExpr, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	t := &TypeExpr{Name: name}
	if !p.accept('(') {
		return t, nil
	}
	// Call expression type, e.g. Unsupported("polygon"). Arguments are
	// kept as raw text only; the classifier rejects the whole variant.
	t.Call = true
	for !p.accept(')') {
		if p.eof() {
			return nil, p.errf("unterminated type expression %q", name)
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		t.Args = append(t.Args, v.Str)
		p.accept(',')
	}
	return t, nil
}

// attribute parses an attribute body (the @ markers are consumed by the
// caller). Dotted names such as db.Text are kept as a single name.
func (p *parser) attribute() (*Attribute, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	for !p.eof() && p.peek() == '.' {
		p.next()
		part, err := p.ident()
		if err != nil {
			return nil, err
		}
		name += "." + part
	}
	at := &Attribute{Name: name}
	if !p.accept('(') {
		return at, nil
	}
	for !p.accept(')') {
		if p.eof() {
			return nil, p.errf("unterminated attribute @%s", name)
		}
		a, err := p.arg()
		if err != nil {
			return nil, err
		}
		at.Args = append(at.Args, a)
		p.accept(',')
	}
	return at, nil
}

func (p *parser) arg() (*Arg, error) {
	p.skipSpace()
	if isIdentStart(p.peek()) {
		// Either a named argument (ident ":" value) or an ident value.
		pos, line := p.pos, p.line
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		if p.accept(':') {
			v, err := p.value()
			if err != nil {
				return nil, err
			}
			return &Arg{Name: name, Value: v}, nil
		}
		p.pos, p.line = pos, line
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	return &Arg{Value: v}, nil
}

func (p *parser) value() (*Value, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.errf("expected value")
	}
	switch r := p.peek(); {
	case r == '"':
		return p.stringValue()
	case r == '[':
		p.next()
		v := &Value{Kind: ValueList}
		for !p.accept(']') {
			if p.eof() {
				return nil, p.errf("unterminated list value")
			}
			e, err := p.value()
			if err != nil {
				return nil, err
			}
			v.List = append(v.List, e)
			p.accept(',')
		}
		return v, nil
	case r == '-' || unicode.IsDigit(r):
		start := p.pos
		p.next()
		for !p.eof() && (unicode.IsDigit(p.peek()) || p.peek() == '.') {
			p.next()
		}
		return &Value{Kind: ValueNumber, Str: string(p.src[start:p.pos])}, nil
	case isIdentStart(r):
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		if !p.accept('(') {
			return &Value{Kind: ValueIdent, Str: name}, nil
		}
		v := &Value{Kind: ValueCall, Name: name}
		for !p.accept(')') {
			if p.eof() {
				return nil, p.errf("unterminated call %s()", name)
			}
			a, err := p.value()
			if err != nil {
				return nil, err
			}
			v.List = append(v.List, a)
			p.accept(',')
		}
		return v, nil
	}
	return nil, p.errf("unexpected %q in value", string(p.peek()))
}

func (p *parser) stringValue() (*Value, error) {
	p.next() // opening quote
	var b strings.Builder
	for {
		if p.eof() {
			return nil, p.errf("unterminated string literal")
		}
		r := p.next()
		switch r {
		case '"':
			return &Value{Kind: ValueString, Str: b.String()}, nil
		case '\\':
			if p.eof() {
				return nil, p.errf("unterminated string literal")
			}
			b.WriteRune(p.next())
		default:
			b.WriteRune(r)
		}
	}
}
