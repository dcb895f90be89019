package dsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ludock-sim/ludock/pkg/scene"
)

// ParseError reports a DSL parse failure at a byte offset into the
// source text. The loader logs ParseErrors and keeps whatever properties
// were parsed before the failure; it never aborts the whole project load.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dsl: parse error at offset %d: %s", e.Offset, e.Message)
}

// Parse parses input as a sequence of Identifier = Value assignments.
// Later assignments override earlier assignments of the same key. On a
// parse failure, Parse returns both the properties successfully parsed
// up to that point and a *ParseError — callers that want "abort on any
// error" semantics can check the returned error; the loader does not.
func Parse(input string) (scene.Properties, error) {
	p := &parser{src: input}
	props := make(scene.Properties)

	for {
		p.skipWS()
		if p.atEOF() {
			return props, nil
		}
		key, val, err := p.parseAssignment()
		if err != nil {
			return props, err
		}
		props[key] = val
	}
}

type parser struct {
	src string
	pos int
}

func (p *parser) atEOF() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.atEOF() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipWS() {
	for !p.atEOF() {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Offset: p.pos, Message: fmt.Sprintf(format, args...)}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (p *parser) parseIdentifier() (string, error) {
	if p.atEOF() || !isIdentStart(p.peek()) {
		return "", p.errorf("expected identifier")
	}
	start := p.pos
	p.pos++
	for !p.atEOF() && isIdentChar(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func (p *parser) expectByte(c byte) error {
	if p.atEOF() || p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *parser) tryConsume(tag string) bool {
	if strings.HasPrefix(p.src[p.pos:], tag) {
		p.pos += len(tag)
		return true
	}
	return false
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	if !p.atEOF() && p.peek() == '-' {
		p.pos++
	}
	digitsStart := p.pos
	for !p.atEOF() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	if p.pos == digitsStart {
		p.pos = start
		return 0, p.errorf("expected number")
	}
	if !p.atEOF() && p.peek() == '.' {
		fracPos := p.pos
		p.pos++
		fracStart := p.pos
		for !p.atEOF() && p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
		}
		if p.pos == fracStart {
			// Not a fractional part after all (e.g. trailing dot); rewind.
			p.pos = fracPos
		}
	}
	text := p.src[start:p.pos]
	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.pos = start
		return 0, p.errorf("invalid number %q", text)
	}
	return val, nil
}

func (p *parser) parseString() (string, error) {
	if p.atEOF() || p.peek() != '"' {
		return "", p.errorf("expected string")
	}
	p.pos++
	start := p.pos
	for !p.atEOF() && p.peek() != '"' {
		p.pos++
	}
	if p.atEOF() {
		return "", p.errorf("unterminated string")
	}
	text := p.src[start:p.pos]
	p.pos++ // closing quote
	return text, nil
}

// parseParenFloats parses "(" num ("," num)* ")" with whitespace tolerance
// around each token, returning exactly n floats.
func (p *parser) parseParenFloats(n int) ([]float64, error) {
	p.skipWS()
	if err := p.expectByte('('); err != nil {
		return nil, err
	}
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		p.skipWS()
		v, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		p.skipWS()
		if i < n-1 {
			if err := p.expectByte(','); err != nil {
				return nil, err
			}
		}
	}
	p.skipWS()
	if err := p.expectByte(')'); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *parser) parseValue() (scene.PropertyValue, error) {
	start := p.pos

	if p.tryConsume("true") {
		return scene.BoolValue(true), nil
	}
	if p.tryConsume("false") {
		return scene.BoolValue(false), nil
	}

	if p.tryConsume("Vector3.new") {
		f, err := p.parseParenFloats(3)
		if err != nil {
			return nil, err
		}
		return scene.Vector3Value{X: float32(f[0]), Y: float32(f[1]), Z: float32(f[2])}, nil
	}

	if p.tryConsume("CFrame.new") {
		f, err := p.parseParenFloats(3)
		if err != nil {
			return nil, err
		}
		return scene.NewCFrameFromPosition(float32(f[0]), float32(f[1]), float32(f[2])), nil
	}

	if p.tryConsume("Color3.fromRGB") {
		f, err := p.parseParenFloats(3)
		if err != nil {
			return nil, err
		}
		return scene.Color3FromRGB(float32(f[0]), float32(f[1]), float32(f[2])), nil
	}

	if p.tryConsume("Color3.new") {
		f, err := p.parseParenFloats(3)
		if err != nil {
			return nil, err
		}
		return scene.Color3Value{R: float32(f[0]), G: float32(f[1]), B: float32(f[2])}, nil
	}

	if p.tryConsume("UDim2.new") {
		f, err := p.parseParenFloats(4)
		if err != nil {
			return nil, err
		}
		return scene.UDim2Value{
			XScale:  float32(f[0]),
			XOffset: int32(f[1]),
			YScale:  float32(f[2]),
			YOffset: int32(f[3]),
		}, nil
	}

	if p.tryConsume("Enum.") {
		enumType, err := p.parseIdentifier()
		if err != nil {
			p.pos = start
			return p.parseFallback()
		}
		if err := p.expectByte('.'); err != nil {
			p.pos = start
			return p.parseFallback()
		}
		enumItem, err := p.parseIdentifier()
		if err != nil {
			p.pos = start
			return p.parseFallback()
		}
		return scene.EnumValue(fmt.Sprintf("Enum.%s.%s", enumType, enumItem)), nil
	}

	return p.parseFallback()
}

// parseFallback handles number, string, and bare-identifier-as-string —
// the last three alternatives of the value grammar.
func (p *parser) parseFallback() (scene.PropertyValue, error) {
	if !p.atEOF() && (p.peek() == '-' || (p.peek() >= '0' && p.peek() <= '9')) {
		n, err := p.parseNumber()
		if err == nil {
			return scene.NumberValue(n), nil
		}
	}
	if !p.atEOF() && p.peek() == '"' {
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return scene.StringValue(s), nil
	}
	ident, err := p.parseIdentifier()
	if err != nil {
		return nil, p.errorf("expected a value")
	}
	return scene.StringValue(ident), nil
}

func (p *parser) parseAssignment() (string, scene.PropertyValue, error) {
	p.skipWS()
	key, err := p.parseIdentifier()
	if err != nil {
		return "", nil, err
	}
	p.skipWS()
	if err := p.expectByte('='); err != nil {
		return "", nil, err
	}
	p.skipWS()
	val, err := p.parseValue()
	if err != nil {
		return "", nil, err
	}
	return key, val, nil
}
