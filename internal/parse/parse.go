// Package parse turns arithmetic source text into differentiable expression
// trees.
//
// The grammar is the usual infix calculator language: + - * / with standard
// precedence, right-associative ^ for powers, parentheses, unary minus,
// decimal literals, named variables and single-argument function calls for
// the elementary-function set (sin, cos, exp, log, ...). Variables are
// created on demand and returned to the caller for value assignment.
package parse

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/crest-ml/crest/internal/ad"
)

// functions maps call names to unary node constructors.
var functions = map[string]func(ad.Expression) ad.Expression{
	"sin":   ad.Sin,
	"cos":   ad.Cos,
	"tan":   ad.Tan,
	"asin":  ad.ASin,
	"acos":  ad.ACos,
	"atan":  ad.ATan,
	"sinh":  ad.Sinh,
	"cosh":  ad.Cosh,
	"tanh":  ad.Tanh,
	"exp":   ad.Exp,
	"log":   ad.Log,
	"log10": ad.Log10,
	"sqrt":  ad.Sqrt,
	"abs":   ad.Fabs,
	"floor": ad.Floor,
	"ceil":  ad.Ceil,
}

// Expression parses src into an expression tree. Named variables are looked
// up in vars; names not yet present are created with value 0 and added to
// the map, so the caller can assign values and query identifiers afterward.
func Expression(src string, vars map[string]*ad.Variable) (ad.Expression, error) {
	if vars == nil {
		vars = make(map[string]*ad.Variable)
	}
	p := &parser{src: src, vars: vars}
	expr, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, errors.Errorf("parse %q: unexpected %q at offset %d", src, p.rest(), p.pos)
	}
	return expr, nil
}

type parser struct {
	src  string
	pos  int
	vars map[string]*ad.Variable
}

func (p *parser) rest() string {
	r := p.src[p.pos:]
	if len(r) > 12 {
		r = r[:12] + "..."
	}
	return r
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the next non-space byte without consuming it, or 0 at the end
// of input.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// parseSum handles the lowest precedence level: term (('+'|'-') term)*.
func (p *parser) parseSum() (ad.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = ad.Add(left, right)
		case '-':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = ad.Sub(left, right)
		default:
			return left, nil
		}
	}
}

// parseTerm handles factor (('*'|'/') factor)*.
func (p *parser) parseTerm() (ad.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = ad.Mul(left, right)
		case '/':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = ad.Div(left, right)
		default:
			return left, nil
		}
	}
}

// parseUnary binds unary minus looser than '^', so -x^2 reads as -(x^2).
func (p *parser) parseUnary() (ad.Expression, error) {
	if p.peek() == '-' {
		p.pos++
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ad.Neg(e), nil
	}
	return p.parsePower()
}

// parsePower handles right-associative '^'. A literal exponent folds into
// the constant-exponent power node, which differentiates cleanly for
// negative bases.
func (p *parser) parsePower() (ad.Expression, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	p.skipSpace()

	start := p.pos
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if k, ok := literalValue(strings.TrimSpace(p.src[start:p.pos])); ok {
		return ad.PowScalar(base, k), nil
	}
	return ad.Pow(base, exponent), nil
}

func literalValue(s string) (float64, bool) {
	k, err := strconv.ParseFloat(s, 64)
	return k, err == nil
}

func (p *parser) parsePrimary() (ad.Expression, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		e, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, errors.Errorf("missing ')' at offset %d", p.pos)
		}
		p.pos++
		return e, nil

	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()

	case isIdentStart(rune(c)):
		return p.parseIdent()

	case c == 0:
		return nil, errors.New("unexpected end of expression")

	default:
		return nil, errors.Errorf("unexpected %q at offset %d", p.rest(), p.pos)
	}
}

func (p *parser) parseNumber() (ad.Expression, error) {
	start := p.pos
	for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || p.src[p.pos] == '.' ||
		p.src[p.pos] == 'e' || p.src[p.pos] == 'E' ||
		((p.src[p.pos] == '+' || p.src[p.pos] == '-') && p.pos > start &&
			(p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E'))) {
		p.pos++
	}
	text := p.src[start:p.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "bad number %q at offset %d", text, start)
	}
	return ad.Constant(v), nil
}

func (p *parser) parseIdent() (ad.Expression, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(rune(p.src[p.pos])) {
		p.pos++
	}
	name := p.src[start:p.pos]

	if p.peek() == '(' {
		fn, ok := functions[name]
		if !ok {
			return nil, errors.Errorf("unknown function %q at offset %d", name, start)
		}
		p.pos++
		arg, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, errors.Errorf("missing ')' after %s(... at offset %d", name, p.pos)
		}
		p.pos++
		return fn(arg), nil
	}

	if name == "pi" {
		return ad.Constant(math.Pi), nil
	}
	if name == "e" {
		return ad.Constant(math.E), nil
	}

	v, ok := p.vars[name]
	if !ok {
		v = ad.NewVariable(0)
		v.SetName(name)
		p.vars[name] = v
	}
	return v, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
