package golet

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

var (
	exprStart    = []string{"number", "identifier", "'('", "'-'"}
	programStart = append([]string{"'let'", "'func'"}, exprStart...)
	operators    = []string{"'+'", "'-'", "'*'", "'/'"}
)

// Parser turns source text into a Node. Syntax errors do not stop the
// parser: it skips to the end of the enclosing group or declaration and
// keeps going, so one call reports every independent defect.
type Parser struct {
	toks []token
	pos  int
	errs *multierror.Error
}

func NewParser(src string) *Parser {
	return &Parser{
		toks: tokenize(src),
	}
}

// Parse parses a whole program. On failure the returned error holds one
// *ParseError per defect, in source order.
func Parse(src string) (Node, error) {
	return NewParser(src).Parse()
}

func (p *Parser) Parse() (Node, error) {
	var node Node
	if p.peek().typ == tokEOF {
		p.unexpected(p.peek(), programStart...)
	} else {
		node = p.parseChain()
	}
	if err := p.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) peek() token {
	return p.toks[p.pos]
}

func (p *Parser) next() token {
	tok := p.toks[p.pos]
	if tok.typ != tokEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) addError(err *ParseError) {
	if p.errs == nil {
		p.errs = &multierror.Error{ErrorFormat: formatParseErrors}
	}
	p.errs = multierror.Append(p.errs, err)
}

func (p *Parser) unexpected(tok token, expected ...string) {
	p.addError(&ParseError{
		Pos:      tok.pos,
		End:      tok.end,
		Line:     tok.line,
		Col:      tok.col,
		Found:    tok.describe(),
		Expected: expected,
	})
}

func (p *Parser) errorf(tok token, format string, args ...interface{}) {
	p.addError(&ParseError{
		Pos:   tok.pos,
		End:   tok.end,
		Line:  tok.line,
		Col:   tok.col,
		Found: tok.describe(),
		Msg:   fmt.Sprintf(format, args...),
	})
}

func (p *Parser) expect(tt tokenType) (token, bool) {
	tok := p.peek()
	if tok.typ != tt {
		p.unexpected(tok, tt.String())
		return tok, false
	}
	return p.next(), true
}

// expectName expects an identifier. A keyword in its place is reported and
// skipped so that recovery does not mistake it for the next declaration.
func (p *Parser) expectName() (token, bool) {
	tok, ok := p.expect(tokIdent)
	if !ok && (tok.typ == tokLet || tok.typ == tokFunc) {
		p.next()
	}
	return tok, ok
}

// skipPast skips tokens up to and including the close token that ends the
// current group. It gives up at end of input or on a closer of the wrong
// kind.
func (p *Parser) skipPast(close tokenType) bool {
	depth := 0
	for {
		tok := p.peek()
		switch tok.typ {
		case tokEOF:
			return false
		case tokLParen, tokLBrace:
			depth++
		case tokRParen, tokRBrace:
			if depth == 0 {
				if tok.typ != close {
					return false
				}
				p.next()
				return true
			}
			depth--
		}
		p.next()
	}
}

// syncDecl skips the rest of a broken declaration: through the next ';'
// outside any group, or up to the next declaration keyword.
func (p *Parser) syncDecl() {
	depth := 0
	for {
		tok := p.peek()
		switch tok.typ {
		case tokEOF:
			return
		case tokLParen, tokLBrace:
			depth++
		case tokRParen, tokRBrace:
			if depth > 0 {
				depth--
			}
		case tokLet, tokFunc:
			if depth == 0 {
				return
			}
		case tokSemi:
			if depth == 0 {
				p.next()
				return
			}
		}
		p.next()
	}
}

// syncFunc skips the rest of a function declaration whose header is
// broken, including its brace-delimited body.
func (p *Parser) syncFunc() {
	for {
		switch p.peek().typ {
		case tokEOF, tokLet, tokFunc:
			return
		case tokLBrace:
			p.next()
			p.skipPast(tokRBrace)
			return
		}
		p.next()
	}
}

func (p *Parser) parseChain() Node {
	switch p.peek().typ {
	case tokLet:
		return p.parseLet()
	case tokFunc:
		return p.parseFunc()
	}
	x := p.parseExpr()
	if x == nil {
		return nil
	}
	if tok := p.peek(); tok.typ != tokEOF {
		p.unexpected(tok, append(operators, "end of input")...)
		return nil
	}
	return x
}

// parseThen parses whatever follows a declaration, which may be nothing.
func (p *Parser) parseThen() Node {
	if p.peek().typ == tokEOF {
		return nil
	}
	return p.parseChain()
}

func (p *Parser) parseLet() Node {
	p.next() // let
	name, ok := p.expectName()
	var value Node
	if ok {
		_, ok = p.expect(tokAssign)
	}
	if ok {
		value = p.parseExpr()
		ok = value != nil
	}
	if ok {
		if tok := p.peek(); tok.typ != tokSemi {
			p.unexpected(tok, append(operators, "';'")...)
			ok = false
		} else {
			p.next()
		}
	}
	if !ok {
		p.syncDecl()
		return p.parseThen()
	}
	return &Let{
		Name:  name.text,
		Value: value,
		Then:  p.parseThen(),
	}
}

func (p *Parser) parseFunc() Node {
	p.next() // func
	name, ok := p.expectName()
	var params []string
	if ok {
		params, ok = p.parseParams()
	}
	if ok {
		_, ok = p.expect(tokLBrace)
	}
	if !ok {
		p.syncFunc()
		return p.parseThen()
	}
	body := p.parseGroup(tokRBrace)
	if body == nil {
		p.syncDecl()
		return p.parseThen()
	}
	return &FuncDef{
		Name:   name.text,
		Params: params,
		Body:   body,
		Then:   p.parseThen(),
	}
}

func (p *Parser) parseParams() ([]string, bool) {
	if _, ok := p.expect(tokLParen); !ok {
		return nil, false
	}
	params := []string{}
	if p.peek().typ == tokRParen {
		p.next()
		return params, true
	}
	for {
		name, ok := p.expectName()
		if !ok {
			return nil, false
		}
		params = append(params, name.text)
		switch tok := p.peek(); tok.typ {
		case tokComma:
			p.next()
		case tokRParen:
			p.next()
			return params, true
		default:
			p.unexpected(tok, "','", "')'")
			return nil, false
		}
	}
}

// parseGroup parses an expression followed by close, the opening delimiter
// having been consumed. A defect inside the group is reported and the
// group is replaced by a BadExpr so that parsing resumes after it.
func (p *Parser) parseGroup(close tokenType) Node {
	start := p.peek().pos
	x := p.parseExpr()
	if x != nil {
		tok := p.peek()
		if tok.typ == close {
			p.next()
			return x
		}
		p.unexpected(tok, append(operators, close.String())...)
	}
	if !p.skipPast(close) {
		return nil
	}
	return &BadExpr{Pos: start, End: p.toks[p.pos-1].end}
}

func (p *Parser) parseExpr() Node {
	return p.parseSum()
}

func (p *Parser) parseSum() Node {
	x := p.parseProduct()
	if x == nil {
		return nil
	}
	for {
		var op Op
		switch p.peek().typ {
		case tokPlus:
			op = OpAdd
		case tokMinus:
			op = OpSub
		default:
			return x
		}
		p.next()
		y := p.parseProduct()
		if y == nil {
			return nil
		}
		x = &Binary{Op: op, Left: x, Right: y}
	}
}

func (p *Parser) parseProduct() Node {
	x := p.parseUnary()
	if x == nil {
		return nil
	}
	for {
		var op Op
		switch p.peek().typ {
		case tokStar:
			op = OpMul
		case tokSlash:
			op = OpDiv
		default:
			return x
		}
		p.next()
		y := p.parseUnary()
		if y == nil {
			return nil
		}
		x = &Binary{Op: op, Left: x, Right: y}
	}
}

func (p *Parser) parseUnary() Node {
	n := 0
	for p.peek().typ == tokMinus {
		p.next()
		n++
	}
	x := p.parseAtom()
	if x == nil {
		return nil
	}
	for ; n > 0; n-- {
		x = &Negate{X: x}
	}
	return x
}

func (p *Parser) parseAtom() Node {
	tok := p.peek()
	switch tok.typ {
	case tokInt:
		p.next()
		i, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			p.errorf(tok, "integer literal %s is out of range", tok.text)
			return &BadExpr{Pos: tok.pos, End: tok.end}
		}
		return &Number{Value: IntValue(i)}
	case tokFloat:
		p.next()
		// Out of range literals become ±Inf.
		f, _ := strconv.ParseFloat(tok.text, 64)
		return &Number{Value: FloatValue(f)}
	case tokLParen:
		p.next()
		return p.parseGroup(tokRParen)
	case tokIdent:
		p.next()
		if p.peek().typ == tokLParen {
			p.next()
			return p.parseCall(tok)
		}
		return &Ident{Name: tok.text}
	}
	p.unexpected(tok, exprStart...)
	return nil
}

func (p *Parser) parseCall(name token) Node {
	start := name.pos
	args := []Node{}
	if p.peek().typ == tokRParen {
		p.next()
		return &Call{Name: name.text, Args: args}
	}
	for {
		arg := p.parseExpr()
		if arg == nil {
			break
		}
		args = append(args, arg)
		tok := p.peek()
		if tok.typ == tokComma {
			p.next()
			continue
		}
		if tok.typ == tokRParen {
			p.next()
			return &Call{Name: name.text, Args: args}
		}
		p.unexpected(tok, append(operators, "','", "')'")...)
		break
	}
	if !p.skipPast(tokRParen) {
		return nil
	}
	return &BadExpr{Pos: start, End: p.toks[p.pos-1].end}
}
