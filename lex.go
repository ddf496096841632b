package golet

import (
	"fmt"
	"unicode/utf8"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokIllegal
	tokInt
	tokFloat
	tokIdent
	tokLet
	tokFunc
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokComma
	tokSemi
	tokAssign
)

var keywords = map[string]tokenType{
	"let":  tokLet,
	"func": tokFunc,
}

var punct = map[byte]tokenType{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
	'{': tokLBrace,
	'}': tokRBrace,
	',': tokComma,
	';': tokSemi,
	'=': tokAssign,
}

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of input"
	case tokInt, tokFloat:
		return "number"
	case tokIdent:
		return "identifier"
	case tokLet:
		return "'let'"
	case tokFunc:
		return "'func'"
	case tokIllegal:
		return "illegal character"
	}
	for c, tt := range punct {
		if tt == t {
			return fmt.Sprintf("'%c'", c)
		}
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type token struct {
	typ       tokenType
	text      string
	pos, end  int
	line, col int
}

func (t token) describe() string {
	switch t.typ {
	case tokEOF:
		return "end of input"
	case tokIllegal:
		return fmt.Sprintf("character %q", t.text)
	}
	return fmt.Sprintf("'%s'", t.text)
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func isLetter(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (l *lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.src[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else if l.src[l.pos]&0xC0 != 0x80 {
			l.col++
		}
		l.pos++
	}
}

func (l *lexer) skipWhite() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			l.advance(1)
		default:
			return
		}
	}
}

func (l *lexer) next() token {
	l.skipWhite()
	tok := token{pos: l.pos, line: l.line, col: l.col}
	if l.pos >= len(l.src) {
		tok.typ = tokEOF
		tok.end = l.pos
		return tok
	}

	c := l.src[l.pos]
	n := 1
	switch {
	case isDigit(c):
		tok.typ = tokInt
		for l.pos+n < len(l.src) && isDigit(l.src[l.pos+n]) {
			n++
		}
		if l.pos+n+1 < len(l.src) && l.src[l.pos+n] == '.' && isDigit(l.src[l.pos+n+1]) {
			tok.typ = tokFloat
			n += 2
			for l.pos+n < len(l.src) && isDigit(l.src[l.pos+n]) {
				n++
			}
		}
	case isLetter(c):
		for l.pos+n < len(l.src) && (isLetter(l.src[l.pos+n]) || isDigit(l.src[l.pos+n])) {
			n++
		}
		tok.typ = tokIdent
		if kw, ok := keywords[l.src[l.pos:l.pos+n]]; ok {
			tok.typ = kw
		}
	default:
		if tt, ok := punct[c]; ok {
			tok.typ = tt
		} else {
			_, n = utf8.DecodeRuneInString(l.src[l.pos:])
			tok.typ = tokIllegal
		}
	}
	tok.text = l.src[l.pos : l.pos+n]
	l.advance(n)
	tok.end = l.pos
	return tok
}

func tokenize(src string) []token {
	l := &lexer{src: src, line: 1, col: 1}
	var toks []token
	for {
		tok := l.next()
		toks = append(toks, tok)
		if tok.typ == tokEOF {
			return toks
		}
	}
}
