package parser

import (
	"fmt"
	"unicode"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokIdent
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokEquals
	tokTerminator
)

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokNumber:
		return "number"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokEquals:
		return "'='"
	case tokTerminator:
		return "end of equation"
	}
	return "unknown token"
}

type token struct {
	typ  tokenType
	lit  string
	line int
}

func (t token) String() string {
	if t.lit != "" {
		return fmt.Sprintf("%s %q", t.typ, t.lit)
	}
	return t.typ.String()
}

// lexer scans plang source into tokens. Newlines and semicolons both
// terminate an equation; '#' starts a comment running to end of line.
type lexer struct {
	src  []rune
	pos  int
	line int
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src), line: 1}
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		switch {
		case r == '\n':
			l.pos++
			l.line++
			return token{typ: tokTerminator, line: l.line - 1}, nil
		case r == ';':
			l.pos++
			return token{typ: tokTerminator, line: l.line}, nil
		case r == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case unicode.IsSpace(r):
			l.pos++
		case r == '+':
			l.pos++
			return token{typ: tokPlus, line: l.line}, nil
		case r == '-':
			l.pos++
			return token{typ: tokMinus, line: l.line}, nil
		case r == '*':
			l.pos++
			return token{typ: tokStar, line: l.line}, nil
		case r == '=':
			l.pos++
			return token{typ: tokEquals, line: l.line}, nil
		case unicode.IsDigit(r):
			return l.scanNumber(), nil
		case r == '_' || unicode.IsLetter(r):
			return l.scanIdent(), nil
		default:
			return token{}, fmt.Errorf("line %d: unexpected character %q", l.line, r)
		}
	}
	return token{typ: tokEOF, line: l.line}, nil
}

func (l *lexer) scanNumber() token {
	start := l.pos
	for l.pos < len(l.src) && unicode.IsDigit(l.src[l.pos]) {
		l.pos++
	}
	return token{typ: tokNumber, lit: string(l.src[start:l.pos]), line: l.line}
}

func (l *lexer) scanIdent() token {
	start := l.pos
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.pos++
	}
	return token{typ: tokIdent, lit: string(l.src[start:l.pos]), line: l.line}
}
