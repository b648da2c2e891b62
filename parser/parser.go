// Package parser turns plang source text into an ordered equation
// list. An equation is a signed sum of at most-quadratic terms on the
// left and a single output variable on the right:
//
//	a + b = c
//	4x*y - 2x = z
//
// The parser checks syntax only; the structural limits of the gate
// shape (term counts, distinct input variables) are enforced by the
// compiler so that every violation is reported with its equation
// position.
package parser

import (
	"fmt"
	"strconv"
)

// Term is the surface form of one signed product on an equation's
// left-hand side.
type Term struct {
	Minus bool
	// Coeff is 1 when the source omits a coefficient.
	Coeff uint64
	// Vars holds one variable name for a linear term, two for a
	// quadratic one.
	Vars []string
}

// Equation is one constraint row in source form.
type Equation struct {
	Terms []Term
	// Out is the right-hand variable: the gate output and its
	// public-input slot.
	Out string
	// Line is the source line the equation starts on.
	Line int
}

type parser struct {
	lex *lexer
	tok token
}

// Parse scans and parses a full plang source text.
func Parse(src string) ([]Equation, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	eqs := []Equation{}
	for {
		for p.tok.typ == tokTerminator {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if p.tok.typ == tokEOF {
			return eqs, nil
		}
		eq, err := p.parseEquation()
		if err != nil {
			return nil, err
		}
		eqs = append(eqs, eq)
	}
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) errorf(format string, a ...interface{}) error {
	return fmt.Errorf("line %d: %s", p.tok.line, fmt.Sprintf(format, a...))
}

func (p *parser) parseEquation() (Equation, error) {
	eq := Equation{Line: p.tok.line}

	// The first term may omit its sign; every following term carries
	// one, since the sign doubles as the term separator.
	minus := false
	if p.tok.typ == tokPlus || p.tok.typ == tokMinus {
		minus = p.tok.typ == tokMinus
		if err := p.advance(); err != nil {
			return Equation{}, err
		}
	}
	for {
		term, err := p.parseTerm(minus)
		if err != nil {
			return Equation{}, err
		}
		eq.Terms = append(eq.Terms, term)

		switch p.tok.typ {
		case tokPlus, tokMinus:
			minus = p.tok.typ == tokMinus
			if err := p.advance(); err != nil {
				return Equation{}, err
			}
		case tokEquals:
			if err := p.advance(); err != nil {
				return Equation{}, err
			}
			return p.parseRHS(eq)
		default:
			return Equation{}, p.errorf("expected '+', '-' or '=', got %s", p.tok)
		}
	}
}

func (p *parser) parseTerm(minus bool) (Term, error) {
	term := Term{Minus: minus, Coeff: 1}

	if p.tok.typ == tokNumber {
		coeff, err := strconv.ParseUint(p.tok.lit, 10, 64)
		if err != nil {
			return Term{}, p.errorf("invalid coefficient %q", p.tok.lit)
		}
		term.Coeff = coeff
		if err := p.advance(); err != nil {
			return Term{}, err
		}
		// An explicit '*' between coefficient and variable is allowed.
		if p.tok.typ == tokStar {
			if err := p.advance(); err != nil {
				return Term{}, err
			}
		}
	}

	if p.tok.typ != tokIdent {
		return Term{}, p.errorf("expected variable, got %s", p.tok)
	}
	term.Vars = append(term.Vars, p.tok.lit)
	if err := p.advance(); err != nil {
		return Term{}, err
	}

	if p.tok.typ == tokStar {
		if err := p.advance(); err != nil {
			return Term{}, err
		}
		if p.tok.typ != tokIdent {
			return Term{}, p.errorf("expected variable after '*', got %s", p.tok)
		}
		term.Vars = append(term.Vars, p.tok.lit)
		if err := p.advance(); err != nil {
			return Term{}, err
		}
		if p.tok.typ == tokStar {
			return Term{}, p.errorf("a term multiplies at most two variables")
		}
	}

	return term, nil
}

func (p *parser) parseRHS(eq Equation) (Equation, error) {
	if p.tok.typ != tokIdent {
		return Equation{}, p.errorf("right-hand side must be a single variable, got %s", p.tok)
	}
	eq.Out = p.tok.lit
	if err := p.advance(); err != nil {
		return Equation{}, err
	}
	if p.tok.typ != tokTerminator && p.tok.typ != tokEOF {
		return Equation{}, p.errorf("right-hand side must be a single variable, got %s", p.tok)
	}
	return eq, nil
}
