// Package parser turns a filtered token stream into the surface AST.
package parser

import (
	"github.com/funvibe/proofcheck/internal/ast"
	"github.com/funvibe/proofcheck/internal/diagnostics"
	"github.com/funvibe/proofcheck/internal/token"
)

// Parser holds a simple two-token lookahead over a pre-filtered slice
// of tokens (whitespace and comments already dropped by the lexer).
type Parser struct {
	toks []token.Token
	pos  int

	cur  token.Token
	peek token.Token
}

func New(toks []token.Token) *Parser {
	p := &Parser{toks: toks}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	if p.pos < len(p.toks) {
		p.peek = p.toks[p.pos]
		p.pos++
	} else {
		p.peek = token.Token{Type: token.EOF}
	}
}

func (p *Parser) expect(tt token.TokenType) (token.Token, *diagnostics.Error) {
	if p.cur.Type != tt {
		if p.cur.Type == token.EOF {
			return token.Token{}, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP002, p.cur, string(tt))
		}
		return token.Token{}, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP001, p.cur, string(tt), p.cur.Lexeme)
	}
	tok := p.cur
	p.next()
	return tok, nil
}

// ParseProgram parses `;`-terminated declarations until EOF.
func ParseProgram(toks []token.Token) ([]*ast.Declaration, *diagnostics.Error) {
	p := New(toks)
	var decls []*ast.Declaration
	for p.cur.Type != token.EOF {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// parseDeclaration parses `ident : expr ( := expr )? ;`.
func (p *Parser) parseDeclaration() (*ast.Declaration, *diagnostics.Error) {
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	ty, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var def ast.Expr
	if p.cur.Type == token.WALRUS {
		p.next()
		def, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Declaration{Token: nameTok, Name: nameTok.Lexeme, Ty: ty, Def: def}, nil
}

// parseAtom parses `ident`, `(ident : expr)`, or `(expr)`. The
// annotated-binding form is chosen only when the tokens immediately
// after `(` are ident then `:`.
func (p *Parser) parseAtom() (ast.Expr, *diagnostics.Error) {
	switch p.cur.Type {
	case token.IDENT:
		tok := p.cur
		p.next()
		return &ast.Ident{Token: tok, Name: tok.Lexeme}, nil
	case token.LPAREN:
		lparen := p.cur
		if p.peek.Type == token.IDENT {
			// Lookahead two past '(' to see if a ':' follows the ident,
			// which would make this an annotated binding rather than a
			// parenthesised identifier expression.
			if p.pos < len(p.toks) && p.toks[p.pos].Type == token.COLON {
				p.next() // consume '('
				nameTok := p.cur
				p.next() // consume ident
				p.next() // consume ':'
				ty, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.RPAREN); err != nil {
					return nil, err
				}
				return &ast.Binding{Token: lparen, Name: nameTok.Lexeme, Ty: ty}, nil
			}
		}
		p.next() // consume '('
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP003, p.cur, p.cur.Lexeme)
	}
}

// parseExpr folds an atom sequence into an application spine, then
// consume either another atom (continuing an application spine) or
// '=>'/'->' followed by an atom (starting a lambda/pi whose body is the
// rest of the expression). Applications are left-associative and bind
// tighter than lambda/pi, which are right-associative, so we first fold
// every consecutive atom into one application, then wrap it in any
// trailing lambda/pi markers from the outside in (right to left).
func (p *Parser) parseExpr() (ast.Expr, *diagnostics.Error) {
	spine, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == token.IDENT || p.cur.Type == token.LPAREN {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		spine = &ast.App{Token: spine.GetToken(), Fun: spine, Arg: arg}
	}

	switch p.cur.Type {
	case token.IMPLY:
		tok := p.cur
		p.next()
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Lambda{Token: tok, Head: spine, Body: body}, nil
	case token.ARROW:
		tok := p.cur
		p.next()
		tail, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Pi{Token: tok, Head: spine, Tail: tail}, nil
	}
	return spine, nil
}
