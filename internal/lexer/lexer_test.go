package lexer

import (
	"testing"

	"github.com/funvibe/proofcheck/internal/token"
)

func TestTokenizeIdentifiersAndPunctuation(t *testing.T) {
	toks, err := Tokenize(`id : Type := f x;`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	want := []token.TokenType{
		token.IDENT, token.COLON, token.IDENT, token.WALRUS,
		token.IDENT, token.IDENT, token.SEMI, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestTokenizeStripsWhitespaceAndComments(t *testing.T) {
	toks, err := Tokenize("a : Type; // trailing\n/* block */ b : Type;")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	for _, tok := range toks {
		if tok.Type == token.WHITESPACE || tok.Type == token.COMMENT {
			t.Fatalf("whitespace/comment token leaked into stream: %v", tok)
		}
	}
	if len(toks) != 9 { // a : Type ; b : Type ; EOF
		t.Fatalf("got %d tokens, want 9: %v", len(toks), toks)
	}
}

func TestTokenizeArrowVsColonVsWalrus(t *testing.T) {
	toks, err := Tokenize("-> := :")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	want := []token.TokenType{token.ARROW, token.WALRUS, token.COLON, token.EOF}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestTokenizeIllegalByte(t *testing.T) {
	_, err := Tokenize("a : Type $ ;")
	if err == nil {
		t.Fatal("expected a lexer error on '$'")
	}
}

func TestTokenizeUnterminatedBlockComment(t *testing.T) {
	toks, err := Tokenize("a : Type /* unterminated")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("expected clean EOF after unterminated comment, got %v", toks)
	}
}

func TestTokenLinesAndColumns(t *testing.T) {
	toks, err := Tokenize("a :\nType;")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	// "Type" starts on line 2.
	for _, tok := range toks {
		if tok.Lexeme == "Type" {
			if tok.Line != 2 {
				t.Errorf("Type token line = %d, want 2", tok.Line)
			}
			return
		}
	}
	t.Fatal("Type token not found")
}
