package lexer

import (
	"testing"

	"github.com/cwbudde/mascal/internal/token"
)

func TestNextTokenBasicOperators(t *testing.T) {
	input := `<- = != < > <= >= + - * / % ^ -> ; : , . ? ( ) { } [ ] << >>`

	tests := []token.Type{
		token.ASSIGN, token.EQ, token.NOT_EQ, token.LT, token.GT, token.LT_EQ, token.GT_EQ,
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT, token.CARET,
		token.ARROW, token.SEMICOLON, token.COLON, token.COMMA, token.DOT, token.QUESTION,
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.LBRACKET, token.RBRACKET,
		token.LDYNARR, token.RDYNARR, token.EOF,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, want)
		}
	}
}

func TestNextTokenKeywordCaseForms(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"If", token.IF},
		{"IF", token.IF},
		{"if", token.IF},
		{"While", token.WHILE},
		{"WHILE", token.WHILE},
		{"while", token.WHILE},
		{"Integer", token.INTEGER},
		{"INTEGER", token.INTEGER},
		{"integer", token.INTEGER},
		{"If", token.IF},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.want {
			t.Errorf("input %q: got %s, want %s", tt.input, tok.Type, tt.want)
		}
	}
}

func TestNextTokenMixedCaseIsIdentifier(t *testing.T) {
	l := New("Integer iNTEGER IfX")
	if tok := l.NextToken(); tok.Type != token.INTEGER {
		t.Fatalf("got %s, want INTEGER", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != token.IDENT {
		t.Fatalf("got %s, want IDENT for mixed-case collision", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != token.IDENT {
		t.Fatalf("got %s, want IDENT", tok.Type)
	}
}

func TestNextTokenNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   token.Type
		lit   string
	}{
		{"123", token.INT, "123"},
		{"123.45", token.FLOAT, "123.45"},
		{"123.", token.FLOAT, "123."},
		{".45", token.FLOAT, ".45"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.typ || tok.Literal != tt.lit {
			t.Errorf("input %q: got (%s,%q), want (%s,%q)", tt.input, tok.Type, tok.Literal, tt.typ, tt.lit)
		}
	}
}

func TestNextTokenDotDotIsTwoDots(t *testing.T) {
	l := New("1..2")
	if tok := l.NextToken(); tok.Type != token.INT || tok.Literal != "1" {
		t.Fatalf("got (%s,%q)", tok.Type, tok.Literal)
	}
	if tok := l.NextToken(); tok.Type != token.DOT {
		t.Fatalf("got %s, want DOT", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != token.DOT {
		t.Fatalf("got %s, want DOT", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != token.INT || tok.Literal != "2" {
		t.Fatalf("got (%s,%q)", tok.Type, tok.Literal)
	}
}

func TestNextTokenString(t *testing.T) {
	l := New(`"hello world"`)
	tok := l.NextToken()
	if tok.Type != token.STRING || tok.Literal != "hello world" {
		t.Fatalf("got (%s,%q)", tok.Type, tok.Literal)
	}
}

func TestNextTokenUnterminatedString(t *testing.T) {
	l := New(`"hello`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexer error, got %d", len(l.Errors()))
	}
}

func TestNextTokenLineComment(t *testing.T) {
	l := New("1 // this is a comment\n2")
	first := l.NextToken()
	if first.Type != token.INT || first.Literal != "1" {
		t.Fatalf("got (%s,%q)", first.Type, first.Literal)
	}
	second := l.NextToken()
	if second.Type != token.INT || second.Literal != "2" {
		t.Fatalf("got (%s,%q)", second.Type, second.Literal)
	}
	if second.Pos.Line != 1 {
		t.Fatalf("expected line 1 after comment+newline, got %d", second.Pos.Line)
	}
}

func TestNextTokenIdentifierAndDynamicArrayDelimiters(t *testing.T) {
	l := New("arr<<0>>")
	if tok := l.NextToken(); tok.Type != token.IDENT || tok.Literal != "arr" {
		t.Fatalf("got (%s,%q)", tok.Type, tok.Literal)
	}
	if tok := l.NextToken(); tok.Type != token.LDYNARR {
		t.Fatalf("got %s, want LDYNARR", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != token.INT || tok.Literal != "0" {
		t.Fatalf("got (%s,%q)", tok.Type, tok.Literal)
	}
	if tok := l.NextToken(); tok.Type != token.RDYNARR {
		t.Fatalf("got %s, want RDYNARR", tok.Type)
	}
}

func TestNextTokenIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexer error, got %d", len(l.Errors()))
	}
}
