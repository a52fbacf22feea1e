package lexer

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/diagnostics"
	"github.com/cwbudde/go-lox/internal/token"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Type
	}{
		{
			name:  "punctuators",
			input: "(){},.-+;*",
			want: []token.Type{
				token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
				token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
				token.EOF,
			},
		},
		{
			name:  "one or two character operators",
			input: "! != = == < <= > >=",
			want: []token.Type{
				token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
				token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
				token.EOF,
			},
		},
		{
			name:  "line comment is discarded",
			input: "var x = 1; // trailing comment\nvar y = 2;",
			want: []token.Type{
				token.VAR, token.IDENTIFIER, token.EQUAL, token.NUMBER, token.SEMICOLON,
				token.VAR, token.IDENTIFIER, token.EQUAL, token.NUMBER, token.SEMICOLON,
				token.EOF,
			},
		},
		{
			name:  "keywords",
			input: "and class else false for fun if nil or print return super this true var while",
			want: []token.Type{
				token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR, token.FUN,
				token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
				token.THIS, token.TRUE, token.VAR, token.WHILE, token.EOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := diagnostics.NewReport()
			tokens := New(tt.input, report).ScanTokens()

			if report.HadError() {
				t.Fatalf("unexpected scan error(s): %v", report.All())
			}
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.want), tokens)
			}
			for i, typ := range tt.want {
				if tokens[i].Type != typ {
					t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, typ)
				}
			}
		})
	}
}

func TestScanStringLiteral(t *testing.T) {
	report := diagnostics.NewReport()
	tokens := New(`"hello world"`, report).ScanTokens()

	if report.HadError() {
		t.Fatalf("unexpected scan error(s): %v", report.All())
	}
	if tokens[0].Type != token.STRING {
		t.Fatalf("got %s, want STRING", tokens[0].Type)
	}
	if tokens[0].Literal != "hello world" {
		t.Errorf("got %q, want %q", tokens[0].Literal, "hello world")
	}
}

func TestScanUnterminatedString(t *testing.T) {
	report := diagnostics.NewReport()
	New(`"unterminated`, report).ScanTokens()

	if !report.HadError() {
		t.Fatal("expected an unterminated-string error")
	}
}

func TestScanMultiLineStringUsesClosingLine(t *testing.T) {
	report := diagnostics.NewReport()
	tokens := New("\"line1\nline2\"", report).ScanTokens()

	if report.HadError() {
		t.Fatalf("unexpected scan error(s): %v", report.All())
	}
	if tokens[0].Line != 2 {
		t.Errorf("got line %d, want 2 (closing-quote line)", tokens[0].Line)
	}
}

func TestScanNumber(t *testing.T) {
	report := diagnostics.NewReport()
	tokens := New("123.45", report).ScanTokens()

	if tokens[0].Type != token.NUMBER {
		t.Fatalf("got %s, want NUMBER", tokens[0].Type)
	}
	if tokens[0].Literal != 123.45 {
		t.Errorf("got %v, want 123.45", tokens[0].Literal)
	}
}

func TestScanUnexpectedCharacterReportsAndContinues(t *testing.T) {
	report := diagnostics.NewReport()
	tokens := New("@ 1", report).ScanTokens()

	if !report.HadError() {
		t.Fatal("expected an unexpected-character error")
	}
	// Scanning continues past the bad character.
	var sawNumber bool
	for _, tok := range tokens {
		if tok.Type == token.NUMBER {
			sawNumber = true
		}
	}
	if !sawNumber {
		t.Error("expected scanning to continue after the unexpected character")
	}
}
