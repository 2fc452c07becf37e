package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens := NewScanner("(){},.-+;*").ScanTokens()
	assert.Equal(t, []Kind{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
		MINUS, PLUS, SEMICOLON, STAR, EOF,
	}, kinds(tokens))
}

func TestScanTokens_MaximalMunch(t *testing.T) {
	tokens := NewScanner("== != <= >= = ! < >").ScanTokens()
	assert.Equal(t, []Kind{
		EQUAL_EQUAL, BANG_EQUAL, LESS_EQUAL, GREATER_EQUAL,
		EQUAL, BANG, LESS, GREATER, EOF,
	}, kinds(tokens))
}

func TestScanTokens_LineComment(t *testing.T) {
	s := NewScanner("1 // this is ignored\n2")
	tokens := s.ScanTokens()
	assert.Equal(t, []Kind{NUMBER, NUMBER, EOF}, kinds(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_Numbers(t *testing.T) {
	tokens := NewScanner("42 10.40 3.").ScanTokens()
	assert.Equal(t, 42.0, tokens[0].Literal)
	assert.Equal(t, 10.4, tokens[1].Literal)
	// trailing '.' with no following digit is not part of the number
	assert.Equal(t, 3.0, tokens[2].Literal)
	assert.Equal(t, DOT, tokens[3].Kind)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens := NewScanner(`"hello world"`).ScanTokens()
	assert.Equal(t, STRING, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	s := NewScanner(`"unterminated`)
	tokens := s.ScanTokens()
	assert.True(t, s.HasErrors())
	assert.Equal(t, []Kind{EOF}, kinds(tokens))
	assert.Contains(t, s.Errors[0], "Unterminated string.")
}

func TestScanTokens_Identifiers(t *testing.T) {
	tokens := NewScanner("foo _bar bar123 and or print nil").ScanTokens()
	assert.Equal(t, []Kind{
		IDENTIFIER, IDENTIFIER, IDENTIFIER, AND, OR, PRINT, NIL, EOF,
	}, kinds(tokens))
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	s := NewScanner("@")
	tokens := s.ScanTokens()
	assert.True(t, s.HasErrors())
	assert.Equal(t, "[line 1] Error: Unexpected character: @", s.Errors[0])
	assert.Equal(t, []Kind{EOF}, kinds(tokens))
}

func TestScanTokens_EveryTokenSequenceEndsInEOF(t *testing.T) {
	for _, src := range []string{"", "1 + 2", "var x = 1;", "@@@"} {
		tokens := NewScanner(src).ScanTokens()
		assert.Equal(t, EOF, tokens[len(tokens)-1].Kind)
		count := 0
		for _, tok := range tokens {
			if tok.Kind == EOF {
				count++
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestScanTokens_LineNumbersNonDecreasing(t *testing.T) {
	tokens := NewScanner("1\n2\n\n3").ScanTokens()
	prev := 0
	for _, tok := range tokens {
		assert.GreaterOrEqual(t, tok.Line, prev)
		prev = tok.Line
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: NUMBER, Lexeme: "42", Literal: 42.0, Line: 1}
	assert.Equal(t, "NUMBER 42 42.0", tok.String())

	tok = Token{Kind: STRING, Lexeme: "\"hi\"", Literal: "hi", Line: 1}
	assert.Equal(t, "STRING \"hi\" hi", tok.String())

	tok = Token{Kind: EOF, Lexeme: "", Line: 1}
	assert.Equal(t, "EOF  null", tok.String())
}
