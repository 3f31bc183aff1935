package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanTypes(t *testing.T, input string) []TokenType {
	t.Helper()
	tokens, err := NewScanner(input).Tokenize()
	require.NoError(t, err)

	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestSingleDigit(t *testing.T) {
	input := `int main() {
                return 3;
            }`
	expected := []Token{
		{Type: INT, Lexeme: "int"},
		{Type: IDENTIFIER, Lexeme: "main"},
		{Type: LEFT_PAREN, Lexeme: "("},
		{Type: RIGHT_PAREN, Lexeme: ")"},
		{Type: LEFT_BRACE, Lexeme: "{"},
		{Type: RETURN, Lexeme: "return"},
		{Type: NUMBER, Lexeme: "3"},
		{Type: SEMICOLON, Lexeme: ";"},
		{Type: RIGHT_BRACE, Lexeme: "}"},
		{Type: EOF},
	}

	scanner := NewScanner(input)
	for i, exp := range expected {
		tok, err := scanner.NextToken()
		require.NoError(t, err)
		assert.True(t, exp.Equal(tok), "token %d: expected %s, got %s", i, exp, tok)
		assert.Equal(t, exp.Lexeme, tok.Lexeme, "token %d", i)
	}
}

func TestMultipleDigits(t *testing.T) {
	tokens, err := NewScanner("int main() {\n return 135675424;\n}").Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 10)

	assert.Equal(t, NUMBER, tokens[6].Type)
	assert.Equal(t, "135675424", tokens[6].Payload())
}

func TestRelationalOperatorsAndConditionals(t *testing.T) {
	input := "<= > = >= < if else"
	expected := []TokenType{LESS_EQUAL, GREATER, EQUAL, GREATER_EQUAL, LESS, IF, ELSE, EOF}

	assert.Equal(t, expected, scanTypes(t, input))
}

func TestOperatorsWithoutSpaces(t *testing.T) {
	// longest match, so ">=" is never split back into '>' and '='
	tokens, err := NewScanner("<=<>=>= > =").Tokenize()
	require.NoError(t, err)

	expectedLexemes := []string{"<=", "<", ">=", ">=", ">", "=", ""}
	expectedTypes := []TokenType{LESS_EQUAL, LESS, GREATER_EQUAL, GREATER_EQUAL, GREATER, EQUAL, EOF}
	require.Len(t, tokens, len(expectedTypes))
	for i := range tokens {
		assert.Equal(t, expectedTypes[i], tokens[i].Type, "token %d", i)
		assert.Equal(t, expectedLexemes[i], tokens[i].Lexeme, "token %d", i)
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	tokens, err := NewScanner("int Int RETURN Return return If else ELSE").Tokenize()
	require.NoError(t, err)

	expected := []TokenType{INT, IDENTIFIER, IDENTIFIER, IDENTIFIER, RETURN, IDENTIFIER, ELSE, IDENTIFIER, EOF}
	for i, exp := range expected {
		assert.Equal(t, exp, tokens[i].Type, "token %d (%q)", i, tokens[i].Lexeme)
	}
	assert.Equal(t, "RETURN", tokens[2].Payload())
}

func TestKeywordIdentifierBoundary(t *testing.T) {
	input := "integer returned _if else2 int_ main_1"
	tokens, err := NewScanner(input).Tokenize()
	require.NoError(t, err)

	expectedLexemes := []string{"integer", "returned", "_if", "else2", "int_", "main_1"}
	for i, lexeme := range expectedLexemes {
		assert.Equal(t, IDENTIFIER, tokens[i].Type, "token %d", i)
		assert.Equal(t, lexeme, tokens[i].Lexeme, "token %d", i)
	}
}

func TestDigitsThenLetters(t *testing.T) {
	tokens, err := NewScanner("123abc").Tokenize()
	require.NoError(t, err)

	require.Len(t, tokens, 3)
	assert.True(t, Token{Type: NUMBER, Lexeme: "123"}.Equal(tokens[0]))
	assert.True(t, Token{Type: IDENTIFIER, Lexeme: "abc"}.Equal(tokens[1]))
}

func TestLiteralTextIsNotConverted(t *testing.T) {
	tokens, err := NewScanner("007 99999999999999999999999").Tokenize()
	require.NoError(t, err)

	assert.Equal(t, "007", tokens[0].Payload())
	assert.Equal(t, "99999999999999999999999", tokens[1].Payload())
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\r\f "} {
		tokens, err := NewScanner(input).Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 1, "input %q", input)
		assert.Equal(t, EOF, tokens[0].Type)
	}
}

func TestEOFIsSticky(t *testing.T) {
	scanner := NewScanner("x")

	tok, err := scanner.NextToken()
	require.NoError(t, err)
	assert.Equal(t, IDENTIFIER, tok.Type)

	for i := 0; i < 3; i++ {
		tok, err = scanner.NextToken()
		require.NoError(t, err)
		assert.Equal(t, EOF, tok.Type)
		assert.Equal(t, Position{Line: 1, Column: 2, Offset: 1}, tok.Position)
	}
}

func TestTokenizeEndsWithSingleEOF(t *testing.T) {
	tokens, err := NewScanner("int main() { return 0; }").Tokenize()
	require.NoError(t, err)

	eofCount := 0
	for _, tok := range tokens {
		if tok.Type == EOF {
			eofCount++
		}
	}
	assert.Equal(t, 1, eofCount)
	assert.Equal(t, EOF, tokens[len(tokens)-1].Type)
}

func TestTokenizeIsDeterministic(t *testing.T) {
	input := "int main() {\n\treturn 42;\n}\nint other(){return 1 2;} <= >= if else"

	first, err := NewScanner(input).Tokenize()
	require.NoError(t, err)
	second, err := NewScanner(input).Tokenize()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTokenPositions(t *testing.T) {
	tokens, err := NewScanner("int main() {\n return 3;\n}").Tokenize()
	require.NoError(t, err)

	expected := []struct {
		typ    TokenType
		line   int
		column int
		offset int
	}{
		{INT, 1, 1, 0},
		{IDENTIFIER, 1, 5, 4},
		{LEFT_PAREN, 1, 9, 8},
		{RIGHT_PAREN, 1, 10, 9},
		{LEFT_BRACE, 1, 12, 11},
		{RETURN, 2, 2, 14},
		{NUMBER, 2, 9, 21},
		{SEMICOLON, 2, 10, 22},
		{RIGHT_BRACE, 3, 1, 24},
		{EOF, 3, 2, 25},
	}

	require.Len(t, tokens, len(expected))
	for i, exp := range expected {
		tok := tokens[i]
		assert.Equal(t, exp.typ, tok.Type, "token %d", i)
		assert.Equal(t, Position{Line: exp.line, Column: exp.column, Offset: exp.offset}, tok.Position, "token %d", i)
	}
}

func TestUnrecognizedCharacter(t *testing.T) {
	scanner := NewScanner("int main() {\n  return -1;\n}")
	tokens, err := scanner.Tokenize()
	require.Error(t, err)

	scanErr, ok := err.(*ScanError)
	require.True(t, ok, "expected *ScanError, got %T", err)
	assert.Equal(t, UnrecognizedCharacter, scanErr.Kind)
	assert.Equal(t, byte('-'), scanErr.Char)
	assert.Equal(t, Position{Line: 2, Column: 10, Offset: 22}, scanErr.Position)
	assert.Equal(t, 1, scanErr.Length)
	assert.Equal(t, "2:10: unexpected character '-'", scanErr.Error())

	// tokens before the bad byte are kept, no EOF is appended
	require.Len(t, tokens, 6)
	assert.Equal(t, RETURN, tokens[5].Type)
}

func TestUnrecognizedCharacterIsRecoverable(t *testing.T) {
	scanner := NewScanner("@x")

	_, err := scanner.NextToken()
	require.Error(t, err)

	tok, err := scanner.NextToken()
	require.NoError(t, err)
	assert.Equal(t, IDENTIFIER, tok.Type)
	assert.Equal(t, "x", tok.Lexeme)
}

func TestNonASCIIAndNULAreRejected(t *testing.T) {
	for _, input := range []string{"é", "\x00", "\v", "a+b", "#include"} {
		_, err := NewScanner(input).Tokenize()
		require.Error(t, err, "input %q", input)
		assert.Equal(t, UnrecognizedCharacter, err.(*ScanError).Kind, "input %q", input)
	}
}

func TestTokenString(t *testing.T) {
	ident := Token{Type: IDENTIFIER, Lexeme: "main", Position: Position{Line: 1, Column: 5}}
	brace := Token{Type: LEFT_BRACE, Lexeme: "{", Position: Position{Line: 2, Column: 1}}

	assert.Equal(t, `IDENTIFIER("main") 1:5`, ident.String())
	assert.Equal(t, "LEFT_BRACE 2:1", brace.String())
	assert.Equal(t, "TokenType(99)", TokenType(99).String())
}

func TestTokenEqualIgnoresPosition(t *testing.T) {
	a := Token{Type: NUMBER, Lexeme: "3", Position: Position{Line: 1, Column: 1}}
	b := Token{Type: NUMBER, Lexeme: "3", Position: Position{Line: 9, Column: 9}}
	c := Token{Type: NUMBER, Lexeme: "4"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, Token{Type: SEMICOLON, Lexeme: ";"}.Equal(Token{Type: SEMICOLON}))
}
