package parser

import "fmt"

// Scanner turns source bytes into tokens. It never backtracks and looks at
// most one byte ahead.
type Scanner struct {
	source      string
	start       int
	current     int
	line        int
	startLine   int
	startColumn int
	column      int
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// Tokenize scans the whole input. The returned slice always ends with the EOF
// token unless scanning failed, in which case it holds the tokens read before
// the offending byte.
func (s *Scanner) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

// NextToken skips whitespace and consumes exactly one token. Once the input is
// exhausted it keeps returning EOF.
func (s *Scanner) NextToken() (Token, error) {
	s.skipWhitespace()

	s.start = s.current
	s.startLine = s.line
	s.startColumn = s.column

	if s.isAtEnd() {
		return s.makeToken(EOF), nil
	}

	c := s.advance()
	switch c {
	case '{':
		return s.makeToken(LEFT_BRACE), nil
	case '}':
		return s.makeToken(RIGHT_BRACE), nil
	case '(':
		return s.makeToken(LEFT_PAREN), nil
	case ')':
		return s.makeToken(RIGHT_PAREN), nil
	case ';':
		return s.makeToken(SEMICOLON), nil
	case '=':
		return s.makeToken(EQUAL), nil
	case '<':
		return s.scanLessOperator(), nil
	case '>':
		return s.scanGreaterOperator(), nil
	default:
		return s.scanDefault(c)
	}
}

func (s *Scanner) scanLessOperator() Token {
	if s.matchNext('=') {
		return s.makeToken(LESS_EQUAL)
	}
	return s.makeToken(LESS)
}

func (s *Scanner) scanGreaterOperator() Token {
	if s.matchNext('=') {
		return s.makeToken(GREATER_EQUAL)
	}
	return s.makeToken(GREATER)
}

func (s *Scanner) scanDefault(c byte) (Token, error) {
	switch {
	case isDigit(c):
		return s.scanNumber(), nil
	case isAlpha(c):
		return s.scanIdentifier(), nil
	default:
		return Token{}, s.errorAtStart(UnrecognizedCharacter, fmt.Sprintf("unexpected character %q", c))
	}
}

// scanNumber keeps the digit run verbatim; conversion happens in the parser.
func (s *Scanner) scanNumber() Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(NUMBER)
}

func (s *Scanner) scanIdentifier() Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(lookupIdentifier(s.source[s.start:s.current]))
}

func (s *Scanner) skipWhitespace() {
	for !s.isAtEnd() && isWhitespace(s.peek()) {
		s.advance()
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) makeToken(tokenType TokenType) Token {
	return Token{
		Type:   tokenType,
		Lexeme: s.source[s.start:s.current],
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	}
}

func (s *Scanner) errorAtStart(kind ErrorKind, message string) *ScanError {
	return &ScanError{
		Kind:     kind,
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
		Char:     s.source[s.start],
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}
