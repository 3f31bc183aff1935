package parser

import "fmt"

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

// Payload returns the text carried by identifier and integer literal tokens.
// Every other token carries none.
func (t Token) Payload() string {
	switch t.Type {
	case IDENTIFIER, NUMBER:
		return t.Lexeme
	default:
		return ""
	}
}

// Equal reports whether two tokens have the same category and payload, ignoring position.
func (t Token) Equal(other Token) bool {
	return t.Type == other.Type && t.Payload() == other.Payload()
}

func (t Token) String() string {
	if p := t.Payload(); p != "" {
		return fmt.Sprintf("%s(%q) %d:%d", t.Type, p, t.Position.Line, t.Position.Column)
	}
	return fmt.Sprintf("%s %d:%d", t.Type, t.Position.Line, t.Position.Column)
}

// IsKeyword reports whether the token came from a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Type {
	case INT, RETURN, IF, ELSE:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is a relational operator.
func (t Token) IsOperator() bool {
	switch t.Type {
	case EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL:
		return true
	default:
		return false
	}
}
