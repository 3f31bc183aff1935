package lsp

import (
	"minic/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens classifies the scanned tokens. It works on the
// token stream rather than the tree so a document with a parse error is
// still highlighted up to the point the scanner reached.
func collectSemanticTokens(tokens []parser.Token) []SemanticToken {
	var result []SemanticToken

	for i, tok := range tokens {
		switch {
		case tok.Type == parser.EOF:
			return result
		case tok.IsKeyword():
			result = append(result, makeToken(tok, "keyword", 0))
		case tok.IsOperator():
			result = append(result, makeToken(tok, "operator", 0))
		case tok.Type == parser.NUMBER:
			result = append(result, makeToken(tok, "number", 0))
		case tok.Type == parser.IDENTIFIER:
			// an identifier directly followed by '(' names a function
			if i+1 < len(tokens) && tokens[i+1].Type == parser.LEFT_PAREN {
				result = append(result, makeToken(tok, "function", 1))
			} else {
				result = append(result, makeToken(tok, "variable", 0))
			}
		}
	}

	return result
}

// encodeSemanticTokens packs tokens into the LSP wire format (delta-line, delta-start compression)
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// makeToken creates a semantic token covering tok's lexeme
func makeToken(tok parser.Token, tokenType string, declModifier int) SemanticToken {
	return SemanticToken{
		Line:           uint32(tok.Position.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(tok.Position.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(len(tok.Lexeme)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
