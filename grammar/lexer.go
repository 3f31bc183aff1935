package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var MinicLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Keywords before identifiers (order matters)
		{Name: "Keyword", Pattern: `\b(int|return|if|else)\b`, Action: nil},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Integer literals, kept as text
		{Name: "Int", Pattern: `[0-9]+`, Action: nil},

		// Relational operators
		{Name: "Operator", Pattern: `<=|>=|[<>=]`, Action: nil},

		// Punctuation
		{Name: "Punctuation", Pattern: `[{}();]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n\f]+`, Action: nil},
	},
})
