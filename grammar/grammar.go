package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program mirrors the hand-written parser's top level: any mix of 'int'
// markers and function definitions.
type Program struct {
	Pos   lexer.Position
	Items []*Item `parser:"@@*"`
}

type Item struct {
	Marker   bool      `parser:"  @\"int\""`
	Function *Function `parser:"| @@"`
}

type Function struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Name       string       `parser:"@Ident \"(\" \")\" \"{\""`
	Statements []*Statement `parser:"@@+ \"}\""`
}

type Statement struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Keyword string        `parser:"@\"return\""`
	Values  []*IntLiteral `parser:"@@+ \";\""`
}

type IntLiteral struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Text   string `parser:"@Int"`
}
