package ast

// AST is the validated tree handed to the code generator.
// Root is always a Program node.
type AST struct {
	Root *Program
}

// NewAST returns a tree whose root is an empty Program.
func NewAST() *AST {
	return &AST{Root: &Program{}}
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents a function name
// Example: "main"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Program is the root of every tree; its children are functions in source order.
type Program struct {
	Pos       Position
	EndPos    Position
	Functions []*Function
}

// Function represents a function definition
// Example: "int main() { return 2; }"
type Function struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	Statements []*Statement
}

// Statement represents a statement inside a function body.
// Keyword names the statement kind; "return" is the only one the grammar produces.
// Example: "return 2;"
type Statement struct {
	Pos     Position
	EndPos  Position
	Keyword string
	Exprs   []*Expression
}

// Expression represents an integer literal converted to its value.
// Literal keeps the source text the value was parsed from.
// Example: "135675424"
type Expression struct {
	Pos     Position
	EndPos  Position
	Value   int64
	Literal string
}

// AddFunction attaches a fully built function to the program.
// Callers attach only functions that already hold their statements.
func (p *Program) AddFunction(f *Function) {
	p.Functions = append(p.Functions, f)
	if p.Pos == (Position{}) {
		p.Pos = f.Pos
	}
	p.EndPos = f.EndPos
}

// AddStatement attaches a fully built statement to the function.
func (f *Function) AddStatement(s *Statement) {
	f.Statements = append(f.Statements, s)
}

// AddExpr attaches an expression to the statement.
func (s *Statement) AddExpr(e *Expression) {
	s.Exprs = append(s.Exprs, e)
}
