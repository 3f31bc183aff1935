package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string

	// Children returns the owned child nodes in source order.
	Children() []Node
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (f *Function) NodePos() Position    { return f.Pos }
func (f *Function) NodeEndPos() Position { return f.EndPos }
func (*Function) NodeType() NodeType     { return FUNCTION }

func (s *Statement) NodePos() Position    { return s.Pos }
func (s *Statement) NodeEndPos() Position { return s.EndPos }
func (*Statement) NodeType() NodeType     { return STATEMENT }

func (e *Expression) NodePos() Position    { return e.Pos }
func (e *Expression) NodeEndPos() Position { return e.EndPos }
func (*Expression) NodeType() NodeType     { return EXPRESSION }

func (p *Program) Children() []Node {
	nodes := make([]Node, 0, len(p.Functions))
	for _, f := range p.Functions {
		nodes = append(nodes, f)
	}
	return nodes
}

func (f *Function) Children() []Node {
	nodes := make([]Node, 0, len(f.Statements))
	for _, s := range f.Statements {
		nodes = append(nodes, s)
	}
	return nodes
}

func (s *Statement) Children() []Node {
	nodes := make([]Node, 0, len(s.Exprs))
	for _, e := range s.Exprs {
		nodes = append(nodes, e)
	}
	return nodes
}

func (*Expression) Children() []Node { return nil }
