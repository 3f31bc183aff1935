package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder

	for i, f := range p.Functions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(f.String())
	}

	return b.String()
}

func (f *Function) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("int %s() {\n", f.Name.Value))
	for _, s := range f.Statements {
		b.WriteString("  " + s.String() + "\n")
	}
	b.WriteString("}")

	return b.String()
}

func (s *Statement) String() string {
	var b strings.Builder

	b.WriteString(s.Keyword)
	for _, e := range s.Exprs {
		b.WriteString(" ")
		b.WriteString(e.String())
	}
	b.WriteString(";")

	return b.String()
}

func (e *Expression) String() string {
	if e.Literal != "" {
		return e.Literal
	}
	return strconv.FormatInt(e.Value, 10)
}

// Label returns the node category with its payload, e.g. "Function(main)".
func Label(n Node) string {
	switch v := n.(type) {
	case *Program:
		return "Program"
	case *Function:
		return fmt.Sprintf("Function(%s)", v.Name.Value)
	case *Statement:
		return fmt.Sprintf("Statement(%s)", v.Keyword)
	case *Expression:
		return fmt.Sprintf("Expression(%d)", v.Value)
	default:
		return n.NodeType().String()
	}
}

// Dump renders the subtree rooted at n as an indented outline, one node per line:
//
//	Program
//	  Function(main)
//	    Statement(return)
//	      Expression(3)
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(Label(n))
	b.WriteString("\n")
	for _, child := range n.Children() {
		dump(b, child, depth+1)
	}
}
