package ast

import "fmt"

// InvariantError reports the first node that breaks the code generator contract.
type InvariantError struct {
	Node    Node
	Message string
}

func (e *InvariantError) Error() string {
	pos := e.Node.NodePos()
	if pos.Line == 0 {
		return fmt.Sprintf("%s: %s", Label(e.Node), e.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", pos.Line, pos.Column, Label(e.Node), e.Message)
}

// Verify checks that tree is what a code generator may rely on: a Program root
// whose every Function has at least one Statement, each holding at least one
// Expression. It returns nil or an *InvariantError.
func Verify(tree *AST) error {
	if tree == nil || tree.Root == nil {
		return &InvariantError{Node: &Program{}, Message: "missing program root"}
	}

	for _, f := range tree.Root.Functions {
		if f == nil {
			return &InvariantError{Node: tree.Root, Message: "nil function"}
		}
		if f.Name.Value == "" {
			return &InvariantError{Node: f, Message: "function has no name"}
		}
		if len(f.Statements) == 0 {
			return &InvariantError{Node: f, Message: "function has no statements"}
		}
		for _, s := range f.Statements {
			if s == nil {
				return &InvariantError{Node: f, Message: "nil statement"}
			}
			if len(s.Exprs) == 0 {
				return &InvariantError{Node: s, Message: "statement has no expression"}
			}
			for _, e := range s.Exprs {
				if e == nil {
					return &InvariantError{Node: s, Message: "nil expression"}
				}
			}
		}
	}

	return nil
}
