package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	ILLEGAL NodeType = iota
	PROGRAM
	FUNCTION
	STATEMENT
	EXPRESSION
)
