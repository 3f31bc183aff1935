package ast

// EncodedNode is a plain-data view of a node for YAML and JSON output.
type EncodedNode struct {
	Kind     string         `yaml:"kind" json:"kind"`
	Name     string         `yaml:"name,omitempty" json:"name,omitempty"`
	Value    *int64         `yaml:"value,omitempty" json:"value,omitempty"`
	Line     int            `yaml:"line,omitempty" json:"line,omitempty"`
	Column   int            `yaml:"column,omitempty" json:"column,omitempty"`
	Children []*EncodedNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// Encode converts the subtree rooted at n.
func Encode(n Node) *EncodedNode {
	if n == nil {
		return nil
	}

	pos := n.NodePos()
	enc := &EncodedNode{Line: pos.Line, Column: pos.Column}

	switch v := n.(type) {
	case *Program:
		enc.Kind = "Program"
	case *Function:
		enc.Kind = "Function"
		enc.Name = v.Name.Value
	case *Statement:
		enc.Kind = "Statement"
		enc.Name = v.Keyword
	case *Expression:
		enc.Kind = "Expression"
		value := v.Value
		enc.Value = &value
	}

	for _, child := range n.Children() {
		enc.Children = append(enc.Children, Encode(child))
	}

	return enc
}
