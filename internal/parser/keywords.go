package parser

// KEYWORDS is matched case-sensitively; "Return" scans as an identifier.
var KEYWORDS = map[string]TokenType{
	"int":    INT,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
}
