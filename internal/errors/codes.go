package errors

// Error codes for the minic front end.
// These codes are used in CLI diagnostics and LSP diagnostics
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0119: Scanner and parser errors
// E0200-E0299: AST contract errors
// E0900-E0999: Reserved for tooling errors

const (
	// Scanner errors

	// E0100: Byte that starts no token
	ErrorUnrecognizedCharacter = "E0100"

	// Parser errors

	// E0101: Integer literal does not fit a signed 64-bit value
	ErrorMalformedIntegerLiteral = "E0101"

	// E0102: Token appears where the grammar forbids it
	ErrorUnexpectedToken = "E0102"

	// E0103: Function name not followed by '('
	ErrorMissingLeftParen = "E0103"

	// E0104: Parameter list not closed by ')'
	ErrorMissingRightParen = "E0104"

	// E0105: Function signature not followed by '{'
	ErrorMissingLeftBrace = "E0105"

	// E0106: Input ends inside a function body
	ErrorMissingRightBrace = "E0106"

	// E0107: Statement not terminated by ';'
	ErrorMissingSemicolon = "E0107"

	// E0108: Function body without statements
	ErrorEmptyFunctionBody = "E0108"

	// E0109: 'return' without a value
	ErrorEmptyReturnStatement = "E0109"

	// AST contract errors

	// E0200: Tree handed to the generator breaks a structural invariant
	ErrorInvalidTree = "E0200"

	// Tooling errors

	// E0900: Reference grammar and hand-written parser disagree
	ErrorCrossCheckMismatch = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnrecognizedCharacter:
		return "Character is not part of any token"
	case ErrorMalformedIntegerLiteral:
		return "Integer literal is out of range for a 64-bit signed integer"
	case ErrorUnexpectedToken:
		return "Token is not allowed at this point"
	case ErrorMissingLeftParen:
		return "Function name must be followed by '('"
	case ErrorMissingRightParen:
		return "Functions take no parameters; expected ')'"
	case ErrorMissingLeftBrace:
		return "Function body must start with '{'"
	case ErrorMissingRightBrace:
		return "Function body is not closed by '}'"
	case ErrorMissingSemicolon:
		return "Statement is not terminated by ';'"
	case ErrorEmptyFunctionBody:
		return "Function body must contain at least one statement"
	case ErrorEmptyReturnStatement:
		return "Return statement must return an integer literal"
	case ErrorInvalidTree:
		return "Syntax tree does not satisfy the code generator contract"
	case ErrorCrossCheckMismatch:
		return "Reference grammar and parser disagree on this input"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code == ErrorUnrecognizedCharacter:
		return "Scanner"
	case code > ErrorUnrecognizedCharacter && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Syntax Tree"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
