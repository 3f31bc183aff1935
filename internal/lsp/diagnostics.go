package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"minic/internal/parser"
)

const diagnosticSource = "minic"

// Diagnose turns the outcome of a parse into LSP diagnostics. A successful
// parse yields an empty, non-nil slice so publishing it clears the editor.
func Diagnose(result *parser.ParseResult) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if result == nil {
		return diagnostics
	}
	if result.ScanError != nil {
		diagnostics = append(diagnostics, ConvertScanError(result.ScanError))
	}
	if result.ParseError != nil {
		diagnostics = append(diagnostics, ConvertParseError(result.ParseError))
	}

	return diagnostics
}

// ConvertParseError transforms a parser error into an LSP diagnostic spanning
// the offending token.
func ConvertParseError(parseErr *parser.ParseError) protocol.Diagnostic {
	length := len(parseErr.Token.Lexeme)
	if length == 0 {
		length = 1
	}

	return makeDiagnostic(parseErr.Position, length, parseErr.Kind, parseErr.Message)
}

// ConvertScanError transforms a scanner error into an LSP diagnostic.
func ConvertScanError(scanErr *parser.ScanError) protocol.Diagnostic {
	length := scanErr.Length
	if length == 0 {
		length = 1
	}

	return makeDiagnostic(scanErr.Position, length, scanErr.Kind, scanErr.Message)
}

func makeDiagnostic(pos parser.Position, length int, kind parser.ErrorKind, message string) protocol.Diagnostic {
	line := uint32(max(0, pos.Line-1))    // LSP lines are 0-based
	start := uint32(max(0, pos.Column-1)) // so are characters

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: start + uint32(length)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: kind.Code()},
		Source:   ptrString(diagnosticSource),
		Message:  message,
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
