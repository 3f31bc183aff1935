package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"minic/internal/lsp"
)

type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published, "no diagnostics were published")
	return r.published[len(r.published)-1]
}

func open(t *testing.T, h *lsp.MinicHandler, ctx *glsp.Context, uri, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "c", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	h := lsp.NewMinicHandler("1.2.3")

	res, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	result, ok := res.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, lsp.Name, result.ServerInfo.Name)
	assert.Equal(t, "1.2.3", *result.ServerInfo.Version)

	tokens, ok := result.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, tokens.Legend.TokenTypes)
	assert.NotNil(t, result.Capabilities.CompletionProvider)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	h := lsp.NewMinicHandler("test")
	rec := &recorder{}
	uri := "file:///tmp/bad.c"

	open(t, h, rec.context(), uri, "int main() { return ; }")

	published := rec.last(t)
	assert.Equal(t, uri, published.URI)
	require.Len(t, published.Diagnostics, 1)

	diag := published.Diagnostics[0]
	assert.Equal(t, "E0109", diag.Code.Value)
	assert.Equal(t, "minic", *diag.Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	assert.Equal(t, protocol.Position{Line: 0, Character: 20}, diag.Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 21}, diag.Range.End)
	assert.Contains(t, diag.Message, "integer literal")
}

func TestScanErrorDiagnostic(t *testing.T) {
	h := lsp.NewMinicHandler("test")
	rec := &recorder{}

	open(t, h, rec.context(), "file:///tmp/scan.c", "int main() {\n  return 1 @;\n}")

	published := rec.last(t)
	require.Len(t, published.Diagnostics, 1)
	diag := published.Diagnostics[0]
	assert.Equal(t, "E0100", diag.Code.Value)
	assert.Equal(t, protocol.Position{Line: 1, Character: 11}, diag.Range.Start)
}

func TestDidChangeClearsDiagnostics(t *testing.T) {
	h := lsp.NewMinicHandler("test")
	rec := &recorder{}
	ctx := rec.context()
	uri := "file:///tmp/fix.c"

	open(t, h, ctx, uri, "int main() { return 0 }")
	require.Len(t, rec.last(t).Diagnostics, 1)
	assert.Equal(t, "E0107", rec.last(t).Diagnostics[0].Code.Value)

	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "int main() { return 0; }"},
		},
	})
	require.NoError(t, err)

	assert.NotNil(t, rec.last(t).Diagnostics)
	assert.Empty(t, rec.last(t).Diagnostics)

	text, ok := h.Content(uri)
	require.True(t, ok)
	assert.Equal(t, "int main() { return 0; }", text)
}

func TestDidChangeAppliesRangeEdits(t *testing.T) {
	h := lsp.NewMinicHandler("test")
	rec := &recorder{}
	ctx := rec.context()
	uri := "file:///tmp/range.c"

	open(t, h, ctx, uri, "int main() {\n  return 1;\n}")

	// replace "1" on the second line with "42"
	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{
					Start: protocol.Position{Line: 1, Character: 9},
					End:   protocol.Position{Line: 1, Character: 10},
				},
				Text: "42",
			},
		},
	})
	require.NoError(t, err)

	text, ok := h.Content(uri)
	require.True(t, ok)
	assert.Equal(t, "int main() {\n  return 42;\n}", text)
	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestDidCloseForgetsDocument(t *testing.T) {
	h := lsp.NewMinicHandler("test")
	rec := &recorder{}
	ctx := rec.context()
	uri := "file:///tmp/close.c"

	open(t, h, ctx, uri, "int main() { }")
	require.Len(t, rec.last(t).Diagnostics, 1)

	err := h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	_, ok := h.Content(uri)
	assert.False(t, ok)
	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestCompletionOffersKeywords(t *testing.T) {
	h := lsp.NewMinicHandler("test")

	res, err := h.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := res.(*protocol.CompletionList)
	require.True(t, ok)

	var labels []string
	for _, item := range list.Items {
		labels = append(labels, item.Label)
		assert.Equal(t, protocol.CompletionItemKindKeyword, *item.Kind)
	}
	assert.Equal(t, []string{"else", "if", "int", "return"}, labels)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := lsp.NewMinicHandler("test")
	rec := &recorder{}
	ctx := rec.context()
	uri := "file:///tmp/main.c"

	open(t, h, ctx, uri, "int main() {\n  return 42;\n}\nint f() { return 1 < 2; }")

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 10)

	assertToken(t, &decoded[0], 1, 1, 3, "keyword", nil)
	assertToken(t, &decoded[1], 1, 5, 4, "function", []string{"declaration"})
	assertToken(t, &decoded[2], 2, 3, 6, "keyword", nil)
	assertToken(t, &decoded[3], 2, 10, 2, "number", nil)
	assertToken(t, &decoded[4], 4, 1, 3, "keyword", nil)
	assertToken(t, &decoded[5], 4, 5, 1, "function", []string{"declaration"})
	assertToken(t, &decoded[6], 4, 11, 6, "keyword", nil)
	assertToken(t, &decoded[7], 4, 18, 1, "number", nil)
	assertToken(t, &decoded[8], 4, 20, 1, "operator", nil)
	assertToken(t, &decoded[9], 4, 22, 1, "number", nil)
}

func TestSemanticTokensReadsUnopenedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.c")
	require.NoError(t, os.WriteFile(path, []byte("int main() { return x; }"), 0o644))
	uri := "file://" + filepath.ToSlash(path)

	h := lsp.NewMinicHandler("test")
	rec := &recorder{}

	tokens, err := h.TextDocumentSemanticTokensFull(rec.context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 4)
	assertToken(t, &decoded[3], 1, 21, 1, "variable", nil)

	// the unexpected identifier is reported as well
	require.Len(t, rec.last(t).Diagnostics, 1)
	assert.Equal(t, "E0102", rec.last(t).Diagnostics[0].Code.Value)
}

func TestSemanticTokensMissingFile(t *testing.T) {
	h := lsp.NewMinicHandler("test")

	_, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///does/not/exist.c"},
	})
	assert.Error(t, err)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1,
			Char:      char + 1,
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
