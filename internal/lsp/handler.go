package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"minic/internal/parser"
)

// Name identifies the server to clients.
const Name = "minic"

var log = commonlog.GetLogger("minic.lsp")

// Semantic token types reported by the server, indexed by SemanticToken.TokenType
var SemanticTokenTypes = []string{
	"keyword",
	"function",
	"variable",
	"number",
	"operator",
}

// Semantic token modifiers, used as a bitmask
var SemanticTokenModifiers = []string{
	"declaration",
}

// MinicHandler implements the LSP server handlers for minic sources
type MinicHandler struct {
	mu      sync.RWMutex
	version string
	content map[protocol.DocumentUri]string
	results map[protocol.DocumentUri]*parser.ParseResult
}

// NewMinicHandler creates and returns a new MinicHandler instance
func NewMinicHandler(version string) *MinicHandler {
	return &MinicHandler{
		version: version,
		content: make(map[protocol.DocumentUri]string),
		results: make(map[protocol.DocumentUri]*parser.ParseResult),
	}
}

// Handler wires the implemented methods into a glsp protocol handler.
func (h *MinicHandler) Handler() *protocol.Handler {
	return &protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentCompletion:         h.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *MinicHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &h.version,
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *MinicHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *MinicHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *MinicHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *MinicHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("opened %s", uri)

	h.publish(ctx, uri, h.update(uri, params.TextDocument.Text))
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *MinicHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("closed %s", uri)

	h.mu.Lock()
	delete(h.content, uri)
	delete(h.results, uri)
	h.mu.Unlock()

	// clear whatever the editor still shows for the file
	h.publish(ctx, uri, &parser.ParseResult{})
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *MinicHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s", uri)

	h.mu.RLock()
	text := h.content[uri]
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
				continue
			}
			text = applyRangeChange(text, *c.Range, c.Text)
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	h.publish(ctx, uri, h.update(uri, text))
	return nil
}

// TextDocumentCompletion offers the language keywords
func (h *MinicHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	kind := protocol.CompletionItemKindKeyword

	keywords := make([]string, 0, len(parser.KEYWORDS))
	for word := range parser.KEYWORDS {
		keywords = append(keywords, word)
	}
	slices.Sort(keywords)

	items := make([]protocol.CompletionItem, 0, len(keywords))
	for _, word := range keywords {
		detail := "keyword"
		items = append(items, protocol.CompletionItem{
			Label:  word,
			Kind:   &kind,
			Detail: &detail,
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *MinicHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := params.TextDocument.URI

	result, err := h.getOrUpdate(ctx, uri)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(result.Tokens)),
	}, nil
}

// getOrUpdate returns the cached result for uri, reading the file from disk
// when the editor never opened it.
func (h *MinicHandler) getOrUpdate(ctx *glsp.Context, uri protocol.DocumentUri) (*parser.ParseResult, error) {
	h.mu.RLock()
	result, ok := h.results[uri]
	h.mu.RUnlock()

	if ok {
		return result, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	result = h.update(uri, string(content))
	h.publish(ctx, uri, result)
	return result, nil
}

func (h *MinicHandler) update(uri protocol.DocumentUri, text string) *parser.ParseResult {
	filename := uri
	if path, err := uriToPath(uri); err == nil {
		filename = path
	}

	result := parser.Parse(filename, text)

	h.mu.Lock()
	h.content[uri] = text
	h.results[uri] = result
	h.mu.Unlock()

	return result
}

func (h *MinicHandler) publish(ctx *glsp.Context, uri protocol.DocumentUri, result *parser.ParseResult) {
	diagnostics := Diagnose(result)
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	if ctx == nil || ctx.Notify == nil {
		return
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Content returns the text the server currently holds for uri.
func (h *MinicHandler) Content(uri protocol.DocumentUri) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	text, ok := h.content[uri]
	return text, ok
}

// applyRangeChange splices text into content. Positions are counted in bytes,
// which matches UTF-16 code units for the ASCII input the scanner accepts.
func applyRangeChange(content string, r protocol.Range, text string) string {
	start := offsetOf(content, r.Start)
	end := offsetOf(content, r.End)
	if end < start {
		start, end = end, start
	}
	return content[:start] + text + content[end:]
}

func offsetOf(content string, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		next := strings.IndexByte(content[offset:], '\n')
		if next < 0 {
			return len(content)
		}
		offset += next + 1
	}

	lineEnd := strings.IndexByte(content[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(content) - offset
	}
	return offset + min(int(pos.Character), lineEnd)
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
