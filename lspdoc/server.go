// Package lspdoc implements a minimal Language Server Protocol server
// (D1): on textDocument/hover it locates the enclosing declaration's
// Javadoc comment, runs it through C6, and renders the result with
// javadoc.Format as the hover's Markdown body. It owns no type
// information and resolves no symbols — semantic analysis and @link
// resolution to symbols remain out of scope (spec.md §1 Non-goals).
//
// Grounded on java/codebase/lsp.go's LSPServer: the same
// protocol.Handler wiring, the same server.NewServer/RunStdio entry
// point, and the same tliron/commonlog blank import for its logging
// backend. Scoped down from a full completion/codebase-scanning server
// to a single hover handler over the doctree model (C5-C8), the way
// SPEC_FULL.md's D1 describes it.
package lspdoc

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/javafront/doctree"
	"github.com/dhamidi/javafront/javadoc"
	"github.com/dhamidi/javafront/lexer"
	"github.com/dhamidi/javafront/services"
	"github.com/dhamidi/javafront/token"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "javalex"

// Server is a hover-only LSP server over the Java lexer and Javadoc
// parser.
type Server struct {
	version string
	handler protocol.Handler
	server  *server.Server

	opts  lexer.Options
	files map[string][]byte
}

// New returns a Server. opts controls the lexical features (binary and
// underscore literals, text blocks) C4 recognizes while scanning open
// documents.
func New(version string, opts lexer.Options) *Server {
	s := &Server{version: version, opts: opts, files: map[string][]byte{}}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
		TextDocumentHover:     s.textDocumentHover,
	}

	s.server = server.NewServer(&s.handler, lsName, false)
	return s
}

// RunStdio serves over stdin/stdout until the client disconnects.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save:      &protocol.SaveOptions{IncludeText: boolPtr(true)},
	}
	capabilities.HoverProvider = boolPtr(true)

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	s.files[path] = []byte(params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.files[path] = []byte(whole.Text)
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		s.files[path] = []byte(*params.Text)
	}
	return nil
}

func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	content, ok := s.files[path]
	if !ok {
		return nil, nil
	}

	offset := offsetAt(content, int(params.Position.Line), int(params.Position.Character))
	if offset < 0 {
		return nil, nil
	}

	doc := s.docCommentAt(content, offset)
	if doc == nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: javadoc.Format(doc),
		},
	}, nil
}

// docCommentAt finds the Javadoc comment attached to the declaration
// enclosing offset. It tokenizes src once, and — for every JAVADOC
// comment the tokenizer skips — treats the comment as owning the span
// from the token it precedes up to the next doc-commented token (or
// EOF). This approximates "the enclosing declaration's comment" without
// a declaration-level parser, matching the Non-goal that keeps full
// Java grammar above token level out of scope.
func (s *Server) docCommentAt(src []byte, offset int) *doctree.DocCommentTree {
	svc := services.New(s.opts)
	tok := svc.NewTokenizer(src)

	type span struct {
		start, end int
		text       string
	}
	var spans []span

	for {
		t := tok.ReadToken()
		if c, ok := tok.TakePendingDocComment(); ok {
			spans = append(spans, span{start: t.Start, end: len(src), text: c.Text})
			if n := len(spans); n > 1 {
				spans[n-2].end = t.Start
			}
		}
		if t.Kind == token.EOF {
			break
		}
	}

	for _, sp := range spans {
		if offset >= sp.start && offset < sp.end {
			return svc.ParseDocComment(sp.text)
		}
	}
	return nil
}

func offsetAt(content []byte, line, col int) int {
	lines := strings.Split(string(content), "\n")
	if line < 0 || line >= len(lines) {
		return -1
	}
	offset := 0
	for i := 0; i < line; i++ {
		offset += len(lines[i]) + 1
	}
	return offset + col
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
