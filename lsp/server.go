// Package lsp serves JSON documents over the Language Server Protocol and
// publishes parse failures as diagnostics.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "kombinator"

var log = commonlog.GetLogger("kombinator.lsp")

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu        sync.Mutex
	documents map[protocol.DocumentUri]string
}

func NewServer(version string) *Server {
	ls := &Server{
		version:   version,
		documents: map[protocol.DocumentUri]string{},
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("%s %s ready", lsName, ls.version)
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.documents, params.TextDocument.URI)
	ls.mu.Unlock()

	publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
		return nil
	}
	ls.mu.Lock()
	content, ok := ls.documents[params.TextDocument.URI]
	ls.mu.Unlock()
	if ok {
		ls.update(ctx, params.TextDocument.URI, content)
	}
	return nil
}

func (ls *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, content string) {
	ls.mu.Lock()
	ls.documents[uri] = content
	ls.mu.Unlock()

	diagnostics := Diagnose(content)
	log.Debugf("%s: %d diagnostics", displayName(string(uri)), len(diagnostics))
	publish(ctx, uri, diagnostics)
}

// Document returns the last known content of uri.
func (ls *Server) Document(uri protocol.DocumentUri) (string, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	content, ok := ls.documents[uri]
	return content, ok
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func displayName(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if parsed, err := url.Parse(uri); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
