package editor

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/copypath/pkg/config"
	"github.com/walteh/copypath/pkg/lang"
	"github.com/walteh/copypath/pkg/registry"
	"github.com/walteh/copypath/pkg/workspace"
)

func (s *Server) initialize(glspCtx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	var roots []string
	for _, folder := range params.WorkspaceFolders {
		if path := URIToPath(string(folder.URI)); path != "" {
			roots = append(roots, path)
		}
	}
	if len(roots) == 0 && params.RootURI != nil {
		if path := URIToPath(string(*params.RootURI)); path != "" {
			roots = append(roots, path)
		}
	}
	s.setRoots(roots)

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: s.commandNames(),
	}

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(glspCtx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(glspCtx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(glspCtx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(glspCtx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.setLanguage(string(params.TextDocument.URI), params.TextDocument.LanguageID)
	return nil
}

func (s *Server) textDocumentDidClose(glspCtx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.setLanguage(string(params.TextDocument.URI), "")
	return nil
}

func (s *Server) workspaceExecuteCommand(glspCtx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	ctx := glspCtx.Context
	if ctx == nil {
		ctx = context.Background()
	}

	if !strings.HasPrefix(params.Command, CommandPrefix) {
		return nil, errors.Errorf("%w: %q", registry.ErrUnknownCommand, params.Command)
	}
	name := strings.TrimPrefix(params.Command, CommandPrefix)

	cmd, ok := s.registry.Get(name)
	if !ok {
		return nil, errors.Errorf("%w: %q", registry.ErrUnknownCommand, params.Command)
	}

	if len(params.Arguments) == 0 {
		return nil, errors.New("executeCommand requires a document URI argument")
	}
	uri, ok := params.Arguments[0].(string)
	if !ok {
		return nil, errors.New("document URI argument must be a string")
	}

	doc := workspace.Document{
		Path:   URIToPath(uri),
		Syntax: s.syntaxFor(uri),
	}
	roots := s.currentRoots()

	// Settings live in the resolved project root, so resolve first.
	settings := config.Default()
	if res := workspace.Resolve(doc, roots); res.OK() {
		loaded, err := config.Discover(ctx, res.Root)
		if err != nil {
			return nil, errors.Errorf("loading project settings: %w", err)
		}
		settings = loaded
	}

	inv := registry.Invocation{
		Doc:        doc,
		Roots:      roots,
		Settings:   settings,
		FileExists: workspace.FileExists,
	}

	text, err := s.registry.Execute(ctx, name, inv, nil, nil)
	if err != nil {
		if errors.Is(err, registry.ErrNotEnabled) {
			// Mirror an editor greying out the menu entry: a warning
			// toast, not a protocol error.
			showMessage(glspCtx, protocol.MessageTypeWarning, err.Error())
			return nil, nil
		}
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Str("command", cmd.Name).Str("uri", uri).Msg("executed editor command")
	showMessage(glspCtx, protocol.MessageTypeInfo, cmd.Status)

	return text, nil
}

// syntaxFor derives a syntax identifier for a document, preferring the
// language ID the editor sent at didOpen over extension inference.
func (s *Server) syntaxFor(uri string) string {
	if id := s.languageFor(uri); id != "" {
		if syntax := SyntaxForLanguageID(id); syntax != "" {
			return syntax
		}
	}
	return lang.SyntaxForPath(URIToPath(uri))
}

func showMessage(glspCtx *glsp.Context, messageType protocol.MessageType, message string) {
	glspCtx.Notify("window/showMessage", protocol.ShowMessageParams{
		Type:    messageType,
		Message: message,
	})
}
