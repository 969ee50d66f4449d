// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package editor exposes the copypath command set to editors over the
// Language Server Protocol: workspace folders become project roots and
// commands run via workspace/executeCommand.
package editor

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/walteh/copypath/pkg/registry"
)

const serverName = "copypath"

// CommandPrefix namespaces the registry identifiers on the wire, e.g.
// "copypath.copy_file_path_as_include_macro".
const CommandPrefix = "copypath."

// 🔌 Server bridges LSP requests onto the command registry
type Server struct {
	registry *registry.Registry
	handler  *protocol.Handler
	version  string

	mu        sync.Mutex
	roots     []string
	languages map[string]string // open document URI -> language ID
}

// NewServer creates the LSP server around a command registry.
func NewServer(reg *registry.Registry, version string) *server.Server {
	s := &Server{
		registry:  reg,
		version:   version,
		languages: map[string]string{},
	}

	s.handler = &protocol.Handler{
		Initialize:              s.initialize,
		Initialized:             s.initialized,
		Shutdown:                s.shutdown,
		SetTrace:                s.setTrace,
		TextDocumentDidOpen:     s.textDocumentDidOpen,
		TextDocumentDidClose:    s.textDocumentDidClose,
		WorkspaceExecuteCommand: s.workspaceExecuteCommand,
	}

	return server.NewServer(s.handler, serverName, false)
}

// commandNames lists the wire identifiers advertised in the server
// capabilities.
func (s *Server) commandNames() []string {
	commands := s.registry.Commands()
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, CommandPrefix+cmd.Name)
	}
	return names
}

func (s *Server) setRoots(roots []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots = roots
}

func (s *Server) currentRoots() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.roots...)
}

func (s *Server) setLanguage(uri string, languageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if languageID == "" {
		delete(s.languages, uri)
		return
	}
	s.languages[uri] = languageID
}

func (s *Server) languageFor(uri string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.languages[uri]
}
