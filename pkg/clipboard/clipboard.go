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

// Package clipboard provides the sinks command output is delivered to.
package clipboard

import (
	"context"
	"fmt"
	"io"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📋 Sink receives the text a command produced
type Sink interface {
	Copy(ctx context.Context, text string) error
}

// 🖥️ OSC52Sink copies via an OSC 52 escape sequence written to the
// terminal, which reaches the system clipboard even over SSH
type OSC52Sink struct {
	out io.Writer
}

// NewOSC52Sink creates a sink writing escape sequences to out,
// normally the controlling terminal (stderr).
func NewOSC52Sink(out io.Writer) *OSC52Sink {
	return &OSC52Sink{out: out}
}

// Copy implements Sink.Copy
func (s *OSC52Sink) Copy(ctx context.Context, text string) error {
	if _, err := osc52.New(text).WriteTo(s.out); err != nil {
		return errors.Errorf("writing OSC 52 sequence: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int("bytes", len(text)).Msg("copied to clipboard via OSC 52")
	return nil
}

// 📤 WriterSink writes the text followed by a newline, for piping the
// result into a clipboard tool or another command
type WriterSink struct {
	out io.Writer
}

// NewWriterSink creates a sink writing plain text to out.
func NewWriterSink(out io.Writer) *WriterSink {
	return &WriterSink{out: out}
}

// Copy implements Sink.Copy
func (s *WriterSink) Copy(ctx context.Context, text string) error {
	if _, err := fmt.Fprintln(s.out, text); err != nil {
		return errors.Errorf("writing output: %w", err)
	}
	return nil
}

// 🧪 Memory stores the last copied text, for tests and for front ends
// that deliver the result themselves (the editor bridge)
type Memory struct {
	Text   string
	Copied bool
}

// Copy implements Sink.Copy
func (m *Memory) Copy(ctx context.Context, text string) error {
	m.Text = text
	m.Copied = true
	return nil
}
