// Copyright (c) 2021 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package loomevent

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	t.Parallel()

	for _, tt := range eventCases() {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := &SlogLogger{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}
			logger.LogEvent(tt.give)

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

			assert.Equal(t, tt.wantMessage, got[slog.MessageKey])
			assert.Equal(t, tt.wantFields, stringify(got, slog.MessageKey, slog.LevelKey, slog.TimeKey))
		})
	}
}

func TestSlogLoggerLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		configure func(*SlogLogger)
		give      Event
		wantLevel string
	}{
		{
			name:      "default error level",
			give:      &Resolved{Err: assert.AnError},
			wantLevel: "ERROR",
		},
		{
			name:      "custom error level",
			configure: func(l *SlogLogger) { l.UseErrorLevel(slog.LevelWarn) },
			give:      &Resolved{Err: assert.AnError},
			wantLevel: "WARN",
		},
		{
			name:      "custom log level",
			configure: func(l *SlogLogger) { l.UseLogLevel(slog.LevelWarn) },
			give:      &Resolving{},
			wantLevel: "WARN",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := &SlogLogger{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}
			if tt.configure != nil {
				tt.configure(logger)
			}
			logger.LogEvent(tt.give)

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
			assert.Equal(t, tt.wantLevel, got[slog.LevelKey])
		})
	}
}
