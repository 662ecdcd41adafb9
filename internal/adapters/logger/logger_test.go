package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tide/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger sets NO_COLOR so output carries no ANSI sequences.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "graph loaded", goldenName: "info_basic"},
		{name: "empty message", msg: "", goldenName: "info_empty"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestLogger(t)
			l.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple warning", msg: "skipping self-loop", goldenName: "warn_basic"},
		{name: "empty warning", msg: "", goldenName: "warn_empty"},
		{name: "multiline warning", msg: "warn1\nwarn2", goldenName: "warn_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestLogger(t)
			l.Warn(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "not found error",
			err:        os.ErrNotExist,
			goldenName: "error_notfound",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name:       "three level chain",
			err:        zerr.Wrap(zerr.Wrap(errors.New("disk full"), "failed to write cached route"), "resolve failed"),
			goldenName: "error_chain_zerr_three",
		},
		{
			name:       "two level chain",
			err:        zerr.Wrap(errors.New("connection refused"), "graph store unavailable"),
			goldenName: "error_chain_zerr_two",
		},
		{
			name: "stdlib chain is not split",
			err: fmt.Errorf("failed to open route cache: %w",
				fmt.Errorf("failed to create directory: %w", os.ErrPermission)),
			goldenName: "error_chain_stdlib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestLogger(t)
			l.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_WithMetadata(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "single metadata field",
			err:        zerr.With(zerr.New("invalid configuration"), "field", "cache.backend"),
			goldenName: "error_metadata_single",
		},
		{
			name: "multiple metadata fields",
			err: zerr.With(
				zerr.With(zerr.New("invalid configuration"), "path", "tide.yaml"),
				"field", "cache.backend",
			),
			goldenName: "error_metadata_multi",
		},
		{
			name: "metadata on main error",
			err: zerr.With(
				zerr.Wrap(errors.New("connection refused"), "graph store unavailable"),
				"path", "graph.yaml",
			),
			goldenName: "error_metadata_main",
		},
		{
			name: "sorted metadata keys",
			err: func() error {
				e := zerr.New("validation failed")
				e = zerr.With(e, "zebra", "z")
				e = zerr.With(e, "alpha", "a")
				e = zerr.With(e, "mike", "m")
				return e
			}(),
			goldenName: "error_metadata_sorted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestLogger(t)
			l.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetJSON(true)

	l.Info("listening")
	l.Error(zerr.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "listening", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "boom", failure["error"])
}

func TestLogger_SetJSONDisabled(t *testing.T) {
	l, buf := newTestLogger(t)

	l.SetJSON(true)
	l.SetJSON(false)
	l.Error(errors.New("route cache unavailable"))

	g := goldie.New(t)
	g.Assert(t, "setjson_disabled", buf.Bytes())
}
