package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.trai.ch/tide/internal/adapters/graphstore"
	"go.trai.ch/tide/internal/adapters/memory"
	"go.trai.ch/tide/internal/adapters/metrics"
	"go.trai.ch/tide/internal/adapters/telemetry"
	"go.trai.ch/tide/internal/app"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/tide/internal/core/ports/mocks"
	"go.trai.ch/tide/internal/engine/builder"
	"go.trai.ch/tide/internal/engine/router"
	"go.uber.org/mock/gomock"
)

func newApp(store ports.GraphStore, cache ports.RouteCache, log ports.Logger) *app.App {
	svc := router.New(builder.New(store, log), store, cache, telemetry.NewNoOpTracer(), metrics.New(), log)
	return app.New(svc, store, cache, log)
}

func staticProvider(a *app.App, log ports.Logger) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: log}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	a := newApp(graphstore.NewMemory(), memory.NewStore(), mockLogger)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, staticProvider(a, mockLogger))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	store := mocks.NewMockGraphStore(ctrl)

	store.EXPECT().Nodes(gomock.Any()).Return(nil, errors.New("graph file missing"))
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})

	a := newApp(store, memory.NewStore(), mockLogger)

	exitCode := run(context.Background(), []string{"nodes"}, new(bytes.Buffer), staticProvider(a, mockLogger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_CloseError verifies that a failing close is logged without changing the exit code.
func TestRun_CloseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	cache := mocks.NewMockRouteCache(ctrl)

	cache.EXPECT().Close().Return(errors.New("flush failed"))
	mockLogger.EXPECT().Error(gomock.Any())

	a := newApp(graphstore.NewMemory(), cache, mockLogger)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), staticProvider(a, mockLogger))
	assert.Equal(t, 0, exitCode)
}

// TestRun_Wiring resolves the real component graph against a graph file on disk.
const wiringGraph = `locations:
  - name: Ibarra
  - name: Otavalo
  - name: Loja
    coastal: true
connections:
  - {from: Ibarra, to: Otavalo, distance: 30}
  - {from: Otavalo, to: Loja, distance: 50}
  - {from: Ibarra, to: Loja, distance: 100}
`

// writeProject writes a graph and a tide.yaml carrying extra, and points
// TIDE_CONFIG at it.
func writeProject(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	config := "version: \"1\"\ngraph:\n  path: graph.yaml\ncache:\n  backend: memory\n" + extra
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.GraphFileName), []byte(wiringGraph), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(config), domain.FilePerm))
	t.Setenv(domain.ConfigEnvVar, filepath.Join(dir, domain.ConfigFileName))
	return dir
}

func executeGraph(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func TestRun_Wiring(t *testing.T) {
	writeProject(t, "")

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"resolve", "Ibarra", "Loja", "--json"}, stderr, executeGraph)
	assert.Equal(t, 0, exitCode, stderr.String())
}

func TestRun_SpansStayOffStdout(t *testing.T) {
	prevProvider := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prevProvider) })

	dir := writeProject(t, "telemetry:\n  export: true\n  file: spans.jsonl\n")

	stdout, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	require.NoError(t, err)
	prevStdout := os.Stdout
	os.Stdout = stdout
	t.Cleanup(func() {
		os.Stdout = prevStdout
		_ = stdout.Close()
	})

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"resolve", "Ibarra", "Loja", "--json"}, stderr, executeGraph)
	require.Equal(t, 0, exitCode, stderr.String())

	out, err := os.ReadFile(stdout.Name())
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal(out, &res), string(out))
	assert.Equal(t, true, res["valid"])

	spans, err := os.ReadFile(filepath.Join(dir, "spans.jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(spans), `"Name":"resolve"`)
}
