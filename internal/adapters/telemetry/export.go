package telemetry

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/tide/internal/adapters/config"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/zerr"
)

// ExportWriter opens the destination for finished spans. It returns nil when
// export is disabled. Spans go to cfg.File when set and to stderr otherwise;
// stdout is left to command output.
func ExportWriter(cfg config.TelemetryConfig) (io.WriteCloser, error) {
	if !cfg.Export {
		return nil, nil
	}
	if cfg.File == "" {
		return nopCloser{os.Stderr}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create span directory"), "path", cfg.File)
	}
	//nolint:gosec // path comes from the user's configuration
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open span file"), "path", cfg.File)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
