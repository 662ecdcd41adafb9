// Package config provides the configuration loader for tide.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader reads tide.yaml from the working directory or one of its parents.
type Loader struct {
	Logger    ports.Logger
	lookupEnv func(string) (string, bool)
	validate  *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:    logger,
		lookupEnv: os.LookupEnv,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Default returns the configuration used when no tide.yaml is found.
// Relative paths are anchored at root.
func Default(root string) *Tidefile {
	return &Tidefile{
		Version: "1",
		Graph:   GraphConfig{Path: filepath.Join(root, domain.GraphFileName), Watch: true},
		Cache: CacheConfig{
			Backend: BackendFile,
			Path:    filepath.Join(root, domain.DefaultRoutesPath()),
		},
		Log:  LogConfig{Format: FormatPretty},
		HTTP: HTTPConfig{Addr: ":8080", RateLimit: 50, Burst: 100},
	}
}

// Load finds and parses the configuration visible from cwd.
// TIDE_CONFIG takes precedence over discovery.
func (l *Loader) Load(cwd string) (*Tidefile, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		return Default(cwd), nil
	}

	tf, err := l.loadTidefile(configPath)
	if err != nil {
		return nil, err
	}

	if err := l.validate.Struct(tf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", configPath)
	}

	return tf, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	if path, ok := l.lookupEnv(domain.ConfigEnvVar); ok && path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		return path, nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) loadTidefile(configPath string) (*Tidefile, error) {
	//nolint:gosec // path comes from discovery or the user's environment
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	root := filepath.Dir(configPath)
	tf := Default(root)
	tf.Graph.Path = ""
	tf.Cache.Path = ""

	if err := yaml.Unmarshal(data, tf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	if tf.Version != "1" {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected \"1\"", domain.ConfigFileName, tf.Version))
	}

	tf.Graph.Path = resolvePath(root, tf.Graph.Path, domain.GraphFileName)
	tf.Cache.Path = resolvePath(root, tf.Cache.Path, domain.DefaultRoutesPath())
	if tf.Telemetry.File != "" {
		tf.Telemetry.File = resolvePath(root, tf.Telemetry.File, "")
	}
	tf.Source = configPath

	return tf, nil
}

// resolvePath anchors p at root, falling back to fallback when p is empty.
func resolvePath(root, p, fallback string) string {
	if p == "" {
		p = fallback
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
