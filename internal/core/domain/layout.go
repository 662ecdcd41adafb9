package domain

import "path/filepath"

const (
	// TideDirName is the name of the internal state directory.
	TideDirName = ".tide"

	// RoutesDirName is the name of the route cache directory.
	RoutesDirName = "routes"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tide.yaml"

	// GraphFileName is the default name of the graph store file.
	GraphFileName = "graph.yaml"

	// ConfigEnvVar overrides configuration discovery when set.
	ConfigEnvVar = "TIDE_CONFIG"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultRoutesPath returns the default path for the route cache.
// It joins .tide and routes.
func DefaultRoutesPath() string {
	return filepath.Join(TideDirName, RoutesDirName)
}
