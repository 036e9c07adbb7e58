// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// workspace types/constants

package workspace

const (
	RootDirName    = ".clrun"
	BuildSubdir    = "build"
	BinaryPrefix   = "main"
	RunIDSeparator = "-"
)

// Workspace is the persistent build directory shared by all invocations
type Workspace struct {
	Dir     string
	Created bool // true when Resolve created Dir
}

// WorkspaceConfig holds configuration for workspace resolution
type WorkspaceConfig struct {
	// Dir overrides the default <home>/.clrun/build location
	Dir string
	// HomeDir returns the user's home directory; defaults to os.UserHomeDir
	HomeDir func() (string, error)
}
