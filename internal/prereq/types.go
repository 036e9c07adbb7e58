// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Toolchain definitions

package prereq

// Tool represents a compiler frontend clrun may invoke
type Tool struct {
	Name         string // Tool name
	Command      string // Command to check existence
	VersionCmd   string // Command to get version
	InstallGuide string // Installation instructions
}

// DefaultTools returns the known compiler frontends
func DefaultTools() map[string]*Tool {
	return map[string]*Tool{
		"clang": {
			Name:       "clang",
			Command:    "clang",
			VersionCmd: "clang --version",
			InstallGuide: `Install clang:
  macOS:   xcode-select --install
  Ubuntu:  sudo apt install clang
  Fedora:  sudo dnf install clang
  Windows: https://releases.llvm.org/download.html`,
		},
		"clang++": {
			Name:       "clang++",
			Command:    "clang++",
			VersionCmd: "clang++ --version",
			InstallGuide: `clang++ is installed together with clang:
  macOS:   xcode-select --install
  Ubuntu:  sudo apt install clang
  Fedora:  sudo dnf install clang
  Windows: https://releases.llvm.org/download.html`,
		},
	}
}

// CheckResult contains the result of checking a tool
type CheckResult struct {
	Name  string // Tool name
	Found bool   // Whether tool was found
	Path  string // Path to tool (if found)
}
