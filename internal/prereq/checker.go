// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Toolchain lookup on PATH

package prereq

import (
	"os/exec"
	"strings"
)

// Checker verifies compiler existence
type Checker struct {
	tools map[string]*Tool
}

// NewChecker creates a checker for the default toolchain
func NewChecker() *Checker {
	return &Checker{
		tools: DefaultTools(),
	}
}

// CheckTool checks whether a command is available.
// Unknown names are looked up as plain commands.
func (c *Checker) CheckTool(name string) CheckResult {
	result := CheckResult{Name: name}

	command := name
	if tool, ok := c.tools[strings.ToLower(name)]; ok {
		command = tool.Command
	}

	path, err := exec.LookPath(command)
	if err != nil {
		return result
	}
	result.Found = true
	result.Path = path
	return result
}

// Version runs the tool's version command and returns its first line.
// Returns an empty string for unknown tools or when the command fails.
func (c *Checker) Version(name string) string {
	tool := c.GetTool(name)
	if tool == nil || tool.VersionCmd == "" {
		return ""
	}

	parts := strings.Fields(tool.VersionCmd)
	if len(parts) == 0 {
		return ""
	}

	out, err := exec.Command(parts[0], parts[1:]...).Output()
	if err != nil {
		return ""
	}

	output := strings.TrimSpace(string(out))
	if idx := strings.Index(output, "\n"); idx > 0 {
		output = output[:idx]
	}
	return output
}

// GetTool returns a tool definition by name
func (c *Checker) GetTool(name string) *Tool {
	return c.tools[strings.ToLower(name)]
}

// GetInstallGuide returns installation instructions for a tool
func (c *Checker) GetInstallGuide(name string) string {
	tool := c.GetTool(name)
	if tool == nil {
		return "No installation guide available for " + name
	}
	return tool.InstallGuide
}
