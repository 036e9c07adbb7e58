// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Source languages and their compiler frontends

package lang

import "fmt"

// Language identifies the source language of the input file
type Language string

const (
	C   Language = "c"
	Cpp Language = "cpp"
)

// Parse maps a command-line token to a Language.
// Accepted tokens are "c", "cpp" and "c++".
func Parse(token string) (Language, bool) {
	switch token {
	case "c":
		return C, true
	case "cpp", "c++":
		return Cpp, true
	}
	return "", false
}

// Compiler returns the default compiler frontend for the language
func (l Language) Compiler() string {
	switch l {
	case C:
		return "clang"
	case Cpp:
		return "clang++"
	}
	return ""
}

// DisplayName returns a human-readable language name
func (l Language) DisplayName() string {
	switch l {
	case C:
		return "C"
	case Cpp:
		return "C++"
	}
	return fmt.Sprintf("unknown(%s)", string(l))
}

// Invocation is a single compile-and-run request
type Invocation struct {
	Language   Language
	SourcePath string
}
