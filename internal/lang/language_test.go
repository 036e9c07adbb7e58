// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Language tests

package lang_test

import (
	"testing"

	"github.com/sony-level/clrun/internal/lang"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token    string
		want     lang.Language
		wantOK   bool
		compiler string
	}{
		{"c", lang.C, true, "clang"},
		{"cpp", lang.Cpp, true, "clang++"},
		{"c++", lang.Cpp, true, "clang++"},
		{"C", "", false, ""},
		{"rust", "", false, ""},
		{"", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := lang.Parse(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.token, got, tt.want)
			}
			if got.Compiler() != tt.compiler {
				t.Errorf("Compiler() = %q, want %q", got.Compiler(), tt.compiler)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if lang.C.DisplayName() != "C" {
		t.Errorf("C.DisplayName() = %q", lang.C.DisplayName())
	}
	if lang.Cpp.DisplayName() != "C++" {
		t.Errorf("Cpp.DisplayName() = %q", lang.Cpp.DisplayName())
	}
}
