// Package language guesses the line-comment prefix for a piece of text so
// the tool can run without configuration: by file extension first, by shebang
// for extensionless scripts, falling back to "# ". The built-in table can be
// extended from a YAML file.
package language

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPrefix is used when nothing about the input gives the language away.
const DefaultPrefix = "# "

// Table maps file extensions (including the leading dot) to line-comment
// prefixes.
type Table map[string]string

// Builtin returns the built-in extension table.
func Builtin() Table {
	return Table{
		".py":    "# ",
		".rb":    "# ",
		".sh":    "# ",
		".bash":  "# ",
		".zsh":   "# ",
		".pl":    "# ",
		".yaml":  "# ",
		".yml":   "# ",
		".toml":  "# ",
		".tf":    "# ",
		".mk":    "# ",
		".cmake": "# ",
		".r":     "# ",
		".go":    "// ",
		".rs":    "// ",
		".c":     "// ",
		".h":     "// ",
		".cpp":   "// ",
		".hpp":   "// ",
		".cc":    "// ",
		".cs":    "// ",
		".java":  "// ",
		".js":    "// ",
		".jsx":   "// ",
		".ts":    "// ",
		".tsx":   "// ",
		".swift": "// ",
		".kt":    "// ",
		".scala": "// ",
		".zig":   "// ",
		".php":   "// ",
		".sql":   "-- ",
		".hs":    "-- ",
		".lua":   "-- ",
		".elm":   "-- ",
		".lisp":  "; ",
		".el":    "; ",
		".clj":   "; ",
		".scm":   "; ",
		".ini":   "; ",
		".vim":   "\" ",
		".tex":   "% ",
		".erl":   "% ",
		".m":     "% ",
		".f90":   "! ",
		".bat":   "REM ",
	}
}

// Load reads extension overrides from a YAML file of the form
//
//	languages:
//	  .xyz: ";; "
//	  .py: "#"
//
// Extensions may be given with or without the leading dot.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read language config %s: %w", path, err)
	}

	var cfg struct {
		Languages map[string]string `yaml:"languages"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse language config %s: %w", path, err)
	}

	table := make(Table, len(cfg.Languages))
	for ext, prefix := range cfg.Languages {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		table[strings.ToLower(ext)] = prefix
	}
	return table, nil
}

// Merge overlays other onto t, with other winning conflicts.
func (t Table) Merge(other Table) Table {
	for ext, prefix := range other {
		t[ext] = prefix
	}
	return t
}

// PrefixFor looks up the prefix for a file path by extension.
func (t Table) PrefixFor(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", false
	}
	prefix, ok := t[ext]
	return prefix, ok
}

// interpreters maps interpreter base names seen in shebang lines to comment
// prefixes. Version suffixes are stripped before lookup, so python3.12
// matches python.
var interpreters = map[string]string{
	"python": "# ",
	"ruby":   "# ",
	"perl":   "# ",
	"sh":     "# ",
	"bash":   "# ",
	"zsh":    "# ",
	"dash":   "# ",
	"ksh":    "# ",
	"awk":    "# ",
	"fish":   "# ",
	"node":   "// ",
	"deno":   "// ",
	"lua":    "-- ",
}

// Shebang guesses a prefix from a file's first line. It handles both direct
// interpreter paths and the /usr/bin/env form.
func Shebang(firstLine string) (string, bool) {
	if !strings.HasPrefix(firstLine, "#!") {
		return "", false
	}
	fields := strings.Fields(firstLine[2:])
	if len(fields) == 0 {
		return "", false
	}
	interp := filepath.Base(fields[0])
	if interp == "env" && len(fields) > 1 {
		interp = filepath.Base(fields[1])
	}
	interp = strings.TrimRight(interp, "0123456789.")
	prefix, ok := interpreters[interp]
	return prefix, ok
}
