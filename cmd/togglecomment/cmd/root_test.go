package cmd

import (
	"bufio"
	"strings"
	"testing"

	"togglecomment/internal/language"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMode(t *testing.T) {
	tests := []struct {
		argv0 string
		want  string
	}{
		{argv0: "/usr/local/bin/togglecomment", want: "toggle"},
		{argv0: "togglecomment", want: "toggle"},
		{argv0: "/usr/local/bin/comment", want: "comment"},
		{argv0: "comment", want: "comment"},
		{argv0: "uncomment", want: "uncomment"},
		{argv0: "uncomment.exe", want: "uncomment"},
		{argv0: "./comment", want: "comment"},
	}

	for _, tt := range tests {
		t.Run(tt.argv0, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultMode(tt.argv0))
		})
	}
}

func TestResolvePrefix(t *testing.T) {
	reader := func(content string) *bufio.Reader {
		return bufio.NewReader(strings.NewReader(content))
	}

	t.Run("flag wins", func(t *testing.T) {
		commentString = "-- "
		defer func() { commentString = "" }()
		prefix, err := resolvePrefix("example.py", reader("x = 1\n"))
		require.NoError(t, err)
		assert.Equal(t, "-- ", prefix)
	})

	t.Run("extension", func(t *testing.T) {
		prefix, err := resolvePrefix("main.go", reader("package main\n"))
		require.NoError(t, err)
		assert.Equal(t, "// ", prefix)
	})

	t.Run("shebang fallback", func(t *testing.T) {
		r := reader("#!/usr/bin/env python\nprint('hi')\n")
		prefix, err := resolvePrefix("", r)
		require.NoError(t, err)
		assert.Equal(t, "# ", prefix)

		// The sniff must not consume the input.
		first, err := r.ReadString('\n')
		require.NoError(t, err)
		assert.Equal(t, "#!/usr/bin/env python\n", first)
	})

	t.Run("default", func(t *testing.T) {
		prefix, err := resolvePrefix("", reader("plain text\n"))
		require.NoError(t, err)
		assert.Equal(t, language.DefaultPrefix, prefix)
	})
}
