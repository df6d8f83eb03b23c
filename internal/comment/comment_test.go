package comment_test

import (
	"testing"

	"togglecomment/internal/comment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommenter(t *testing.T) *comment.Commenter {
	t.Helper()
	c, err := comment.New("# ")
	require.NoError(t, err)
	return c
}

func TestLineOperations(t *testing.T) {
	c := newCommenter(t)

	tests := []struct {
		name      string
		line      string
		comment   string
		uncomment string
		toggle    string
	}{
		{
			name:      "commented line",
			line:      "# simple case one",
			comment:   "# simple case one",
			uncomment: "simple case one",
			toggle:    "simple case one",
		},
		{
			name:      "uncommented line",
			line:      "simple_case = 2",
			comment:   "# simple_case = 2",
			uncomment: "simple_case = 2",
			toggle:    "# simple_case = 2",
		},
		{
			name:      "indented commented line",
			line:      "    # return bar",
			comment:   "    # return bar",
			uncomment: "    return bar",
			toggle:    "    return bar",
		},
		{
			name:      "hash without space is not a comment",
			line:      "#c = 3",
			comment:   "# #c = 3",
			uncomment: "#c = 3",
			toggle:    "# #c = 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.comment, c.CommentLine(tt.line))
			assert.Equal(t, tt.uncomment, c.UncommentLine(tt.line))
			assert.Equal(t, tt.toggle, c.ToggleLine(tt.line))
		})
	}
}

func TestUncommentRemovesOnePrefixOnly(t *testing.T) {
	c := newCommenter(t)
	assert.Equal(t, "# a = 1", c.UncommentLine("# # a = 1"))
	assert.Equal(t, "a = 1", c.UncommentLine("# a = 1"))
}

func TestWillComment(t *testing.T) {
	c := newCommenter(t)

	tests := []struct {
		name  string
		lines []string
		want  bool
	}{
		{
			name:  "not all lines commented should comment",
			lines: []string{"# not all lines commented should comment", "abc = 123"},
			want:  true,
		},
		{
			name:  "all lines commented should uncomment",
			lines: []string{"# all lines commented should uncomment", "# abc = 123"},
			want:  false,
		},
		{
			name:  "blank lines do not vote for commenting",
			lines: []string{"all lines uncommented or blank should comment", ""},
			want:  true,
		},
		{
			name:  "blank lines do not vote for uncommenting",
			lines: []string{"# all lines commented or blank should uncomment", ""},
			want:  false,
		},
		{
			name:  "all blank",
			lines: []string{"", ""},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.WillComment(tt.lines))
		})
	}
}

func TestToggleBlock(t *testing.T) {
	c := newCommenter(t)

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "mixed block comments everything",
			lines: []string{"a = 1", "b = 2", "#c = 3", "d = 4"},
			want:  []string{"# a = 1", "# b = 2", "# #c = 3", "# d = 4"},
		},
		{
			name:  "partially commented block stacks prefixes",
			lines: []string{"# a = 1", "b = 2", "# c = 3", "d = 4"},
			want:  []string{"# # a = 1", "# b = 2", "# # c = 3", "# d = 4"},
		},
		{
			name:  "blank lines are untouched when commenting",
			lines: []string{"    ", "    def foo(self, bar):", "        # NOTE: choose better names", "        return bar"},
			want:  []string{"    ", "#     def foo(self, bar):", "#         # NOTE: choose better names", "#         return bar"},
		},
		{
			name:  "fully commented block uncomments",
			lines: []string{"# a = 1", "# b = 2"},
			want:  []string{"a = 1", "b = 2"},
		},
		{
			name:  "all blank block is unchanged",
			lines: []string{"", ""},
			want:  []string{"", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ToggleBlock(tt.lines))
		})
	}
}

func TestToggleBlockRoundTrip(t *testing.T) {
	c := newCommenter(t)
	original := []string{"# not all lines commented", "abc = 123"}

	commented := c.ToggleBlock(original)
	assert.Equal(t, []string{"# # not all lines commented", "# abc = 123"}, commented)
	assert.Equal(t, original, c.ToggleBlock(commented))
}

func TestOtherPrefixes(t *testing.T) {
	c, err := comment.New("// ")
	require.NoError(t, err)
	assert.Equal(t, "// fmt.Println(x)", c.CommentLine("fmt.Println(x)"))
	assert.Equal(t, "    return nil", c.UncommentLine("    // return nil"))

	// Prefixes with regex metacharacters must be quoted, not interpreted.
	c, err = comment.New("** ")
	require.NoError(t, err)
	assert.Equal(t, "** x", c.CommentLine("x"))
	assert.False(t, c.IsCommented("x"))
}
