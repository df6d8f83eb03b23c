package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"togglecomment/internal/comment"
	"togglecomment/internal/language"
	"togglecomment/internal/stream"
	"togglecomment/pkg/address"
)

var (
	modeFlag      string
	commentString string
	languagesFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "togglecomment [pattern] [file]",
	Short: "Toggle the line-comment status of lines matching an ex-style address pattern",
	Long: `togglecomment sets or toggles the line-comment status of lines in plain text,
selecting lines with ex/vi-like address patterns:

  N           1-indexed line number
  M,N         inclusive range of lines
  M,+N        a range given by a start and a count
  /pattern/   a regular expression
  /a/,/b/     from a line matching a through a line matching b

Any pattern may end with '!' to invert the selection; an empty pattern selects
the whole file. Input comes from FILE or stdin, output goes to stdout, and the
comment prefix is guessed from the file extension or shebang unless set with
--comment-string.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := ""
		fileName := ""
		if len(args) > 0 {
			expr = args[0]
		}
		if len(args) > 1 {
			fileName = args[1]
		}

		pattern, err := address.ParsePattern(expr)
		if err != nil {
			return err
		}
		mode, err := stream.ParseMode(modeFlag)
		if err != nil {
			return err
		}

		input := io.Reader(os.Stdin)
		if fileName != "" {
			file, err := os.Open(fileName)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", fileName, err)
			}
			defer file.Close()
			input = file
		}

		reader := bufio.NewReader(input)
		prefix, err := resolvePrefix(fileName, reader)
		if err != nil {
			return err
		}
		commenter, err := comment.New(prefix)
		if err != nil {
			return err
		}

		return stream.New(pattern, commenter, mode).Run(reader, os.Stdout)
	},
}

// resolvePrefix picks the comment prefix: the --comment-string flag wins,
// then the language table keyed by file extension, then a shebang sniffed
// from the first line, then the default. Peeking the reader keeps the sniff
// from consuming input.
func resolvePrefix(fileName string, reader *bufio.Reader) (string, error) {
	if commentString != "" {
		return commentString, nil
	}

	table := language.Builtin()
	if languagesFile != "" {
		overrides, err := language.Load(languagesFile)
		if err != nil {
			return "", err
		}
		table = table.Merge(overrides)
	}

	if fileName != "" {
		if prefix, ok := table.PrefixFor(fileName); ok {
			return prefix, nil
		}
	}

	head, err := reader.Peek(512)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	firstLine := string(head)
	if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}
	if prefix, ok := language.Shebang(firstLine); ok {
		return prefix, nil
	}

	return language.DefaultPrefix, nil
}

// defaultMode picks the starting mode from the name the binary was invoked
// as, so a `comment` or `uncomment` symlink does what it says.
func defaultMode(argv0 string) string {
	switch strings.TrimSuffix(filepath.Base(argv0), ".exe") {
	case "comment":
		return "comment"
	case "uncomment":
		return "uncomment"
	}
	return "toggle"
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", defaultMode(os.Args[0]),
		"what to do with matched lines: toggle, comment or uncomment")
	rootCmd.PersistentFlags().StringVar(&commentString, "comment-string", "",
		"comment prefix to use instead of guessing from the input")
	rootCmd.PersistentFlags().StringVar(&languagesFile, "languages", "",
		"YAML file with extension-to-prefix overrides")
}
