package cmd

import (
	"github.com/spf13/cobra"

	"togglecomment/internal/comment"
	"togglecomment/internal/language"
	"togglecomment/internal/stream"
	"togglecomment/internal/tui"
	"togglecomment/pkg/address"
)

// previewCmd shows the transform interactively without writing anything.
var previewCmd = &cobra.Command{
	Use:   "preview [pattern] file",
	Short: "Interactively preview which lines a pattern selects",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := ""
		fileName := args[0]
		if len(args) > 1 {
			expr = args[0]
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

		prefix := commentString
		if prefix == "" {
			table := language.Builtin()
			if languagesFile != "" {
				overrides, err := language.Load(languagesFile)
				if err != nil {
					return err
				}
				table = table.Merge(overrides)
			}
			var ok bool
			if prefix, ok = table.PrefixFor(fileName); !ok {
				prefix = language.DefaultPrefix
			}
		}
		commenter, err := comment.New(prefix)
		if err != nil {
			return err
		}

		return tui.Run(fileName, expr, pattern, commenter, mode)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
