package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jparise/ggrep/internal/grep"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags.
	color        = colorAuto
	ignoreCase   bool
	invertMatch  bool
	count        bool
	listFiles    bool
	fixedStrings bool
	wordRegexp   bool
)

var rootCmd = &cobra.Command{
	Use:   "ggrep <keyword> [prefix]",
	Short: "Recursively search files for a pattern",
	Long: `ggrep is a grep(1)-like utility that searches source trees recursively.

<keyword> is the pattern to search for. It is interpreted as a regular
expression unless --fixed-strings is given.

<prefix> is the directory to search from and defaults to the current
directory. The walk descends at most 7 directory levels and only considers
files with one of these extensions:

  cpp, h, txt, html, php, c, css, json, py, js

Examples:
  ggrep TODO src
  ggrep -i "fixme|todo"
  ggrep -F "a.b*c" notes
  ggrep -w -c cat
  ggrep -v foo --color never
  ggrep main --color always | less -R`,
	Version: version,
	Args:    cobra.RangeArgs(1, 2),
	RunE:    run,
}

func init() {
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false,
		"case-insensitive match")
	rootCmd.Flags().BoolVarP(&invertMatch, "invert-match", "v", false,
		"select lines that do not match")
	rootCmd.Flags().BoolVarP(&count, "count", "c", false,
		"print the count of matching lines per file")
	rootCmd.Flags().BoolVarP(&listFiles, "list-files", "l", false,
		"print only the names of files with matches")
	rootCmd.Flags().BoolVarP(&fixedStrings, "fixed-strings", "F", false,
		"treat the keyword as a literal string, not a regex")
	rootCmd.Flags().BoolVarP(&wordRegexp, "word-regexp", "w", false,
		"match whole words only")
	rootCmd.Flags().Var(&color, "color",
		"colorize matches: auto, always, never")
}

// errNoMatch reports a search that completed without any qualifying result.
var errNoMatch = errors.New("no matches found")

// Execute runs the root command and returns the process exit status: 0 when
// at least one match was found, 1 when the search completed without matches
// or the invocation was malformed, and 2 when the pattern failed to compile.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var perr *grep.PatternError
	if errors.As(err, &perr) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		return 2
	}
	if errors.Is(err, errNoMatch) {
		return 1
	}

	// Usage errors were already reported by cobra along with the help text.
	return 1
}

func run(cmd *cobra.Command, args []string) error {
	// Arguments are parsed; errors from here on are reported by Execute.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	prefix := "."
	if len(args) > 1 {
		prefix = args[1]
	}

	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		colorize = isatty.IsTerminal(os.Stdout.Fd())
	}

	opts := &grep.Options{
		Keyword:      args[0],
		Prefix:       prefix,
		IgnoreCase:   ignoreCase,
		InvertMatch:  invertMatch,
		Count:        count,
		ListFiles:    listFiles,
		FixedStrings: fixedStrings,
		WordRegexp:   wordRegexp,
	}

	g := grep.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize)
	found, err := g.Run(opts)
	if err != nil {
		return err
	}
	if !found {
		return errNoMatch
	}
	return nil
}
