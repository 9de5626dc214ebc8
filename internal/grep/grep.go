// Package grep implements the recursive line search over candidate files.
package grep

import (
	"io"

	"github.com/jparise/ggrep/internal/walk"
)

// Grep orchestrates one search run.
type Grep struct {
	output *Output
}

// New creates a new Grep writing results to stdout and per-file errors to
// stderr.
func New(stdout, stderr io.Writer, colorize bool) *Grep {
	return &Grep{
		output: NewOutput(stdout, stderr, colorize),
	}
}

// Run compiles the search pattern and scans every candidate file under
// opts.Prefix, rendering results for the active output mode. It reports
// whether any file produced at least one qualifying line. The only error
// Run returns is a *PatternError, raised before any file is touched; read
// failures are reported per file and the walk continues.
func (g *Grep) Run(opts *Options) (bool, error) {
	matcher, err := Compile(opts.Keyword, opts.FixedStrings, opts.WordRegexp, opts.IgnoreCase)
	if err != nil {
		return false, err
	}

	found := false
	walk.Files(opts.Prefix, walk.DefaultMaxDepth, func(path string) {
		switch {
		case opts.Count:
			count, err := countLines(path, matcher, opts.InvertMatch)
			if err != nil {
				g.output.ReadError(path, err)
				return
			}
			if count > 0 {
				g.output.Count(path, count)
				found = true
			}
		case opts.ListFiles:
			count, err := countLines(path, matcher, opts.InvertMatch)
			if err != nil {
				g.output.ReadError(path, err)
				return
			}
			if count > 0 {
				g.output.File(path)
				found = true
			}
		default:
			// Lines print as they are scanned. If the file errors midway,
			// the lines already printed stay, but the file no longer counts
			// toward the run outcome.
			ok, err := scanLines(path, matcher, opts.InvertMatch, func(num int, text string) {
				g.output.Line(path, num, text, matcher)
			})
			if err != nil {
				g.output.ReadError(path, err)
				return
			}
			if ok {
				found = true
			}
		}
	})

	return found, nil
}
