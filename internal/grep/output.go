package grep

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/mgutz/ansi"
)

// Output renders scan results on stdout and per-file diagnostics on stderr,
// with optional match highlighting.
type Output struct {
	stdout   io.Writer
	stderr   io.Writer
	colorize bool

	red func(string) string
}

// NewOutput creates a new Output with optional color support.
func NewOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout:   stdout,
		stderr:   stderr,
		colorize: colorize,
		red:      color("red+b"),
	}
}

// Line writes one qualifying line in the format: path:number:text, with
// every match span highlighted.
func (o *Output) Line(path string, num int, text string, matcher *Matcher) {
	fmt.Fprintf(o.stdout, "%s:%d:%s\n", path, num, o.highlight(text, matcher))
}

// Count writes a file's qualifying line count in the format: path:count.
func (o *Output) Count(path string, count int) {
	fmt.Fprintf(o.stdout, "%s:%d\n", path, count)
}

// File writes the bare path of a file with at least one qualifying line.
func (o *Output) File(path string) {
	fmt.Fprintln(o.stdout, path)
}

// ReadError reports a file that could not be read. Path errors are
// unwrapped so the path is not repeated in the message.
func (o *Output) ReadError(path string, err error) {
	var perr *fs.PathError
	if errors.As(err, &perr) {
		err = perr.Err
	}
	fmt.Fprintf(o.stderr, "Error reading %s: %v\n", path, err)
}

// highlight recolors every span of text the matcher finds. Inverted lines
// come through here too; they produce no spans, so they pass unchanged.
func (o *Output) highlight(text string, matcher *Matcher) string {
	if !o.colorize {
		return text
	}

	var b strings.Builder
	last := 0
	for _, span := range matcher.FindAll(text) {
		b.WriteString(text[last:span[0]])
		b.WriteString(o.red(text[span[0]:span[1]]))
		last = span[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
