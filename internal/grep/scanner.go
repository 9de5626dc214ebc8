package grep

import (
	"bufio"
	"errors"
	"io"
	"os"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("invalid UTF-8 data")

// scanLines reads the file at path line by line and calls fn with the
// 1-based number and text of every qualifying line, in file order. A line
// qualifies when invert XOR matched is true. The returned bool reports
// whether any line qualified so far; on a read error the scan stops there
// and lines already passed to fn are not taken back.
func scanLines(path string, matcher *Matcher, invert bool, fn func(num int, text string)) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	found := false
	num := 0
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return found, err
		}
		if len(line) > 0 {
			num++
			text := trimTerminator(line)
			if !utf8.ValidString(text) {
				return found, errInvalidUTF8
			}
			if invert != matcher.Match(text) {
				found = true
				fn(num, text)
			}
		}
		if err == io.EOF {
			return found, nil
		}
	}
}

// trimTerminator removes a trailing "\n" or "\r\n". A bare "\r" ending an
// unterminated final line is part of the line and stays.
func trimTerminator(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}

// countLines returns the number of qualifying lines in the file at path.
func countLines(path string, matcher *Matcher, invert bool) (int, error) {
	count := 0
	_, err := scanLines(path, matcher, invert, func(int, string) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
