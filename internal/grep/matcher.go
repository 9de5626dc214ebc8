package grep

import (
	"fmt"
	"regexp"
)

// Matcher is the compiled form of a search pattern.
type Matcher struct {
	re *regexp.Regexp
}

// PatternError reports a search pattern that failed to compile. Pattern is
// the text handed to the engine after escaping and word wrapping.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("Invalid pattern '%s': %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Compile builds a Matcher from the search keyword. With fixedStrings every
// regex metacharacter is escaped first, so the keyword only ever matches
// literally. With wordRegexp the (possibly escaped) pattern is anchored
// between word boundaries. Case folding happens in the regexp engine, not
// by lowercasing scanned text.
func Compile(keyword string, fixedStrings, wordRegexp, ignoreCase bool) (*Matcher, error) {
	pattern := keyword
	if fixedStrings {
		pattern = regexp.QuoteMeta(keyword)
	}
	if wordRegexp {
		pattern = `\b` + pattern + `\b`
	}

	expr := pattern
	if ignoreCase {
		expr = "(?i)" + pattern
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &Matcher{re: re}, nil
}

// Match reports whether text contains the pattern.
func (m *Matcher) Match(text string) bool {
	return m.re.MatchString(text)
}

// FindAll returns the byte-offset span of every match in text, in order.
func (m *Matcher) FindAll(text string) [][]int {
	return m.re.FindAllStringIndex(text, -1)
}
