package grep

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func mustCompile(t *testing.T, keyword string, fixedStrings, wordRegexp, ignoreCase bool) *Matcher {
	t.Helper()
	m, err := Compile(keyword, fixedStrings, wordRegexp, ignoreCase)
	if err != nil {
		t.Fatalf("Compile(%q) unexpected error: %v", keyword, err)
	}
	return m
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name         string
		keyword      string
		fixedStrings bool
		wordRegexp   bool
		ignoreCase   bool
		text         string
		want         bool
	}{
		// Regex interpretation
		{
			name:    "plain substring",
			keyword: "foo",
			text:    "a foo b",
			want:    true,
		},
		{
			name:    "alternation",
			keyword: "cat|dog",
			text:    "hot dog",
			want:    true,
		},
		{
			name:    "anchors apply per line",
			keyword: "^foo$",
			text:    "a foo b",
			want:    false,
		},
		{
			name:    "dot is a metacharacter",
			keyword: "a.c",
			text:    "abc",
			want:    true,
		},

		// Fixed strings
		{
			name:         "fixed dot only matches a dot",
			keyword:      "a.c",
			fixedStrings: true,
			text:         "abc",
			want:         false,
		},
		{
			name:         "fixed dot matches itself",
			keyword:      "a.c",
			fixedStrings: true,
			text:         "xa.cy",
			want:         true,
		},
		{
			name:         "fixed star is literal",
			keyword:      "a.b*c",
			fixedStrings: true,
			text:         "the a.b*c token",
			want:         true,
		},
		{
			name:         "fixed star is not repetition",
			keyword:      "a.b*c",
			fixedStrings: true,
			text:         "a.bbbc",
			want:         false,
		},

		// Word boundaries
		{
			name:       "word match",
			keyword:    "cat",
			wordRegexp: true,
			text:       "the cat sat",
			want:       true,
		},
		{
			name:       "word inside a larger word",
			keyword:    "cat",
			wordRegexp: true,
			text:       "concatenate",
			want:       false,
		},
		{
			name:       "word at text edges",
			keyword:    "cat",
			wordRegexp: true,
			text:       "cat",
			want:       true,
		},

		// Case folding
		{
			name:    "case sensitive by default",
			keyword: "foo",
			text:    "FOO",
			want:    false,
		},
		{
			name:       "ignore case",
			keyword:    "foo",
			ignoreCase: true,
			text:       "FOO bar",
			want:       true,
		},
		{
			name:       "ignore case folds character classes",
			keyword:    "[fg]oo",
			ignoreCase: true,
			text:       "GOO",
			want:       true,
		},

		// Combined flags
		{
			name:         "fixed and word together",
			keyword:      "a+b",
			fixedStrings: true,
			wordRegexp:   true,
			text:         "x a+b y",
			want:         true,
		},
		{
			name:         "fixed and word need boundaries",
			keyword:      "a+b",
			fixedStrings: true,
			wordRegexp:   true,
			text:         "xa+by",
			want:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustCompile(t, tt.keyword, tt.fixedStrings, tt.wordRegexp, tt.ignoreCase)
			if got := m.Match(tt.text); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name        string
		keyword     string
		wordRegexp  bool
		wantPattern string
	}{
		{
			name:        "unclosed character class",
			keyword:     "[",
			wantPattern: "[",
		},
		{
			name:        "unclosed group",
			keyword:     "(foo",
			wantPattern: "(foo",
		},
		{
			name:        "diagnostic carries the wrapped pattern",
			keyword:     "[",
			wordRegexp:  true,
			wantPattern: `\b[\b`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.keyword, false, tt.wordRegexp, false)
			if err == nil {
				t.Fatalf("Compile(%q) expected error, got nil", tt.keyword)
			}

			var perr *PatternError
			if !errors.As(err, &perr) {
				t.Fatalf("Compile(%q) error type = %T, want *PatternError", tt.keyword, err)
			}
			if perr.Pattern != tt.wantPattern {
				t.Errorf("PatternError.Pattern = %q, want %q", perr.Pattern, tt.wantPattern)
			}

			wantPrefix := fmt.Sprintf("Invalid pattern '%s': ", tt.wantPattern)
			if !strings.HasPrefix(err.Error(), wantPrefix) {
				t.Errorf("PatternError.Error() = %q, want prefix %q", err.Error(), wantPrefix)
			}
			if perr.Unwrap() == nil {
				t.Error("PatternError.Unwrap() = nil, want the engine error")
			}
		})
	}
}

func TestCompileEscapingGuaranteesValidity(t *testing.T) {
	// Any keyword compiles once fixed-string escaping is in effect.
	keywords := []string{"[", "(foo", "a**", `\`, "x{2,1}"}
	for _, keyword := range keywords {
		if _, err := Compile(keyword, true, true, true); err != nil {
			t.Errorf("Compile(%q) with fixed strings: unexpected error: %v", keyword, err)
		}
	}
}

func TestMatcherFindAll(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		text    string
		want    [][]int
	}{
		{
			name:    "two spans",
			keyword: "foo",
			text:    "foo bar foo",
			want:    [][]int{{0, 3}, {8, 11}},
		},
		{
			name:    "adjacent spans",
			keyword: "aa",
			text:    "aaaa",
			want:    [][]int{{0, 2}, {2, 4}},
		},
		{
			name:    "no spans",
			keyword: "zap",
			text:    "foo bar",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustCompile(t, tt.keyword, false, false, false)
			got := m.FindAll(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindAll(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
