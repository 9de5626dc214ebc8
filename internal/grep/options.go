package grep

// Options contains all search parameters for one run.
type Options struct {
	Keyword      string // pattern text, a regular expression unless FixedStrings is set
	Prefix       string // root path for the walk
	IgnoreCase   bool
	InvertMatch  bool
	Count        bool
	ListFiles    bool
	FixedStrings bool
	WordRegexp   bool
}
