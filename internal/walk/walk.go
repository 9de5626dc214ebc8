// Package walk implements the bounded directory traversal that discovers
// candidate files for searching.
package walk

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultMaxDepth is how many directory levels below the root are searched.
const DefaultMaxDepth = 7

// extensions is the closed set of filename extensions eligible for
// searching. Matching is case-sensitive.
var extensions = []string{"cpp", "h", "txt", "html", "php", "c", "css", "json", "py", "js"}

var extPattern = "*.{" + strings.Join(extensions, ",") + "}"

// Files walks root depth-first and calls fn with the path of every regular
// file nested in at most maxDepth directories below root whose extension is
// in the allow list. Symlinks are never followed, and entries that cannot
// be read are skipped silently. A root that is itself a regular file is
// yielded when its extension allows.
func Files(root string, maxDepth int, fn func(path string)) {
	info, err := os.Lstat(root)
	if err != nil {
		return
	}
	if info.Mode().IsRegular() {
		if eligible(filepath.Base(root)) {
			fn(root)
		}
		return
	}
	if info.IsDir() {
		walkDir(root, 1, maxDepth+1, fn)
	}
}

// walkDir visits the entries of dir, which sit at the given depth below the
// root, descending until entries would fall outside the bound.
func walkDir(dir string, depth, bound int, fn func(path string)) {
	if depth > bound {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		path := join(dir, entry.Name())
		switch {
		case entry.Type().IsRegular():
			if eligible(entry.Name()) {
				fn(path)
			}
		case entry.IsDir():
			walkDir(path, depth+1, bound, fn)
		}
	}
}

// eligible reports whether the basename carries one of the allowed
// extensions. A leading dot is not an extension separator, so a bare
// dotfile like ".py" has no extension while ".backup.py" still ends in
// "py". The pattern is static, so a match error is impossible.
func eligible(name string) bool {
	if strings.HasPrefix(name, ".") {
		name = name[1:]
	}
	ok, _ := doublestar.Match(extPattern, name)
	return ok
}

// join appends name to dir without cleaning the result, so the root shows
// up in output exactly as the user typed it (a root of "." yields "./a.py").
func join(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
