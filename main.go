// ggrep is a grep(1)-like utility for recursively searching source trees.
package main

import (
	"os"

	"github.com/jparise/ggrep/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
