// Command lox is a tree-walking interpreter for the Lox language.
package main

import (
	"os"

	"github.com/cwbudde/go-lox/cmd/lox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
