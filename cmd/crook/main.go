// Command crook compresses and decompresses files with an adaptive PPM
// context model and a binary range coder. See package crook for the
// compression core; this command is the CLI wiring around it
// (original_source/crook.cpp's getopt-based main, reworked as cobra
// subcommands).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
