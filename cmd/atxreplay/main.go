// Command atxreplay decodes recorded ASTERIX surveillance traffic and
// lists, exports, or summarises it.
package main

import (
	"fmt"
	"os"

	"github.com/kvitre/atxreplay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
