// Command komik-cli runs the catalog operations once from the terminal and
// prints the resulting records as JSON.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/vrsandeep/komik-api/internal/core"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd(os.Stdout, core.New).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
