// Command nimbus lexes, parses, and evaluates nimbus scripts: exact-fraction
// arithmetic, temperature conversions, named physical constants, user
// functions, and module import.
//
// Usage:
//
//	nimbus script.nbs    Run a script.
//	nimbus               Start the interactive REPL.
package main

import (
	"fmt"
	"log"
	"os"

	"go.creack.net/nimbus/executor"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("nimbus: ")

	switch args := os.Args[1:]; len(args) {
	case 0:
		if err := runREPL(); err != nil {
			log.Fatalf("Fail: %s.", err)
		}
	case 1:
		if err := executor.RunScript(args[0], os.Stdout); err != nil {
			log.Fatalf("Fail: %s.", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [script.%s]\n", os.Args[0], executor.FileExt)
		os.Exit(2)
	}
}
