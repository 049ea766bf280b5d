package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS silently; verbose-gated logging happens after
	// flag parsing inside run.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	err := run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCodeFor(err))
}

// run dispatches the subcommand. args is os.Args including the program name.
func run(args []string) error {
	if len(args) < 2 {
		printUsage(os.Stderr)
		return errUsage
	}

	switch args[1] {
	case "serve":
		return runServe(args[2:])
	case "render":
		return runRender(args[2:])
	case "export":
		return runExport(args[2:])
	case "version", "--version":
		fmt.Println("mdedit " + Version)
		return nil
	case "help", "--help", "-h":
		return runHelp(args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %q\n\n", args[1])
		printUsage(os.Stderr)
		return errUsage
	}
}
