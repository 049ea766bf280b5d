package main

import (
	"fmt"
	"io"
	"os"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve      Run the browser editor with live preview")
	fmt.Fprintln(w, "  render     Convert markdown files to HTML")
	fmt.Fprintln(w, "  export     Convert a markdown file to PDF")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdedit help <command>' for details on a specific command.")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the browser editor: a textarea with a formatting toolbar and a")
	fmt.Fprintln(w, "live HTML preview pushed over a websocket.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -a, --addr <host:port>    Listen address (default :7350)")
	fmt.Fprintln(w, "  -f, --file <path>         Markdown file to load as the initial document")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -e, --engine <s>          Preview engine: lite, goldmark")
	fmt.Fprintln(w, "      --escape-html         Escape HTML in input (lite engine)")
	fmt.Fprintln(w, "  -s, --style <s>           Style name, CSS file path, or raw CSS")
	fmt.Fprintln(w, "  -v, --verbose             Show request logging")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit render <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files or directories to standalone HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (default: next to input)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -e, --engine <s>          Preview engine: lite, goldmark")
	fmt.Fprintln(w, "      --escape-html         Escape HTML in input (lite engine)")
	fmt.Fprintln(w, "  -s, --style <s>           Style name, CSS file path, or raw CSS")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit export <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file to PDF via headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path (default: input with .pdf)")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w, "      --timeout <d>         Export timeout (e.g. 2m, 90s)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -e, --engine <s>          Preview engine: lite, goldmark")
	fmt.Fprintln(w, "  -s, --style <s>           Style name, CSS file path, or raw CSS")
}

// runHelp handles the help subcommand.
func runHelp(args []string) error {
	if len(args) == 0 {
		printUsage(os.Stdout)
		return nil
	}

	switch args[0] {
	case "serve":
		printServeUsage(os.Stdout)
	case "render":
		printRenderUsage(os.Stdout)
	case "export":
		printExportUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %q\n\n", args[0])
		printUsage(os.Stderr)
		return errUsage
	}
	return nil
}
