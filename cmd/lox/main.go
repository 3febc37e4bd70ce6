/*
File    : golox/cmd/lox/main.go
Package : main

golox is a tree-walking Lox interpreter. Run with no arguments for an
interactive REPL, with one argument to execute a script file, or with
"server <port>" to serve REPL sessions over TCP.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/internal/interp"
	"github.com/akashmaji946/golox/internal/repl"
	"github.com/fatih/color"
)

const version = "v0.1.0"

const banner = `
   ____       _
  / ___| ___ | | _____  __
 | |  _ / _ \| |/ _ \ \/ /
 | |_| | (_) | | (_) >  <
  \____|\___/|_|\___/_/\_\
`

const separator = "----------------------------------------------------------------"
const prompt = "lox> "

var redColor = color.New(color.FgRed)

func main() {
	switch len(os.Args) {
	case 1:
		session := repl.New(banner, version, separator, prompt)
		if err := session.Start(os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
			os.Exit(1)
		}
	case 2:
		switch os.Args[1] {
		case "--help", "-h":
			printHelp()
		case "--version", "-v":
			printVersion()
		default:
			runFile(os.Args[1])
		}
	case 3:
		if os.Args[1] != "server" {
			usage()
		}
		runServer(os.Args[2])
	default:
		usage()
	}
}

func usage() {
	redColor.Fprintln(os.Stderr, "Usage: lox [script]")
	redColor.Fprintln(os.Stderr, "       lox server <port>")
	os.Exit(64)
}

func printHelp() {
	fmt.Println("golox - a Lox interpreter")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  lox                  Start an interactive REPL")
	fmt.Println("  lox <script>         Run a Lox script file")
	fmt.Println("  lox server <port>    Serve REPL sessions over TCP")
	fmt.Println("  lox --help           Show this message")
	fmt.Println("  lox --version        Show version information")
}

func printVersion() {
	fmt.Println("golox " + version)
}

// runFile reads and executes a script. Exit status is 0 on success,
// 65 on a lexical/parse/resolve error, 70 on a runtime error.
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		os.Exit(66)
	}

	in := interp.New(os.Stdout)
	hadError, hadRuntimeError := runWithRecovery(string(src), in)

	switch {
	case hadRuntimeError:
		os.Exit(70)
	case hadError:
		os.Exit(65)
	}
}

// runWithRecovery wraps interp.Run in a panic/recover boundary so an
// interpreter bug never crashes the process with a raw Go stack
// trace.
func runWithRecovery(source string, in *interp.Interp) (hadError, hadRuntimeError bool) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "[INTERNAL ERROR] %v\n", r)
			hadRuntimeError = true
		}
	}()
	return interp.Run(source, in, os.Stderr)
}

func runServer(port string) {
	session := repl.New(banner, version, separator, prompt)
	if err := session.Serve(":"+port, os.Stderr); err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] %v\n", err)
		os.Exit(1)
	}
}
