/*
File    : golox/internal/repl/repl.go
Package : repl

Package repl implements golox's interactive Read-Eval-Print Loop and
its TCP-backed multi-session variant: readline-backed line editing and
history, a colored startup banner, and a loop that feeds each line
through the same pipeline file execution uses, displaying diagnostics
in place rather than exiting the process.
*/
package repl

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/akashmaji946/golox/internal/interp"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
)

// Repl holds the cosmetic configuration for an interactive session:
// its banner, version line, and prompt.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner, version string, separator
// line, and prompt.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// printBanner writes the startup banner to writer.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "golox "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type Lox statements and press enter.")
	cyanColor.Fprintln(writer, "A blank line or '.exit' ends the session.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop over writer, reading lines via readline
// until a blank line, ".exit", or Ctrl-D ends the session. Each line
// runs against the same *interp.Interp, so variable and function
// declarations persist across lines exactly as they would across
// statements in a single file.
func (r *Repl) Start(writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdout: writer,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	in := interp.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			fmt.Fprintln(writer, "Good bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" || line == ".exit" {
			fmt.Fprintln(writer, "Good bye!")
			return nil
		}
		rl.SaveHistory(line)

		interp.Run(line, in, writer)
	}
}

// Serve listens on addr and runs one independent REPL session per TCP
// connection, each with its own *interp.Interp: concurrent client
// sessions, but no concurrency inside any single Lox program.
func (r *Repl) Serve(addr string, stderr io.Writer) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	defer listener.Close()

	cyanColor.Fprintf(stderr, "golox REPL server listening on %s\n", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			fmt.Fprintf(stderr, "[SERVER ERROR] accept: %v\n", err)
			continue
		}
		go r.handleConn(conn, stderr)
	}
}

func (r *Repl) handleConn(conn net.Conn, stderr io.Writer) {
	defer conn.Close()
	cyanColor.Fprintf(stderr, "client connected: %s\n", conn.RemoteAddr())

	session := &Repl{Banner: r.Banner, Version: r.Version, Line: r.Line, Prompt: r.Prompt}
	if err := session.startOverConn(conn); err != nil {
		fmt.Fprintf(stderr, "[SERVER ERROR] session %s: %v\n", conn.RemoteAddr(), err)
	}

	cyanColor.Fprintf(stderr, "client disconnected: %s\n", conn.RemoteAddr())
}

// startOverConn runs the same loop as Start but reads lines straight
// off the TCP connection with bufio, since readline's line editing
// depends on terminal control sequences a raw socket doesn't give it.
func (r *Repl) startOverConn(conn net.Conn) error {
	r.printBanner(conn)
	fmt.Fprint(conn, r.Prompt)

	in := interp.New(conn)
	scanner := bufio.NewScanner(conn)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == ".exit" {
			break
		}
		interp.Run(line, in, conn)
		fmt.Fprint(conn, r.Prompt)
	}

	fmt.Fprintln(conn, "Good bye!")
	return scanner.Err()
}
