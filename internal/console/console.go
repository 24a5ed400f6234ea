// Operator console for a running collector: reads menu selections line by
// line and maps them onto collector operations.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"udplog/internal/global"
	"udplog/internal/logctx"
	"udplog/internal/metrics"
	"udplog/pkg/protocol"
)

const menuText string = `
  1) Set client log level
  2) Dump log file
  3) Show statistics
  0) Shut down
`

// What the console can ask of the collector
type Operations interface {
	SetRemoteLevel(level protocol.Level) (err error)
	WriteLog(w io.Writer) (err error)
	Stats() (snapshot []metrics.Metric)
}

type session struct {
	in     io.Reader
	out    io.Writer
	ops    Operations
	prompt bool // print menu and prompts before reading
}

// Runs the menu until the operator selects shutdown, input ends, or ctx is
// cancelled. Menus and prompts are only printed when in is a terminal.
func Run(ctx context.Context, in io.Reader, out io.Writer, ops Operations) (err error) {
	console := &session{
		in:     in,
		out:    out,
		ops:    ops,
		prompt: isTerminal(in),
	}
	err = console.run(ctx)
	return
}

func isTerminal(in io.Reader) (interactive bool) {
	file, ok := in.(*os.File)
	if !ok {
		return
	}
	interactive = term.IsTerminal(int(file.Fd()))
	return
}

// Lines from in, closed at end of input. The reader may outlive the session
// when in blocks; it exits on its next line once ctx is done.
func readLines(ctx context.Context, in io.Reader) (lines chan string, readErr chan error) {
	lines = make(chan string)
	readErr = make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return
}

func (console *session) run(ctx context.Context) (err error) {
	ctx = logctx.AppendCtxTag(ctx, global.NSConsole)
	lines, readErr := readLines(ctx, console.in)

	awaitingLevel := false
	console.showMenu()

	for {
		var line string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case line, ok = <-lines:
		}

		if !ok {
			// End of operator input is treated as a shutdown request
			select {
			case err = <-readErr:
			default:
			}
			if err != nil {
				err = fmt.Errorf("failed reading console input: %w", err)
			}
			return
		}

		if awaitingLevel {
			awaitingLevel = false
			console.setLevel(ctx, line)
			console.showMenu()
			continue
		}

		switch line {
		case "":
		case "1":
			console.printPrompt("Log level (0-3 or DEBUG|WARNING|ERROR|CRITICAL): ")
			awaitingLevel = true
			continue
		case "2":
			console.dumpLog(ctx)
		case "3":
			console.showStats()
		case "0":
			logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog, "Shutdown selected from console\n")
			return
		default:
			fmt.Fprintf(console.out, "Invalid selection '%s'\n", line)
		}
		console.showMenu()
	}
}

func (console *session) showMenu() {
	console.printPrompt(menuText + "Selection: ")
}

func (console *session) printPrompt(text string) {
	if !console.prompt {
		return
	}
	fmt.Fprint(console.out, text)
}

func (console *session) setLevel(ctx context.Context, input string) {
	level, err := protocol.ParseLevel(input)
	if err != nil {
		fmt.Fprintf(console.out, "Invalid log level '%s'\n", input)
		return
	}

	err = console.ops.SetRemoteLevel(level)
	if err != nil {
		fmt.Fprintf(console.out, "Failed to set client log level: %v\n", err)
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Failed to set client log level: %v\n", err)
		return
	}
	fmt.Fprintf(console.out, "Client log level set to %s\n", level)
}

func (console *session) dumpLog(ctx context.Context) {
	err := console.ops.WriteLog(console.out)
	if err != nil {
		fmt.Fprintf(console.out, "Failed to dump log file: %v\n", err)
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Failed to dump log file: %v\n", err)
	}
}

func (console *session) showStats() {
	snapshot := console.ops.Stats()
	if len(snapshot) == 0 {
		fmt.Fprintln(console.out, "No statistics collected yet")
		return
	}
	for _, metric := range snapshot {
		fmt.Fprintln(console.out, metric.String())
	}
}
