package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"udplog/internal/global"
	"udplog/internal/lifecycle"
	"udplog/internal/logctx"
	"udplog/pkg/client"
	"udplog/pkg/protocol"
)

const (
	stdinFileName     string = "stdin"
	stdinFunctionName string = "send"
)

// Sends every line of in as a record at the chosen level until input ends
// or a signal arrives. Returns the process exit code.
func SendMode(ctx context.Context, commandname string, args []string, in io.Reader, out io.Writer) (exitCode int) {
	var collectorAddress string
	var levelName string
	commandFlags := flag.NewFlagSet(commandname, flag.ContinueOnError)
	SetGlobalArguments(commandFlags)
	defaultAddress := net.JoinHostPort(global.DefaultCollectorIP, strconv.Itoa(global.DefaultCollectorPort))
	commandFlags.StringVar(&collectorAddress, "a", defaultAddress, "Collector address (host:port)")
	commandFlags.StringVar(&collectorAddress, "address", defaultAddress, "Collector address (host:port)")
	commandFlags.StringVar(&levelName, "l", protocol.LevelDebug.String(), "Level of each record (0-3 or DEBUG|WARNING|ERROR|CRITICAL)")
	commandFlags.StringVar(&levelName, "level", protocol.LevelDebug.String(), "Level of each record (0-3 or DEBUG|WARNING|ERROR|CRITICAL)")

	commandFlags.Usage = func() {
		WriteHelpMenu(out, commandFlags, commandname, global.CmdOpts)
	}
	err := commandFlags.Parse(args)
	if err != nil {
		exitCode = 2
		return
	}
	logctx.SetLogLevel(ctx, global.Verbosity)

	level, err := protocol.ParseLevel(levelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = 1
		return
	}

	logClient, err := client.New(ctx, client.Config{CollectorAddress: collectorAddress})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting client: %v\n", err)
		exitCode = 1
		return
	}
	defer logClient.Shutdown()

	sendCtx, stopSending := context.WithCancel(ctx)
	defer stopSending()
	go lifecycle.SignalHandler(sendCtx, lifecycle.StopFunc(stopSending))

	err = sendLines(sendCtx, in, logClient, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = 1
		return
	}
	return
}

// Logs lines from in until it ends or ctx is done
func sendLines(ctx context.Context, in io.Reader, logClient *client.Client, level protocol.Level) (err error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	lineNumber := 0
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				select {
				case err = <-readErr:
				default:
				}
				if err != nil {
					err = fmt.Errorf("failed reading input: %w", err)
				}
				return
			}
			lineNumber++
			logClient.Log(level, stdinFileName, stdinFunctionName, lineNumber, line)
		}
	}
}
