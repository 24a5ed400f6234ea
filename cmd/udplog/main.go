package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"udplog/internal/cli"
	"udplog/internal/global"
	"udplog/internal/logctx"
)

func main() {
	global.CmdOpts = cli.DefineOptions()

	args := os.Args
	commandFlags := flag.NewFlagSet(args[0], flag.ExitOnError)
	cli.SetGlobalArguments(commandFlags)

	commandFlags.Usage = func() {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, global.CmdOpts)
	}
	if len(args) < 2 {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, global.CmdOpts)
		os.Exit(1)
	}

	// Retrieve command and args
	command := args[1]
	args = args[2:]

	// Setting global logging (subcommands adjust the level after parsing their flags)
	ctx, cancel := context.WithCancel(context.Background())
	logger := logctx.NewLogger("global", global.VerbosityStandard, ctx.Done()) // New logger tied to global
	ctx = logctx.WithLogger(ctx, logger)                                       // Add logger to global ctx
	logctx.StartWatcher(logger, os.Stderr)                                     // Diagnostics never mix with console output

	// Process commands
	var exitCode int
	switch command {
	case "collect":
		exitCode = cli.CollectMode(ctx, command, args, os.Stdin, os.Stdout)
	case "send":
		exitCode = cli.SendMode(ctx, command, args, os.Stdin, os.Stdout)
	case "configure":
		exitCode = cli.SetupMode(command, args, os.Stdin, os.Stdout)
	case "version":
		if len(args) > 0 && (args[0] == "--verbosity" || args[0] == "-v") {
			fmt.Printf("udplog %s\n", global.ProgVersion)
			fmt.Printf("Built using %s(%s) for %s on %s\n", runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
		} else {
			fmt.Println(global.ProgVersion)
		}
	case "-h", "--help", "help":
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, global.CmdOpts)
	default:
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, global.CmdOpts)
		exitCode = 1
	}

	// Finish up any writes for global logger
	cancel()
	logger.Wake()
	logger.Wait()
	os.Exit(exitCode)
}
