package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"udplog/internal/collector"
	"udplog/internal/console"
	"udplog/internal/global"
	"udplog/internal/lifecycle"
	"udplog/internal/logctx"
)

// Runs a collector with the operator console on in/out until the operator
// or a signal shuts it down. Returns the process exit code.
func CollectMode(ctx context.Context, commandname string, args []string, in io.Reader, out io.Writer) (exitCode int) {
	var configPath string
	commandFlags := flag.NewFlagSet(commandname, flag.ContinueOnError)
	SetGlobalArguments(commandFlags)
	SetCommon(commandFlags, &configPath)

	commandFlags.Usage = func() {
		WriteHelpMenu(out, commandFlags, commandname, global.CmdOpts)
	}
	err := commandFlags.Parse(args)
	if err != nil {
		exitCode = 2
		return
	}
	logctx.SetLogLevel(ctx, global.Verbosity)

	cfg, err := loadCollectorConfig(configPath, flagWasSet(commandFlags, "c", "config"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = 1
		return
	}

	logCollector := collector.New(cfg)
	err = logCollector.Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting collector: %v\n", err)
		exitCode = 1
		return
	}
	defer logCollector.Stop()

	err = lifecycle.NotifyReady(ctx)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd notify ready failed: %v\n", err)
	}

	// Signals stop the collector first, then end the console
	consoleCtx, stopConsole := context.WithCancel(ctx)
	defer stopConsole()
	go lifecycle.SignalHandler(consoleCtx, logCollector, lifecycle.StopFunc(stopConsole))

	err = console.Run(consoleCtx, in, out, logCollector)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog, "Console stopped: %v\n", err)
	}
	return
}

// The default config path is optional; an explicitly given one must exist
func loadCollectorConfig(configPath string, explicit bool) (cfg collector.Config, err error) {
	jsonCfg, err := collector.LoadConfig(configPath)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			err = nil
		}
		return
	}

	cfg, err = jsonCfg.NewCollectorConf()
	return
}
