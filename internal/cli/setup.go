package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"udplog/internal/global"
	"udplog/internal/install"
)

// Setup options. Returns the process exit code.
func SetupMode(commandname string, args []string, in io.Reader, out io.Writer) (exitCode int) {
	var newConf bool
	var templateConfPath string

	commandFlags := flag.NewFlagSet(commandname, flag.ContinueOnError)
	commandFlags.StringVar(&templateConfPath, "c", global.DefaultConfigPath, "Path to template config file")
	commandFlags.StringVar(&templateConfPath, "config", global.DefaultConfigPath, "Path to template config file")
	commandFlags.BoolVar(&newConf, "config-template", false, "Create new template config for the collector (using config argument)")

	commandFlags.Usage = func() {
		WriteHelpMenu(out, commandFlags, commandname, global.CmdOpts)
	}
	err := commandFlags.Parse(args)
	if err != nil {
		exitCode = 2
		return
	}

	if !newConf {
		WriteHelpMenu(out, commandFlags, commandname, global.CmdOpts)
		exitCode = 1
		return
	}

	_, err = install.CreateTemplateConfig(templateConfPath, in, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = 1
		return
	}
	return
}
