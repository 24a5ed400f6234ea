package cli

import "udplog/internal/global"

func DefineOptions() (cmdOpts *global.CommandSet) {
	// Root level
	root := &global.CommandSet{
		Description:     "UDP Log Collector (udplog)",
		FullDescription: "  Sends leveled log records over UDP and collects them into a shared file",
		CommandName:     RootCLICommand,
		ChildCommands:   make(map[string]*global.CommandSet),
	}

	// Collecting
	root.ChildCommands["collect"] = &global.CommandSet{
		CommandName:     "collect",
		Description:     "Run Collector",
		FullDescription: "Receives log records, appends them to the log file, and runs the operator console on standard input",
		ChildCommands:   nil,
	}

	// Sending
	root.ChildCommands["send"] = &global.CommandSet{
		CommandName:     "send",
		Description:     "Send Records",
		FullDescription: "Sends each line of standard input as a log record and applies level changes from the collector",
		ChildCommands:   nil,
	}

	// Setup
	root.ChildCommands["configure"] = &global.CommandSet{
		CommandName:     "configure",
		Description:     "Setup Actions",
		FullDescription: "Create a template collector configuration file",
		ChildCommands:   nil,
	}

	// Version Info
	root.ChildCommands["version"] = &global.CommandSet{
		CommandName:     "version",
		Description:     "Show Version Information",
		FullDescription: "Display meta information about program",
	}

	cmdOpts = root
	return
}
