package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"udplog/internal/global"
)

const (
	RootCLICommand  string = "root"
	helpMenuTrailer string = `
Console menu (collect):
  1 set client log level, 2 dump log file, 3 show statistics, 0 shut down
`
)

// Full standardized help menu on stdout
func PrintHelpMenu(fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	WriteHelpMenu(os.Stdout, fs, command, rootCmd)
}

// Writes the help menu for command (wraps option printer as well)
func WriteHelpMenu(w io.Writer, fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	const baseIndentSpaces = 2

	// Find the command in tree (one level of subcommands)
	curCmdSet := rootCmd
	if command != "" && command != RootCLICommand {
		cmd, ok := rootCmd.ChildCommands[command]
		if !ok {
			fmt.Fprintf(w, "Unknown command: %s\n", command)
			return
		}
		curCmdSet = cmd
	}

	// Build full usage path
	usageParts := []string{filepath.Base(os.Args[0])}
	if curCmdSet != rootCmd {
		usageParts = append(usageParts, curCmdSet.CommandName)
	}

	// Add child commands or usage options
	if len(curCmdSet.ChildCommands) > 1 {
		usageParts = append(usageParts, "[subcommand]")
	} else if len(curCmdSet.ChildCommands) == 1 {
		for name := range curCmdSet.ChildCommands {
			usageParts = append(usageParts, name)
		}
	}
	if curCmdSet.UsageOption != "" {
		usageParts = append(usageParts, curCmdSet.UsageOption)
	}

	fmt.Fprintf(w, "Usage: %s\n\n", strings.Join(usageParts, " "))

	// Description
	if curCmdSet == rootCmd {
		fmt.Fprintln(w, curCmdSet.Description)
		fmt.Fprintln(w, curCmdSet.FullDescription)
		fmt.Fprintln(w)
	} else if curCmdSet.FullDescription != "" {
		fmt.Fprintln(w, "  Description:")
		fmt.Fprintf(w, "    %s\n\n", curCmdSet.FullDescription)
	}

	// Subcommands
	if len(curCmdSet.ChildCommands) > 0 {
		indent := strings.Repeat(" ", baseIndentSpaces)
		fmt.Fprintf(w, "%sSubcommands:\n", indent)

		// Compute max length for padding
		maxLen := 0
		for name := range curCmdSet.ChildCommands {
			if len(name) > maxLen {
				maxLen = len(name)
			}
		}

		// Sort subcommand names
		subNames := make([]string, 0, len(curCmdSet.ChildCommands))
		for name := range curCmdSet.ChildCommands {
			subNames = append(subNames, name)
		}
		sort.Strings(subNames)

		cmdIndent := strings.Repeat(" ", baseIndentSpaces+2)
		for _, name := range subNames {
			sub := curCmdSet.ChildCommands[name]
			padding := strings.Repeat(" ", maxLen-len(name)+2)
			fmt.Fprintf(w, "%s%s%s - %s\n", cmdIndent, name, padding, sub.Description)
		}
		fmt.Fprintln(w)
	}

	// Flag
	printFlagOptions(w, fs, baseIndentSpaces)

	// Top-level trailer
	if curCmdSet == rootCmd {
		fmt.Fprint(w, helpMenuTrailer)
	}
}

// Prints each option once, pairing the short and long names that share usage text
func printFlagOptions(w io.Writer, fs *flag.FlagSet, baseIndentSpaces int) {
	const argToUsageSpaces int = 2 // like "  -t, --test[  ]Some usage text"

	// Long-only options line up with the long half of paired options ("-t, ")
	const shortColumn int = len("-t, ")

	type option struct {
		short      string
		long       string
		usage      string
		defaultVal string
	}

	var options []*option
	byUsage := make(map[string]*option)
	fs.VisitAll(func(arg *flag.Flag) {
		opt, seen := byUsage[arg.Usage]
		if !seen {
			opt = &option{usage: arg.Usage, defaultVal: arg.DefValue}
			byUsage[arg.Usage] = opt
			options = append(options, opt)
		}
		if len(arg.Name) == 1 {
			opt.short = "-" + arg.Name
		} else {
			opt.long = "--" + arg.Name
		}
	})

	// Left column text, already indented for long-only options
	left := func(opt *option) (text string) {
		switch {
		case opt.short != "" && opt.long != "":
			text = opt.short + ", " + opt.long
		case opt.short != "":
			text = opt.short
		default:
			text = strings.Repeat(" ", shortColumn) + opt.long
		}
		return
	}

	sort.Slice(options, func(a, b int) bool {
		return strings.ToLower(strings.TrimSpace(left(options[a]))) < strings.ToLower(strings.TrimSpace(left(options[b])))
	})

	maxLen := 0
	for _, opt := range options {
		maxLen = max(maxLen, len(left(opt)))
	}

	indent := strings.Repeat(" ", baseIndentSpaces)
	fmt.Fprintf(w, "%sOptions:\n", indent)
	for _, opt := range options {
		desc := opt.usage
		// Skip printing any "empty" defaults
		if opt.defaultVal != "" && opt.defaultVal != "false" && opt.defaultVal != "0" {
			desc += fmt.Sprintf(" [default: %s]", opt.defaultVal)
		}
		text := left(opt)
		padding := strings.Repeat(" ", maxLen-len(text)+argToUsageSpaces)
		fmt.Fprintf(w, "%s%s%s%s\n", indent, text, padding, desc)
	}
}
