// Writes template configuration files for the collector
package install

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"udplog/internal/collector"
	"udplog/internal/global"
)

// Template contents with every option spelled out
func templateConfig() (newCfg collector.JSONConfig) {
	newCfg.Network.Address = global.DefaultListenIP
	newCfg.Network.Port = global.DefaultCollectorPort

	newCfg.Outputs.FilePath = global.DefaultLogFilePath
	newCfg.Outputs.BeatsAddress = ""

	newCfg.Metrics.Interval = global.DefaultMetricInterval.String()
	newCfg.Metrics.MaxAge = global.DefaultMetricMaxAge.String()
	return
}

// Writes a template collector config to filePath. An existing file is only
// replaced after the operator confirms on a terminal.
func CreateTemplateConfig(filePath string, in io.Reader, out io.Writer) (written bool, err error) {
	if filePath == "" {
		err = fmt.Errorf("specify template file path via the --config/-c arguments")
		return
	}

	// Don't overwrite existing
	_, err = os.Stat(filePath)
	if err == nil {
		if !confirmOverwrite(filePath, in, out) {
			fmt.Fprintf(out, "Not overwriting configuration file\n")
			return
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		err = fmt.Errorf("failed checking config file existence: %w", err)
		return
	}

	confBytes, err := json.MarshalIndent(templateConfig(), "", "  ")
	if err != nil {
		err = fmt.Errorf("error marshaling new config: %v", err)
		return
	}
	confBytes = append(confBytes, []byte("\n")...)

	err = os.WriteFile(filePath, confBytes, 0600)
	if err != nil {
		err = fmt.Errorf("failed to write config to file: %w", err)
		return
	}

	written = true
	fmt.Fprintf(out, "Successfully wrote template configuration file to '%s'\n", filePath)
	return
}

// Prompts for "yes" when in is a terminal; anything else declines
func confirmOverwrite(filePath string, in io.Reader, out io.Writer) (confirmed bool) {
	file, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return
	}

	fmt.Fprintf(out, "Configuration file already exists at '%s'. Are you SURE you want to overwrite it? (yes/no): ", filePath)
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)

	confirmed = strings.ToLower(input) == "yes"
	return
}
