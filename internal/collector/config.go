package collector

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"udplog/internal/global"
)

// Loads JSON config from file
func LoadConfig(path string) (cfg JSONConfig, err error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read config file: %w", err)
		return
	}

	err = json.Unmarshal(configFile, &cfg)
	if err != nil {
		err = fmt.Errorf("invalid config syntax in '%s': %v", path, err)
		return
	}
	return
}

// Parses JSON config into collector config. Empty durations are left for setDefaults.
func (cfg JSONConfig) NewCollectorConf() (config Config, err error) {
	// Network settings
	config.ListenIP = cfg.Network.Address
	config.ListenPort = cfg.Network.Port

	// Output settings
	config.LogFilePath = cfg.Outputs.FilePath
	config.BeatsEndpoint = cfg.Outputs.BeatsAddress

	// Metric settings
	if cfg.Metrics.Interval != "" {
		config.MetricCollectionInterval, err = time.ParseDuration(cfg.Metrics.Interval)
		if err != nil {
			err = fmt.Errorf("failed to parse metric collection interval time: %v", err)
			return
		}
	}
	if cfg.Metrics.MaxAge != "" {
		config.MetricMaxAge, err = time.ParseDuration(cfg.Metrics.MaxAge)
		if err != nil {
			err = fmt.Errorf("failed to parse metric max age time: %v", err)
			return
		}
	}

	if config.ListenPort < 0 || config.ListenPort > 65535 {
		err = fmt.Errorf("invalid listen port %d", config.ListenPort)
		return
	}
	return
}

// Sets defaults for any missing/invalid values
func (cfg *Config) setDefaults() {
	// Network
	if cfg.ListenIP == "" {
		cfg.ListenIP = global.DefaultListenIP
	}
	if cfg.ListenPort == 0 {
		cfg.ListenPort = global.DefaultCollectorPort
	}

	// Outputs
	if cfg.LogFilePath == "" {
		cfg.LogFilePath = global.DefaultLogFilePath
	}

	// Metrics
	if cfg.MetricCollectionInterval <= 0 {
		cfg.MetricCollectionInterval = global.DefaultMetricInterval
	}
	if cfg.MetricMaxAge <= 0 {
		cfg.MetricMaxAge = global.DefaultMetricMaxAge
	}
}
