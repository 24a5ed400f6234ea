package global

import "time"

const (
	// Descriptive Names for available verbosity levels
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
	VerbosityFullData
	VerbosityDebug

	// Descriptive names for available severity levels
	ErrorLog string = "Error"
	WarnLog  string = "Warn"
	InfoLog  string = "Info"
)

const (
	ProgVersion  string = "v0.3.1"
	ProgBaseName string = "udplog"

	// Context keys
	LoggerKey  CtxKey = "logger"  // Event queue (mostly for variable log verbosity handling)
	LogTagsKey CtxKey = "logtags" // List of tags in order of broad->specific appended/popped at various parts of the program

	DefaultConfigPath    string = "/etc/udplog.json"
	DefaultLogFilePath   string = "server.log"
	DefaultCollectorIP   string = "127.0.0.1"
	DefaultCollectorPort int    = 9000
	DefaultListenIP      string = "::"

	// Largest serialized record, including trailing newline
	BufferLength int = 1024

	// Timeout values
	CollectorShutdownTimeout time.Duration = 5 * time.Second
	ClientShutdownTimeout    time.Duration = 2 * time.Second
	BeatsDialTimeout         time.Duration = 3 * time.Second

	// Metric defaults
	DefaultMetricInterval time.Duration = 15 * time.Second
	DefaultMetricMaxAge   time.Duration = 1 * time.Hour

	// Namespacing Name Components
	NSMetric    string = "Metrics"
	NSTest      string = "Test"
	NSClient    string = "Client"
	NSCollector string = "Collector"
	NSConsole   string = "Console"
	NSListen    string = "Listener"
	NSoFile     string = "File"
	NSoBeats    string = "Beats"
)
