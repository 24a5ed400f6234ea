// Collector side of the logging subsystem: persists every received datagram
// to the shared log file and sends threshold commands to the last client
// heard from.
package collector

import (
	"context"
	"fmt"
	"net"
	"time"

	"udplog/internal/externalio/beats"
	"udplog/internal/global"
	"udplog/internal/lifecycle"
	"udplog/internal/logctx"
	"udplog/internal/metrics"
	"udplog/internal/network"
)

// Create new collector instance
func New(cfg Config) (new *Collector) {
	cfg.setDefaults()
	new = &Collector{
		Namespace: []string{global.NSCollector},
		cfg:       cfg,
	}
	return
}

// Binds the socket and starts the receiver and metric workers. Bind failure
// is returned; a log file that cannot be opened only stops the receiver.
func (collector *Collector) Start(ctx context.Context) (err error) {
	if !collector.state.Start() {
		err = fmt.Errorf("collector already started (state %s)", collector.state.Load())
		return
	}

	// Own context carrying the caller's logger
	collector.ctx, collector.cancel = context.WithCancel(context.WithoutCancel(ctx))
	collector.ctx = logctx.OverwriteCtxTag(collector.ctx, collector.Namespace)

	logctx.LogEvent(collector.ctx, global.VerbosityStandard, global.InfoLog, "Starting...\n")

	collector.conn, err = network.ListenReusableUDP(collector.ctx, collector.cfg.ListenIP, collector.cfg.ListenPort)
	if err != nil {
		collector.abortStart()
		return
	}

	collector.forwarder, err = beats.NewOutput(collector.Namespace, collector.cfg.BeatsEndpoint)
	if err != nil {
		err = fmt.Errorf("failed starting beats output: %w", err)
		collector.conn.Close()
		collector.abortStart()
		return
	}

	workerCtx := collector.ctx
	collector.wg.Add(1)
	go func() {
		defer collector.wg.Done()
		collector.receive(workerCtx)
	}()

	collector.gatherer = metrics.NewGatherer(collector.cfg.MetricCollectionInterval, collector.cfg.MetricMaxAge, collector)
	collector.wg.Add(1)
	go func() {
		defer collector.wg.Done()
		collector.gatherer.Run(workerCtx)
	}()

	logctx.LogEvent(collector.ctx, global.VerbosityStandard, global.InfoLog,
		"Listening on %s, writing to '%s'\n", collector.conn.LocalAddr(), collector.cfg.LogFilePath)
	return
}

func (collector *Collector) abortStart() {
	collector.cancel()
	collector.state.RequestStop()
	collector.state.Finish()
}

// Stops all workers and releases the socket and outputs. Only the first call
// does anything.
func (collector *Collector) Stop() {
	if !collector.state.RequestStop() {
		return
	}
	if collector.cancel == nil {
		// Never started
		collector.state.Finish()
		return
	}

	logctx.LogEvent(collector.ctx, global.VerbosityStandard, global.InfoLog, "Collector shutdown started...\n")

	collector.cancel()
	err := collector.conn.Close()
	if err != nil {
		logctx.LogEvent(collector.ctx, global.VerbosityStandard, global.WarnLog,
			"Failed to close listener socket: %v\n", err)
	}

	// Wait for all workers to finish (with timeout)
	done := make(chan struct{})
	go func() {
		collector.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(global.CollectorShutdownTimeout):
		logctx.LogEvent(collector.ctx, global.VerbosityStandard, global.WarnLog,
			"Timeout: collector workers did not stop within %v\n", global.CollectorShutdownTimeout)
	}

	err = collector.forwarder.Shutdown()
	if err != nil {
		logctx.LogEvent(collector.ctx, global.VerbosityStandard, global.WarnLog,
			"Failed to close beats output: %v\n", err)
	}

	collector.state.Finish()
	logctx.LogEvent(collector.ctx, global.VerbosityStandard, global.InfoLog, "Collector shutdown completed\n")
}

// Current lifecycle state
func (collector *Collector) State() (state lifecycle.State) {
	state = collector.state.Load()
	return
}

// Effective configuration with defaults applied
func (collector *Collector) Config() (cfg Config) {
	cfg = collector.cfg
	return
}

// Bound listener address, nil before Start
func (collector *Collector) LocalAddr() (addr *net.UDPAddr) {
	if collector.conn == nil {
		return
	}
	addr, _ = collector.conn.LocalAddr().(*net.UDPAddr)
	return
}
