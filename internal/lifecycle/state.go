package lifecycle

import "sync/atomic"

// Lifecycle position shared by client and collector instances
type State int32

const (
	StateCreated State = iota
	StateRunning
	StateStopRequested
	StateStopped
)

func (state State) String() string {
	switch state {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateStopRequested:
		return "stop-requested"
	case StateStopped:
		return "stopped"
	default:
		return "invalid"
	}
}

// Created -> Running -> StopRequested -> Stopped, each transition at most once.
// Safe for concurrent use.
type StateMachine struct {
	current atomic.Int32
}

func (machine *StateMachine) Load() (state State) {
	state = State(machine.current.Load())
	return
}

// Created -> Running
func (machine *StateMachine) Start() (ok bool) {
	ok = machine.current.CompareAndSwap(int32(StateCreated), int32(StateRunning))
	return
}

// Running -> StopRequested. Only the first caller gets true and owns teardown.
// A never started instance goes straight to Stopped and also returns true.
func (machine *StateMachine) RequestStop() (ok bool) {
	if machine.current.CompareAndSwap(int32(StateRunning), int32(StateStopRequested)) {
		ok = true
		return
	}
	if machine.current.CompareAndSwap(int32(StateCreated), int32(StateStopRequested)) {
		ok = true
		return
	}
	return
}

// StopRequested -> Stopped (terminal)
func (machine *StateMachine) Finish() {
	machine.current.CompareAndSwap(int32(StateStopRequested), int32(StateStopped))
}

// True once a stop has been requested, including after completion
func (machine *StateMachine) Stopping() (stopping bool) {
	stopping = machine.Load() >= StateStopRequested
	return
}
