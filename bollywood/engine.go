package bollywood

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrTimeout is returned by Ask when no reply arrives in time.
	ErrTimeout = errors.New("bollywood: ask timed out")
	// ErrActorNotFound is returned by Ask for an unknown or stopped PID.
	ErrActorNotFound = errors.New("bollywood: actor not found")
	// ErrMailboxFull is returned by Ask when the target mailbox is saturated.
	ErrMailboxFull = errors.New("bollywood: mailbox full")
	// ErrStopping is returned by Ask once the engine is shutting down.
	ErrStopping = errors.New("bollywood: engine stopping")
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex // protects actors
	stopping   atomic.Bool
	logger     *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for actor lifecycle and panic reports.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a new actor engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		actors: make(map[string]*process),
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "bollywood", Level: log.WarnLevel}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn creates and starts a new actor based on the provided Props.
// It returns nil once the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		e.logger.Warn("engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()

	e.Send(pid, Started{}, nil)
	return pid
}

func (e *Engine) lookup(pid *PID) (*process, bool) {
	if pid == nil {
		return nil, false
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	return proc, ok
}

// Send delivers a message to the actor identified by pid. Messages to
// unknown actors are dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}
	if proc, ok := e.lookup(pid); ok {
		proc.deliver(&messageEnvelope{Sender: sender, Message: message})
	}
}

// Ask sends message to pid and waits up to timeout for the actor to call
// Context.Respond.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if e.stopping.Load() {
		return nil, ErrStopping
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActorNotFound, pid)
	}

	replyCh := make(chan interface{}, 1)
	if !proc.deliver(&messageEnvelope{Message: message, replyCh: replyCh}) {
		return nil, fmt.Errorf("%w: %s", ErrMailboxFull, pid)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case reply := <-replyCh:
		return reply, nil
	case <-timer.C:
		return nil, fmt.Errorf("%w after %s waiting on %s (%T)", ErrTimeout, timeout, pid, message)
	}
}

// Stop asks an actor to stop. Stopping is queued for graceful cleanup and
// the stop channel is closed so a full mailbox cannot keep the actor alive.
func (e *Engine) Stop(pid *PID) {
	proc, ok := e.lookup(pid)
	if !ok {
		return
	}
	proc.deliver(&messageEnvelope{Message: Stopping{}})
	proc.signalStop()
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops all actors and waits up to timeout for them to terminate.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	pids := make([]*PID, 0, len(e.actors))
	for _, proc := range e.actors {
		pids = append(pids, proc.pid)
	}
	e.mu.RUnlock()

	e.logger.Debug("engine shutdown initiated", "actors", len(pids))
	for _, pid := range pids {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.actors)
		e.mu.RUnlock()
		if remaining == 0 {
			e.logger.Debug("engine shutdown complete")
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	e.mu.Lock()
	remaining := make([]string, 0, len(e.actors))
	for id := range e.actors {
		remaining = append(remaining, id)
	}
	e.actors = make(map[string]*process)
	e.mu.Unlock()
	e.logger.Warn("engine shutdown timeout", "remaining", remaining)
}
