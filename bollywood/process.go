package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	props    *Props
	mailbox  chan *messageEnvelope
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// deliver enqueues an envelope without blocking. It reports false when the
// message was dropped.
func (p *process) deliver(envelope *messageEnvelope) bool {
	if p.stopped.Load() && !isSystemMessage(envelope.Message) {
		return false
	}
	select {
	case p.mailbox <- envelope:
		return true
	default:
		p.engine.logger.Warn("mailbox full, dropping message", "pid", p.pid, "type", typeName(envelope.Message))
		return false
	}
}

func (p *process) signalStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invoke(&messageEnvelope{Message: Stopped{}})
		}
		p.engine.remove(p.pid)
	}()
	defer func() {
		if r := recover(); r != nil {
			p.engine.logger.Error("actor panicked", "pid", p.pid, "panic", r, "stack", string(debug.Stack()))
			p.stopped.Store(true)
			p.signalStop()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic("bollywood: producer returned nil actor for " + p.pid.ID)
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invoke(&messageEnvelope{Message: Stopping{}})
			}
			return

		case envelope := <-p.mailbox:
			if _, isStopping := envelope.Message.(Stopping); isStopping {
				if p.stopped.CompareAndSwap(false, true) {
					p.invoke(envelope)
				}
				p.signalStop()
				continue
			}
			if p.stopped.Load() {
				continue
			}
			p.invoke(envelope)
		}
	}
}

// invoke calls Receive, recovering from panics raised by the actor.
func (p *process) invoke(envelope *messageEnvelope) {
	defer func() {
		if r := recover(); r != nil {
			p.engine.logger.Error("actor panicked during Receive",
				"pid", p.pid, "type", typeName(envelope.Message), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	p.actor.Receive(&context{engine: p.engine, self: p.pid, envelope: envelope})
}

func typeName(v interface{}) string { return fmt.Sprintf("%T", v) }
