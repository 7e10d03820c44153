// File: game/session_actor.go
package game

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lguibr/duopong/bollywood"
)

// SessionActor owns a GameSession. Ticks from its ticker goroutine and host
// commands arrive through the same mailbox, so the session is never touched
// concurrently.
type SessionActor struct {
	session  *GameSession
	engine   *bollywood.Engine
	period   time.Duration
	logger   *log.Logger
	selfPID  *bollywood.PID
	ticker   *time.Ticker
	stopCh   chan struct{}
	lastTick time.Time
	saves    chan saveJob
}

// saveJob is a store write answered once it completes.
type saveJob struct {
	settings Settings
	reply    bollywood.Context
}

// pendingSaves bounds the settings writes queued behind a slow store.
const pendingSaves = 4

// NewSessionActorProducer creates a producer for a SessionActor. A zero
// period disables the internal ticker; TickMessage can still be sent.
func NewSessionActorProducer(engine *bollywood.Engine, session *GameSession, period time.Duration) bollywood.Producer {
	return func() bollywood.Actor {
		return &SessionActor{
			session: session,
			engine:  engine,
			period:  period,
			logger:  session.logger.With("component", "session-actor"),
			stopCh:  make(chan struct{}),
			saves:   make(chan saveJob, pendingSaves),
		}
	}
}

// Receive is the main message handler for the SessionActor.
func (a *SessionActor) Receive(ctx bollywood.Context) {
	switch m := ctx.Message().(type) {
	case bollywood.Started:
		a.selfPID = ctx.Self()
		a.logger.Debug("started", "pid", a.selfPID)
		go a.runSettingsWriter()
		if a.period > 0 {
			a.ticker = time.NewTicker(a.period)
			a.lastTick = time.Now()
			go a.runTickerLoop(a.selfPID)
		}

	case TickMessage:
		a.session.Tick(m.Dt)

	case InputMessage:
		if m.Event != nil {
			a.session.Apply(m.Event)
		}

	case StartGameCommand:
		var err error
		if m.Config != nil {
			err = a.session.StartMatch(*m.Config)
		} else {
			err = a.session.NewGame()
		}
		ctx.Respond(CommandResult{Err: err})

	case ResumeCommand:
		ctx.Respond(CommandResult{Err: a.session.Resume()})

	case PauseCommand:
		ctx.Respond(CommandResult{Err: a.session.Pause()})

	case TogglePauseCommand:
		ctx.Respond(CommandResult{Err: a.session.TogglePause()})

	case SaveSettingsCommand:
		// Store writes run on the writer goroutine, off the tick path.
		saved := a.session.applySettings(m.Settings)
		select {
		case a.saves <- saveJob{settings: saved, reply: ctx}:
		default:
			a.logger.Warn("settings writer busy, not saved", "pending", len(a.saves))
			ctx.Respond(SettingsResponse{Settings: saved, Err: ErrSettingsBusy})
		}

	case SettingsRequest:
		current, err := a.session.Settings()
		ctx.Respond(SettingsResponse{Settings: current, Err: err})

	case SnapshotRequest:
		snap, ok := a.session.Snapshot()
		ctx.Respond(SnapshotResponse{Snapshot: snap, Active: ok})

	case bollywood.Stopping:
		a.stopTicker()
		close(a.saves)

	case bollywood.Stopped:
		a.logger.Debug("stopped", "pid", a.selfPID)

	default:
		a.logger.Warn("unknown message", "type", fmt.Sprintf("%T", m))
	}
}

func (a *SessionActor) stopTicker() {
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	select {
	case <-a.stopCh:
	default:
		close(a.stopCh)
	}
}

// runSettingsWriter performs queued store writes in order until the actor
// stops.
func (a *SessionActor) runSettingsWriter() {
	for job := range a.saves {
		err := a.session.persist(job.settings)
		job.reply.Respond(SettingsResponse{Settings: job.settings, Err: err})
	}
}

// runTickerLoop sends TickMessage to the actor's own mailbox at the
// configured period.
func (a *SessionActor) runTickerLoop(self *bollywood.PID) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("ticker loop panic", "pid", self, "panic", r, "stack", string(debug.Stack()))
		}
	}()

	last := a.lastTick
	for {
		select {
		case <-a.stopCh:
			return
		case now, ok := <-a.ticker.C:
			if !ok {
				return
			}
			dt := now.Sub(last)
			last = now
			select {
			case <-a.stopCh:
				return
			default:
				a.engine.Send(self, TickMessage{Dt: dt}, nil)
			}
		}
	}
}

// SessionClient implements Controller by talking to a SessionActor.
type SessionClient struct {
	engine  *bollywood.Engine
	pid     *bollywood.PID
	timeout time.Duration
}

// DefaultAskTimeout bounds every SessionClient request.
const DefaultAskTimeout = 2 * time.Second

func NewSessionClient(engine *bollywood.Engine, pid *bollywood.PID) *SessionClient {
	return &SessionClient{engine: engine, pid: pid, timeout: DefaultAskTimeout}
}

// SpawnSession starts a SessionActor for session and returns a client for it.
func SpawnSession(engine *bollywood.Engine, session *GameSession, period time.Duration) *SessionClient {
	pid := engine.Spawn(bollywood.NewProps(NewSessionActorProducer(engine, session, period)))
	return NewSessionClient(engine, pid)
}

func (c *SessionClient) PID() *bollywood.PID { return c.pid }

// Stop stops the session actor.
func (c *SessionClient) Stop() { c.engine.Stop(c.pid) }

func (c *SessionClient) command(msg interface{}) error {
	reply, err := c.engine.Ask(c.pid, msg, c.timeout)
	if err != nil {
		return err
	}
	res, ok := reply.(CommandResult)
	if !ok {
		return fmt.Errorf("session: unexpected reply %T", reply)
	}
	return res.Err
}

func (c *SessionClient) NewGame() error     { return c.command(StartGameCommand{}) }
func (c *SessionClient) Resume() error      { return c.command(ResumeCommand{}) }
func (c *SessionClient) Pause() error       { return c.command(PauseCommand{}) }
func (c *SessionClient) TogglePause() error { return c.command(TogglePauseCommand{}) }

// StartMatch starts a match from an explicit configuration.
func (c *SessionClient) StartMatch(mc MatchConfig) error {
	return c.command(StartGameCommand{Config: &mc})
}

// Send delivers ev without waiting.
func (c *SessionClient) Send(ev InputEvent) {
	c.engine.Send(c.pid, InputMessage{Event: ev}, nil)
}

func (c *SessionClient) settings(msg interface{}) (Settings, error) {
	reply, err := c.engine.Ask(c.pid, msg, c.timeout)
	if err != nil {
		return Settings{}, err
	}
	res, ok := reply.(SettingsResponse)
	if !ok {
		return Settings{}, fmt.Errorf("session: unexpected reply %T", reply)
	}
	return res.Settings, res.Err
}

func (c *SessionClient) Settings() (Settings, error) { return c.settings(SettingsRequest{}) }

// SaveSettings applies s at once and waits for the store write, which runs
// beside the tick loop rather than on it.
func (c *SessionClient) SaveSettings(s Settings) (Settings, error) {
	return c.settings(SaveSettingsCommand{Settings: s})
}

// Snapshot returns false when there is no active match or the actor did
// not answer in time.
func (c *SessionClient) Snapshot() (Snapshot, bool) {
	reply, err := c.engine.Ask(c.pid, SnapshotRequest{}, c.timeout)
	if err != nil {
		return Snapshot{}, false
	}
	res, ok := reply.(SnapshotResponse)
	if !ok {
		return Snapshot{}, false
	}
	return res.Snapshot, res.Active
}
