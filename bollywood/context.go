package bollywood

// Context gives an actor access to the message being processed and to the
// engine that delivered it.
type Context interface {
	// Engine returns the Engine managing this actor.
	Engine() *Engine
	// Self returns the PID of the actor processing the message.
	Self() *PID
	// Sender returns the PID of the sending actor, if any.
	Sender() *PID
	// Message returns the message being processed.
	Message() interface{}
	// Respond answers an Engine.Ask, or sends msg back to Sender when the
	// message did not come from Ask. It may be called after Receive has
	// returned, from another goroutine, to answer later. Only the first
	// answer to an Ask is kept.
	Respond(msg interface{})
}

type context struct {
	engine   *Engine
	self     *PID
	envelope *messageEnvelope
}

func (c *context) Engine() *Engine      { return c.engine }
func (c *context) Self() *PID           { return c.self }
func (c *context) Sender() *PID         { return c.envelope.Sender }
func (c *context) Message() interface{} { return c.envelope.Message }

func (c *context) Respond(msg interface{}) {
	if c.envelope.replyCh != nil {
		select {
		case c.envelope.replyCh <- msg:
		default:
		}
		return
	}
	if c.envelope.Sender != nil {
		c.engine.Send(c.envelope.Sender, msg, c.self)
	}
}
