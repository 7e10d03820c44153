package bollywood

// Started is delivered to an actor once its goroutine is running.
type Started struct{}

// Stopping is delivered when the actor has been asked to stop.
// No user messages are processed after it.
type Stopping struct{}

// Stopped is the last message an actor receives before its goroutine exits.
type Stopped struct{}

// messageEnvelope wraps a user message with sender information. replyCh is
// only set for messages sent through Engine.Ask.
type messageEnvelope struct {
	Sender  *PID
	Message interface{}
	replyCh chan interface{}
}

func isSystemMessage(msg interface{}) bool {
	switch msg.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}
