package bollywood

// Actor is anything that can process messages delivered by the Engine.
type Actor interface {
	Receive(ctx Context)
}

// Producer is a function that creates a new instance of an Actor.
type Producer func() Actor

// Props is the recipe used by Engine.Spawn to build an actor.
type Props struct {
	producer Producer
}

// NewProps creates Props for the given producer.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer}
}

// Produce creates a new actor instance using the configured producer.
func (p *Props) Produce() Actor {
	return p.producer()
}
