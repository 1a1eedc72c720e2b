// internal/domain/notification/gate.go
package notification

// slot holds the last message successfully delivered for one Kind.
type slot struct {
	message string
	set     bool
}

// Gate suppresses repeated notifications. A message is sent only when it
// differs from the last one delivered for the same Kind.
//
// Gate is owned by a single poller and is not safe for concurrent use.
type Gate struct {
	slots map[Kind]*slot
}

func NewGate() *Gate {
	return &Gate{
		slots: map[Kind]*slot{
			KindStatus: {},
			KindError:  {},
		},
	}
}

// ShouldSend reports whether message differs from the last delivered message
// of the same kind. An empty slot always allows sending.
func (g *Gate) ShouldSend(kind Kind, message string) bool {
	s := g.slot(kind)
	return !s.set || s.message != message
}

// Record stores message as the last delivered one. Call it only after a
// confirmed delivery.
func (g *Gate) Record(kind Kind, message string) {
	s := g.slot(kind)
	s.message = message
	s.set = true
}

// Last returns the last delivered message for kind.
func (g *Gate) Last(kind Kind) (string, bool) {
	s := g.slot(kind)
	return s.message, s.set
}

func (g *Gate) slot(kind Kind) *slot {
	s, ok := g.slots[kind]
	if !ok {
		s = &slot{}
		g.slots[kind] = s
	}
	return s
}
