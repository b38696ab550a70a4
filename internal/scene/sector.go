package scene

import "sync"

// Occupant identifies something a sector can detect.
type Occupant int

const (
	Player Occupant = iota
	Probe
	Ship
)

func (o Occupant) String() string {
	switch o {
	case Player:
		return "Player"
	case Probe:
		return "Probe"
	case Ship:
		return "Ship"
	default:
		return "Unknown"
	}
}

type sectorHandler struct {
	id int
	fn func(Occupant)
}

// Sector is a bounded region of the world. It tracks which occupants are
// inside and notifies subscribers when they cross its boundary.
type Sector struct {
	Name string
	Node *Node

	mu        sync.Mutex
	occupants map[Occupant]bool
	onEnter   []sectorHandler
	onExit    []sectorHandler
	nextID    int
}

func NewSector(name string, node *Node) *Sector {
	return &Sector{
		Name:      name,
		Node:      node,
		occupants: make(map[Occupant]bool),
	}
}

// ContainsOccupant reports whether o is currently inside the sector.
func (s *Sector) ContainsOccupant(o Occupant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.occupants[o]
}

// OnOccupantEnter subscribes fn to entry events. The returned func removes
// the subscription.
func (s *Sector) OnOccupantEnter(fn func(Occupant)) func() {
	return s.subscribe(&s.onEnter, fn)
}

// OnOccupantExit subscribes fn to exit events.
func (s *Sector) OnOccupantExit(fn func(Occupant)) func() {
	return s.subscribe(&s.onExit, fn)
}

func (s *Sector) subscribe(list *[]sectorHandler, fn func(Occupant)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	*list = append(*list, sectorHandler{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, h := range *list {
			if h.id == id {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return
			}
		}
	}
}

// Enter marks o as inside and then notifies entry subscribers synchronously.
func (s *Sector) Enter(o Occupant) {
	s.mu.Lock()
	s.occupants[o] = true
	handlers := append([]sectorHandler(nil), s.onEnter...)
	s.mu.Unlock()

	for _, h := range handlers {
		h.fn(o)
	}
}

// Exit marks o as outside and then notifies exit subscribers synchronously.
func (s *Sector) Exit(o Occupant) {
	s.mu.Lock()
	delete(s.occupants, o)
	handlers := append([]sectorHandler(nil), s.onExit...)
	s.mu.Unlock()

	for _, h := range handlers {
		h.fn(o)
	}
}
