package game

// Snapshot is a read-only copy of everything a render sink needs for one
// frame. The platform consumes snapshots only and never touches State.
type Snapshot struct {
	Tick    uint64
	Width   int
	Height  int
	Body    []Cell // head first, copied
	Food    Cell
	Score   int
	Heading Heading
	Phase   Phase
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	body := make([]Cell, len(s.body))
	copy(body, s.body)

	return Snapshot{
		Tick:    s.tick,
		Width:   s.width,
		Height:  s.height,
		Body:    body,
		Food:    s.food,
		Score:   s.score,
		Heading: s.motion.Heading(),
		Phase:   s.phase,
	}
}
