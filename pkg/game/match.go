package game

// Match is the top level holder of a game, it tracks whether the game is
// still running and freezes it once finished.
type Match[G Game[G, M, P], M any, P Player[P]] struct {
	slot Slot[G, P]
}

func NewMatch[G Game[G, M, P], M any, P Player[P]](game G) *Match[G, M, P] {
	return &Match[G, M, P]{slot: Playing[G, P](game)}
}

// Build a match around a freshly made game
func StartMatch[G Game[G, M, P], M any, P Player[P]](factory Factory[G, P], first P) *Match[G, M, P] {
	return NewMatch[G, M, P](factory(first, Position{}))
}

func (m *Match[G, M, P]) Apply(move M) MoveResult[P] {
	if !m.slot.IsPlaying() {
		panic(Violation(ErrInvalidMove, "the match is over (%s)", m.slot))
	}

	result := m.slot.Game().Apply(move)
	m.slot.Settle(result.Outcome)
	return result
}

func (m *Match[G, M, P]) IsValid(move M) bool {
	return m.slot.IsPlaying() && m.slot.Game().IsValid(move)
}

func (m *Match[G, M, P]) ValidMoves() []M {
	if !m.slot.IsPlaying() {
		return nil
	}
	return m.slot.Game().ValidMoves()
}

func (m *Match[G, M, P]) Player() P {
	return m.slot.Game().Player()
}

// No-op once the match is over
func (m *Match[G, M, P]) SetPlayer(player P) {
	if m.slot.IsPlaying() {
		m.slot.Game().SetPlayer(player)
	}
}

func (m *Match[G, M, P]) Clone() *Match[G, M, P] {
	return &Match[G, M, P]{slot: m.slot.WithGame(m.slot.Game().Clone())}
}

func (m *Match[G, M, P]) Slot() Slot[G, P] {
	return m.slot
}

func (m *Match[G, M, P]) Game() G {
	return m.slot.Game()
}

// Outcome the match ended with, incomplete while it runs
func (m *Match[G, M, P]) Outcome() Outcome[P] {
	switch m.slot.State() {
	case SlotWon:
		return WonBy(m.slot.winner)
	case SlotDraw:
		return Drawn[P]()
	}
	return Ongoing[P]()
}

func (m *Match[G, M, P]) Finished() bool {
	return !m.slot.IsPlaying()
}

func (m *Match[G, M, P]) Size() (int, int) {
	return SizeOf(m.slot.Game())
}

func (m *Match[G, M, P]) Draw(c Canvas, x, y int) {
	m.slot.Draw(c, x, y)
}
