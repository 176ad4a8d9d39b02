package bench

// ArenaListener distributes the arena progress between several listeners
type ArenaListener[M any] struct {
	listeners []ListenerLike[M]
}

func NewArenaListener[M any](listeners ...ListenerLike[M]) *ArenaListener[M] {
	return &ArenaListener[M]{listeners: listeners}
}

func (al *ArenaListener[M]) Add(listener ListenerLike[M]) *ArenaListener[M] {
	al.listeners = append(al.listeners, listener)
	return al
}

func (al *ArenaListener[M]) OnMoveMade(info VersusWorkerInfo[M]) {
	for _, l := range al.listeners {
		l.OnMoveMade(info)
	}
}

func (al *ArenaListener[M]) OnFinishedGame(info VersusWorkerInfo[M]) {
	for _, l := range al.listeners {
		l.OnFinishedGame(info)
	}
}

func (al *ArenaListener[M]) OnFinishedWork(info VersusWorkerInfo[M]) {
	for _, l := range al.listeners {
		l.OnFinishedWork(info)
	}
}

func (al *ArenaListener[M]) Summary(info VersusSummaryInfo) {
	for _, l := range al.listeners {
		l.Summary(info)
	}
}
