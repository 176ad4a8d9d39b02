package bench

import "github.com/rs/zerolog"

// ListenerLike receives the arena progress. Workers call it concurrently.
type ListenerLike[M any] interface {
	OnMoveMade(info VersusWorkerInfo[M])
	OnFinishedGame(info VersusWorkerInfo[M])
	OnFinishedWork(info VersusWorkerInfo[M])
	Summary(info VersusSummaryInfo)
}

// Listener ignoring everything
type NopListener[M any] struct{}

func (NopListener[M]) OnMoveMade(VersusWorkerInfo[M])     {}
func (NopListener[M]) OnFinishedGame(VersusWorkerInfo[M]) {}
func (NopListener[M]) OnFinishedWork(VersusWorkerInfo[M]) {}
func (NopListener[M]) Summary(VersusSummaryInfo)          {}

// LogListener writes the finished games and the summary to a zerolog logger,
// moves are logged at trace level.
type LogListener[M any] struct {
	logger zerolog.Logger
}

func NewLogListener[M any](logger zerolog.Logger) LogListener[M] {
	return LogListener[M]{logger: logger}
}

func (l LogListener[M]) OnMoveMade(info VersusWorkerInfo[M]) {
	l.logger.Trace().
		Int("worker", info.WorkerID).
		Int("ply", info.GameMoveNum).
		Any("move", info.Moves[len(info.Moves)-1]).
		Msg("move made")
}

func (l LogListener[M]) OnFinishedGame(info VersusWorkerInfo[M]) {
	l.logger.Info().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames).
		Int("of", info.NGames).
		Int("plies", info.GameMoveNum).
		Stringer("winner", info.Result).
		Msg("game finished")
}

func (l LogListener[M]) OnFinishedWork(info VersusWorkerInfo[M]) {
	l.logger.Debug().
		Int("worker", info.WorkerID).
		Int(info.P1Name, info.P1Wins).
		Int(info.P2Name, info.P2Wins).
		Int("draws", info.Draws).
		Msg("worker done")
}

func (l LogListener[M]) Summary(info VersusSummaryInfo) {
	l.logger.Info().
		Int("games", info.TotalGames).
		Int(info.P1Name, info.P1Wins).
		Int(info.P2Name, info.P2Wins).
		Int("draws", info.Draws).
		Int("first_to_move_wins", info.FirstToMoveWins).
		Int("second_to_move_wins", info.SecondToMoveWins).
		Msg("arena summary")
}
