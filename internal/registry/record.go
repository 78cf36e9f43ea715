package registry

import "github.com/vovakirdan/snake3d/internal/core"

// RecordRun saves the score of a run that just ended on the frontend's board.
// Each run ends exactly once, so each run is recorded at most once. Empty runs
// are not recorded. Failures are logged and otherwise ignored.
func (e Env) RecordRun(board string, res core.StepResult) {
	if !res.Died {
		return
	}
	if e.Logger != nil {
		e.Logger.Info("game over", "board", board, "player", e.Player, "score", res.FinalScore)
	}
	if e.Store == nil || res.FinalScore <= 0 {
		return
	}
	if _, err := e.Store.SaveScore(board, e.Player, res.FinalScore); err != nil && e.Logger != nil {
		e.Logger.Warn("could not save score", "board", board, "error", err)
	}
}

// BestScore returns the high score on the frontend's board, or 0 when there
// is no store or the lookup fails.
func (e Env) BestScore(board string) int {
	if e.Store == nil {
		return 0
	}
	best, err := e.Store.HighScore(board)
	if err != nil {
		if e.Logger != nil {
			e.Logger.Warn("could not read high score", "board", board, "error", err)
		}
		return 0
	}
	return best
}
