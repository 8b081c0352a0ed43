package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/letter-dash/internal/games/letterdash"
)

// BestKeeper records finished sessions in a Store and tracks the best score.
// Storage failures are logged and never reach the game: the keeper then
// reports the last best it knew.
type BestKeeper struct {
	store     *Store
	gameID    string
	sessionID string
	logger    *log.Logger

	mu   sync.Mutex
	best int
}

// NewBestKeeper creates a keeper for one player session (a local run or an
// SSH connection). A nil logger discards messages.
func NewBestKeeper(store *Store, gameID string, logger *log.Logger) *BestKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	k := &BestKeeper{
		store:     store,
		gameID:    gameID,
		sessionID: uuid.NewString(),
		logger:    logger,
	}
	if high, err := store.HighScore(gameID); err != nil {
		logger.Warn("cannot load best score", "err", err)
	} else {
		k.best = high
	}
	return k
}

// SessionID returns the identifier stored with every result of this keeper.
func (k *BestKeeper) SessionID() string {
	return k.sessionID
}

// Best returns the best score known when the keeper was created or last
// recorded a result.
func (k *BestKeeper) Best() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.best
}

// Record saves the result and reports the best score and whether this
// result set it.
func (k *BestKeeper) Record(s letterdash.Summary) (int, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	// Another process may have saved a higher score meanwhile
	if high, err := k.store.HighScore(k.gameID); err == nil && high > k.best {
		k.best = high
	}

	_, err := k.store.SaveResult(Result{
		SessionID: k.sessionID,
		GameID:    k.gameID,
		Player:    s.Player,
		Score:     s.Score,
		Level:     s.Level,
		Finished:  s.Finished,
	})
	if err != nil {
		k.logger.Warn("cannot save result", "err", err)
	} else {
		k.logger.Info("result saved", "session_id", k.sessionID, "player", s.Player, "score", s.Score, "level", s.Level, "finished", s.Finished)
	}

	if s.Score > k.best {
		k.best = s.Score
		return k.best, true
	}
	return k.best, false
}

var _ letterdash.BestScoreKeeper = (*BestKeeper)(nil)
