package workers

import (
	"context"
	"time"

	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/repositories"
)

// TokenWorker периодически чистит истекшие refresh token'ы
type TokenWorker struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	interval         time.Duration
}

func NewTokenWorker(refreshTokenRepo repositories.RefreshTokenRepository) *TokenWorker {
	return &TokenWorker{
		refreshTokenRepo: refreshTokenRepo,
		interval:         6 * time.Hour,
	}
}

// Start запускает фоновую очистку токенов
func (w *TokenWorker) Start(ctx context.Context) {
	go w.cleanupExpiredTokens(ctx)
}

func (w *TokenWorker) cleanupExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Первый проход сразу при старте, чтобы не ждать интервал
	w.runCleanup()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

func (w *TokenWorker) runCleanup() {
	deleted, err := w.refreshTokenRepo.DeleteExpired()
	logger.WorkerLog("token_worker", "cleanup_expired_tokens", err)
	if err == nil && deleted > 0 {
		logger.Info("Expired refresh tokens removed", "count", deleted)
	}
}
