package workers

import (
	"context"
	"time"

	"fitness_backend/internal/logger"
	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"

	"gorm.io/gorm"
)

const membershipWorkerName = "membership_expiry"

// MembershipWorker снимает истекшие абонементы у пользователей
type MembershipWorker struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	interval time.Duration
}

func NewMembershipWorker(db *gorm.DB, userRepo repositories.UserRepository, interval time.Duration) *MembershipWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &MembershipWorker{
		db:       db,
		userRepo: userRepo,
		interval: interval,
	}
}

// Start запускает проверку в фоне: сразу и затем раз в interval.
// Останавливается при отмене ctx.
func (w *MembershipWorker) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *MembershipWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Membership worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce - один проход; возвращает число пользователей, у которых снят абонемент
func (w *MembershipWorker) RunOnce(ctx context.Context) int64 {
	affected, err := w.userRepo.ClearExpiredMemberships(w.db.WithContext(ctx), models.Today())
	logger.WorkerLog(membershipWorkerName, "clear_expired_memberships", affected, err)
	return affected
}
