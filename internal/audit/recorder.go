// Package audit writes an asynchronous trail of mutations. Entries are
// fire-and-forget: a failed write is logged, never surfaced to the
// request that caused it.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/ezycar/booking-api/internal/models"
	repo "github.com/ezycar/booking-api/internal/repository"
	"github.com/ezycar/booking-api/internal/worker"
)

type Recorder struct {
	logs repo.AuditLogs
	wp   *worker.Pool
}

func NewRecorder(logs repo.AuditLogs, wp *worker.Pool) *Recorder {
	return &Recorder{logs: logs, wp: wp}
}

func (r *Recorder) Record(entityType, entityID, action, actorID string, details map[string]any) {
	r.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := r.logs.Create(ctx, models.AuditLog{
			EntityType: entityType,
			EntityID:   entityID,
			Action:     action,
			ActorID:    actorID,
			Details:    details,
		})
		if err != nil {
			slog.Error("audit write", "entity", entityType, "action", action, "err", err)
		}
	})
}
