package repository

import (
	"context"

	"github.com/ezycar/booking-api/internal/models"
)

// Missing rows surface as models.ErrNotFound; callers attach the
// user-facing message.

type Users interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type Providers interface {
	Create(ctx context.Context, p models.Provider) (models.Provider, error)
	GetByID(ctx context.Context, id string) (models.Provider, error)
	List(ctx context.Context) ([]models.Provider, error)
	Update(ctx context.Context, p models.Provider) (models.Provider, error)
	Delete(ctx context.Context, id string) error
}

type Bookings interface {
	Create(ctx context.Context, b models.Booking) (models.Booking, error)
	GetByID(ctx context.Context, id string) (models.Booking, error)
	GetDetail(ctx context.Context, id string) (models.BookingDetail, error)
	// ListAll resolves both user and provider summaries.
	ListAll(ctx context.Context) ([]models.BookingDetail, error)
	// ListByUser resolves provider summaries only. byDateDesc orders by
	// booking date, newest first; otherwise insertion order is used.
	ListByUser(ctx context.Context, userID string, byDateDesc bool) ([]models.BookingDetail, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	Update(ctx context.Context, b models.Booking) (models.Booking, error)
	Delete(ctx context.Context, id string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
