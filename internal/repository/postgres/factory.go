package postgres

import (
	repo "github.com/ezycar/booking-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users     repo.Users
	Providers repo.Providers
	Bookings  repo.Bookings
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Providers: &providersRepo{pool},
		Bookings:  &bookingsRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}
