package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ezycar/booking-api/internal/audit"
	"github.com/ezycar/booking-api/internal/metrics"
	"github.com/ezycar/booking-api/internal/models"
	repo "github.com/ezycar/booking-api/internal/repository"
)

type BookingService struct {
	bookings  repo.Bookings
	providers repo.Providers
	audit     *audit.Recorder
	now       func() time.Time
}

func NewBookingService(bookings repo.Bookings, providers repo.Providers, rec *audit.Recorder) *BookingService {
	return &BookingService{bookings: bookings, providers: providers, audit: rec, now: time.Now}
}

type CreateBookingInput struct {
	BookingDate time.Time
	ProviderID  string
}

// UpdateBookingInput is a partial update; nil fields are left as-is.
type UpdateBookingInput struct {
	BookingDate *time.Time
	ProviderID  *string
}

// List returns the requester's bookings, or every booking with the
// owning user resolved when the requester is an admin.
func (s *BookingService) List(ctx context.Context, p models.Principal) ([]models.BookingDetail, error) {
	if p.IsAdmin() {
		return s.bookings.ListAll(ctx)
	}
	return s.bookings.ListByUser(ctx, p.ID, false)
}

func (s *BookingService) Get(ctx context.Context, id string, p models.Principal) (models.BookingDetail, error) {
	d, err := s.bookings.GetDetail(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return models.BookingDetail{}, models.NotFound(fmt.Sprintf("No booking with the id of %s", id))
	}
	if err != nil {
		return models.BookingDetail{}, err
	}
	if d.UserID != p.ID && !p.IsAdmin() {
		return models.BookingDetail{}, models.Forbidden(fmt.Sprintf("User %s is not authorized to view this booking", p.ID))
	}
	return d, nil
}

func (s *BookingService) Create(ctx context.Context, p models.Principal, in CreateBookingInput) (models.Booking, error) {
	if startOfDay(in.BookingDate).Before(startOfDay(s.now())) {
		return models.Booking{}, models.Invalid("Cannot book a past date")
	}

	if _, err := s.providers.GetByID(ctx, in.ProviderID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Booking{}, models.NotFound(fmt.Sprintf("No provider with the id of %s", in.ProviderID))
		}
		return models.Booking{}, err
	}

	// Count-then-insert; two concurrent creates can both pass and jointly
	// exceed the cap. Accepted behavior, see DESIGN.md.
	count, err := s.bookings.CountByUser(ctx, p.ID)
	if err != nil {
		return models.Booking{}, err
	}
	if count >= models.MaxActiveBookings && !p.IsAdmin() {
		metrics.QuotaRejections.Inc()
		return models.Booking{}, models.QuotaExceeded(fmt.Sprintf("The user with ID %s has already made 3 bookings", p.ID))
	}

	b, err := s.bookings.Create(ctx, models.Booking{
		BookingDate: startOfDay(in.BookingDate),
		UserID:      p.ID, // owner is always the requester
		ProviderID:  in.ProviderID,
	})
	if err != nil {
		return models.Booking{}, err
	}
	metrics.BookingsTotal.WithLabelValues("created").Inc()
	s.audit.Record("booking", b.ID, "created", p.ID, map[string]any{"provider": b.ProviderID})
	return b, nil
}

func (s *BookingService) Update(ctx context.Context, id string, p models.Principal, in UpdateBookingInput) (models.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return models.Booking{}, models.NotFound(fmt.Sprintf("No booking with the id of %s", id))
	}
	if err != nil {
		return models.Booking{}, err
	}
	if b.UserID != p.ID && !p.IsAdmin() {
		return models.Booking{}, models.Forbidden(fmt.Sprintf("User %s is not authorized to update this booking", p.ID))
	}

	if in.BookingDate != nil {
		if startOfDay(*in.BookingDate).Before(startOfDay(s.now())) {
			return models.Booking{}, models.Invalid("Cannot update to a past date")
		}
		b.BookingDate = startOfDay(*in.BookingDate)
	}
	if in.ProviderID != nil && *in.ProviderID != b.ProviderID {
		if _, err := s.providers.GetByID(ctx, *in.ProviderID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return models.Booking{}, models.NotFound(fmt.Sprintf("No provider with the id of %s", *in.ProviderID))
			}
			return models.Booking{}, err
		}
		b.ProviderID = *in.ProviderID
	}

	updated, err := s.bookings.Update(ctx, b)
	if err != nil {
		return models.Booking{}, err
	}
	metrics.BookingsTotal.WithLabelValues("updated").Inc()
	s.audit.Record("booking", id, "updated", p.ID, nil)
	return updated, nil
}

// Delete is a hard delete; cancellation frees the quota slot.
func (s *BookingService) Delete(ctx context.Context, id string, p models.Principal) error {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return models.NotFound(fmt.Sprintf("No booking with the id of %s", id))
	}
	if err != nil {
		return err
	}
	if b.UserID != p.ID && !p.IsAdmin() {
		return models.Forbidden(fmt.Sprintf("User %s is not authorized to delete this booking", p.ID))
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	metrics.BookingsTotal.WithLabelValues("deleted").Inc()
	s.audit.Record("booking", id, "deleted", p.ID, nil)
	return nil
}

// History returns the requester's bookings, newest booking date first.
func (s *BookingService) History(ctx context.Context, p models.Principal) ([]models.BookingDetail, error) {
	return s.bookings.ListByUser(ctx, p.ID, true)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
