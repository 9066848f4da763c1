package services

import (
	"context"
	"sort"

	"github.com/ezycar/booking-api/internal/audit"
	"github.com/ezycar/booking-api/internal/models"
	"github.com/ezycar/booking-api/internal/worker"
	"github.com/google/uuid"
)

// In-memory repository doubles. They return models.ErrNotFound the same
// way the postgres implementations do.

type fakeProviders struct {
	byID map[string]models.Provider
}

func newFakeProviders(ps ...models.Provider) *fakeProviders {
	f := &fakeProviders{byID: map[string]models.Provider{}}
	for _, p := range ps {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeProviders) Create(_ context.Context, p models.Provider) (models.Provider, error) {
	p.ID = uuid.NewString()
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeProviders) GetByID(_ context.Context, id string) (models.Provider, error) {
	p, ok := f.byID[id]
	if !ok {
		return models.Provider{}, models.ErrNotFound
	}
	return p, nil
}

func (f *fakeProviders) List(_ context.Context) ([]models.Provider, error) {
	out := []models.Provider{}
	for _, p := range f.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProviders) Update(_ context.Context, p models.Provider) (models.Provider, error) {
	if _, ok := f.byID[p.ID]; !ok {
		return models.Provider{}, models.ErrNotFound
	}
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeProviders) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeBookings struct {
	byID  map[string]models.Booking
	order []string
}

func newFakeBookings(bs ...models.Booking) *fakeBookings {
	f := &fakeBookings{byID: map[string]models.Booking{}}
	for _, b := range bs {
		f.byID[b.ID] = b
		f.order = append(f.order, b.ID)
	}
	return f
}

func (f *fakeBookings) Create(_ context.Context, b models.Booking) (models.Booking, error) {
	b.ID = uuid.NewString()
	f.byID[b.ID] = b
	f.order = append(f.order, b.ID)
	return b, nil
}

func (f *fakeBookings) GetByID(_ context.Context, id string) (models.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return models.Booking{}, models.ErrNotFound
	}
	return b, nil
}

func (f *fakeBookings) GetDetail(ctx context.Context, id string) (models.BookingDetail, error) {
	b, err := f.GetByID(ctx, id)
	if err != nil {
		return models.BookingDetail{}, err
	}
	return f.detail(b), nil
}

func (f *fakeBookings) ListAll(_ context.Context) ([]models.BookingDetail, error) {
	out := []models.BookingDetail{}
	for _, id := range f.order {
		out = append(out, f.detail(f.byID[id]))
	}
	return out, nil
}

func (f *fakeBookings) ListByUser(_ context.Context, userID string, byDateDesc bool) ([]models.BookingDetail, error) {
	out := []models.BookingDetail{}
	for _, id := range f.order {
		if b := f.byID[id]; b.UserID == userID {
			out = append(out, f.detail(b))
		}
	}
	if byDateDesc {
		sort.Slice(out, func(i, j int) bool { return out[i].BookingDate.After(out[j].BookingDate) })
	}
	return out, nil
}

func (f *fakeBookings) CountByUser(_ context.Context, userID string) (int, error) {
	n := 0
	for _, b := range f.byID {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookings) Update(_ context.Context, b models.Booking) (models.Booking, error) {
	if _, ok := f.byID[b.ID]; !ok {
		return models.Booking{}, models.ErrNotFound
	}
	f.byID[b.ID] = b
	return b, nil
}

func (f *fakeBookings) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.byID, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeBookings) detail(b models.Booking) models.BookingDetail {
	return models.BookingDetail{
		ID:          b.ID,
		BookingDate: b.BookingDate,
		UserID:      b.UserID,
		Provider:    &models.ProviderSummary{ID: b.ProviderID},
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type fakeAuditLogs struct{ entries []models.AuditLog }

func (f *fakeAuditLogs) Create(_ context.Context, l models.AuditLog) error {
	f.entries = append(f.entries, l)
	return nil
}

func testRecorder() *audit.Recorder {
	return audit.NewRecorder(&fakeAuditLogs{}, worker.NewPool(1))
}

type fakeUsers struct {
	byEmail map[string]models.User
}

func newFakeUsers(us ...models.User) *fakeUsers {
	f := &fakeUsers{byEmail: map[string]models.User{}}
	for _, u := range us {
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, name, email, hash, role string) (models.User, error) {
	u := models.User{ID: uuid.NewString(), Name: name, Email: email, PasswordHash: hash, Role: role}
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return u, nil
}
