package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ezycar/booking-api/internal/api/httpx"
	"github.com/ezycar/booking-api/internal/middleware"
	"github.com/ezycar/booking-api/internal/services"
)

type BookingsHandler struct {
	svc *services.BookingService
}

func NewBookingsHandler(svc *services.BookingService) *BookingsHandler {
	return &BookingsHandler{svc: svc}
}

type bookingRequest struct {
	BookingDate string `json:"bookingDate"`
	Provider    string `json:"provider"`
}

func (h *BookingsHandler) List(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFrom(r.Context())
	bookings, err := h.svc.List(r.Context(), p)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.List(w, len(bookings), bookings)
}

func (h *BookingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFrom(r.Context())
	b, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, b)
}

func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	date, err := parseBookingDate(req.BookingDate)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid bookingDate, expected YYYY-MM-DD")
		return
	}
	p, _ := middleware.PrincipalFrom(r.Context())
	b, err := h.svc.Create(r.Context(), p, services.CreateBookingInput{
		BookingDate: date,
		ProviderID:  req.Provider,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.Data(w, http.StatusCreated, b)
}

func (h *BookingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var in services.UpdateBookingInput
	if req.BookingDate != "" {
		date, err := parseBookingDate(req.BookingDate)
		if err != nil {
			httpx.Fail(w, http.StatusBadRequest, "Invalid bookingDate, expected YYYY-MM-DD")
			return
		}
		in.BookingDate = &date
	}
	if req.Provider != "" {
		in.ProviderID = &req.Provider
	}
	p, _ := middleware.PrincipalFrom(r.Context())
	b, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), p, in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, b)
}

func (h *BookingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFrom(r.Context())
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"), p); err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, struct{}{})
}

func (h *BookingsHandler) MyHistory(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFrom(r.Context())
	bookings, err := h.svc.History(r.Context(), p)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if len(bookings) == 0 {
		httpx.ListMsg(w, 0, bookings, "You have no booking history")
		return
	}
	httpx.List(w, len(bookings), bookings)
}

func parseBookingDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
