package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ezycar/booking-api/internal/api/httpx"
	"github.com/ezycar/booking-api/internal/middleware"
	"github.com/ezycar/booking-api/internal/models"
	"github.com/ezycar/booking-api/internal/services"
)

type ProvidersHandler struct {
	svc *services.ProviderService
}

func NewProvidersHandler(svc *services.ProviderService) *ProvidersHandler {
	return &ProvidersHandler{svc: svc}
}

type providerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Tel     string `json:"tel"`
}

func (h *ProvidersHandler) List(w http.ResponseWriter, r *http.Request) {
	providers, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.List(w, len(providers), providers)
}

func (h *ProvidersHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, p)
}

func (h *ProvidersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req providerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	actor, _ := middleware.PrincipalFrom(r.Context())
	p, err := h.svc.Create(r.Context(), actor, models.Provider{
		Name:    req.Name,
		Address: req.Address,
		Tel:     req.Tel,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.Data(w, http.StatusCreated, p)
}

func (h *ProvidersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateProviderInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	actor, _ := middleware.PrincipalFrom(r.Context())
	p, err := h.svc.Update(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, p)
}

func (h *ProvidersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.PrincipalFrom(r.Context())
	if err := h.svc.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, struct{}{})
}
