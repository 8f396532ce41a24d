package paymentsource

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kodanda10/Kharch-Baant-sub000/pkg/middleware"
	"github.com/Kodanda10/Kharch-Baant-sub000/pkg/response"
)

// Handler handles HTTP requests for payment source operations
type Handler struct {
	service *Service
}

// NewHandler creates a new payment source handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for payment source endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/usage", h.Usage)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /payment-sources
// @Summary      Create a payment source
// @Tags         payment-sources
// @Accept       json
// @Produce      json
// @Param        request body CreatePaymentSourceRequest true "Payment source creation request"
// @Success      201 {object} response.APIResponse{data=PaymentSource}
// @Failure      400 {object} response.APIResponse
// @Router       /payment-sources [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	personID, ok := middleware.GetPersonID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreatePaymentSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Label == "" {
		response.BadRequest(w, "Label is required")
		return
	}

	source, err := h.service.Create(r.Context(), personID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, source)
}

// List handles GET /payment-sources
// @Summary      List my payment sources
// @Tags         payment-sources
// @Produce      json
// @Param        include_archived query bool false "Include archived sources"
// @Success      200 {object} response.APIResponse{data=[]PaymentSource}
// @Router       /payment-sources [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	personID, ok := middleware.GetPersonID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	includeArchived := r.URL.Query().Get("include_archived") == "true"

	sources, err := h.service.ListForOwner(r.Context(), personID, includeArchived)
	if err != nil {
		response.InternalError(w, "Something went wrong")
		return
	}
	if sources == nil {
		sources = []*PaymentSource{}
	}

	response.JSON(w, http.StatusOK, sources)
}

// Usage handles GET /payment-sources/usage
// @Summary      Payment source usage report
// @Description  How often each source appears in transaction history and when it was last used
// @Tags         payment-sources
// @Produce      json
// @Success      200 {object} response.APIResponse{data=UsageReport}
// @Router       /payment-sources/usage [get]
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	personID, ok := middleware.GetPersonID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	report, err := h.service.UsageForOwner(r.Context(), personID)
	if err != nil {
		response.InternalError(w, "Something went wrong")
		return
	}

	response.JSON(w, http.StatusOK, report)
}

// GetByID handles GET /payment-sources/{id}
// @Summary      Get a payment source by ID
// @Tags         payment-sources
// @Produce      json
// @Param        id path string true "Payment source ID"
// @Success      200 {object} response.APIResponse{data=PaymentSource}
// @Failure      404 {object} response.APIResponse
// @Router       /payment-sources/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	personID, ok := middleware.GetPersonID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	source, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"), personID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, source)
}

// Update handles PUT /payment-sources/{id}
// @Summary      Update a payment source
// @Tags         payment-sources
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment source ID"
// @Param        request body UpdatePaymentSourceRequest true "Payment source update request"
// @Success      200 {object} response.APIResponse{data=PaymentSource}
// @Failure      404 {object} response.APIResponse
// @Router       /payment-sources/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	personID, ok := middleware.GetPersonID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req UpdatePaymentSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	source, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), personID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, source)
}

// Delete handles DELETE /payment-sources/{id}
// @Summary      Delete a payment source
// @Description  Fails with 409 if the source is referenced by transactions; archive it instead
// @Tags         payment-sources
// @Param        id path string true "Payment source ID"
// @Success      204
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /payment-sources/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	personID, ok := middleware.GetPersonID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), personID); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSourceNotFound):
		response.NotFound(w, "Payment source not found")
	case errors.Is(err, ErrNotOwner):
		response.Forbidden(w, "Payment source belongs to another person")
	case errors.Is(err, ErrInvalidType):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrSourceInUse):
		response.Conflict(w, "Payment source is referenced by transactions; archive it instead")
	default:
		response.InternalError(w, "Something went wrong")
	}
}
