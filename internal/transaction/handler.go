package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Kodanda10/Kharch-Baant-sub000/pkg/response"
)

// Handler handles HTTP requests for transaction operations
type Handler struct {
	service *Service
}

// NewHandler creates a new transaction handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for transaction endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Post("/preview-split", h.PreviewSplit)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /transactions
// @Summary      Create a transaction
// @Description  Record an expense or settlement with its split rule
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request body CreateTransactionRequest true "Transaction creation request"
// @Success      201 {object} response.APIResponse{data=TransactionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /transactions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	record, shares, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, record.ToResponse(shares))
}

// PreviewSplit handles POST /transactions/preview-split
// @Summary      Preview a split
// @Description  Validate a split rule and compute per-person shares without saving
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request body PreviewSplitRequest true "Split preview request"
// @Success      200 {object} response.APIResponse{data=PreviewSplitResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /transactions/preview-split [post]
func (h *Handler) PreviewSplit(w http.ResponseWriter, r *http.Request) {
	var req PreviewSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	response.JSON(w, http.StatusOK, h.service.PreviewSplit(&req))
}

// GetByID handles GET /transactions/{id}
// @Summary      Get a transaction by ID
// @Tags         transactions
// @Produce      json
// @Param        id path string true "Transaction ID"
// @Success      200 {object} response.APIResponse{data=TransactionResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /transactions/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, shares, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, record.ToResponse(shares))
}

// Update handles PUT /transactions/{id}
// @Summary      Update a transaction
// @Description  Update transaction fields; amount and split are revalidated together
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id path string true "Transaction ID"
// @Param        request body UpdateTransactionRequest true "Transaction update request"
// @Success      200 {object} response.APIResponse{data=TransactionResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /transactions/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	shares, _ := h.service.PreviewShares(updated)
	response.JSON(w, http.StatusOK, updated.ToResponse(shares))
}

// Delete handles DELETE /transactions/{id}
// @Summary      Delete a transaction
// @Tags         transactions
// @Param        id path string true "Transaction ID"
// @Success      204
// @Failure      404 {object} response.APIResponse
// @Router       /transactions/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByGroup handles GET /groups/{id}/transactions
// @Summary      List a group's transactions
// @Tags         transactions
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        type query string false "Filter by type" Enums(expense, settlement)
// @Param        page query int false "Page number"
// @Param        per_page query int false "Items per page"
// @Success      200 {object} response.APIResponse{data=[]TransactionResponse}
// @Router       /groups/{id}/transactions [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	txType := Type(r.URL.Query().Get("type"))

	records, total, err := h.service.ListByGroup(r.Context(), groupID, txType, page, perPage)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	responses := make([]*TransactionResponse, 0, len(records))
	for _, record := range records {
		shares, _ := h.service.PreviewShares(record)
		responses = append(responses, record.ToResponse(shares))
	}

	totalPages := (total + perPage - 1) / perPage
	response.JSONWithMeta(w, http.StatusOK, responses, &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var invalid *InvalidSplitError
	switch {
	case errors.As(err, &invalid):
		response.Unprocessable(w, invalid.Reason)
	case errors.Is(err, ErrTransactionNotFound), errors.Is(err, ErrGroupNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrGroupArchived),
		errors.Is(err, ErrParticipantNotInGroup),
		errors.Is(err, ErrPayerMismatch),
		errors.Is(err, ErrBadSettlementSplit),
		errors.Is(err, ErrUnknownType):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, "Something went wrong")
	}
}
