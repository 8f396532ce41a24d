package balance

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kodanda10/Kharch-Baant-sub000/pkg/middleware"
	"github.com/Kodanda10/Kharch-Baant-sub000/pkg/response"
)

// Handler handles HTTP requests for balance queries
type Handler struct {
	service *Service
}

// NewHandler creates a new balance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GroupBalancesResponse maps person IDs to their net balance in a group
type GroupBalancesResponse struct {
	GroupID  string             `json:"groupId"`
	Balances map[string]float64 `json:"balances"`
}

// PersonSummaryResponse is a person's cross-group owed/owes totals
type PersonSummaryResponse struct {
	PersonID string  `json:"personId"`
	Owed     float64 `json:"owed"`
	Owes     float64 `json:"owes"`
	Net      float64 `json:"net"`
}

// ForGroup handles GET /groups/{id}/balances
// @Summary      Get group balances
// @Description  Net balance per member: positive means owed money, negative means owing
// @Tags         balances
// @Produce      json
// @Param        id path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=GroupBalancesResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/balances [get]
func (h *Handler) ForGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	balances, err := h.service.ForGroup(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, "Group not found")
			return
		}
		response.InternalError(w, "Something went wrong")
		return
	}

	response.JSON(w, http.StatusOK, &GroupBalancesResponse{
		GroupID:  groupID,
		Balances: balances,
	})
}

// ForMe handles GET /balances/me
// @Summary      Get my balance summary
// @Description  Total owed to and owed by the authenticated person across all groups
// @Tags         balances
// @Produce      json
// @Success      200 {object} response.APIResponse{data=PersonSummaryResponse}
// @Failure      401 {object} response.APIResponse
// @Router       /balances/me [get]
func (h *Handler) ForMe(w http.ResponseWriter, r *http.Request) {
	personID, ok := middleware.GetPersonID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	summary, err := h.service.ForPerson(r.Context(), personID)
	if err != nil {
		response.InternalError(w, "Something went wrong")
		return
	}

	response.JSON(w, http.StatusOK, &PersonSummaryResponse{
		PersonID: personID,
		Owed:     summary.Owed,
		Owes:     summary.Owes,
		Net:      summary.Net(),
	})
}
