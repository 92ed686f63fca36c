package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/cache"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/middleware"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/services"
	"github.com/Manjunath2731/navayugasystmebackend-new/pkg/utils"
)

type DeleteTicketHandler struct {
	tickets *services.DeleteTicketService
}

func NewDeleteTicketHandler(tickets *services.DeleteTicketService) *DeleteTicketHandler {
	return &DeleteTicketHandler{tickets: tickets}
}

// Create handles POST /api/delete-tickets
func (h *DeleteTicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateDeleteTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ticket, err := h.tickets.Create(r.Context(), userID, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, ticket)
}

// List handles GET /api/delete-tickets?status=pending
func (h *DeleteTicketHandler) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.tickets.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, tickets)
}

// Get handles GET /api/delete-tickets/{id}
func (h *DeleteTicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	ticket, err := h.tickets.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Ticket not found")
		return
	}
	utils.JSON(w, http.StatusOK, ticket)
}

// Approve handles POST /api/delete-tickets/{id}/approve
func (h *DeleteTicketHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	ticket, err := h.tickets.Approve(r.Context(), id, userID)
	if err != nil {
		utils.Error(w, http.StatusConflict, err.Error())
		return
	}

	// Approval may have removed an SHG, so the cached report is stale.
	cache.InvalidateAnalytics(r.Context())
	utils.JSON(w, http.StatusOK, ticket)
}

// Reject handles POST /api/delete-tickets/{id}/reject
func (h *DeleteTicketHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	ticket, err := h.tickets.Reject(r.Context(), id, userID)
	if err != nil {
		utils.Error(w, http.StatusConflict, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, ticket)
}
