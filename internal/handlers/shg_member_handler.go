package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/middleware"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/services"
	"github.com/Manjunath2731/navayugasystmebackend-new/pkg/utils"
)

type SHGMemberHandler struct {
	members *services.SHGMemberService
}

func NewSHGMemberHandler(members *services.SHGMemberService) *SHGMemberHandler {
	return &SHGMemberHandler{members: members}
}

// Create handles POST /api/shg-members
func (h *SHGMemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSHGMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.members.Create(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, member)
}

// ListBySHG handles GET /api/shg-members?shgId=3
func (h *SHGMemberHandler) ListBySHG(w http.ResponseWriter, r *http.Request) {
	shgID, err := strconv.Atoi(r.URL.Query().Get("shgId"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "shgId query parameter is required")
		return
	}

	members, err := h.members.ListBySHG(r.Context(), shgID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list members")
		return
	}
	utils.JSON(w, http.StatusOK, members)
}

// Get handles GET /api/shg-members/{id}
func (h *SHGMemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	member, err := h.members.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Member not found")
		return
	}
	utils.JSON(w, http.StatusOK, member)
}

// Update handles PUT /api/shg-members/{id}
func (h *SHGMemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	var req models.UpdateSHGMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.members.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Member not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, member)
}

// Delete handles DELETE /api/shg-members/{id}
func (h *SHGMemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	role, _ := middleware.GetRoleFromContext(r.Context())
	if err := h.members.Delete(r.Context(), id, role); err != nil {
		if strings.Contains(err.Error(), "delete ticket") {
			utils.Error(w, http.StatusForbidden, err.Error())
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to delete member")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Member deleted"})
}
