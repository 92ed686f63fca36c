package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/cache"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/middleware"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/services"
	"github.com/Manjunath2731/navayugasystmebackend-new/pkg/utils"
)

type SHGHandler struct {
	shgs     *services.SHGService
	receipts *services.ReceiptService
}

func NewSHGHandler(shgs *services.SHGService, receipts *services.ReceiptService) *SHGHandler {
	return &SHGHandler{shgs: shgs, receipts: receipts}
}

// Create handles POST /api/shgs
func (h *SHGHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSHGRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	shg, err := h.shgs.Create(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	cache.InvalidateAnalytics(r.Context())
	utils.JSON(w, http.StatusCreated, shg)
}

// List handles GET /api/shgs?page=1&limit=10
func (h *SHGHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.shgs.List(r.Context(), userID, role, page, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list SHGs")
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

// Get handles GET /api/shgs/{id}
func (h *SHGHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid SHG ID")
		return
	}

	shg, err := h.shgs.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "SHG not found")
		return
	}
	utils.JSON(w, http.StatusOK, shg)
}

// Update handles PUT /api/shgs/{id}
func (h *SHGHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid SHG ID")
		return
	}

	var req models.UpdateSHGRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	shg, err := h.shgs.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "SHG not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	cache.InvalidateAnalytics(r.Context())
	utils.JSON(w, http.StatusOK, shg)
}

// Delete handles DELETE /api/shgs/{id}
func (h *SHGHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid SHG ID")
		return
	}

	role, _ := middleware.GetRoleFromContext(r.Context())
	if err := h.shgs.Delete(r.Context(), id, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "SHG not found")
			return
		}
		if strings.Contains(err.Error(), "delete ticket") {
			utils.Error(w, http.StatusForbidden, err.Error())
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to delete SHG")
		return
	}

	cache.InvalidateAnalytics(r.Context())
	utils.JSON(w, http.StatusOK, map[string]string{"message": "SHG deleted"})
}

// Statement handles GET /api/shgs/{id}/statement and streams a PDF of
// the group's repayment history.
func (h *SHGHandler) Statement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid SHG ID")
		return
	}

	pdf, err := h.receipts.GenerateSHGStatementPDF(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "SHG not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=shg_statement.pdf")
	w.Write(pdf)
}
