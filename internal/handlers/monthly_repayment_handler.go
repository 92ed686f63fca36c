package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/cache"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/middleware"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/services"
	"github.com/Manjunath2731/navayugasystmebackend-new/pkg/utils"
)

type MonthlyRepaymentHandler struct {
	repayments *services.MonthlyRepaymentService
	receipts   *services.ReceiptService
}

func NewMonthlyRepaymentHandler(repayments *services.MonthlyRepaymentService, receipts *services.ReceiptService) *MonthlyRepaymentHandler {
	return &MonthlyRepaymentHandler{repayments: repayments, receipts: receipts}
}

// Create handles POST /api/monthly-repayments
func (h *MonthlyRepaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateMonthlyRepaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	repayment, err := h.repayments.Create(r.Context(), userID, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	cache.InvalidateAnalytics(r.Context())
	utils.JSON(w, http.StatusCreated, repayment)
}

// List handles GET /api/monthly-repayments?shgId=3
func (h *MonthlyRepaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	shgID := 0
	if v := r.URL.Query().Get("shgId"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid shgId")
			return
		}
		shgID = n
	}

	repayments, err := h.repayments.List(r.Context(), shgID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list repayments")
		return
	}
	utils.JSON(w, http.StatusOK, repayments)
}

// Get handles GET /api/monthly-repayments/{id}
func (h *MonthlyRepaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid repayment ID")
		return
	}

	repayment, err := h.repayments.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Repayment not found")
		return
	}
	utils.JSON(w, http.StatusOK, repayment)
}

// Update handles PUT /api/monthly-repayments/{id}
func (h *MonthlyRepaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid repayment ID")
		return
	}

	var req models.UpdateMonthlyRepaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	repayment, err := h.repayments.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Repayment not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	cache.InvalidateAnalytics(r.Context())
	utils.JSON(w, http.StatusOK, repayment)
}

// Delete handles DELETE /api/monthly-repayments/{id}
func (h *MonthlyRepaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid repayment ID")
		return
	}

	if err := h.repayments.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to delete repayment")
		return
	}

	cache.InvalidateAnalytics(r.Context())
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Repayment deleted"})
}

// Receipt handles GET /api/monthly-repayments/{id}/receipt
func (h *MonthlyRepaymentHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid repayment ID")
		return
	}

	pdf, err := h.receipts.GenerateRepaymentReceipt(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Repayment not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=repayment_receipt.pdf")
	w.Write(pdf)
}

// ExportCSV handles GET /api/monthly-repayments/export/csv
func (h *MonthlyRepaymentHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.receipts.GenerateRepaymentsCSV(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to export repayments")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=repayments.csv")
	w.Write(data)
}
