package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/services"
	"github.com/Manjunath2731/navayugasystmebackend-new/pkg/utils"
)

type LinkageHandler struct {
	linkages *services.LinkageService
}

func NewLinkageHandler(linkages *services.LinkageService) *LinkageHandler {
	return &LinkageHandler{linkages: linkages}
}

// Create handles POST /api/linkages
func (h *LinkageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLinkageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	linkage, err := h.linkages.Create(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, linkage)
}

// List handles GET /api/linkages
func (h *LinkageHandler) List(w http.ResponseWriter, r *http.Request) {
	linkages, err := h.linkages.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list linkages")
		return
	}
	utils.JSON(w, http.StatusOK, linkages)
}

// Get handles GET /api/linkages/{id}
func (h *LinkageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid linkage ID")
		return
	}

	linkage, err := h.linkages.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Linkage not found")
		return
	}
	utils.JSON(w, http.StatusOK, linkage)
}

// Update handles PUT /api/linkages/{id}
func (h *LinkageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid linkage ID")
		return
	}

	var req models.UpdateLinkageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	linkage, err := h.linkages.Update(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Linkage not found")
		return
	}
	utils.JSON(w, http.StatusOK, linkage)
}

// Delete handles DELETE /api/linkages/{id}
func (h *LinkageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid linkage ID")
		return
	}
	if err := h.linkages.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to delete linkage")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Linkage deleted"})
}
