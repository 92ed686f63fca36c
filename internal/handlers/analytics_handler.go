package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/cache"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/metrics"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/services"
	"github.com/Manjunath2731/navayugasystmebackend-new/pkg/utils"
)

type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GetRepaymentAnalytics handles GET /api/repayment-analytics. The report
// is served from Redis when a fresh copy exists; otherwise it is computed
// and the cache repopulated. Redis being down only costs the caching.
func (h *AnalyticsHandler) GetRepaymentAnalytics(w http.ResponseWriter, r *http.Request) {
	if data, ok := cache.GetAnalytics(r.Context()); ok {
		metrics.AnalyticsCacheHits.Inc()
		utils.JSON(w, http.StatusOK, json.RawMessage(data))
		return
	}

	report, err := h.analytics.GetRepaymentAnalytics(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to compute repayment analytics")
		return
	}

	if data, err := json.Marshal(report); err == nil {
		cache.SetAnalytics(r.Context(), data)
	}

	utils.JSON(w, http.StatusOK, report)
}
