package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/auth"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/config"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/middleware"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/services"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/timeutil"
)

type stubSHGLister struct{ shgs []*models.SHG }

func (s *stubSHGLister) ListAll(ctx context.Context) ([]*models.SHG, error) { return s.shgs, nil }

type stubRepaymentLister struct{ repayments []*models.MonthlyRepayment }

func (s *stubRepaymentLister) ListAll(ctx context.Context) ([]*models.MonthlyRepayment, error) {
	return s.repayments, nil
}

func testJWTManager() *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "navayuga-backend"
	return auth.NewJWTManager(cfg)
}

func analyticsTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	svc := services.NewAnalyticsService(
		&stubSHGLister{shgs: []*models.SHG{
			{ID: 1, SHGName: "Shree", RepaymentDate: timeutil.Now(), MonthlyRepaymentAmount: 5000},
		}},
		&stubRepaymentLister{},
	)
	handler := NewAnalyticsHandler(svc)
	authMiddleware := middleware.NewAuthMiddleware(testJWTManager())

	r := mux.NewRouter()
	api := r.PathPrefix("/api/repayment-analytics").Subrouter()
	api.Use(authMiddleware.Authenticate)
	api.Use(authMiddleware.RequireRole(models.RoleOwner, models.RoleFrontDesk))
	api.HandleFunc("", handler.GetRepaymentAnalytics).Methods("GET")
	return r
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := testJWTManager().GenerateToken(&models.User{
		ID: 7, Email: "staff@example.com", Role: role, IsActive: true,
	})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	return token
}

func TestGetRepaymentAnalyticsAsOwner(t *testing.T) {
	router := analyticsTestRouter(t)

	req := httptest.NewRequest("GET", "/api/repayment-analytics", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleOwner))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool                       `json:"success"`
		Data    *models.RepaymentAnalytics `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Success {
		t.Error("expected success envelope")
	}
	if resp.Data == nil || resp.Data.TotalSHGs != 1 {
		t.Errorf("unexpected report: %+v", resp.Data)
	}
	if resp.Data.UpcomingRepayments.Today == nil {
		t.Error("today bucket must serialize as [], not null")
	}
}

func TestGetRepaymentAnalyticsForbiddenForFieldOfficer(t *testing.T) {
	router := analyticsTestRouter(t)

	req := httptest.NewRequest("GET", "/api/repayment-analytics", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleFieldOfficer))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestGetRepaymentAnalyticsRequiresToken(t *testing.T) {
	router := analyticsTestRouter(t)

	req := httptest.NewRequest("GET", "/api/repayment-analytics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Success || resp.Error.Message == "" {
		t.Errorf("expected failure envelope, got %s", rec.Body.String())
	}
}

func TestGetRepaymentAnalyticsRejectsSuspendedAccount(t *testing.T) {
	router := analyticsTestRouter(t)

	token, err := testJWTManager().GenerateToken(&models.User{
		ID: 8, Role: models.RoleOwner, IsActive: false,
	})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/repayment-analytics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
