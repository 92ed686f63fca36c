package auth

import (
	"testing"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/config"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "navayuga-backend"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))

	user := &models.User{
		ID:       42,
		Email:    "owner@example.com",
		Role:     models.RoleOwner,
		IsActive: true,
	}

	token, err := manager.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "owner@example.com" {
		t.Errorf("Email = %s", claims.Email)
	}
	if claims.Role != models.RoleOwner {
		t.Errorf("Role = %s, want owner", claims.Role)
	}
	if !claims.IsActive {
		t.Error("IsActive not carried in claims")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewJWTManager(testConfig("secret-a")).GenerateToken(&models.User{ID: 1, IsActive: true})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := NewJWTManager(testConfig("secret-b")).ValidateToken(token); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))
	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage input must not validate")
	}
}
