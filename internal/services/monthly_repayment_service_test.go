package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
)

// Validation tests run against a service with no repositories wired;
// every case below must be rejected (or pass the amount check) before
// any database access happens.

func TestCreateRepaymentRejectsNegativeAmount(t *testing.T) {
	svc := NewMonthlyRepaymentService(nil, nil)

	_, err := svc.Create(context.Background(), 1, &models.CreateMonthlyRepaymentRequest{
		SHGID:         3,
		RepaymentDate: "2026-06-10",
		Amount:        -50,
		PaymentMethod: models.PaymentMethodCash,
		PaymentType:   models.PaymentTypeFull,
	})
	if err == nil || !strings.Contains(err.Error(), "0 or greater") {
		t.Fatalf("err = %v, want amount validation error", err)
	}
}

func TestCreateRepaymentAcceptsZeroAmount(t *testing.T) {
	svc := NewMonthlyRepaymentService(nil, nil)

	// A month where nothing was collected is recorded with amount 0. The
	// bogus payment method fails the very next check, which proves the
	// zero amount got past validation.
	_, err := svc.Create(context.Background(), 1, &models.CreateMonthlyRepaymentRequest{
		SHGID:         3,
		RepaymentDate: "2026-06-10",
		Amount:        0,
		PaymentMethod: "cheque",
		PaymentType:   models.PaymentTypeFull,
	})
	if err == nil || !strings.Contains(err.Error(), "invalid payment method") {
		t.Fatalf("err = %v, want invalid payment method error", err)
	}
}

func TestUpdateRepaymentRejectsNegativeAmount(t *testing.T) {
	svc := NewMonthlyRepaymentService(nil, nil)

	amount := -0.01
	_, err := svc.Update(context.Background(), 1, &models.UpdateMonthlyRepaymentRequest{
		Amount: &amount,
	})
	if err == nil || !strings.Contains(err.Error(), "0 or greater") {
		t.Fatalf("err = %v, want amount validation error", err)
	}
}

func TestUpdateRepaymentRejectsUnknownPaymentType(t *testing.T) {
	svc := NewMonthlyRepaymentService(nil, nil)

	paymentType := "quarterly"
	_, err := svc.Update(context.Background(), 1, &models.UpdateMonthlyRepaymentRequest{
		PaymentType: &paymentType,
	})
	if err == nil || !strings.Contains(err.Error(), "invalid payment type") {
		t.Fatalf("err = %v, want invalid payment type error", err)
	}
}
