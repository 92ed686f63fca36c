package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/repositories"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/timeutil"
)

type MonthlyRepaymentService struct {
	repayments *repositories.MonthlyRepaymentRepository
	shgs       *repositories.SHGRepository
}

func NewMonthlyRepaymentService(repayments *repositories.MonthlyRepaymentRepository, shgs *repositories.SHGRepository) *MonthlyRepaymentService {
	return &MonthlyRepaymentService{repayments: repayments, shgs: shgs}
}

// Create records a payment event against an SHG. The SHG must exist at
// recording time; it may be deleted later without taking the row with it.
func (s *MonthlyRepaymentService) Create(ctx context.Context, recordedBy int, req *models.CreateMonthlyRepaymentRequest) (*models.MonthlyRepayment, error) {
	if req.Amount < 0 {
		return nil, errors.New("amount must be 0 or greater")
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("invalid payment method: %s", req.PaymentMethod)
	}
	if !models.ValidPaymentType(req.PaymentType) {
		return nil, fmt.Errorf("invalid payment type: %s", req.PaymentType)
	}

	date, err := time.ParseInLocation(timeutil.DateLayout, req.RepaymentDate, timeutil.IST)
	if err != nil {
		return nil, fmt.Errorf("invalid repayment date: %w", err)
	}

	if _, err := s.shgs.Get(ctx, req.SHGID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("shg %d not found", req.SHGID)
		}
		return nil, err
	}

	repayment := &models.MonthlyRepayment{
		SHGID:            req.SHGID,
		RepaymentDate:    date,
		Amount:           req.Amount,
		ReceiptPhoto:     req.ReceiptPhoto,
		PaymentMethod:    req.PaymentMethod,
		PaymentType:      req.PaymentType,
		UnpaidMemberName: req.UnpaidMemberName,
		RecordedBy:       recordedBy,
	}
	if err := s.repayments.Create(ctx, repayment); err != nil {
		return nil, err
	}
	return s.repayments.Get(ctx, repayment.ID)
}

func (s *MonthlyRepaymentService) Get(ctx context.Context, id int) (*models.MonthlyRepayment, error) {
	return s.repayments.Get(ctx, id)
}

// List returns every repayment, or only one group's when shgID > 0.
func (s *MonthlyRepaymentService) List(ctx context.Context, shgID int) ([]*models.MonthlyRepayment, error) {
	var (
		repayments []*models.MonthlyRepayment
		err        error
	)
	if shgID > 0 {
		repayments, err = s.repayments.ListBySHG(ctx, shgID)
	} else {
		repayments, err = s.repayments.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	if repayments == nil {
		repayments = []*models.MonthlyRepayment{}
	}
	return repayments, nil
}

// Update applies the provided fields. Request validation runs before the
// row is fetched so a bad payload fails the same way whether or not the
// repayment exists.
func (s *MonthlyRepaymentService) Update(ctx context.Context, id int, req *models.UpdateMonthlyRepaymentRequest) (*models.MonthlyRepayment, error) {
	if req.Amount != nil && *req.Amount < 0 {
		return nil, errors.New("amount must be 0 or greater")
	}
	if req.PaymentMethod != nil && !models.ValidPaymentMethod(*req.PaymentMethod) {
		return nil, fmt.Errorf("invalid payment method: %s", *req.PaymentMethod)
	}
	if req.PaymentType != nil && !models.ValidPaymentType(*req.PaymentType) {
		return nil, fmt.Errorf("invalid payment type: %s", *req.PaymentType)
	}

	var date time.Time
	if req.RepaymentDate != nil {
		parsed, err := time.ParseInLocation(timeutil.DateLayout, *req.RepaymentDate, timeutil.IST)
		if err != nil {
			return nil, fmt.Errorf("invalid repayment date: %w", err)
		}
		date = parsed
	}

	repayment, err := s.repayments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RepaymentDate != nil {
		repayment.RepaymentDate = date
	}
	if req.Amount != nil {
		repayment.Amount = *req.Amount
	}
	if req.ReceiptPhoto != nil {
		repayment.ReceiptPhoto = *req.ReceiptPhoto
	}
	if req.PaymentMethod != nil {
		repayment.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentType != nil {
		repayment.PaymentType = *req.PaymentType
	}
	if req.UnpaidMemberName != nil {
		repayment.UnpaidMemberName = *req.UnpaidMemberName
	}

	if err := s.repayments.Update(ctx, repayment); err != nil {
		return nil, err
	}
	return s.repayments.Get(ctx, id)
}

func (s *MonthlyRepaymentService) Delete(ctx context.Context, id int) error {
	return s.repayments.Delete(ctx, id)
}
