package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/repositories"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/timeutil"
)

const (
	shgNumberPrefix     = "NAV"
	shgNumberRetries    = 5
	defaultSHGPageLimit = 10
)

type SHGService struct {
	shgs *repositories.SHGRepository
}

func NewSHGService(shgs *repositories.SHGRepository) *SHGService {
	return &SHGService{shgs: shgs}
}

// nextSHGNumber derives the next group number from the current year's
// highest. The sequence restarts at 0001 each calendar year.
func nextSHGNumber(prefix, highest string) string {
	seq := 1
	if strings.HasPrefix(highest, prefix) {
		if n, err := strconv.Atoi(highest[len(prefix):]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq)
}

// generateSHGNumber produces a unique NAV{year}{seq} number. The max scan
// and the insert are not atomic, so the candidate is re-checked and the
// whole step retried on collision with a concurrent writer.
func (s *SHGService) generateSHGNumber(ctx context.Context, now time.Time) (string, error) {
	prefix := fmt.Sprintf("%s%d", shgNumberPrefix, now.Year())

	for attempt := 0; attempt < shgNumberRetries; attempt++ {
		highest, err := s.shgs.MaxSHGNumberForPrefix(ctx, prefix)
		if err != nil {
			return "", fmt.Errorf("failed to scan shg numbers: %w", err)
		}

		candidate := nextSHGNumber(prefix, highest)

		exists, err := s.shgs.SHGNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check shg number: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique shg number after %d attempts", shgNumberRetries)
}

func (s *SHGService) Create(ctx context.Context, req *models.CreateSHGRequest) (*models.SHG, error) {
	if req.SHGName == "" {
		return nil, fmt.Errorf("shg name is required")
	}

	sanctionDate, err := time.ParseInLocation(timeutil.DateLayout, req.LoanSanctionDate, timeutil.IST)
	if err != nil {
		return nil, fmt.Errorf("invalid loan sanction date: %w", err)
	}
	repaymentDate, err := time.ParseInLocation(timeutil.DateLayout, req.RepaymentDate, timeutil.IST)
	if err != nil {
		return nil, fmt.Errorf("invalid repayment date: %w", err)
	}

	number, err := s.generateSHGNumber(ctx, timeutil.Now())
	if err != nil {
		return nil, err
	}

	shg := &models.SHG{
		SHGNumber:              number,
		SHGName:                req.SHGName,
		SHGAddress:             req.SHGAddress,
		SavingAccountNumber:    req.SavingAccountNumber,
		LoanAccountNumber:      req.LoanAccountNumber,
		LoanSanctionDate:       sanctionDate,
		RepaymentDate:          repaymentDate,
		FieldOfficerID:         req.FieldOfficerID,
		Branch:                 req.Branch,
		LoanSanctionAmount:     req.LoanSanctionAmount,
		NumberOfMonths:         req.NumberOfMonths,
		MonthlyRepaymentAmount: req.MonthlyRepaymentAmount,
		FixedDeposit:           req.FixedDeposit,
		LinkageID:              req.LinkageID,
		NumberOfMembers:        req.NumberOfMembers,
	}
	if err := s.shgs.Create(ctx, shg); err != nil {
		return nil, err
	}
	return s.shgs.Get(ctx, shg.ID)
}

func (s *SHGService) Get(ctx context.Context, id int) (*models.SHG, error) {
	return s.shgs.Get(ctx, id)
}

// List returns one page of SHGs. Field officers only see their own
// groups; everyone else sees all of them.
func (s *SHGService) List(ctx context.Context, callerID int, callerRole string, page, limit int) (*models.PaginatedSHGs, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultSHGPageLimit
	}

	fieldOfficerID := 0
	if callerRole == models.RoleFieldOfficer {
		fieldOfficerID = callerID
	}

	shgs, total, err := s.shgs.ListPage(ctx, fieldOfficerID, page, limit)
	if err != nil {
		return nil, err
	}
	if shgs == nil {
		shgs = []*models.SHG{}
	}

	totalPages := (total + limit - 1) / limit
	return &models.PaginatedSHGs{
		SHGs: shgs,
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *SHGService) Update(ctx context.Context, id int, req *models.UpdateSHGRequest) (*models.SHG, error) {
	shg, err := s.shgs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SHGName != nil {
		shg.SHGName = *req.SHGName
	}
	if req.SHGAddress != nil {
		shg.SHGAddress = *req.SHGAddress
	}
	if req.SavingAccountNumber != nil {
		shg.SavingAccountNumber = *req.SavingAccountNumber
	}
	if req.LoanAccountNumber != nil {
		shg.LoanAccountNumber = *req.LoanAccountNumber
	}
	if req.LoanSanctionDate != nil {
		d, err := time.ParseInLocation(timeutil.DateLayout, *req.LoanSanctionDate, timeutil.IST)
		if err != nil {
			return nil, fmt.Errorf("invalid loan sanction date: %w", err)
		}
		shg.LoanSanctionDate = d
	}
	if req.RepaymentDate != nil {
		d, err := time.ParseInLocation(timeutil.DateLayout, *req.RepaymentDate, timeutil.IST)
		if err != nil {
			return nil, fmt.Errorf("invalid repayment date: %w", err)
		}
		shg.RepaymentDate = d
	}
	if req.FieldOfficerID != nil {
		shg.FieldOfficerID = *req.FieldOfficerID
	}
	if req.Branch != nil {
		shg.Branch = *req.Branch
	}
	if req.LoanSanctionAmount != nil {
		shg.LoanSanctionAmount = *req.LoanSanctionAmount
	}
	if req.NumberOfMonths != nil {
		shg.NumberOfMonths = *req.NumberOfMonths
	}
	if req.MonthlyRepaymentAmount != nil {
		shg.MonthlyRepaymentAmount = *req.MonthlyRepaymentAmount
	}
	if req.FixedDeposit != nil {
		shg.FixedDeposit = *req.FixedDeposit
	}
	if req.LinkageID != nil {
		shg.LinkageID = *req.LinkageID
	}
	if req.NumberOfMembers != nil {
		shg.NumberOfMembers = *req.NumberOfMembers
	}

	if err := s.shgs.Update(ctx, shg); err != nil {
		return nil, err
	}
	return s.shgs.Get(ctx, id)
}

// Delete removes the SHG and its members. Only owners may delete
// directly; front desk staff must raise a delete ticket instead.
func (s *SHGService) Delete(ctx context.Context, id int, callerRole string) error {
	shg, err := s.shgs.Get(ctx, id)
	if err != nil {
		return err
	}
	if callerRole != models.RoleOwner {
		return fmt.Errorf("only owners can delete groups directly, create a delete ticket for %s", shg.SHGNumber)
	}
	return s.shgs.Delete(ctx, id)
}
