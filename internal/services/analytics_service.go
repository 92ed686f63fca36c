package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/metrics"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/timeutil"
)

// amountTolerance absorbs floating-point rounding when comparing a day's
// summed repayments against the contractual monthly amount. It is not a
// business allowance.
const amountTolerance = 0.01

// SHGLister is the read collaborator providing the full SHG set.
type SHGLister interface {
	ListAll(ctx context.Context) ([]*models.SHG, error)
}

// RepaymentLister is the read collaborator providing the full repayment set.
type RepaymentLister interface {
	ListAll(ctx context.Context) ([]*models.MonthlyRepayment, error)
}

// AnalyticsService produces the repayment analytics report. It holds no
// state of its own; every call reads both collections in full and
// recomputes from scratch.
type AnalyticsService struct {
	shgs       SHGLister
	repayments RepaymentLister
}

func NewAnalyticsService(shgs SHGLister, repayments RepaymentLister) *AnalyticsService {
	return &AnalyticsService{shgs: shgs, repayments: repayments}
}

// GetRepaymentAnalytics fetches both collections and runs the engine.
// A failed read propagates; the engine is never run on partial data.
func (s *AnalyticsService) GetRepaymentAnalytics(ctx context.Context) (*models.RepaymentAnalytics, error) {
	shgs, err := s.shgs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shgs: %w", err)
	}

	repayments, err := s.repayments.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load repayments: %w", err)
	}

	metrics.AnalyticsComputations.Inc()
	return ComputeRepaymentAnalytics(shgs, repayments, timeutil.Now()), nil
}

// ComputeRepaymentAnalytics derives the full report from the given
// collections and wall-clock time. Pure: it never mutates its inputs,
// cannot fail, and empty inputs yield a zeroed report.
func ComputeRepaymentAnalytics(shgs []*models.SHG, repayments []*models.MonthlyRepayment, now time.Time) *models.RepaymentAnalytics {
	report := &models.RepaymentAnalytics{
		TotalSHGs:       len(shgs),
		TotalRepayments: len(repayments),
		UpcomingRepayments: models.UpcomingRepaymentBuckets{
			Today:    []models.UpcomingRepayment{},
			Tomorrow: []models.UpcomingRepayment{},
			In2Days:  []models.UpcomingRepayment{},
			In3Days:  []models.UpcomingRepayment{},
		},
		MismatchedRepayments: []models.MismatchedRepayment{},
	}

	summarize(report, repayments)
	bucketUpcoming(report, shgs, now)
	detectMismatches(report, repayments)

	return report
}

// summarize fills the totals and the method/type breakdowns in one linear
// scan of the repayments.
func summarize(report *models.RepaymentAnalytics, repayments []*models.MonthlyRepayment) {
	for _, r := range repayments {
		report.TotalAmountCollected += r.Amount

		switch r.PaymentMethod {
		case models.PaymentMethodUPI:
			report.RepaymentsByMethod.UPI++
		case models.PaymentMethodCash:
			report.RepaymentsByMethod.Cash++
		}

		switch r.PaymentType {
		case models.PaymentTypeFull:
			report.RepaymentsByType.Full++
		case models.PaymentTypeHalf:
			report.RepaymentsByType.Half++
		}
	}

	if report.TotalRepayments > 0 {
		report.AverageRepaymentAmount = report.TotalAmountCollected / float64(report.TotalRepayments)
	}
}

// bucketUpcoming places each SHG whose due day falls within the next
// three days into exactly one bucket. An SHG contributes at most one
// entry regardless of how many repayments exist against it; overdue
// groups (negative daysUntil) are excluded.
func bucketUpcoming(report *models.RepaymentAnalytics, shgs []*models.SHG, now time.Time) {
	for _, shg := range shgs {
		daysUntil := timeutil.DaysBetween(now, shg.RepaymentDate)
		if daysUntil < 0 || daysUntil > 3 {
			continue
		}

		entry := models.UpcomingRepayment{
			SHGID:                  shg.ID,
			SHGName:                shg.SHGName,
			RepaymentDate:          shg.RepaymentDate,
			MonthlyRepaymentAmount: shg.MonthlyRepaymentAmount,
			DaysUntil:              daysUntil,
			Branch:                 shg.Branch,
			FieldOfficerName:       shg.FieldOfficerName,
		}

		switch daysUntil {
		case 0:
			report.UpcomingRepayments.Today = append(report.UpcomingRepayments.Today, entry)
		case 1:
			report.UpcomingRepayments.Tomorrow = append(report.UpcomingRepayments.Tomorrow, entry)
		case 2:
			report.UpcomingRepayments.In2Days = append(report.UpcomingRepayments.In2Days, entry)
		case 3:
			report.UpcomingRepayments.In3Days = append(report.UpcomingRepayments.In3Days, entry)
		}
	}
}

type shgDateKey struct {
	shgID int
	day   string
}

type repaymentGroup struct {
	shgName        string
	date           time.Time
	actualAmount   float64
	expectedAmount float64
}

// detectMismatches groups repayments by (shg, calendar day), sums each
// group and flags those whose total diverges from the SHG's current
// monthly amount. Summing before comparing keeps split half-payments on
// the same day from being false positives. The expected amount is the
// group's *current* contract value, so editing it retroactively changes
// which past dates are flagged.
func detectMismatches(report *models.RepaymentAnalytics, repayments []*models.MonthlyRepayment) {
	groups := make(map[shgDateKey]*repaymentGroup)
	var order []shgDateKey

	for _, r := range repayments {
		day := timeutil.StartOfDay(r.RepaymentDate)
		key := shgDateKey{shgID: r.SHGID, day: day.Format(timeutil.DateLayout)}

		g, ok := groups[key]
		if !ok {
			g = &repaymentGroup{
				shgName:        r.SHGName,
				date:           day,
				expectedAmount: r.SHGMonthlyAmount,
			}
			groups[key] = g
			order = append(order, key)
		}
		g.actualAmount += r.Amount
	}

	for _, key := range order {
		g := groups[key]
		if math.Abs(g.actualAmount-g.expectedAmount) > amountTolerance {
			report.MismatchedRepayments = append(report.MismatchedRepayments, models.MismatchedRepayment{
				SHGID:          key.shgID,
				SHGName:        g.shgName,
				ExpectedAmount: g.expectedAmount,
				ActualAmount:   g.actualAmount,
				RepaymentDate:  g.date,
			})
		}
	}
}
