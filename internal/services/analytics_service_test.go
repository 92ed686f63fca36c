package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/timeutil"
)

// A fixed afternoon so bucket boundaries are deterministic.
var testNow = time.Date(2025, 6, 10, 15, 30, 0, 0, timeutil.IST)

func dayOffset(days int) time.Time {
	return testNow.AddDate(0, 0, days)
}

func testSHG(id int, name string, repaymentDate time.Time, monthlyAmount float64) *models.SHG {
	return &models.SHG{
		ID:                     id,
		SHGName:                name,
		SHGNumber:              "NAV20250001",
		RepaymentDate:          repaymentDate,
		MonthlyRepaymentAmount: monthlyAmount,
		Branch:                 "Hubli",
		FieldOfficerName:       "Asha Patil",
	}
}

func testRepayment(shgID int, shgName string, date time.Time, amount, monthlyAmount float64, method, ptype string) *models.MonthlyRepayment {
	return &models.MonthlyRepayment{
		SHGID:            shgID,
		SHGName:          shgName,
		RepaymentDate:    date,
		Amount:           amount,
		SHGMonthlyAmount: monthlyAmount,
		PaymentMethod:    method,
		PaymentType:      ptype,
	}
}

func TestComputeRepaymentAnalyticsEmptyInputs(t *testing.T) {
	report := ComputeRepaymentAnalytics(nil, nil, testNow)

	if report.TotalSHGs != 0 || report.TotalRepayments != 0 {
		t.Errorf("expected zero totals, got %d shgs %d repayments", report.TotalSHGs, report.TotalRepayments)
	}
	if report.AverageRepaymentAmount != 0 {
		t.Errorf("expected zero average, got %f", report.AverageRepaymentAmount)
	}
	if report.UpcomingRepayments.Today == nil || report.UpcomingRepayments.Tomorrow == nil ||
		report.UpcomingRepayments.In2Days == nil || report.UpcomingRepayments.In3Days == nil {
		t.Error("upcoming buckets must be empty slices, not nil")
	}
	if report.MismatchedRepayments == nil {
		t.Error("mismatched repayments must be an empty slice, not nil")
	}
}

func TestComputeRepaymentAnalyticsSummary(t *testing.T) {
	repayments := []*models.MonthlyRepayment{
		testRepayment(1, "Shree", dayOffset(-30), 5000, 5000, models.PaymentMethodUPI, models.PaymentTypeFull),
		testRepayment(2, "Lakshmi", dayOffset(-20), 2500, 5000, models.PaymentMethodCash, models.PaymentTypeHalf),
		testRepayment(2, "Lakshmi", dayOffset(-10), 2500, 5000, models.PaymentMethodUPI, models.PaymentTypeHalf),
	}
	shgs := []*models.SHG{
		testSHG(1, "Shree", dayOffset(30), 5000),
		testSHG(2, "Lakshmi", dayOffset(40), 5000),
	}

	report := ComputeRepaymentAnalytics(shgs, repayments, testNow)

	if report.TotalSHGs != 2 {
		t.Errorf("TotalSHGs = %d, want 2", report.TotalSHGs)
	}
	if report.TotalRepayments != 3 {
		t.Errorf("TotalRepayments = %d, want 3", report.TotalRepayments)
	}
	if report.TotalAmountCollected != 10000 {
		t.Errorf("TotalAmountCollected = %f, want 10000", report.TotalAmountCollected)
	}
	if want := 10000.0 / 3; math.Abs(report.AverageRepaymentAmount-want) > 1e-9 {
		t.Errorf("AverageRepaymentAmount = %f, want %f", report.AverageRepaymentAmount, want)
	}
	if report.RepaymentsByMethod.UPI != 2 || report.RepaymentsByMethod.Cash != 1 {
		t.Errorf("method tally = %+v, want upi=2 cash=1", report.RepaymentsByMethod)
	}
	if report.RepaymentsByType.Full != 1 || report.RepaymentsByType.Half != 2 {
		t.Errorf("type tally = %+v, want full=1 half=2", report.RepaymentsByType)
	}
}

func TestComputeRepaymentAnalyticsUpcomingBuckets(t *testing.T) {
	// Due dates carry odd clock times; bucketing must work on whole days.
	shgs := []*models.SHG{
		testSHG(1, "DueToday", time.Date(2025, 6, 10, 8, 0, 0, 0, timeutil.IST), 5000),
		testSHG(2, "DueTomorrow", dayOffset(1), 5000),
		testSHG(3, "DueIn2", dayOffset(2), 5000),
		testSHG(4, "DueIn3", dayOffset(3), 5000),
		testSHG(5, "DueIn4", dayOffset(4), 5000),
		testSHG(6, "Overdue", dayOffset(-1), 5000),
	}

	report := ComputeRepaymentAnalytics(shgs, nil, testNow)
	up := report.UpcomingRepayments

	if len(up.Today) != 1 || up.Today[0].SHGName != "DueToday" {
		t.Errorf("Today bucket = %+v, want DueToday", up.Today)
	}
	if up.Today[0].DaysUntil != 0 {
		t.Errorf("Today DaysUntil = %d, want 0", up.Today[0].DaysUntil)
	}
	if len(up.Tomorrow) != 1 || up.Tomorrow[0].SHGName != "DueTomorrow" {
		t.Errorf("Tomorrow bucket = %+v, want DueTomorrow", up.Tomorrow)
	}
	if len(up.In2Days) != 1 || up.In2Days[0].SHGName != "DueIn2" {
		t.Errorf("In2Days bucket = %+v, want DueIn2", up.In2Days)
	}
	if up.In2Days[0].DaysUntil != 2 {
		t.Errorf("In2Days DaysUntil = %d, want 2", up.In2Days[0].DaysUntil)
	}
	if len(up.In3Days) != 1 || up.In3Days[0].SHGName != "DueIn3" {
		t.Errorf("In3Days bucket = %+v, want DueIn3", up.In3Days)
	}

	total := len(up.Today) + len(up.Tomorrow) + len(up.In2Days) + len(up.In3Days)
	if total != 4 {
		t.Errorf("bucketed %d groups, want 4 (overdue and +4 days excluded)", total)
	}

	if up.Today[0].Branch != "Hubli" || up.Today[0].FieldOfficerName != "Asha Patil" {
		t.Errorf("bucket entry missing display fields: %+v", up.Today[0])
	}
}

func TestComputeRepaymentAnalyticsSplitPaymentsNoMismatch(t *testing.T) {
	day := dayOffset(-5)
	repayments := []*models.MonthlyRepayment{
		testRepayment(1, "Shree", day, 2500, 5000, models.PaymentMethodCash, models.PaymentTypeHalf),
		testRepayment(1, "Shree", day.Add(3*time.Hour), 2500, 5000, models.PaymentMethodUPI, models.PaymentTypeHalf),
	}

	report := ComputeRepaymentAnalytics(nil, repayments, testNow)

	if len(report.MismatchedRepayments) != 0 {
		t.Errorf("two halves summing to the monthly amount must not mismatch, got %+v", report.MismatchedRepayments)
	}
}

func TestComputeRepaymentAnalyticsShortPaymentMismatch(t *testing.T) {
	day := dayOffset(-5)
	repayments := []*models.MonthlyRepayment{
		testRepayment(1, "Shree", day, 3000, 5000, models.PaymentMethodCash, models.PaymentTypeFull),
	}

	report := ComputeRepaymentAnalytics(nil, repayments, testNow)

	if len(report.MismatchedRepayments) != 1 {
		t.Fatalf("expected 1 mismatch, got %d", len(report.MismatchedRepayments))
	}
	m := report.MismatchedRepayments[0]
	if m.SHGID != 1 || m.SHGName != "Shree" {
		t.Errorf("mismatch identity = %+v", m)
	}
	if m.ExpectedAmount != 5000 || m.ActualAmount != 3000 {
		t.Errorf("mismatch amounts = expected %f actual %f, want 5000/3000", m.ExpectedAmount, m.ActualAmount)
	}
	wantDay := timeutil.StartOfDay(day)
	if !m.RepaymentDate.Equal(wantDay) {
		t.Errorf("mismatch date = %v, want %v", m.RepaymentDate, wantDay)
	}
}

func TestComputeRepaymentAnalyticsToleranceAbsorbsRounding(t *testing.T) {
	day := dayOffset(-5)
	repayments := []*models.MonthlyRepayment{
		testRepayment(1, "Shree", day, 4999.995, 5000, models.PaymentMethodUPI, models.PaymentTypeFull),
	}

	report := ComputeRepaymentAnalytics(nil, repayments, testNow)

	if len(report.MismatchedRepayments) != 0 {
		t.Errorf("difference within 0.01 must not mismatch, got %+v", report.MismatchedRepayments)
	}
}

func TestComputeRepaymentAnalyticsSameGroupDifferentDays(t *testing.T) {
	repayments := []*models.MonthlyRepayment{
		testRepayment(1, "Shree", dayOffset(-35), 5000, 5000, models.PaymentMethodCash, models.PaymentTypeFull),
		testRepayment(1, "Shree", dayOffset(-5), 4000, 5000, models.PaymentMethodCash, models.PaymentTypeFull),
	}

	report := ComputeRepaymentAnalytics(nil, repayments, testNow)

	// Days are grouped independently; only the short one is flagged.
	if len(report.MismatchedRepayments) != 1 {
		t.Fatalf("expected 1 mismatch, got %d", len(report.MismatchedRepayments))
	}
	if report.MismatchedRepayments[0].ActualAmount != 4000 {
		t.Errorf("flagged wrong day: %+v", report.MismatchedRepayments[0])
	}
}

func TestComputeRepaymentAnalyticsMismatchOrder(t *testing.T) {
	repayments := []*models.MonthlyRepayment{
		testRepayment(3, "Gamma", dayOffset(-3), 100, 5000, models.PaymentMethodCash, models.PaymentTypeFull),
		testRepayment(1, "Alpha", dayOffset(-2), 200, 5000, models.PaymentMethodCash, models.PaymentTypeFull),
		testRepayment(2, "Beta", dayOffset(-1), 300, 5000, models.PaymentMethodCash, models.PaymentTypeFull),
	}

	report := ComputeRepaymentAnalytics(nil, repayments, testNow)

	if len(report.MismatchedRepayments) != 3 {
		t.Fatalf("expected 3 mismatches, got %d", len(report.MismatchedRepayments))
	}
	for i, want := range []string{"Gamma", "Alpha", "Beta"} {
		if report.MismatchedRepayments[i].SHGName != want {
			t.Errorf("mismatch[%d] = %s, want %s (input order must be preserved)",
				i, report.MismatchedRepayments[i].SHGName, want)
		}
	}
}

func TestComputeRepaymentAnalyticsDoesNotMutateInputs(t *testing.T) {
	shgs := []*models.SHG{testSHG(1, "Shree", dayOffset(1), 5000)}
	repayments := []*models.MonthlyRepayment{
		testRepayment(1, "Shree", dayOffset(-5), 3000, 5000, models.PaymentMethodCash, models.PaymentTypeFull),
	}
	origDate := repayments[0].RepaymentDate

	ComputeRepaymentAnalytics(shgs, repayments, testNow)

	if !repayments[0].RepaymentDate.Equal(origDate) || repayments[0].Amount != 3000 {
		t.Error("engine mutated its repayment input")
	}
	if shgs[0].MonthlyRepaymentAmount != 5000 {
		t.Error("engine mutated its shg input")
	}
}

type fakeSHGLister struct {
	shgs []*models.SHG
	err  error
}

func (f *fakeSHGLister) ListAll(ctx context.Context) ([]*models.SHG, error) {
	return f.shgs, f.err
}

type fakeRepaymentLister struct {
	repayments []*models.MonthlyRepayment
	err        error
}

func (f *fakeRepaymentLister) ListAll(ctx context.Context) ([]*models.MonthlyRepayment, error) {
	return f.repayments, f.err
}

func TestAnalyticsServiceGetRepaymentAnalytics(t *testing.T) {
	svc := NewAnalyticsService(
		&fakeSHGLister{shgs: []*models.SHG{testSHG(1, "Shree", timeutil.Now(), 5000)}},
		&fakeRepaymentLister{},
	)

	report, err := svc.GetRepaymentAnalytics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalSHGs != 1 {
		t.Errorf("TotalSHGs = %d, want 1", report.TotalSHGs)
	}
}

func TestAnalyticsServicePropagatesReadErrors(t *testing.T) {
	readErr := errors.New("db down")

	svc := NewAnalyticsService(&fakeSHGLister{err: readErr}, &fakeRepaymentLister{})
	if _, err := svc.GetRepaymentAnalytics(context.Background()); !errors.Is(err, readErr) {
		t.Errorf("shg read error not propagated: %v", err)
	}

	svc = NewAnalyticsService(&fakeSHGLister{}, &fakeRepaymentLister{err: readErr})
	if _, err := svc.GetRepaymentAnalytics(context.Background()); !errors.Is(err, readErr) {
		t.Errorf("repayment read error not propagated: %v", err)
	}
}
