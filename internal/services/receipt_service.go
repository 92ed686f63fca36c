package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/repositories"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/timeutil"
)

// ReceiptService renders printable documents for recorded repayments.
type ReceiptService struct {
	repayments *repositories.MonthlyRepaymentRepository
	shgs       *repositories.SHGRepository
}

func NewReceiptService(repayments *repositories.MonthlyRepaymentRepository, shgs *repositories.SHGRepository) *ReceiptService {
	return &ReceiptService{repayments: repayments, shgs: shgs}
}

// GenerateRepaymentReceipt renders one repayment as an A4 receipt PDF.
func (s *ReceiptService) GenerateRepaymentReceipt(ctx context.Context, id int) ([]byte, error) {
	repayment, err := s.repayments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("repayment not found: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Navayuga - Repayment Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Group Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Group Information", "1", 1, "L", true, 0, "")

	shgName := repayment.SHGName
	if shgName == "" {
		shgName = "(deleted group)"
	}
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Group: %s", shgName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Receipt No: %d", repayment.ID), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Payment Details
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payment Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", timeutil.ToIST(repayment.RepaymentDate).Format("02-Jan-2006")), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Method: %s", repayment.PaymentMethod), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Type: %s", repayment.PaymentType), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Recorded by: %s", repayment.RecordedByName), "RB", 1, "L", false, 0, "")
	if repayment.UnpaidMemberName != "" {
		pdf.CellFormat(190, 7, fmt.Sprintf("Unpaid member: %s", repayment.UnpaidMemberName), "LRB", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	// Amount
	pdf.SetFillColor(200, 255, 200)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("Amount Received: Rs. %.2f", repayment.Amount), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateSHGStatementPDF renders one group's full repayment history.
func (s *ReceiptService) GenerateSHGStatementPDF(ctx context.Context, shgID int) ([]byte, error) {
	shg, err := s.shgs.Get(ctx, shgID)
	if err != nil {
		return nil, fmt.Errorf("shg not found: %w", err)
	}
	repayments, err := s.repayments.ListBySHG(ctx, shgID)
	if err != nil {
		return nil, err
	}

	var totalPaid float64
	for _, r := range repayments {
		totalPaid += r.Amount
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Navayuga - Repayment Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Group Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Group: %s", shg.SHGName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Number: %s", shg.SHGNumber), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Branch: %s", shg.Branch), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Monthly Amount: Rs. %.2f", shg.MonthlyRepaymentAmount), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Repayments", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(15, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Method", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "By", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for i, r := range repayments {
		recorder := r.RecordedByName
		if len(recorder) > 14 {
			recorder = recorder[:11] + "..."
		}
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, timeutil.ToIST(r.RepaymentDate).Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("Rs. %.2f", r.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, r.PaymentMethod, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, r.PaymentType, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, recorder, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(200, 255, 200)
	pdf.CellFormat(190, 10, fmt.Sprintf("Total Collected: Rs. %.2f", totalPaid), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateRepaymentsCSV exports the full repayment log for spreadsheets.
func (s *ReceiptService) GenerateRepaymentsCSV(ctx context.Context) ([]byte, error) {
	repayments, err := s.repayments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"#", "Group", "Date", "Amount", "Method", "Type", "Unpaid Member", "Recorded By"})
	for i, r := range repayments {
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			r.SHGName,
			timeutil.ToIST(r.RepaymentDate).Format(timeutil.DateLayout),
			fmt.Sprintf("%.2f", r.Amount),
			r.PaymentMethod,
			r.PaymentType,
			r.UnpaidMemberName,
			r.RecordedByName,
		})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
