package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
)

type MonthlyRepaymentRepository struct {
	DB *pgxpool.Pool
}

func NewMonthlyRepaymentRepository(db *pgxpool.Pool) *MonthlyRepaymentRepository {
	return &MonthlyRepaymentRepository{DB: db}
}

// repaymentSelect joins the SHG's name and its *current* monthly amount
// plus the recording officer's name. COALESCE gives orphaned rows empty
// display fields instead of failing the whole report.
const repaymentSelect = `
	SELECT mr.id, mr.shg_id, COALESCE(s.shg_name, ''),
	       COALESCE(s.monthly_repayment_amount, 0),
	       mr.repayment_date, mr.amount, mr.receipt_photo,
	       mr.payment_method, mr.payment_type, mr.unpaid_member_name,
	       mr.recorded_by, COALESCE(u.first_name || ' ' || u.last_name, ''),
	       mr.created_at, mr.updated_at
	FROM monthly_repayments mr
	LEFT JOIN shgs s ON mr.shg_id = s.id
	LEFT JOIN users u ON mr.recorded_by = u.id
`

func scanRepayment(row interface{ Scan(...any) error }) (*models.MonthlyRepayment, error) {
	m := &models.MonthlyRepayment{}
	err := row.Scan(
		&m.ID,
		&m.SHGID,
		&m.SHGName,
		&m.SHGMonthlyAmount,
		&m.RepaymentDate,
		&m.Amount,
		&m.ReceiptPhoto,
		&m.PaymentMethod,
		&m.PaymentType,
		&m.UnpaidMemberName,
		&m.RecordedBy,
		&m.RecordedByName,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MonthlyRepaymentRepository) Create(ctx context.Context, m *models.MonthlyRepayment) error {
	query := `
		INSERT INTO monthly_repayments (shg_id, repayment_date, amount, receipt_photo,
		                                payment_method, payment_type, unpaid_member_name, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		m.SHGID,
		m.RepaymentDate,
		m.Amount,
		m.ReceiptPhoto,
		m.PaymentMethod,
		m.PaymentType,
		m.UnpaidMemberName,
		m.RecordedBy,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create monthly repayment: %w", err)
	}
	return nil
}

func (r *MonthlyRepaymentRepository) Get(ctx context.Context, id int) (*models.MonthlyRepayment, error) {
	return scanRepayment(r.DB.QueryRow(ctx, repaymentSelect+` WHERE mr.id = $1`, id))
}

// ListAll returns every repayment with joined SHG fields, newest first.
// The analytics engine consumes this view.
func (r *MonthlyRepaymentRepository) ListAll(ctx context.Context) ([]*models.MonthlyRepayment, error) {
	rows, err := r.DB.Query(ctx, repaymentSelect+` ORDER BY mr.repayment_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRepayments(rows)
}

// ListBySHG returns the repayments recorded against one group.
func (r *MonthlyRepaymentRepository) ListBySHG(ctx context.Context, shgID int) ([]*models.MonthlyRepayment, error) {
	rows, err := r.DB.Query(ctx,
		repaymentSelect+` WHERE mr.shg_id = $1 ORDER BY mr.repayment_date DESC`, shgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRepayments(rows)
}

func collectRepayments(rows pgx.Rows) ([]*models.MonthlyRepayment, error) {
	var repayments []*models.MonthlyRepayment
	for rows.Next() {
		m, err := scanRepayment(rows)
		if err != nil {
			return nil, err
		}
		repayments = append(repayments, m)
	}
	return repayments, rows.Err()
}

func (r *MonthlyRepaymentRepository) Update(ctx context.Context, m *models.MonthlyRepayment) error {
	query := `
		UPDATE monthly_repayments
		SET repayment_date = $1, amount = $2, receipt_photo = $3,
		    payment_method = $4, payment_type = $5, unpaid_member_name = $6,
		    updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		m.RepaymentDate,
		m.Amount,
		m.ReceiptPhoto,
		m.PaymentMethod,
		m.PaymentType,
		m.UnpaidMemberName,
		m.ID,
	).Scan(&m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update monthly repayment: %w", err)
	}
	return nil
}

// Delete removes the row entirely; repayments are never soft-deleted.
func (r *MonthlyRepaymentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM monthly_repayments WHERE id = $1`, id)
	return err
}
