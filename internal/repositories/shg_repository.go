package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
)

type SHGRepository struct {
	DB *pgxpool.Pool
}

func NewSHGRepository(db *pgxpool.Pool) *SHGRepository {
	return &SHGRepository{DB: db}
}

// shgSelect joins the field officer and linkage display fields. COALESCE
// keeps a dangling reference from blanking out the whole result set.
const shgSelect = `
	SELECT s.id, s.shg_number, s.shg_name, s.shg_address,
	       s.saving_account_number, s.loan_account_number,
	       s.loan_sanction_date, s.repayment_date,
	       s.field_officer_id, COALESCE(u.first_name || ' ' || u.last_name, ''),
	       s.branch, s.loan_sanction_amount, s.number_of_months,
	       s.monthly_repayment_amount, s.fixed_deposit,
	       s.linkage_id, COALESCE(l.name, ''),
	       s.number_of_members, s.created_at, s.updated_at
	FROM shgs s
	LEFT JOIN users u ON s.field_officer_id = u.id
	LEFT JOIN linkages l ON s.linkage_id = l.id
`

func scanSHG(row interface{ Scan(...any) error }) (*models.SHG, error) {
	s := &models.SHG{}
	err := row.Scan(
		&s.ID,
		&s.SHGNumber,
		&s.SHGName,
		&s.SHGAddress,
		&s.SavingAccountNumber,
		&s.LoanAccountNumber,
		&s.LoanSanctionDate,
		&s.RepaymentDate,
		&s.FieldOfficerID,
		&s.FieldOfficerName,
		&s.Branch,
		&s.LoanSanctionAmount,
		&s.NumberOfMonths,
		&s.MonthlyRepaymentAmount,
		&s.FixedDeposit,
		&s.LinkageID,
		&s.LinkageName,
		&s.NumberOfMembers,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SHGRepository) Create(ctx context.Context, shg *models.SHG) error {
	query := `
		INSERT INTO shgs (shg_number, shg_name, shg_address, saving_account_number,
		                  loan_account_number, loan_sanction_date, repayment_date,
		                  field_officer_id, branch, loan_sanction_amount, number_of_months,
		                  monthly_repayment_amount, fixed_deposit, linkage_id, number_of_members)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		shg.SHGNumber,
		shg.SHGName,
		shg.SHGAddress,
		shg.SavingAccountNumber,
		shg.LoanAccountNumber,
		shg.LoanSanctionDate,
		shg.RepaymentDate,
		shg.FieldOfficerID,
		shg.Branch,
		shg.LoanSanctionAmount,
		shg.NumberOfMonths,
		shg.MonthlyRepaymentAmount,
		shg.FixedDeposit,
		shg.LinkageID,
		shg.NumberOfMembers,
	).Scan(&shg.ID, &shg.CreatedAt, &shg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create shg: %w", err)
	}
	return nil
}

func (r *SHGRepository) Get(ctx context.Context, id int) (*models.SHG, error) {
	return scanSHG(r.DB.QueryRow(ctx, shgSelect+` WHERE s.id = $1`, id))
}

// ListAll returns every SHG with joined display fields. The analytics
// engine consumes this unpaginated view.
func (r *SHGRepository) ListAll(ctx context.Context) ([]*models.SHG, error) {
	rows, err := r.DB.Query(ctx, shgSelect+` ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSHGs(rows)
}

// ListPage returns one page of SHGs plus the unfiltered total. When
// fieldOfficerID > 0 the result is restricted to that officer's groups.
func (r *SHGRepository) ListPage(ctx context.Context, fieldOfficerID, page, limit int) ([]*models.SHG, int, error) {
	where := ""
	args := []any{}
	if fieldOfficerID > 0 {
		where = ` WHERE s.field_officer_id = $1`
		args = append(args, fieldOfficerID)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM shgs s` + where
	if err := r.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf("%s%s ORDER BY s.created_at DESC LIMIT $%d OFFSET $%d",
		shgSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	shgs, err := collectSHGs(rows)
	if err != nil {
		return nil, 0, err
	}
	return shgs, total, nil
}

func collectSHGs(rows pgx.Rows) ([]*models.SHG, error) {
	var shgs []*models.SHG
	for rows.Next() {
		s, err := scanSHG(rows)
		if err != nil {
			return nil, err
		}
		shgs = append(shgs, s)
	}
	return shgs, rows.Err()
}

func (r *SHGRepository) Update(ctx context.Context, shg *models.SHG) error {
	query := `
		UPDATE shgs
		SET shg_name = $1, shg_address = $2, saving_account_number = $3,
		    loan_account_number = $4, loan_sanction_date = $5, repayment_date = $6,
		    field_officer_id = $7, branch = $8, loan_sanction_amount = $9,
		    number_of_months = $10, monthly_repayment_amount = $11,
		    fixed_deposit = $12, linkage_id = $13, number_of_members = $14,
		    updated_at = NOW()
		WHERE id = $15
		RETURNING updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		shg.SHGName,
		shg.SHGAddress,
		shg.SavingAccountNumber,
		shg.LoanAccountNumber,
		shg.LoanSanctionDate,
		shg.RepaymentDate,
		shg.FieldOfficerID,
		shg.Branch,
		shg.LoanSanctionAmount,
		shg.NumberOfMonths,
		shg.MonthlyRepaymentAmount,
		shg.FixedDeposit,
		shg.LinkageID,
		shg.NumberOfMembers,
		shg.ID,
	).Scan(&shg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update shg: %w", err)
	}
	return nil
}

// Delete removes the SHG and its members in one transaction. The members
// table also carries ON DELETE CASCADE; the explicit delete keeps the
// intent visible and the row counts auditable.
func (r *SHGRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM shg_members WHERE shg_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete shg members: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM shgs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete shg: %w", err)
	}

	return tx.Commit(ctx)
}

// MaxSHGNumberForPrefix returns the highest shg_number starting with the
// given year prefix, or "" when none exists yet.
func (r *SHGRepository) MaxSHGNumberForPrefix(ctx context.Context, prefix string) (string, error) {
	var number string
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(MAX(shg_number), '') FROM shgs WHERE shg_number LIKE $1 || '%'`,
		prefix).Scan(&number)
	if err != nil {
		return "", err
	}
	return number, nil
}

// SHGNumberExists re-checks a freshly generated number for collision with
// a concurrent writer.
func (r *SHGRepository) SHGNumberExists(ctx context.Context, number string) (bool, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM shgs WHERE shg_number = $1`, number).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
