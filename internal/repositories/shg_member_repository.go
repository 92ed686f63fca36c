package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
)

type SHGMemberRepository struct {
	DB *pgxpool.Pool
}

func NewSHGMemberRepository(db *pgxpool.Pool) *SHGMemberRepository {
	return &SHGMemberRepository{DB: db}
}

const memberColumns = `id, shg_id, name, phone_number, role, aadhar_card_front,
	aadhar_card_back, pan_card, voter_id_card, home_rental_agreement, created_at, updated_at`

func scanMember(row interface{ Scan(...any) error }) (*models.SHGMember, error) {
	m := &models.SHGMember{}
	err := row.Scan(
		&m.ID,
		&m.SHGID,
		&m.Name,
		&m.PhoneNumber,
		&m.Role,
		&m.AadharCardFront,
		&m.AadharCardBack,
		&m.PanCard,
		&m.VoterIDCard,
		&m.HomeRentalAgreement,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *SHGMemberRepository) Create(ctx context.Context, m *models.SHGMember) error {
	query := `
		INSERT INTO shg_members (shg_id, name, phone_number, role, aadhar_card_front,
		                         aadhar_card_back, pan_card, voter_id_card, home_rental_agreement)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		m.SHGID,
		m.Name,
		m.PhoneNumber,
		m.Role,
		m.AadharCardFront,
		m.AadharCardBack,
		m.PanCard,
		m.VoterIDCard,
		m.HomeRentalAgreement,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create shg member: %w", err)
	}
	return nil
}

func (r *SHGMemberRepository) Get(ctx context.Context, id int) (*models.SHGMember, error) {
	query := `SELECT ` + memberColumns + ` FROM shg_members WHERE id = $1`
	return scanMember(r.DB.QueryRow(ctx, query, id))
}

// ListBySHG returns all members of one group.
func (r *SHGMemberRepository) ListBySHG(ctx context.Context, shgID int) ([]*models.SHGMember, error) {
	query := `SELECT ` + memberColumns + ` FROM shg_members WHERE shg_id = $1 ORDER BY created_at`
	rows, err := r.DB.Query(ctx, query, shgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.SHGMember
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *SHGMemberRepository) Update(ctx context.Context, m *models.SHGMember) error {
	query := `
		UPDATE shg_members
		SET name = $1, phone_number = $2, role = $3, aadhar_card_front = $4,
		    aadhar_card_back = $5, pan_card = $6, voter_id_card = $7,
		    home_rental_agreement = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		m.Name,
		m.PhoneNumber,
		m.Role,
		m.AadharCardFront,
		m.AadharCardBack,
		m.PanCard,
		m.VoterIDCard,
		m.HomeRentalAgreement,
		m.ID,
	).Scan(&m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update shg member: %w", err)
	}
	return nil
}

func (r *SHGMemberRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM shg_members WHERE id = $1`, id)
	return err
}
