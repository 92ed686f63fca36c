package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
)

type LinkageRepository struct {
	DB *pgxpool.Pool
}

func NewLinkageRepository(db *pgxpool.Pool) *LinkageRepository {
	return &LinkageRepository{DB: db}
}

func (r *LinkageRepository) Create(ctx context.Context, l *models.Linkage) error {
	query := `
		INSERT INTO linkages (name, amount)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query, l.Name, l.Amount).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create linkage: %w", err)
	}
	return nil
}

func (r *LinkageRepository) Get(ctx context.Context, id int) (*models.Linkage, error) {
	l := &models.Linkage{}
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, amount, created_at, updated_at FROM linkages WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.Amount, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LinkageRepository) List(ctx context.Context) ([]*models.Linkage, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, amount, created_at, updated_at FROM linkages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var linkages []*models.Linkage
	for rows.Next() {
		l := &models.Linkage{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Amount, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		linkages = append(linkages, l)
	}
	return linkages, rows.Err()
}

func (r *LinkageRepository) Update(ctx context.Context, l *models.Linkage) error {
	err := r.DB.QueryRow(ctx,
		`UPDATE linkages SET name = $1, amount = $2, updated_at = NOW() WHERE id = $3 RETURNING updated_at`,
		l.Name, l.Amount, l.ID).Scan(&l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update linkage: %w", err)
	}
	return nil
}

func (r *LinkageRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM linkages WHERE id = $1`, id)
	return err
}
