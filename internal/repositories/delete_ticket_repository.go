package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
)

type DeleteTicketRepository struct {
	DB *pgxpool.Pool
}

func NewDeleteTicketRepository(db *pgxpool.Pool) *DeleteTicketRepository {
	return &DeleteTicketRepository{DB: db}
}

const ticketSelect = `
	SELECT t.id, t.requested_by, COALESCE(u.first_name || ' ' || u.last_name, ''),
	       t.ticket_type, t.entity_id, t.reason, t.status,
	       t.approved_by, t.approved_at, t.created_at, t.updated_at
	FROM delete_tickets t
	LEFT JOIN users u ON t.requested_by = u.id
`

func scanTicket(row interface{ Scan(...any) error }) (*models.DeleteTicket, error) {
	t := &models.DeleteTicket{}
	err := row.Scan(
		&t.ID,
		&t.RequestedBy,
		&t.RequestedByName,
		&t.TicketType,
		&t.EntityID,
		&t.Reason,
		&t.Status,
		&t.ApprovedBy,
		&t.ApprovedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *DeleteTicketRepository) Create(ctx context.Context, t *models.DeleteTicket) error {
	query := `
		INSERT INTO delete_tickets (requested_by, ticket_type, entity_id, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(ctx, query,
		t.RequestedBy,
		t.TicketType,
		t.EntityID,
		t.Reason,
		t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create delete ticket: %w", err)
	}
	return nil
}

func (r *DeleteTicketRepository) Get(ctx context.Context, id int) (*models.DeleteTicket, error) {
	return scanTicket(r.DB.QueryRow(ctx, ticketSelect+` WHERE t.id = $1`, id))
}

// List returns tickets, optionally filtered by status.
func (r *DeleteTicketRepository) List(ctx context.Context, status string) ([]*models.DeleteTicket, error) {
	query := ticketSelect + ` ORDER BY t.created_at DESC`
	args := []any{}
	if status != "" {
		query = ticketSelect + ` WHERE t.status = $1 ORDER BY t.created_at DESC`
		args = append(args, status)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*models.DeleteTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// Resolve marks a pending ticket approved or rejected.
func (r *DeleteTicketRepository) Resolve(ctx context.Context, id int, status string, approvedBy int) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE delete_tickets
		SET status = $1, approved_by = $2, approved_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
	`, status, approvedBy, id)
	if err != nil {
		return fmt.Errorf("failed to resolve delete ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ticket %d is not pending", id)
	}
	return nil
}
