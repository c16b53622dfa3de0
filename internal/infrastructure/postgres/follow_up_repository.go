package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.FollowUpRepository = (*FollowUpRepo)(nil)

// FollowUpRepo implementación de FollowUpRepository.
type FollowUpRepo struct {
	q Querier
}

// NewFollowUpRepository construye el adaptador.
func NewFollowUpRepository(q Querier) *FollowUpRepo {
	return &FollowUpRepo{q: q}
}

const followUpColumns = `id, customer_id, follow_up_date, status, sales_amount, remarks, amount_received, created_at, updated_at`

func scanFollowUp(row pgx.Row, f *entity.FollowUp) error {
	return row.Scan(&f.ID, &f.CustomerID, &f.Date, &f.Status, &f.SalesAmount, &f.Remarks, &f.AmountReceived, &f.CreatedAt, &f.UpdatedAt)
}

// Create persiste un seguimiento.
func (r *FollowUpRepo) Create(ctx context.Context, f *entity.FollowUp) error {
	query := `
		INSERT INTO follow_ups (` + followUpColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.CustomerID, f.Date, f.Status, f.SalesAmount, f.Remarks, f.AmountReceived, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert follow-up: %w", err)
	}
	return nil
}

// Update actualiza un seguimiento.
func (r *FollowUpRepo) Update(ctx context.Context, f *entity.FollowUp) error {
	query := `
		UPDATE follow_ups SET follow_up_date = $2, status = $3, sales_amount = $4, remarks = $5,
			amount_received = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, f.ID, f.Date, f.Status, f.SalesAmount, f.Remarks, f.AmountReceived, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update follow-up: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un seguimiento.
func (r *FollowUpRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM follow_ups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete follow-up: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un seguimiento.
func (r *FollowUpRepo) GetByID(ctx context.Context, id string) (*entity.FollowUp, error) {
	var f entity.FollowUp
	err := scanFollowUp(r.q.QueryRow(ctx, `SELECT `+followUpColumns+` FROM follow_ups WHERE id = $1`, id), &f)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get follow-up: %w", err)
	}
	return &f, nil
}

// ListByCustomer seguimientos del cliente por fecha.
func (r *FollowUpRepo) ListByCustomer(ctx context.Context, customerID string) ([]entity.FollowUp, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+followUpColumns+` FROM follow_ups WHERE customer_id = $1 ORDER BY follow_up_date, created_at, id`,
		customerID)
	if err != nil {
		return nil, fmt.Errorf("list follow-ups: %w", err)
	}
	defer rows.Close()
	list := []entity.FollowUp{}
	for rows.Next() {
		var f entity.FollowUp
		if err := scanFollowUp(rows, &f); err != nil {
			return nil, fmt.Errorf("scan follow-up: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
