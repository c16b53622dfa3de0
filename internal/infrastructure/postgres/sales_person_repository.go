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

var _ repository.SalesPersonRepository = (*SalesPersonRepo)(nil)

// SalesPersonRepo implementación de SalesPersonRepository.
type SalesPersonRepo struct {
	q Querier
}

// NewSalesPersonRepository construye el adaptador.
func NewSalesPersonRepository(q Querier) *SalesPersonRepo {
	return &SalesPersonRepo{q: q}
}

// Create persiste un vendedor.
func (r *SalesPersonRepo) Create(ctx context.Context, sp *entity.SalesPerson) error {
	_, err := r.q.Exec(ctx, `INSERT INTO sales_persons (id, name, created_at) VALUES ($1, $2, $3)`, sp.ID, sp.Name, sp.CreatedAt)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert sales person: %w", err)
	}
	return nil
}

// Update renombra un vendedor.
func (r *SalesPersonRepo) Update(ctx context.Context, sp *entity.SalesPerson) error {
	tag, err := r.q.Exec(ctx, `UPDATE sales_persons SET name = $2 WHERE id = $1`, sp.ID, sp.Name)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update sales person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un vendedor. Falla con ErrConflict si tiene clientes.
func (r *SalesPersonRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sales_persons WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete sales person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un vendedor.
func (r *SalesPersonRepo) GetByID(ctx context.Context, id string) (*entity.SalesPerson, error) {
	var sp entity.SalesPerson
	err := r.q.QueryRow(ctx, `SELECT id, name, created_at FROM sales_persons WHERE id = $1`, id).
		Scan(&sp.ID, &sp.Name, &sp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales person: %w", err)
	}
	return &sp, nil
}

// List todos los vendedores por nombre.
func (r *SalesPersonRepo) List(ctx context.Context) ([]entity.SalesPerson, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM sales_persons ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list sales persons: %w", err)
	}
	defer rows.Close()
	list := []entity.SalesPerson{}
	for rows.Next() {
		var sp entity.SalesPerson
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sales person: %w", err)
		}
		list = append(list, sp)
	}
	return list, rows.Err()
}
